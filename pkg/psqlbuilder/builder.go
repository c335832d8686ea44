// Package psqlbuilder предоставляет squirrel builder, преднастроенный
// на PostgreSQL-плейсхолдеры ($1, $2, ...).
package psqlbuilder

import "github.com/Masterminds/squirrel"

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Insert возвращает InsertBuilder для указанной таблицы.
func Insert(table string) squirrel.InsertBuilder {
	return builder.Insert(table)
}

// Select возвращает SelectBuilder для указанных колонок.
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Update возвращает UpdateBuilder для указанной таблицы.
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete возвращает DeleteBuilder для указанной таблицы.
func Delete(table string) squirrel.DeleteBuilder {
	return builder.Delete(table)
}
