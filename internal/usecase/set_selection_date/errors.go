package set_selection_date

import "errors"

var (
	// ErrSelectionNotFound возвращается, когда выборка не найдена или истек ее TTL
	ErrSelectionNotFound = errors.New("set_selection_date: selection not found")

	// ErrAccessDenied возвращается при попытке изменить чужую выборку
	ErrAccessDenied = errors.New("set_selection_date: access denied")

	// ErrInvalidDate возвращается при попытке установить прошедшую дату
	ErrInvalidDate = errors.New("set_selection_date: invalid date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("set_selection_date: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("set_selection_date: internal error")
)
