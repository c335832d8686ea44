package paymentsession

import "errors"

var (
	// ErrSessionNotFound возвращается, когда платежная сессия не найдена
	ErrSessionNotFound = errors.New("payment session not found")

	// ErrBuildQuery возвращается при ошибке сборки SQL запроса
	ErrBuildQuery = errors.New("failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("failed to execute query")

	// ErrScanRow возвращается при ошибке чтения строки результата
	ErrScanRow = errors.New("failed to scan row")
)
