package payments

import "errors"

var (
	// ErrSessionNotFound возвращается, когда платежная сессия не найдена
	ErrSessionNotFound = errors.New("payment session not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа к сессии
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidMethod возвращается при неизвестном способе оплаты
	ErrInvalidMethod = errors.New("invalid payment method")

	// ErrPaymentInit возвращается, когда Payment API не смог создать платеж.
	// Сессия при этом переводится в failed.
	ErrPaymentInit = errors.New("payment initialization failed")

	// ErrSessionFinished возвращается при попытке отменить завершенную сессию
	ErrSessionFinished = errors.New("payment session already finished")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("payments service: internal error")
)
