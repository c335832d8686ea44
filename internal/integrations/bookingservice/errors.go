package bookingservice

import "errors"

var (
	// ErrBookingCreation возвращается, когда Booking API отклонил создание
	// бронирования (любой не-2xx ответ или транспортная ошибка).
	// После этой ошибки переход к оплате запрещен.
	ErrBookingCreation = errors.New("booking creation failed")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrFinalizeFailed возвращается, когда не удалось финализировать
	// бронирование после успешной оплаты
	ErrFinalizeFailed = errors.New("booking finalize failed")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("bookingservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("bookingservice client: invalid response")
)
