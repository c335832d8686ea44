package paymentservice

import "errors"

var (
	// ErrPaymentInit возвращается, когда Payment API не смог создать
	// платежную сессию. Терминальная ошибка для текущей попытки оплаты.
	ErrPaymentInit = errors.New("payment session creation failed")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("paymentservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("paymentservice client: invalid response")
)
