package facilityservice

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда сооружение не найдено
	ErrFacilityNotFound = errors.New("facility not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("facilityservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("facilityservice client: invalid response")
)
