package get_slot_availability

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда сооружение не найдено
	ErrFacilityNotFound = errors.New("get_slot_availability: facility not found")

	// ErrInvalidDate возвращается при запросе доступности на прошедшую дату
	ErrInvalidDate = errors.New("get_slot_availability: invalid date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_slot_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_slot_availability: internal error")
)
