package selections

import "errors"

var (
	// ErrSelectionNotFound возвращается, когда выборка не найдена или истек ее TTL
	ErrSelectionNotFound = errors.New("selection not found")

	// ErrFacilityNotFound возвращается, когда сооружение не найдено
	ErrFacilityNotFound = errors.New("facility not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа к выборке
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidDate возвращается при попытке создать выборку на прошедшую дату
	ErrInvalidDate = errors.New("invalid selection date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("selections service: internal error")
)
