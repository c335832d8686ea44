package toggle_slot

import "errors"

var (
	// ErrSelectionNotFound возвращается, когда выборка не найдена или истек ее TTL
	ErrSelectionNotFound = errors.New("toggle_slot: selection not found")

	// ErrAccessDenied возвращается при попытке изменить чужую выборку
	ErrAccessDenied = errors.New("toggle_slot: access denied")

	// ErrUnknownSlot возвращается, когда слот не принадлежит сетке сооружения
	ErrUnknownSlot = errors.New("toggle_slot: slot is not in facility schedule")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("toggle_slot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("toggle_slot: internal error")
)
