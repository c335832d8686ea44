package submit_booking

import "errors"

var (
	// ErrSelectionNotFound возвращается, когда выборка не найдена или истек ее TTL
	ErrSelectionNotFound = errors.New("submit_booking: selection not found")

	// ErrAccessDenied возвращается при попытке отправить чужую выборку
	ErrAccessDenied = errors.New("submit_booking: access denied")

	// ErrNothingSelected возвращается при отправке пустой выборки
	ErrNothingSelected = errors.New("submit_booking: no slots selected")

	// ErrInvalidDate возвращается, когда дата выборки уже в прошлом
	ErrInvalidDate = errors.New("submit_booking: selection date is in the past")

	// ErrSubmissionInFlight возвращается при повторной отправке, пока
	// предыдущая еще не завершилась. Защита от двойного бронирования.
	ErrSubmissionInFlight = errors.New("submit_booking: submission already in progress")

	// ErrBookingCreation возвращается, когда Booking API отказал в создании.
	// Оплата в этом случае не начинается.
	ErrBookingCreation = errors.New("submit_booking: booking creation failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("submit_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_booking: internal error")
)
