package get_slot_availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SportBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.FacilityID <= 0 {
		return fmt.Errorf("%w: facilityID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом.
// Сегодняшняя дата допустима: прошедшие часы внутри дня помечаются
// статусом past на уровне классификации слотов.
func validateDate(date time.Time, now time.Time) error {
	if domain.DateInPast(date, now) {
		return ErrInvalidDate
	}
	return nil
}
