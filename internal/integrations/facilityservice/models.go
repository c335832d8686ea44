package facilityservice

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SportBookingService/pkg/types"
)

// Facility модель спортивного сооружения из Facility API
type Facility struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	SportType    string  `json:"sport_type"`
	CourtID      *int64  `json:"court_id,omitempty"`
	CourtName    *string `json:"court_name,omitempty"`
	Location     string  `json:"location"`
	PricePerHour int64   `json:"price_per_hour"`
	OpeningHours string  `json:"opening_hours"` // "06:00 - 22:00"
}

// SlotLabels выводит почасовую сетку слотов из opening_hours.
// Граница включительная с обеих сторон: "06:00 - 22:00" дает слоты
// 06:00..22:00. Так строит сетку исходный интерфейс, и это поведение
// сохранено намеренно.
func (f *Facility) SlotLabels() ([]types.TimeString, error) {
	parts := strings.Split(f.OpeningHours, " - ")
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: malformed opening_hours %q", ErrInvalidResponse, f.OpeningHours)
	}

	open, err := types.NewTimeStringFromString(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, fmt.Errorf("%w: opening_hours start: %v", ErrInvalidResponse, err)
	}
	close, err := types.NewTimeStringFromString(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, fmt.Errorf("%w: opening_hours end: %v", ErrInvalidResponse, err)
	}

	startHour := open.Hour()
	endHour := close.Hour()
	if endHour < startHour {
		return nil, fmt.Errorf("%w: opening_hours end before start %q", ErrInvalidResponse, f.OpeningHours)
	}

	slots := make([]types.TimeString, 0, endHour-startHour+1)
	for hour := startHour; hour <= endHour; hour++ {
		slots = append(slots, types.TimeString(fmt.Sprintf("%02d:00", hour)))
	}
	return slots, nil
}

// ErrorResponse модель ошибки от Facility API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
