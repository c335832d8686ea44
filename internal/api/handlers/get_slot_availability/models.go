package get_slot_availability

import (
	"github.com/m04kA/SMC-SportBookingService/internal/domain"
	getSlotAvailability "github.com/m04kA/SMC-SportBookingService/internal/usecase/get_slot_availability"
)

// SlotResponse один слот сетки с вычисленным статусом
type SlotResponse struct {
	Time   string `json:"time"`   // "16:00"
	Status string `json:"status"` // available | booked | past
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	FacilityID   int64          `json:"facilityId"`
	FacilityName string         `json:"facilityName"`
	SportType    string         `json:"sportType"`
	Location     string         `json:"location"`
	PricePerHour int64          `json:"pricePerHour"`
	OpeningHours string         `json:"openingHours"`
	Date         string         `json:"date"` // "2025-10-15"
	Slots        []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSlotAvailability.Response) *AvailabilityResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			Time:   slot.Time.String(),
			Status: slot.Status,
		}
	}

	return &AvailabilityResponse{
		FacilityID:   resp.FacilityID,
		FacilityName: resp.FacilityName,
		SportType:    resp.SportType,
		Location:     resp.Location,
		PricePerHour: resp.PricePerHour,
		OpeningHours: resp.OpeningHours,
		Date:         resp.Date.Format(domain.DateFormat),
		Slots:        slots,
	}
}
