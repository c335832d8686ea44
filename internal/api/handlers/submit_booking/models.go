package submit_booking

import (
	"github.com/m04kA/SMC-SportBookingService/internal/domain"
	submitBooking "github.com/m04kA/SMC-SportBookingService/internal/usecase/submit_booking"
)

// SubmitBookingRequest HTTP request model
type SubmitBookingRequest struct {
	Notes *string `json:"notes,omitempty"`
}

// BookingCreatedResponse HTTP response model
type BookingCreatedResponse struct {
	BookingID     int64    `json:"bookingId"`
	TransactionID string   `json:"transactionId"`
	FacilityID    int64    `json:"facilityId"`
	FacilityName  string   `json:"facilityName"`
	Date          string   `json:"date"`
	Slots         []string `json:"slots"`
	TotalPrice    int64    `json:"totalPrice"`
	Status        string   `json:"status"` // pending_payment
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitBooking.Response) *BookingCreatedResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}

	return &BookingCreatedResponse{
		BookingID:     resp.BookingID,
		TransactionID: resp.TransactionID,
		FacilityID:    resp.FacilityID,
		FacilityName:  resp.FacilityName,
		Date:          resp.Date.Format(domain.DateFormat),
		Slots:         slots,
		TotalPrice:    resp.TotalPrice,
		Status:        resp.Status,
	}
}
