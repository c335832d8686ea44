package set_selection_date

import (
	"time"

	"github.com/m04kA/SMC-SportBookingService/internal/domain"
	setSelectionDate "github.com/m04kA/SMC-SportBookingService/internal/usecase/set_selection_date"
)

// SetDateRequest HTTP request model
type SetDateRequest struct {
	Date string `json:"date"` // "2025-10-15"
}

// SelectionStateResponse HTTP response model
type SelectionStateResponse struct {
	SelectionID  string   `json:"selectionId"`
	Date         string   `json:"date"`
	Slots        []string `json:"slots"`
	DroppedSlots []string `json:"droppedSlots"` // Слоты, недоступные на новую дату
	TotalPrice   int64    `json:"totalPrice"`
	CanSubmit    bool     `json:"canSubmit"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SetDateRequest) ToUseCaseRequest(userID int64, selectionID string) (*setSelectionDate.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &setSelectionDate.Request{
		UserID:      userID,
		SelectionID: selectionID,
		Date:        date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *setSelectionDate.Response) *SelectionStateResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}

	dropped := make([]string, len(resp.DroppedSlots))
	for i, slot := range resp.DroppedSlots {
		dropped[i] = slot.String()
	}

	return &SelectionStateResponse{
		SelectionID:  resp.SelectionID,
		Date:         resp.Date.Format(domain.DateFormat),
		Slots:        slots,
		DroppedSlots: dropped,
		TotalPrice:   resp.TotalPrice,
		CanSubmit:    resp.CanSubmit,
	}
}
