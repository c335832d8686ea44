package toggle_slot

import (
	"github.com/m04kA/SMC-SportBookingService/internal/domain"
	toggleSlot "github.com/m04kA/SMC-SportBookingService/internal/usecase/toggle_slot"
	"github.com/m04kA/SMC-SportBookingService/pkg/types"
)

// ToggleSlotRequest HTTP request model
type ToggleSlotRequest struct {
	Slot string `json:"slot"` // "16:00"
}

// SelectionStateResponse HTTP response model
type SelectionStateResponse struct {
	SelectionID string   `json:"selectionId"`
	Date        string   `json:"date"`
	Slots       []string `json:"slots"`
	TotalPrice  int64    `json:"totalPrice"`
	CanSubmit   bool     `json:"canSubmit"`
	Changed     bool     `json:"changed"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ToggleSlotRequest) ToUseCaseRequest(userID int64, selectionID string) (*toggleSlot.Request, error) {
	slot, err := types.NewTimeStringFromString(r.Slot)
	if err != nil {
		return nil, err
	}

	return &toggleSlot.Request{
		UserID:      userID,
		SelectionID: selectionID,
		Slot:        slot,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *toggleSlot.Response) *SelectionStateResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}

	return &SelectionStateResponse{
		SelectionID: resp.SelectionID,
		Date:        resp.Date.Format(domain.DateFormat),
		Slots:       slots,
		TotalPrice:  resp.TotalPrice,
		CanSubmit:   resp.CanSubmit,
		Changed:     resp.Changed,
	}
}
