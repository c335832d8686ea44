package toggle_slot

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SportBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.SelectionID == "" {
		return fmt.Errorf("%w: selectionID is required", ErrInvalidInput)
	}

	if req.Slot.IsZero() {
		return fmt.Errorf("%w: slot is required", ErrInvalidInput)
	}

	if err := req.Slot.Validate(); err != nil {
		return fmt.Errorf("%w: invalid slot format: %v", ErrInvalidInput, err)
	}

	return nil
}

// buildResponse собирает ответ из актуального состояния выборки
func buildResponse(selection *domain.Selection, now time.Time, changed bool) *Response {
	return &Response{
		SelectionID: selection.ID,
		Date:        selection.Date,
		Slots:       selection.Slots,
		TotalPrice:  selection.TotalPrice(),
		CanSubmit:   selection.CanSubmit(now),
		Changed:     changed,
	}
}
