package submit_booking

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.SelectionID == "" {
		return fmt.Errorf("%w: selectionID is required", ErrInvalidInput)
	}

	return nil
}
