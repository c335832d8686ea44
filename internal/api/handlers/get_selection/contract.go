package get_selection

import (
	"context"

	"github.com/m04kA/SMC-SportBookingService/internal/service/selections/models"
)

type SelectionsService interface {
	Get(ctx context.Context, selectionID string, userID int64) (*models.SelectionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
