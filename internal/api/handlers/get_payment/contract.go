package get_payment

import (
	"context"

	"github.com/m04kA/SMC-SportBookingService/internal/service/payments/models"
)

type PaymentsService interface {
	Get(ctx context.Context, transactionID string, userID int64) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
