package get_user_payments

import (
	"context"

	"github.com/m04kA/SMC-SportBookingService/internal/service/payments/models"
)

type PaymentsService interface {
	ListByUser(ctx context.Context, userID int64) (*models.SessionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
