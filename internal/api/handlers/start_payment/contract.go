package start_payment

import (
	"context"

	"github.com/m04kA/SMC-SportBookingService/internal/service/payments/models"
)

type PaymentsService interface {
	Start(ctx context.Context, req *models.StartPaymentRequest) (*models.StartPaymentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
