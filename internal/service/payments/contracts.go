package payments

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SportBookingService/internal/domain"
	"github.com/m04kA/SMC-SportBookingService/internal/integrations/paymentservice"
)

// SessionRepository интерфейс репозитория платежных сессий
type SessionRepository interface {
	Create(ctx context.Context, session *domain.PaymentSession) (*domain.PaymentSession, error)
	GetByTransactionID(ctx context.Context, transactionID string) (*domain.PaymentSession, error)
	ListByUserID(ctx context.Context, userID int64) ([]*domain.PaymentSession, error)
	UpdateState(ctx context.Context, transactionID string, state domain.PaymentState, failureReason *string) error
	SetMethod(ctx context.Context, transactionID string, method domain.PaymentMethod, payURL *string) error
	SetFinalizeWarning(ctx context.Context, transactionID string, warning string) error
}

// PaymentServiceClient интерфейс клиента для Payment API
type PaymentServiceClient interface {
	CreateWalletPayment(ctx context.Context, req *paymentservice.CreateWalletPaymentRequest) (*paymentservice.CreateWalletPaymentResponse, error)
	GetBankPaymentStatus(ctx context.Context, transactionID string) (string, error)
	GetWalletPaymentStatus(ctx context.Context, transactionID string) (string, error)
}

// BookingServiceClient интерфейс клиента для Booking API
type BookingServiceClient interface {
	FinalizeBooking(ctx context.Context, bookingID int64, status domain.BookingStatus, paymentStatus domain.BookingPaymentStatus) error
}

// Metrics интерфейс для метрик платежного оркестратора
type Metrics interface {
	IncPaymentPoll(method, outcome string)
	IncPaymentSession(state string)
	IncActivePolls()
	DecActivePolls()
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
