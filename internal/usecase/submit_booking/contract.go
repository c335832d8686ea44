package submit_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SportBookingService/internal/domain"
	"github.com/m04kA/SMC-SportBookingService/internal/integrations/bookingservice"
)

// SelectionStore интерфейс хранилища выборок слотов
type SelectionStore interface {
	Get(ctx context.Context, selectionID string) (*domain.Selection, error)
	Delete(ctx context.Context, selectionID string) error
}

// BookingServiceClient интерфейс клиента для Booking API
type BookingServiceClient interface {
	CreateBooking(ctx context.Context, req *bookingservice.CreateBookingRequest) (*bookingservice.CreateBookingResponse, error)
}

// SessionRepository интерфейс репозитория платежных сессий
type SessionRepository interface {
	Create(ctx context.Context, session *domain.PaymentSession) (*domain.PaymentSession, error)
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
