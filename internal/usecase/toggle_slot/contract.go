package toggle_slot

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SportBookingService/internal/domain"
)

// SelectionStore интерфейс хранилища выборок слотов
type SelectionStore interface {
	Get(ctx context.Context, selectionID string) (*domain.Selection, error)
	Save(ctx context.Context, selection *domain.Selection) error
}

// BookingServiceClient интерфейс клиента для Booking API
type BookingServiceClient interface {
	GetBookedSlots(ctx context.Context, facilityID int64, date time.Time) (domain.BookedSlotIndex, error)
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
