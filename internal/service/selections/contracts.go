package selections

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SportBookingService/internal/domain"
	"github.com/m04kA/SMC-SportBookingService/internal/integrations/facilityservice"
)

// SelectionStore интерфейс хранилища выборок слотов
type SelectionStore interface {
	Save(ctx context.Context, selection *domain.Selection) error
	Get(ctx context.Context, selectionID string) (*domain.Selection, error)
	Delete(ctx context.Context, selectionID string) error
}

// FacilityServiceClient интерфейс клиента для Facility API
type FacilityServiceClient interface {
	GetFacility(ctx context.Context, facilityID int64) (*facilityservice.Facility, error)
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
