package get_slot_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SportBookingService/internal/domain"
	facilityClient "github.com/m04kA/SMC-SportBookingService/internal/integrations/facilityservice"
)

// UseCase use case для получения сетки слотов сооружения с их статусами
type UseCase struct {
	facilityClient FacilityServiceClient
	bookingClient  BookingServiceClient
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	facilityClient FacilityServiceClient,
	bookingClient BookingServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		facilityClient: facilityClient,
		bookingClient:  bookingClient,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case получения доступности слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetSlotAvailability: facility=%d, date=%s",
		req.FacilityID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetSlotAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Валидация даты
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("GetSlotAvailability: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	// 4. Получаем сооружение
	facility, err := uc.facilityClient.GetFacility(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, facilityClient.ErrFacilityNotFound) {
			uc.logger.Warn("GetSlotAvailability: facility id=%d not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		uc.logger.Error("GetSlotAvailability: failed to get facility id=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get facility: %v", ErrInternal, err)
	}

	// 5. Строим почасовую сетку из расписания работы
	labels, err := facility.SlotLabels()
	if err != nil {
		uc.logger.Error("GetSlotAvailability: failed to build slot grid for facility id=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to build slot grid: %v", ErrInternal, err)
	}

	// 6. Получаем индекс занятых слотов на дату
	booked, err := uc.bookingClient.GetBookedSlots(ctx, req.FacilityID, req.Date)
	if err != nil {
		uc.logger.Error("GetSlotAvailability: failed to get booked slots for facility id=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get booked slots: %v", ErrInternal, err)
	}

	// 7. Классифицируем каждый слот сетки
	slots := make([]Slot, 0, len(labels))
	for _, label := range labels {
		slots = append(slots, Slot{
			Time:   label,
			Status: string(domain.ClassifySlot(label, req.Date, now, booked)),
		})
	}

	uc.logger.Info("GetSlotAvailability: facility=%d, date=%s, slots=%d, booked=%d",
		req.FacilityID, req.Date.Format(domain.DateFormat), len(slots), len(booked))

	return &Response{
		FacilityID:   facility.ID,
		FacilityName: facility.Name,
		SportType:    facility.SportType,
		Location:     facility.Location,
		PricePerHour: facility.PricePerHour,
		OpeningHours: facility.OpeningHours,
		Date:         req.Date,
		Slots:        slots,
	}, nil
}
