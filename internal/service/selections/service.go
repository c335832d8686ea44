package selections

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SportBookingService/internal/domain"
	"github.com/m04kA/SMC-SportBookingService/internal/infra/selectionstore"
	facilityClient "github.com/m04kA/SMC-SportBookingService/internal/integrations/facilityservice"
	"github.com/m04kA/SMC-SportBookingService/internal/service/selections/models"
)

// Service сервис для работы с выборками слотов.
// Выборка представляет корзину пользователя на одно сооружение и одну дату.
// Выбор другого сооружения всегда создает новую выборку.
type Service struct {
	store          SelectionStore
	facilityClient FacilityServiceClient
	bookingClient  BookingServiceClient
	timeProvider   TimeProvider
	logger         Logger
}

// NewService создает новый экземпляр сервиса выборок
func NewService(
	store SelectionStore,
	facilityClient FacilityServiceClient,
	bookingClient BookingServiceClient,
	logger Logger,
) *Service {
	return &Service{
		store:          store,
		facilityClient: facilityClient,
		bookingClient:  bookingClient,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Create создает пустую выборку для сооружения на дату
func (s *Service) Create(ctx context.Context, req *models.CreateSelectionRequest) (*models.SelectionResponse, error) {
	s.logger.Info("Create: user=%d, facility=%d, date=%s",
		req.UserID, req.FacilityID, req.Date.Format(domain.DateFormat))

	if req.UserID <= 0 || req.FacilityID <= 0 || req.Date.IsZero() {
		return nil, fmt.Errorf("%w: userID, facilityID and date are required", ErrInvalidInput)
	}

	now := s.timeProvider.Now()
	if domain.DateInPast(req.Date, now) {
		s.logger.Warn("Create: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// Снимаем снапшот сооружения из Facility API
	facility, err := s.facilityClient.GetFacility(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, facilityClient.ErrFacilityNotFound) {
			s.logger.Warn("Create: facility id=%d not found", req.FacilityID)
			return nil, ErrFacilityNotFound
		}
		s.logger.Error("Create: failed to get facility id=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: Create - failed to get facility: %v", ErrInternal, err)
	}

	labels, err := facility.SlotLabels()
	if err != nil {
		s.logger.Error("Create: failed to build slot grid for facility id=%d: %v", req.FacilityID, err)
		return nil, fmt.Errorf("%w: Create - failed to build slot grid: %v", ErrInternal, err)
	}

	selection := &domain.Selection{
		ID:     uuid.NewString(),
		UserID: req.UserID,
		Facility: domain.Facility{
			ID:             facility.ID,
			Name:           facility.Name,
			SportType:      facility.SportType,
			CourtID:        derefOr(facility.CourtID, 0),
			CourtName:      derefOr(facility.CourtName, ""),
			Location:       facility.Location,
			PricePerHour:   facility.PricePerHour,
			OpeningHours:   facility.OpeningHours,
			AvailableSlots: labels,
		},
		Date:      req.Date,
		CreatedAt: now,
	}

	if err := s.store.Save(ctx, selection); err != nil {
		s.logger.Error("Create: failed to save selection for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: Create - failed to save selection: %v", ErrInternal, err)
	}

	booked, err := s.bookedIndex(ctx, selection)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Create: selection id=%s created for user=%d, facility=%d", selection.ID, req.UserID, req.FacilityID)
	return models.FromDomainSelection(selection, now, booked), nil
}

// Get возвращает выборку с актуальной сеткой статусов
func (s *Service) Get(ctx context.Context, selectionID string, userID int64) (*models.SelectionResponse, error) {
	s.logger.Info("Get: fetching selection id=%s for user=%d", selectionID, userID)

	selection, err := s.load(ctx, selectionID, userID, "Get")
	if err != nil {
		return nil, err
	}

	booked, err := s.bookedIndex(ctx, selection)
	if err != nil {
		return nil, err
	}

	return models.FromDomainSelection(selection, s.timeProvider.Now(), booked), nil
}

// Cancel удаляет выборку
func (s *Service) Cancel(ctx context.Context, selectionID string, userID int64) error {
	s.logger.Info("Cancel: cancelling selection id=%s by user=%d", selectionID, userID)

	if _, err := s.load(ctx, selectionID, userID, "Cancel"); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, selectionID); err != nil {
		s.logger.Error("Cancel: failed to delete selection id=%s: %v", selectionID, err)
		return fmt.Errorf("%w: Cancel - failed to delete selection: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: selection id=%s cancelled", selectionID)
	return nil
}

// load загружает выборку и проверяет права доступа
func (s *Service) load(ctx context.Context, selectionID string, userID int64, op string) (*domain.Selection, error) {
	selection, err := s.store.Get(ctx, selectionID)
	if err != nil {
		if errors.Is(err, selectionstore.ErrSelectionNotFound) {
			s.logger.Warn("%s: selection id=%s not found", op, selectionID)
			return nil, ErrSelectionNotFound
		}
		s.logger.Error("%s: failed to get selection id=%s: %v", op, selectionID, err)
		return nil, fmt.Errorf("%w: %s - failed to get selection: %v", ErrInternal, op, err)
	}

	if selection.UserID != userID {
		s.logger.Warn("%s: access denied for user=%d to selection id=%s", op, userID, selectionID)
		return nil, ErrAccessDenied
	}

	return selection, nil
}

func (s *Service) bookedIndex(ctx context.Context, selection *domain.Selection) (domain.BookedSlotIndex, error) {
	booked, err := s.bookingClient.GetBookedSlots(ctx, selection.Facility.ID, selection.Date)
	if err != nil {
		s.logger.Error("bookedIndex: failed to get booked slots for facility id=%d: %v", selection.Facility.ID, err)
		return nil, fmt.Errorf("%w: failed to get booked slots: %v", ErrInternal, err)
	}
	return booked, nil
}

func derefOr[T any](v *T, fallback T) T {
	if v == nil {
		return fallback
	}
	return *v
}
