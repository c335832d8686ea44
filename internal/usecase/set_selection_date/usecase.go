package set_selection_date

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SportBookingService/internal/domain"
	"github.com/m04kA/SMC-SportBookingService/internal/infra/selectionstore"
	"github.com/m04kA/SMC-SportBookingService/pkg/types"
)

// UseCase use case для смены активной даты выборки
type UseCase struct {
	selections    SelectionStore
	bookingClient BookingServiceClient
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	selections SelectionStore,
	bookingClient BookingServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		selections:    selections,
		bookingClient: bookingClient,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case смены даты.
// Слоты, занятые или прошедшие на новую дату, выбрасываются из выборки
// и возвращаются в ответе, чтобы пользователь видел, что потерял.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SetSelectionDate: user=%d, selection=%s, date=%s",
		req.UserID, req.SelectionID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SetSelectionDate: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Новая дата не может быть в прошлом
	if domain.DateInPast(req.Date, now) {
		uc.logger.Warn("SetSelectionDate: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 4. Загружаем выборку
	selection, err := uc.selections.Get(ctx, req.SelectionID)
	if err != nil {
		if errors.Is(err, selectionstore.ErrSelectionNotFound) {
			uc.logger.Warn("SetSelectionDate: selection id=%s not found", req.SelectionID)
			return nil, ErrSelectionNotFound
		}
		uc.logger.Error("SetSelectionDate: failed to get selection id=%s: %v", req.SelectionID, err)
		return nil, fmt.Errorf("%w: failed to get selection: %v", ErrInternal, err)
	}

	// 5. Проверяем права доступа
	if selection.UserID != req.UserID {
		uc.logger.Warn("SetSelectionDate: access denied for user=%d to selection id=%s", req.UserID, req.SelectionID)
		return nil, ErrAccessDenied
	}

	// 6. Получаем индекс занятых слотов на новую дату
	booked, err := uc.bookingClient.GetBookedSlots(ctx, selection.Facility.ID, req.Date)
	if err != nil {
		uc.logger.Error("SetSelectionDate: failed to get booked slots for facility id=%d: %v", selection.Facility.ID, err)
		return nil, fmt.Errorf("%w: failed to get booked slots: %v", ErrInternal, err)
	}

	// 7. Применяем дату, отбрасывая недоступные слоты
	dropped := selection.ApplyDate(req.Date, func(slot types.TimeString) domain.SlotStatus {
		return domain.ClassifySlot(slot, req.Date, now, booked)
	})

	// 8. Сохраняем обновленную выборку
	if err := uc.selections.Save(ctx, selection); err != nil {
		uc.logger.Error("SetSelectionDate: failed to save selection id=%s: %v", req.SelectionID, err)
		return nil, fmt.Errorf("%w: failed to save selection: %v", ErrInternal, err)
	}

	if len(dropped) > 0 {
		uc.logger.Info("SetSelectionDate: selection id=%s dropped %d slots unavailable on %s",
			req.SelectionID, len(dropped), req.Date.Format(domain.DateFormat))
	}

	return &Response{
		SelectionID:  selection.ID,
		Date:         selection.Date,
		Slots:        selection.Slots,
		DroppedSlots: dropped,
		TotalPrice:   selection.TotalPrice(),
		CanSubmit:    selection.CanSubmit(now),
	}, nil
}
