package toggle_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SportBookingService/internal/domain"
	"github.com/m04kA/SMC-SportBookingService/internal/infra/selectionstore"
)

// UseCase use case для добавления/снятия слота в выборке
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

// Execute выполняет use case переключения слота.
// Попытка переключить занятый или прошедший слот не является ошибкой:
// выборка просто не меняется, как неактивная кнопка в интерфейсе.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ToggleSlot: user=%d, selection=%s, slot=%s", req.UserID, req.SelectionID, req.Slot)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ToggleSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем выборку
	selection, err := uc.selections.Get(ctx, req.SelectionID)
	if err != nil {
		if errors.Is(err, selectionstore.ErrSelectionNotFound) {
			uc.logger.Warn("ToggleSlot: selection id=%s not found", req.SelectionID)
			return nil, ErrSelectionNotFound
		}
		uc.logger.Error("ToggleSlot: failed to get selection id=%s: %v", req.SelectionID, err)
		return nil, fmt.Errorf("%w: failed to get selection: %v", ErrInternal, err)
	}

	// 3. Проверяем права доступа
	if selection.UserID != req.UserID {
		uc.logger.Warn("ToggleSlot: access denied for user=%d to selection id=%s", req.UserID, req.SelectionID)
		return nil, ErrAccessDenied
	}

	// 4. Слот должен принадлежать сетке сооружения
	if !selection.Facility.HasSlot(req.Slot) {
		uc.logger.Warn("ToggleSlot: slot %s is not in schedule of facility id=%d", req.Slot, selection.Facility.ID)
		return nil, ErrUnknownSlot
	}

	// 5. Получаем текущее время
	now := uc.timeProvider.Now()

	// 6. Получаем индекс занятых слотов на дату выборки
	booked, err := uc.bookingClient.GetBookedSlots(ctx, selection.Facility.ID, selection.Date)
	if err != nil {
		uc.logger.Error("ToggleSlot: failed to get booked slots for facility id=%d: %v", selection.Facility.ID, err)
		return nil, fmt.Errorf("%w: failed to get booked slots: %v", ErrInternal, err)
	}

	// 7. Классифицируем слот и переключаем
	status := domain.ClassifySlot(req.Slot, selection.Date, now, booked)
	changed := selection.ToggleSlot(req.Slot, status)

	if !changed {
		uc.logger.Info("ToggleSlot: slot %s is %s, selection id=%s unchanged", req.Slot, status, req.SelectionID)
		return buildResponse(selection, now, false), nil
	}

	// 8. Сохраняем обновленную выборку
	if err := uc.selections.Save(ctx, selection); err != nil {
		uc.logger.Error("ToggleSlot: failed to save selection id=%s: %v", req.SelectionID, err)
		return nil, fmt.Errorf("%w: failed to save selection: %v", ErrInternal, err)
	}

	uc.logger.Info("ToggleSlot: selection id=%s now has %d slots, total=%d",
		req.SelectionID, len(selection.Slots), selection.TotalPrice())

	return buildResponse(selection, now, true), nil
}
