package submit_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SportBookingService/internal/domain"
	bookingClient "github.com/m04kA/SMC-SportBookingService/internal/integrations/bookingservice"
	"github.com/m04kA/SMC-SportBookingService/internal/infra/selectionstore"
)

// UseCase use case для отправки выборки на бронирование.
// Строит неизменяемый запрос бронирования, создает бронирование со статусом
// pending_payment и заводит платежную сессию. Ровно один вызов Booking API
// на одну отправку.
type UseCase struct {
	selections    SelectionStore
	bookingClient BookingServiceClient
	sessions      SessionRepository
	guard         *submitGuard
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	selections SelectionStore,
	bookingClient BookingServiceClient,
	sessions SessionRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		selections:    selections,
		bookingClient: bookingClient,
		sessions:      sessions,
		guard:         newSubmitGuard(),
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case отправки бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitBooking: user=%d, selection=%s", req.UserID, req.SelectionID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Защита от двойной отправки
	if !uc.guard.acquire(req.SelectionID) {
		uc.logger.Warn("SubmitBooking: selection id=%s is already being submitted", req.SelectionID)
		return nil, ErrSubmissionInFlight
	}
	defer uc.guard.release(req.SelectionID)

	// 3. Загружаем выборку
	selection, err := uc.selections.Get(ctx, req.SelectionID)
	if err != nil {
		if errors.Is(err, selectionstore.ErrSelectionNotFound) {
			uc.logger.Warn("SubmitBooking: selection id=%s not found", req.SelectionID)
			return nil, ErrSelectionNotFound
		}
		uc.logger.Error("SubmitBooking: failed to get selection id=%s: %v", req.SelectionID, err)
		return nil, fmt.Errorf("%w: failed to get selection: %v", ErrInternal, err)
	}

	// 4. Проверяем права доступа
	if selection.UserID != req.UserID {
		uc.logger.Warn("SubmitBooking: access denied for user=%d to selection id=%s", req.UserID, req.SelectionID)
		return nil, ErrAccessDenied
	}

	// 5. Получаем текущее время
	now := uc.timeProvider.Now()

	// 6. Выборка должна быть отправляемой
	if len(selection.Slots) == 0 {
		uc.logger.Warn("SubmitBooking: selection id=%s has no slots", req.SelectionID)
		return nil, ErrNothingSelected
	}
	if domain.DateInPast(selection.Date, now) {
		uc.logger.Warn("SubmitBooking: selection id=%s date %s is in the past",
			req.SelectionID, selection.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 7. Строим неизменяемый запрос бронирования
	booking := &domain.BookingRequest{
		UserID:        selection.UserID,
		FacilityID:    selection.Facility.ID,
		FacilityName:  selection.Facility.Name,
		SportType:     selection.Facility.SportType,
		CourtID:       selection.Facility.CourtID,
		CourtName:     selection.Facility.CourtName,
		Location:      selection.Facility.Location,
		Date:          selection.Date,
		Slots:         selection.Slots,
		TotalPrice:    selection.TotalPrice(),
		PaymentMethod: domain.MethodPending,
		TransactionID: domain.NewTransactionID(now),
		Notes:         req.Notes,
	}

	// 8. Создаем бронирование со статусом pending_payment
	created, err := uc.bookingClient.CreateBooking(ctx, &bookingClient.CreateBookingRequest{
		FacilityID:    booking.FacilityID,
		SportType:     booking.SportType,
		CourtID:       booking.CourtID,
		BookingDate:   booking.Date.Format(domain.DateFormat),
		StartTime:     booking.StartTime().String(),
		EndTime:       booking.EndTime().String(),
		TimeSlots:     booking.SlotLabels(),
		TotalPrice:    booking.TotalPrice,
		PaymentMethod: string(booking.PaymentMethod),
		TransactionID: booking.TransactionID,
		Status:        string(domain.StatusPendingPayment),
		Notes:         booking.Notes,
	})
	if err != nil {
		// Отказ в создании бронирования блокирует переход к оплате
		uc.logger.Error("SubmitBooking: booking creation failed for selection id=%s: %v", req.SelectionID, err)
		return nil, fmt.Errorf("%w: %v", ErrBookingCreation, err)
	}

	uc.logger.Info("SubmitBooking: booking id=%d created, txn=%s", created.BookingID, booking.TransactionID)

	// 9. Заводим платежную сессию в состоянии выбора способа оплаты
	session := &domain.PaymentSession{
		TransactionID: booking.TransactionID,
		BookingID:     created.BookingID,
		UserID:        booking.UserID,
		Method:        domain.MethodPending,
		State:         domain.StateSelectingMethod,
		Amount:        booking.TotalPrice,
		FacilityID:    booking.FacilityID,
		FacilityName:  booking.FacilityName,
		SportType:     booking.SportType,
		CourtID:       booking.CourtID,
		CourtName:     booking.CourtName,
		Date:          booking.Date,
		Slots:         booking.Slots,
	}
	if _, err := uc.sessions.Create(ctx, session); err != nil {
		uc.logger.Error("SubmitBooking: failed to create payment session for booking id=%d: %v", created.BookingID, err)
		return nil, fmt.Errorf("%w: failed to create payment session: %v", ErrInternal, err)
	}

	// 10. Выборка отработала свое, чистим. Ошибка удаления не фатальна:
	// ключ в любом случае истечет по TTL.
	if err := uc.selections.Delete(ctx, req.SelectionID); err != nil {
		uc.logger.Warn("SubmitBooking: failed to delete selection id=%s: %v", req.SelectionID, err)
	}

	return &Response{
		BookingID:     created.BookingID,
		TransactionID: booking.TransactionID,
		FacilityID:    booking.FacilityID,
		FacilityName:  booking.FacilityName,
		Date:          booking.Date,
		Slots:         booking.Slots,
		TotalPrice:    booking.TotalPrice,
		Status:        string(domain.StatusPendingPayment),
	}, nil
}
