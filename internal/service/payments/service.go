package payments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SportBookingService/internal/domain"
	sessionRepo "github.com/m04kA/SMC-SportBookingService/internal/infra/storage/paymentsession"
	"github.com/m04kA/SMC-SportBookingService/internal/integrations/paymentservice"
	"github.com/m04kA/SMC-SportBookingService/internal/service/payments/models"
)

// completionTimeout предел на запись терминального состояния и финализацию
const completionTimeout = 15 * time.Second

// PollingConfig параметры цикла опроса статуса платежа
type PollingConfig struct {
	Interval     time.Duration // Период между опросами
	InitialDelay time.Duration // Задержка перед первым опросом
	MaxAttempts  int           // 0 значит без ограничения
}

// BankDetails реквизиты счета для ручного банковского перевода
type BankDetails struct {
	Name          string
	AccountNumber string
	AccountHolder string
}

// Service платежный оркестратор. Ведет сессию от выбора способа оплаты
// через ожидание подтверждения к терминальному состоянию:
//
//	selecting_method -> awaiting_confirmation -> succeeded | failed
//
// На одно бронирование активен максимум один цикл опроса: повторный запуск
// оплаты вытесняет предыдущий.
type Service struct {
	sessions SessionRepository
	payments PaymentServiceClient
	bookings BookingServiceClient
	registry *pollRegistry

	bank    BankDetails
	polling PollingConfig

	timeProvider TimeProvider
	logger       Logger
	metrics      Metrics // nil, если метрики выключены
}

// NewService создает новый экземпляр платежного оркестратора
func NewService(
	sessions SessionRepository,
	payments PaymentServiceClient,
	bookings BookingServiceClient,
	bank BankDetails,
	polling PollingConfig,
	logger Logger,
	metrics Metrics,
) *Service {
	return &Service{
		sessions:     sessions,
		payments:     payments,
		bookings:     bookings,
		registry:     newPollRegistry(),
		bank:         bank,
		polling:      polling,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		metrics:      metrics,
	}
}

// Start запускает оплату по сессии: фиксирует способ, для банковского
// перевода выдает реквизиты и QR-payload, для кошелька создает платеж
// во внешнем Payment API, затем переводит сессию в ожидание подтверждения
// и запускает опрос статуса.
//
// Повторный запуск по терминальной сессии создает новую сессию с новой
// транзакцией для того же бронирования.
func (s *Service) Start(ctx context.Context, req *models.StartPaymentRequest) (*models.StartPaymentResponse, error) {
	s.logger.Info("Start: user=%d, txn=%s, method=%s", req.UserID, req.TransactionID, req.Method)

	if req.UserID <= 0 || req.TransactionID == "" {
		return nil, fmt.Errorf("%w: userID and transactionID are required", ErrInvalidInput)
	}

	method := domain.PaymentMethod(req.Method)
	if !method.IsValid() {
		s.logger.Warn("Start: unknown payment method %q for txn=%s", req.Method, req.TransactionID)
		return nil, ErrInvalidMethod
	}

	session, err := s.load(ctx, req.TransactionID, req.UserID, "Start")
	if err != nil {
		return nil, err
	}

	// Повторная оплата после неуспеха создает новую сессию с новой транзакцией
	if session.IsTerminal() {
		session, err = s.reissueSession(ctx, session)
		if err != nil {
			return nil, err
		}
	}

	// Вытесняем предыдущий опрос этого бронирования, если он еще идет
	if stopped := s.registry.stop(session.BookingID, session.TransactionID); stopped {
		s.logger.Info("Start: superseded active poll for booking id=%d", session.BookingID)
	}

	switch method {
	case domain.MethodBank:
		return s.startBank(ctx, session)
	case domain.MethodMobileWallet:
		return s.startWallet(ctx, session)
	default:
		return nil, ErrInvalidMethod
	}
}

// startBank запускает сценарий ручного банковского перевода
func (s *Service) startBank(ctx context.Context, session *domain.PaymentSession) (*models.StartPaymentResponse, error) {
	if err := s.sessions.SetMethod(ctx, session.TransactionID, domain.MethodBank, nil); err != nil {
		s.logger.Error("startBank: failed to set method for txn=%s: %v", session.TransactionID, err)
		return nil, fmt.Errorf("%w: startBank - failed to set method: %v", ErrInternal, err)
	}
	session.Method = domain.MethodBank

	if err := s.awaitConfirmation(ctx, session); err != nil {
		return nil, err
	}

	s.schedulePoll(session, s.payments.GetBankPaymentStatus)

	s.logger.Info("startBank: txn=%s awaiting bank transfer, amount=%d", session.TransactionID, session.Amount)

	return &models.StartPaymentResponse{
		TransactionID: session.TransactionID,
		BookingID:     session.BookingID,
		State:         string(session.State),
		Method:        string(session.Method),
		Amount:        session.Amount,
		BankInstructions: &models.BankInstructions{
			BankName:      s.bank.Name,
			AccountNumber: s.bank.AccountNumber,
			AccountHolder: s.bank.AccountHolder,
			Reference:     transferReference(session),
			Amount:        session.Amount,
			QRPayload:     BuildQRPayload(session),
		},
	}, nil
}

// startWallet запускает сценарий оплаты через мобильный кошелек
func (s *Service) startWallet(ctx context.Context, session *domain.PaymentSession) (*models.StartPaymentResponse, error) {
	created, err := s.payments.CreateWalletPayment(ctx, &paymentservice.CreateWalletPaymentRequest{
		Amount:        session.Amount,
		OrderInfo:     fmt.Sprintf("%s - %s - %s", session.FacilityName, session.SportType, session.Date.Format(domain.DateFormat)),
		TransactionID: session.TransactionID,
		BookingID:     session.BookingID,
		FacilityID:    session.FacilityID,
		SportType:     session.SportType,
		CourtID:       session.CourtID,
		StartTime:     session.StartTime().String(),
		EndTime:       session.EndTime().String(),
	})
	if err != nil {
		s.logger.Error("startWallet: wallet payment creation failed for txn=%s: %v", session.TransactionID, err)

		reason := "wallet payment creation failed"
		if uerr := s.sessions.UpdateState(ctx, session.TransactionID, domain.StateFailed, &reason); uerr != nil {
			s.logger.Error("startWallet: failed to mark txn=%s failed: %v", session.TransactionID, uerr)
		}
		if s.metrics != nil {
			s.metrics.IncPaymentSession(string(domain.StateFailed))
		}

		return nil, fmt.Errorf("%w: %v", ErrPaymentInit, err)
	}

	payURL := created.PayURL
	if err := s.sessions.SetMethod(ctx, session.TransactionID, domain.MethodMobileWallet, &payURL); err != nil {
		s.logger.Error("startWallet: failed to set method for txn=%s: %v", session.TransactionID, err)
		return nil, fmt.Errorf("%w: startWallet - failed to set method: %v", ErrInternal, err)
	}
	session.Method = domain.MethodMobileWallet
	session.PayURL = &payURL

	if err := s.awaitConfirmation(ctx, session); err != nil {
		return nil, err
	}

	s.schedulePoll(session, s.payments.GetWalletPaymentStatus)

	s.logger.Info("startWallet: txn=%s awaiting wallet confirmation, order=%s", session.TransactionID, created.OrderID)

	return &models.StartPaymentResponse{
		TransactionID: session.TransactionID,
		BookingID:     session.BookingID,
		State:         string(session.State),
		Method:        string(session.Method),
		Amount:        session.Amount,
		PayURL:        session.PayURL,
	}, nil
}

// awaitConfirmation переводит сессию в ожидание подтверждения
func (s *Service) awaitConfirmation(ctx context.Context, session *domain.PaymentSession) error {
	if err := s.sessions.UpdateState(ctx, session.TransactionID, domain.StateAwaitingConfirmation, nil); err != nil {
		s.logger.Error("awaitConfirmation: failed to update state for txn=%s: %v", session.TransactionID, err)
		return fmt.Errorf("%w: failed to update session state: %v", ErrInternal, err)
	}
	session.State = domain.StateAwaitingConfirmation

	if s.metrics != nil {
		s.metrics.IncPaymentSession(string(domain.StateAwaitingConfirmation))
	}
	return nil
}

// reissueSession создает новую сессию для повторной оплаты бронирования
func (s *Service) reissueSession(ctx context.Context, prev *domain.PaymentSession) (*domain.PaymentSession, error) {
	now := s.timeProvider.Now()

	next := &domain.PaymentSession{
		TransactionID: domain.NewTransactionID(now),
		BookingID:     prev.BookingID,
		UserID:        prev.UserID,
		Method:        domain.MethodPending,
		State:         domain.StateSelectingMethod,
		Amount:        prev.Amount,
		FacilityID:    prev.FacilityID,
		FacilityName:  prev.FacilityName,
		SportType:     prev.SportType,
		CourtID:       prev.CourtID,
		CourtName:     prev.CourtName,
		Date:          prev.Date,
		Slots:         prev.Slots,
	}

	created, err := s.sessions.Create(ctx, next)
	if err != nil {
		s.logger.Error("reissueSession: failed to create retry session for booking id=%d: %v", prev.BookingID, err)
		return nil, fmt.Errorf("%w: reissueSession - failed to create session: %v", ErrInternal, err)
	}

	s.logger.Info("reissueSession: booking id=%d retry, txn %s -> %s", prev.BookingID, prev.TransactionID, created.TransactionID)
	return created, nil
}

// Cancel отменяет ожидание подтверждения платежа.
// Опрос останавливается, сессия переходит в cancelled; финализация
// бронирования не выполняется.
func (s *Service) Cancel(ctx context.Context, transactionID string, userID int64) (*models.SessionResponse, error) {
	s.logger.Info("Cancel: user=%d, txn=%s", userID, transactionID)

	session, err := s.load(ctx, transactionID, userID, "Cancel")
	if err != nil {
		return nil, err
	}

	if session.IsTerminal() {
		s.logger.Warn("Cancel: txn=%s already in terminal state %s", transactionID, session.State)
		return nil, ErrSessionFinished
	}

	if stopped := s.registry.stop(session.BookingID, session.TransactionID); stopped {
		s.logger.Info("Cancel: stopped active poll for txn=%s", transactionID)
	}

	if err := s.sessions.UpdateState(ctx, transactionID, domain.StateCancelled, nil); err != nil {
		s.logger.Error("Cancel: failed to update state for txn=%s: %v", transactionID, err)
		return nil, fmt.Errorf("%w: Cancel - failed to update state: %v", ErrInternal, err)
	}
	session.State = domain.StateCancelled

	if s.metrics != nil {
		s.metrics.IncPaymentSession(string(domain.StateCancelled))
	}

	s.logger.Info("Cancel: txn=%s cancelled", transactionID)
	return models.FromDomainSession(session), nil
}

// Get возвращает состояние платежной сессии
func (s *Service) Get(ctx context.Context, transactionID string, userID int64) (*models.SessionResponse, error) {
	session, err := s.load(ctx, transactionID, userID, "Get")
	if err != nil {
		return nil, err
	}
	return models.FromDomainSession(session), nil
}

// ListByUser возвращает историю платежных сессий пользователя
func (s *Service) ListByUser(ctx context.Context, userID int64) (*models.SessionListResponse, error) {
	s.logger.Info("ListByUser: fetching payment sessions for user=%d", userID)

	sessions, err := s.sessions.ListByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("ListByUser: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: ListByUser - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSessionList(sessions), nil
}

// Shutdown останавливает все активные опросы и дожидается их завершения
func (s *Service) Shutdown() {
	s.logger.Info("Shutdown: stopping active payment polls")
	s.registry.stopAll()
}

// load загружает сессию и проверяет права доступа
func (s *Service) load(ctx context.Context, transactionID string, userID int64, op string) (*domain.PaymentSession, error) {
	session, err := s.sessions.GetByTransactionID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			s.logger.Warn("%s: payment session txn=%s not found", op, transactionID)
			return nil, ErrSessionNotFound
		}
		s.logger.Error("%s: repository error for txn=%s: %v", op, transactionID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if session.UserID != userID {
		s.logger.Warn("%s: access denied for user=%d to txn=%s", op, userID, transactionID)
		return nil, ErrAccessDenied
	}

	return session, nil
}
