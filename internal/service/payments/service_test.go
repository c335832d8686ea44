package payments

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SportBookingService/internal/domain"
	sessionRepo "github.com/m04kA/SMC-SportBookingService/internal/infra/storage/paymentsession"
	"github.com/m04kA/SMC-SportBookingService/internal/integrations/paymentservice"
	"github.com/m04kA/SMC-SportBookingService/internal/service/payments/models"
	"github.com/m04kA/SMC-SportBookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time { return p.now }

// fakeSessions потокобезопасный in-memory репозиторий: к нему обращаются
// и тест, и горутины опроса.
type fakeSessions struct {
	mu       sync.Mutex
	sessions map[string]*domain.PaymentSession
}

func newFakeSessions(seed ...*domain.PaymentSession) *fakeSessions {
	r := &fakeSessions{sessions: make(map[string]*domain.PaymentSession)}
	for _, s := range seed {
		cp := *s
		r.sessions[s.TransactionID] = &cp
	}
	return r
}

func (r *fakeSessions) Create(ctx context.Context, session *domain.PaymentSession) (*domain.PaymentSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *session
	r.sessions[session.TransactionID] = &cp
	out := cp
	return &out, nil
}

func (r *fakeSessions) GetByTransactionID(ctx context.Context, transactionID string) (*domain.PaymentSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[transactionID]
	if !ok {
		return nil, sessionRepo.ErrSessionNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSessions) ListByUserID(ctx context.Context, userID int64) ([]*domain.PaymentSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.PaymentSession
	for _, s := range r.sessions {
		if s.UserID == userID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeSessions) UpdateState(ctx context.Context, transactionID string, state domain.PaymentState, failureReason *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[transactionID]
	if !ok {
		return sessionRepo.ErrSessionNotFound
	}
	s.State = state
	s.FailureReason = failureReason
	return nil
}

func (r *fakeSessions) SetMethod(ctx context.Context, transactionID string, method domain.PaymentMethod, payURL *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[transactionID]
	if !ok {
		return sessionRepo.ErrSessionNotFound
	}
	s.Method = method
	s.PayURL = payURL
	return nil
}

func (r *fakeSessions) SetFinalizeWarning(ctx context.Context, transactionID string, warning string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[transactionID]
	if !ok {
		return sessionRepo.ErrSessionNotFound
	}
	s.FinalizeWarning = &warning
	return nil
}

func (r *fakeSessions) state(t *testing.T, transactionID string) domain.PaymentState {
	t.Helper()
	s, err := r.GetByTransactionID(context.Background(), transactionID)
	require.NoError(t, err)
	return s.State
}

// fakePayments скриптуемый Payment API: статусы выдаются по очереди,
// последний повторяется до бесконечности.
type fakePayments struct {
	mu       sync.Mutex
	statuses []string
	calls    int

	walletErr error
	payURL    string
}

func (c *fakePayments) CreateWalletPayment(ctx context.Context, req *paymentservice.CreateWalletPaymentRequest) (*paymentservice.CreateWalletPaymentResponse, error) {
	if c.walletErr != nil {
		return nil, c.walletErr
	}
	return &paymentservice.CreateWalletPaymentResponse{
		Success: true,
		PayURL:  c.payURL,
		OrderID: "order-1",
	}, nil
}

func (c *fakePayments) nextStatus() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	if len(c.statuses) == 0 {
		return paymentservice.StatusPending, nil
	}
	idx := c.calls - 1
	if idx >= len(c.statuses) {
		idx = len(c.statuses) - 1
	}
	return c.statuses[idx], nil
}

func (c *fakePayments) GetBankPaymentStatus(ctx context.Context, transactionID string) (string, error) {
	return c.nextStatus()
}

func (c *fakePayments) GetWalletPaymentStatus(ctx context.Context, transactionID string) (string, error) {
	return c.nextStatus()
}

func (c *fakePayments) statusCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

type fakeBookings struct {
	mu        sync.Mutex
	finalized []int64
	err       error
}

func (c *fakeBookings) FinalizeBooking(ctx context.Context, bookingID int64, status domain.BookingStatus, paymentStatus domain.BookingPaymentStatus) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	if status != domain.StatusConfirmed || paymentStatus != domain.PaymentStatusPaid {
		return fmt.Errorf("unexpected finalize args: %s/%s", status, paymentStatus)
	}
	c.finalized = append(c.finalized, bookingID)
	return nil
}

func (c *fakeBookings) finalizedIDs() []int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]int64(nil), c.finalized...)
}

var testBank = BankDetails{
	Name:          "Vietcombank",
	AccountNumber: "1234567890",
	AccountHolder: "SPORT FACILITY CO LTD",
}

// fastPolling короткие интервалы, чтобы тесты не ждали реальных секунд
var fastPolling = PollingConfig{
	Interval:     5 * time.Millisecond,
	InitialDelay: time.Millisecond,
	MaxAttempts:  0,
}

func seedSession() *domain.PaymentSession {
	return &domain.PaymentSession{
		TransactionID: "TXN1749565800000abcdef12",
		BookingID:     555,
		UserID:        42,
		Method:        domain.MethodPending,
		State:         domain.StateSelectingMethod,
		Amount:        240000,
		FacilityID:    7,
		FacilityName:  "Sunrise Sport Center",
		SportType:     "badminton",
		CourtID:       3,
		CourtName:     "Court A",
		Date:          time.Date(2025, time.June, 11, 0, 0, 0, 0, time.UTC),
		Slots:         []types.TimeString{"16:00", "17:00"},
	}
}

func newServiceForTest(sessions *fakeSessions, payments *fakePayments, bookings *fakeBookings) *Service {
	svc := NewService(sessions, payments, bookings, testBank, fastPolling, nopLogger{}, nil)
	svc.timeProvider = &fakeTimeProvider{now: time.Date(2025, time.June, 10, 15, 0, 0, 0, time.UTC)}
	return svc
}

func TestTransferReference(t *testing.T) {
	ref := transferReference(seedSession())

	assert.Equal(t, "TXN1749565800000abcdef12 Sunrise Sport Center Court A", ref)
	assert.Contains(t, ref, "Sunrise Sport Center")
	assert.Contains(t, ref, "Court A")
}

func TestBuildQRPayload(t *testing.T) {
	payload := BuildQRPayload(seedSession())

	assert.Equal(t,
		"TXN1749565800000abcdef12|Sunrise Sport Center|badminton|3|2025-06-11|16:00,17:00|240000",
		payload)
}

func TestStart_BankTransferSuccess(t *testing.T) {
	session := seedSession()
	sessions := newFakeSessions(session)
	payments := &fakePayments{statuses: []string{paymentservice.StatusPending, paymentservice.StatusSuccess}}
	bookings := &fakeBookings{}
	svc := newServiceForTest(sessions, payments, bookings)
	defer svc.Shutdown()

	resp, err := svc.Start(context.Background(), &models.StartPaymentRequest{
		UserID:        42,
		TransactionID: session.TransactionID,
		Method:        "bank",
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StateAwaitingConfirmation), resp.State)
	require.NotNil(t, resp.BankInstructions)
	assert.Equal(t, "Vietcombank", resp.BankInstructions.BankName)
	// Назначение платежа: транзакция + сооружение + корт
	assert.Equal(t, "TXN1749565800000abcdef12 Sunrise Sport Center Court A", resp.BankInstructions.Reference)
	assert.Equal(t, BuildQRPayload(session), resp.BankInstructions.QRPayload)

	// Опрос доводит сессию до succeeded и финализирует бронирование
	require.Eventually(t, func() bool {
		return sessions.state(t, session.TransactionID) == domain.StateSucceeded
	}, 2*time.Second, 5*time.Millisecond)

	require.Eventually(t, func() bool {
		return len(bookings.finalizedIDs()) == 1
	}, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, []int64{555}, bookings.finalizedIDs())
}

func TestStart_WalletSuccess(t *testing.T) {
	session := seedSession()
	sessions := newFakeSessions(session)
	payments := &fakePayments{
		statuses: []string{paymentservice.StatusSuccess},
		payURL:   "https://wallet.example/pay/order-1",
	}
	bookings := &fakeBookings{}
	svc := newServiceForTest(sessions, payments, bookings)
	defer svc.Shutdown()

	resp, err := svc.Start(context.Background(), &models.StartPaymentRequest{
		UserID:        42,
		TransactionID: session.TransactionID,
		Method:        "mobileWallet",
	})
	require.NoError(t, err)

	assert.Nil(t, resp.BankInstructions)
	require.NotNil(t, resp.PayURL)
	assert.Equal(t, "https://wallet.example/pay/order-1", *resp.PayURL)

	require.Eventually(t, func() bool {
		return sessions.state(t, session.TransactionID) == domain.StateSucceeded
	}, 2*time.Second, 5*time.Millisecond)
}

func TestStart_WalletCreationFailure(t *testing.T) {
	session := seedSession()
	sessions := newFakeSessions(session)
	payments := &fakePayments{walletErr: errors.New("gateway unavailable")}
	svc := newServiceForTest(sessions, payments, &fakeBookings{})
	defer svc.Shutdown()

	_, err := svc.Start(context.Background(), &models.StartPaymentRequest{
		UserID:        42,
		TransactionID: session.TransactionID,
		Method:        "mobileWallet",
	})

	assert.ErrorIs(t, err, ErrPaymentInit)
	assert.Equal(t, domain.StateFailed, sessions.state(t, session.TransactionID))
}

func TestStart_ProviderRejection(t *testing.T) {
	session := seedSession()
	sessions := newFakeSessions(session)
	payments := &fakePayments{statuses: []string{paymentservice.StatusFailed}}
	bookings := &fakeBookings{}
	svc := newServiceForTest(sessions, payments, bookings)
	defer svc.Shutdown()

	_, err := svc.Start(context.Background(), &models.StartPaymentRequest{
		UserID:        42,
		TransactionID: session.TransactionID,
		Method:        "bank",
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return sessions.state(t, session.TransactionID) == domain.StateFailed
	}, 2*time.Second, 5*time.Millisecond)

	// Неуспешный платеж не финализирует бронирование
	assert.Empty(t, bookings.finalizedIDs())

	s, err := sessions.GetByTransactionID(context.Background(), session.TransactionID)
	require.NoError(t, err)
	require.NotNil(t, s.FailureReason)
	assert.Equal(t, "payment rejected by provider", *s.FailureReason)
}

func TestStart_MaxAttemptsExhausted(t *testing.T) {
	session := seedSession()
	sessions := newFakeSessions(session)
	payments := &fakePayments{} // всегда pending
	svc := newServiceForTest(sessions, payments, &fakeBookings{})
	svc.polling.MaxAttempts = 3
	defer svc.Shutdown()

	_, err := svc.Start(context.Background(), &models.StartPaymentRequest{
		UserID:        42,
		TransactionID: session.TransactionID,
		Method:        "bank",
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return sessions.state(t, session.TransactionID) == domain.StateFailed
	}, 2*time.Second, 5*time.Millisecond)

	s, err := sessions.GetByTransactionID(context.Background(), session.TransactionID)
	require.NoError(t, err)
	require.NotNil(t, s.FailureReason)
	assert.Equal(t, "payment confirmation timed out", *s.FailureReason)
	assert.Equal(t, 3, payments.statusCalls())
}

func TestStart_SupersedesActivePoll(t *testing.T) {
	session := seedSession()
	sessions := newFakeSessions(session)
	payments := &fakePayments{} // pending, опрос не завершается сам
	svc := newServiceForTest(sessions, payments, &fakeBookings{})
	defer svc.Shutdown()

	_, err := svc.Start(context.Background(), &models.StartPaymentRequest{
		UserID:        42,
		TransactionID: session.TransactionID,
		Method:        "bank",
	})
	require.NoError(t, err)

	first := svc.registry.pollFor(t, session.BookingID)

	// Повторный запуск того же бронирования вытесняет предыдущий опрос
	_, err = svc.Start(context.Background(), &models.StartPaymentRequest{
		UserID:        42,
		TransactionID: session.TransactionID,
		Method:        "mobileWallet",
	})
	require.NoError(t, err)

	select {
	case <-first.done:
	case <-time.After(2 * time.Second):
		t.Fatal("superseded poll did not stop")
	}

	second := svc.registry.pollFor(t, session.BookingID)
	assert.NotSame(t, first, second)
}

// pollFor возвращает активный опрос бронирования (test helper)
func (r *pollRegistry) pollFor(t *testing.T, bookingID int64) *activePoll {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	poll, ok := r.polls[bookingID]
	require.True(t, ok, "no active poll for booking %d", bookingID)
	return poll
}

func TestCancel_StopsPollAndFreezesSession(t *testing.T) {
	session := seedSession()
	sessions := newFakeSessions(session)
	payments := &fakePayments{} // pending
	bookings := &fakeBookings{}
	svc := newServiceForTest(sessions, payments, bookings)
	defer svc.Shutdown()

	_, err := svc.Start(context.Background(), &models.StartPaymentRequest{
		UserID:        42,
		TransactionID: session.TransactionID,
		Method:        "bank",
	})
	require.NoError(t, err)

	poll := svc.registry.pollFor(t, session.BookingID)

	resp, err := svc.Cancel(context.Background(), session.TransactionID, 42)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StateCancelled), resp.State)

	select {
	case <-poll.done:
	case <-time.After(2 * time.Second):
		t.Fatal("poll did not stop after cancel")
	}

	// Сессия остается cancelled, финализации не было
	calls := payments.statusCalls()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, calls, payments.statusCalls(), "poll kept running after cancel")
	assert.Equal(t, domain.StateCancelled, sessions.state(t, session.TransactionID))
	assert.Empty(t, bookings.finalizedIDs())
}

func TestCancel_TerminalSession(t *testing.T) {
	session := seedSession()
	session.State = domain.StateSucceeded
	sessions := newFakeSessions(session)
	svc := newServiceForTest(sessions, &fakePayments{}, &fakeBookings{})

	_, err := svc.Cancel(context.Background(), session.TransactionID, 42)
	assert.ErrorIs(t, err, ErrSessionFinished)
}

func TestStart_RetryAfterTerminalReissuesSession(t *testing.T) {
	session := seedSession()
	session.State = domain.StateFailed
	sessions := newFakeSessions(session)
	payments := &fakePayments{statuses: []string{paymentservice.StatusSuccess}}
	bookings := &fakeBookings{}
	svc := newServiceForTest(sessions, payments, bookings)
	defer svc.Shutdown()

	resp, err := svc.Start(context.Background(), &models.StartPaymentRequest{
		UserID:        42,
		TransactionID: session.TransactionID,
		Method:        "bank",
	})
	require.NoError(t, err)

	// Новая сессия с новой транзакцией для того же бронирования
	assert.NotEqual(t, session.TransactionID, resp.TransactionID)
	assert.Equal(t, session.BookingID, resp.BookingID)

	// Старая сессия остается failed
	assert.Equal(t, domain.StateFailed, sessions.state(t, session.TransactionID))

	require.Eventually(t, func() bool {
		return sessions.state(t, resp.TransactionID) == domain.StateSucceeded
	}, 2*time.Second, 5*time.Millisecond)
}

func TestFinalizeFailureKeepsSessionSucceeded(t *testing.T) {
	session := seedSession()
	sessions := newFakeSessions(session)
	payments := &fakePayments{statuses: []string{paymentservice.StatusSuccess}}
	bookings := &fakeBookings{err: errors.New("booking api down")}
	svc := newServiceForTest(sessions, payments, bookings)
	defer svc.Shutdown()

	_, err := svc.Start(context.Background(), &models.StartPaymentRequest{
		UserID:        42,
		TransactionID: session.TransactionID,
		Method:        "bank",
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		s, err := sessions.GetByTransactionID(context.Background(), session.TransactionID)
		return err == nil && s.State == domain.StateSucceeded && s.FinalizeWarning != nil
	}, 2*time.Second, 5*time.Millisecond)

	s, err := sessions.GetByTransactionID(context.Background(), session.TransactionID)
	require.NoError(t, err)
	assert.Contains(t, *s.FinalizeWarning, "booking finalization failed")
}

func TestStartAndGet_Errors(t *testing.T) {
	session := seedSession()
	sessions := newFakeSessions(session)
	svc := newServiceForTest(sessions, &fakePayments{}, &fakeBookings{})

	t.Run("unknown method", func(t *testing.T) {
		_, err := svc.Start(context.Background(), &models.StartPaymentRequest{
			UserID: 42, TransactionID: session.TransactionID, Method: "cash",
		})
		assert.ErrorIs(t, err, ErrInvalidMethod)
	})

	t.Run("session not found", func(t *testing.T) {
		_, err := svc.Get(context.Background(), "TXNmissing", 42)
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("access denied", func(t *testing.T) {
		_, err := svc.Get(context.Background(), session.TransactionID, 99)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}
