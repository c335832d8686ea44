package submit_booking

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SportBookingService/internal/domain"
	bookingClient "github.com/m04kA/SMC-SportBookingService/internal/integrations/bookingservice"
	"github.com/m04kA/SMC-SportBookingService/internal/infra/selectionstore"
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

type fakeSelectionStore struct {
	selections map[string]*domain.Selection
	deleted    []string
	getErr     error
}

func (s *fakeSelectionStore) Get(ctx context.Context, selectionID string) (*domain.Selection, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	sel, ok := s.selections[selectionID]
	if !ok {
		return nil, selectionstore.ErrSelectionNotFound
	}
	return sel, nil
}

func (s *fakeSelectionStore) Delete(ctx context.Context, selectionID string) error {
	s.deleted = append(s.deleted, selectionID)
	return nil
}

type fakeBookingClient struct {
	mu       sync.Mutex
	requests []*bookingClient.CreateBookingRequest
	err      error
	// blockCh, если задан, держит CreateBooking до закрытия канала
	blockCh chan struct{}
}

func (c *fakeBookingClient) CreateBooking(ctx context.Context, req *bookingClient.CreateBookingRequest) (*bookingClient.CreateBookingResponse, error) {
	if c.blockCh != nil {
		<-c.blockCh
	}
	c.mu.Lock()
	c.requests = append(c.requests, req)
	c.mu.Unlock()
	if c.err != nil {
		return nil, c.err
	}
	return &bookingClient.CreateBookingResponse{BookingID: 555}, nil
}

type fakeSessionRepo struct {
	created []*domain.PaymentSession
	err     error
}

func (r *fakeSessionRepo) Create(ctx context.Context, session *domain.PaymentSession) (*domain.PaymentSession, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.created = append(r.created, session)
	return session, nil
}

var testNow = time.Date(2025, time.June, 10, 14, 30, 0, 0, time.UTC)

func storedSelection() *domain.Selection {
	return &domain.Selection{
		ID:     "sel-1",
		UserID: 42,
		Facility: domain.Facility{
			ID:           7,
			Name:         "Sunrise Sport Center",
			SportType:    "badminton",
			CourtID:      3,
			CourtName:    "Court A",
			Location:     "District 1",
			PricePerHour: 120000,
		},
		Date:  time.Date(2025, time.June, 11, 0, 0, 0, 0, time.UTC),
		Slots: []types.TimeString{"17:00", "16:00"},
	}
}

func newUseCaseForTest(store *fakeSelectionStore, bc *fakeBookingClient, repo *fakeSessionRepo) *UseCase {
	uc := NewUseCase(store, bc, repo, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: testNow}
	return uc
}

func TestExecute_CreatesBookingAndSession(t *testing.T) {
	store := &fakeSelectionStore{selections: map[string]*domain.Selection{"sel-1": storedSelection()}}
	bc := &fakeBookingClient{}
	repo := &fakeSessionRepo{}

	resp, err := newUseCaseForTest(store, bc, repo).Execute(context.Background(), &Request{UserID: 42, SelectionID: "sel-1"})
	require.NoError(t, err)

	assert.Equal(t, int64(555), resp.BookingID)
	assert.Equal(t, "pending_payment", resp.Status)
	assert.Equal(t, int64(240000), resp.TotalPrice)
	assert.True(t, strings.HasPrefix(resp.TransactionID, domain.TransactionIDPrefix))

	// Запрос к Booking API: границы интервала и статус
	require.Len(t, bc.requests, 1)
	created := bc.requests[0]
	assert.Equal(t, "16:00", created.StartTime)
	assert.Equal(t, "18:00", created.EndTime)
	assert.Equal(t, []string{"17:00", "16:00"}, created.TimeSlots)
	assert.Equal(t, "pending_payment", created.Status)
	assert.Equal(t, resp.TransactionID, created.TransactionID)

	// Платежная сессия создана в состоянии выбора способа оплаты
	require.Len(t, repo.created, 1)
	session := repo.created[0]
	assert.Equal(t, domain.StateSelectingMethod, session.State)
	assert.Equal(t, domain.MethodPending, session.Method)
	assert.Equal(t, int64(555), session.BookingID)
	assert.Equal(t, resp.TransactionID, session.TransactionID)

	// Выборка удалена после успешной отправки
	assert.Equal(t, []string{"sel-1"}, store.deleted)
}

func TestExecute_BookingFailureBlocksPayment(t *testing.T) {
	store := &fakeSelectionStore{selections: map[string]*domain.Selection{"sel-1": storedSelection()}}
	bc := &fakeBookingClient{err: errors.New("slot already taken")}
	repo := &fakeSessionRepo{}

	_, err := newUseCaseForTest(store, bc, repo).Execute(context.Background(), &Request{UserID: 42, SelectionID: "sel-1"})

	assert.ErrorIs(t, err, ErrBookingCreation)
	// Платежная сессия не заводится, выборка не удаляется
	assert.Empty(t, repo.created)
	assert.Empty(t, store.deleted)
}

func TestExecute_DoubleSubmitGuard(t *testing.T) {
	store := &fakeSelectionStore{selections: map[string]*domain.Selection{"sel-1": storedSelection()}}
	bc := &fakeBookingClient{blockCh: make(chan struct{})}
	repo := &fakeSessionRepo{}
	uc := newUseCaseForTest(store, bc, repo)

	firstDone := make(chan error, 1)
	go func() {
		_, err := uc.Execute(context.Background(), &Request{UserID: 42, SelectionID: "sel-1"})
		firstDone <- err
	}()

	// Ждем, пока первая отправка займет guard и повиснет на Booking API
	require.Eventually(t, func() bool {
		return !uc.guard.acquire("sel-1")
	}, time.Second, 5*time.Millisecond)

	_, err := uc.Execute(context.Background(), &Request{UserID: 42, SelectionID: "sel-1"})
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	close(bc.blockCh)
	require.NoError(t, <-firstDone)

	// После завершения guard свободен, ровно одно бронирование создано
	assert.Len(t, bc.requests, 1)
	assert.True(t, uc.guard.acquire("sel-1"))
}

func TestExecute_Errors(t *testing.T) {
	t.Run("selection not found", func(t *testing.T) {
		uc := newUseCaseForTest(&fakeSelectionStore{selections: map[string]*domain.Selection{}}, &fakeBookingClient{}, &fakeSessionRepo{})
		_, err := uc.Execute(context.Background(), &Request{UserID: 42, SelectionID: "missing"})
		assert.ErrorIs(t, err, ErrSelectionNotFound)
	})

	t.Run("access denied", func(t *testing.T) {
		store := &fakeSelectionStore{selections: map[string]*domain.Selection{"sel-1": storedSelection()}}
		uc := newUseCaseForTest(store, &fakeBookingClient{}, &fakeSessionRepo{})
		_, err := uc.Execute(context.Background(), &Request{UserID: 99, SelectionID: "sel-1"})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("nothing selected", func(t *testing.T) {
		sel := storedSelection()
		sel.Slots = nil
		store := &fakeSelectionStore{selections: map[string]*domain.Selection{"sel-1": sel}}
		uc := newUseCaseForTest(store, &fakeBookingClient{}, &fakeSessionRepo{})
		_, err := uc.Execute(context.Background(), &Request{UserID: 42, SelectionID: "sel-1"})
		assert.ErrorIs(t, err, ErrNothingSelected)
	})

	t.Run("date in past", func(t *testing.T) {
		sel := storedSelection()
		sel.Date = testNow.AddDate(0, 0, -1)
		store := &fakeSelectionStore{selections: map[string]*domain.Selection{"sel-1": sel}}
		uc := newUseCaseForTest(store, &fakeBookingClient{}, &fakeSessionRepo{})
		_, err := uc.Execute(context.Background(), &Request{UserID: 42, SelectionID: "sel-1"})
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("empty selection id", func(t *testing.T) {
		uc := newUseCaseForTest(&fakeSelectionStore{}, &fakeBookingClient{}, &fakeSessionRepo{})
		_, err := uc.Execute(context.Background(), &Request{UserID: 42, SelectionID: ""})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
