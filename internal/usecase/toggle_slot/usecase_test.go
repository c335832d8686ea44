package toggle_slot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SportBookingService/internal/domain"
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
	saved      int
}

func (s *fakeSelectionStore) Get(ctx context.Context, selectionID string) (*domain.Selection, error) {
	sel, ok := s.selections[selectionID]
	if !ok {
		return nil, selectionstore.ErrSelectionNotFound
	}
	return sel, nil
}

func (s *fakeSelectionStore) Save(ctx context.Context, selection *domain.Selection) error {
	s.saved++
	s.selections[selection.ID] = selection
	return nil
}

type fakeBookingClient struct {
	booked domain.BookedSlotIndex
}

func (c *fakeBookingClient) GetBookedSlots(ctx context.Context, facilityID int64, date time.Time) (domain.BookedSlotIndex, error) {
	return c.booked, nil
}

var testNow = time.Date(2025, time.June, 10, 14, 30, 0, 0, time.UTC)

func storedSelection() *domain.Selection {
	return &domain.Selection{
		ID:     "sel-1",
		UserID: 42,
		Facility: domain.Facility{
			ID:             7,
			Name:           "Sunrise Sport Center",
			PricePerHour:   120000,
			AvailableSlots: []types.TimeString{"13:00", "14:00", "15:00", "16:00", "17:00"},
		},
		Date: time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC),
	}
}

func newUseCaseForTest(store *fakeSelectionStore, booked domain.BookedSlotIndex) *UseCase {
	uc := NewUseCase(store, &fakeBookingClient{booked: booked}, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: testNow}
	return uc
}

func TestExecute_TogglesFreeSlot(t *testing.T) {
	store := &fakeSelectionStore{selections: map[string]*domain.Selection{"sel-1": storedSelection()}}
	uc := newUseCaseForTest(store, domain.BookedSlotIndex{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 42, SelectionID: "sel-1", Slot: "16:00"})
	require.NoError(t, err)

	assert.True(t, resp.Changed)
	assert.Equal(t, []types.TimeString{"16:00"}, resp.Slots)
	assert.Equal(t, int64(120000), resp.TotalPrice)
	assert.True(t, resp.CanSubmit)
	assert.Equal(t, 1, store.saved)

	// Повторное переключение снимает слот
	resp, err = uc.Execute(context.Background(), &Request{UserID: 42, SelectionID: "sel-1", Slot: "16:00"})
	require.NoError(t, err)

	assert.True(t, resp.Changed)
	assert.Empty(t, resp.Slots)
	assert.Equal(t, int64(0), resp.TotalPrice)
	assert.False(t, resp.CanSubmit)
}

func TestExecute_BookedSlotIsSilentNoOp(t *testing.T) {
	store := &fakeSelectionStore{selections: map[string]*domain.Selection{"sel-1": storedSelection()}}
	uc := newUseCaseForTest(store, domain.BookedSlotIndex{"16:00": true})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 42, SelectionID: "sel-1", Slot: "16:00"})
	require.NoError(t, err)

	assert.False(t, resp.Changed)
	assert.Empty(t, resp.Slots)
	// Выборка не изменилась, в хранилище ничего не пишем
	assert.Equal(t, 0, store.saved)
}

func TestExecute_PastSlotIsSilentNoOp(t *testing.T) {
	store := &fakeSelectionStore{selections: map[string]*domain.Selection{"sel-1": storedSelection()}}
	uc := newUseCaseForTest(store, domain.BookedSlotIndex{})

	// now = 14:30, слот 14:00 уже недоступен
	resp, err := uc.Execute(context.Background(), &Request{UserID: 42, SelectionID: "sel-1", Slot: "14:00"})
	require.NoError(t, err)

	assert.False(t, resp.Changed)
	assert.Equal(t, 0, store.saved)
}

func TestExecute_Errors(t *testing.T) {
	t.Run("selection not found", func(t *testing.T) {
		uc := newUseCaseForTest(&fakeSelectionStore{selections: map[string]*domain.Selection{}}, nil)
		_, err := uc.Execute(context.Background(), &Request{UserID: 42, SelectionID: "missing", Slot: "16:00"})
		assert.ErrorIs(t, err, ErrSelectionNotFound)
	})

	t.Run("access denied", func(t *testing.T) {
		store := &fakeSelectionStore{selections: map[string]*domain.Selection{"sel-1": storedSelection()}}
		uc := newUseCaseForTest(store, nil)
		_, err := uc.Execute(context.Background(), &Request{UserID: 99, SelectionID: "sel-1", Slot: "16:00"})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("slot outside facility schedule", func(t *testing.T) {
		store := &fakeSelectionStore{selections: map[string]*domain.Selection{"sel-1": storedSelection()}}
		uc := newUseCaseForTest(store, domain.BookedSlotIndex{})
		_, err := uc.Execute(context.Background(), &Request{UserID: 42, SelectionID: "sel-1", Slot: "23:00"})
		assert.ErrorIs(t, err, ErrUnknownSlot)
	})

	t.Run("invalid slot label", func(t *testing.T) {
		uc := newUseCaseForTest(&fakeSelectionStore{}, nil)
		_, err := uc.Execute(context.Background(), &Request{UserID: 42, SelectionID: "sel-1", Slot: "4pm"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
