package set_selection_date

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
			PricePerHour:   120000,
			AvailableSlots: []types.TimeString{"13:00", "14:00", "15:00", "16:00", "17:00"},
		},
		Date:  time.Date(2025, time.June, 12, 0, 0, 0, 0, time.UTC),
		Slots: []types.TimeString{"13:00", "16:00", "17:00"},
	}
}

func newUseCaseForTest(store *fakeSelectionStore, booked domain.BookedSlotIndex) *UseCase {
	uc := NewUseCase(store, &fakeBookingClient{booked: booked}, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: testNow}
	return uc
}

func TestExecute_DropsUnavailableSlots(t *testing.T) {
	store := &fakeSelectionStore{selections: map[string]*domain.Selection{"sel-1": storedSelection()}}
	// На новую дату 16:00 занят
	uc := newUseCaseForTest(store, domain.BookedSlotIndex{"16:00": true})

	newDate := time.Date(2025, time.June, 11, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{UserID: 42, SelectionID: "sel-1", Date: newDate})
	require.NoError(t, err)

	assert.Equal(t, newDate, resp.Date)
	assert.Equal(t, []types.TimeString{"16:00"}, resp.DroppedSlots)
	assert.Equal(t, []types.TimeString{"13:00", "17:00"}, resp.Slots)
	assert.Equal(t, int64(240000), resp.TotalPrice)
	assert.True(t, resp.CanSubmit)
	assert.Equal(t, 1, store.saved)
}

func TestExecute_SwitchToTodayDropsPastSlots(t *testing.T) {
	store := &fakeSelectionStore{selections: map[string]*domain.Selection{"sel-1": storedSelection()}}
	uc := newUseCaseForTest(store, domain.BookedSlotIndex{})

	// now = 14:30, слот 13:00 на сегодня уже прошел
	today := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{UserID: 42, SelectionID: "sel-1", Date: today})
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"13:00"}, resp.DroppedSlots)
	assert.Equal(t, []types.TimeString{"16:00", "17:00"}, resp.Slots)
}

func TestExecute_AllSlotsValid(t *testing.T) {
	store := &fakeSelectionStore{selections: map[string]*domain.Selection{"sel-1": storedSelection()}}
	uc := newUseCaseForTest(store, domain.BookedSlotIndex{})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:      42,
		SelectionID: "sel-1",
		Date:        time.Date(2025, time.June, 13, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Empty(t, resp.DroppedSlots)
	assert.Equal(t, []types.TimeString{"13:00", "16:00", "17:00"}, resp.Slots)
}

func TestExecute_Errors(t *testing.T) {
	t.Run("date in past", func(t *testing.T) {
		store := &fakeSelectionStore{selections: map[string]*domain.Selection{"sel-1": storedSelection()}}
		uc := newUseCaseForTest(store, nil)
		_, err := uc.Execute(context.Background(), &Request{
			UserID:      42,
			SelectionID: "sel-1",
			Date:        testNow.AddDate(0, 0, -1),
		})
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("selection not found", func(t *testing.T) {
		uc := newUseCaseForTest(&fakeSelectionStore{selections: map[string]*domain.Selection{}}, nil)
		_, err := uc.Execute(context.Background(), &Request{UserID: 42, SelectionID: "missing", Date: testNow})
		assert.ErrorIs(t, err, ErrSelectionNotFound)
	})

	t.Run("access denied", func(t *testing.T) {
		store := &fakeSelectionStore{selections: map[string]*domain.Selection{"sel-1": storedSelection()}}
		uc := newUseCaseForTest(store, nil)
		_, err := uc.Execute(context.Background(), &Request{UserID: 99, SelectionID: "sel-1", Date: testNow})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}
