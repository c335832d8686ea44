package get_slot_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SportBookingService/internal/domain"
	facilityClient "github.com/m04kA/SMC-SportBookingService/internal/integrations/facilityservice"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time { return p.now }

type fakeFacilityClient struct {
	facility *facilityClient.Facility
	err      error
}

func (c *fakeFacilityClient) GetFacility(ctx context.Context, facilityID int64) (*facilityClient.Facility, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.facility, nil
}

type fakeBookingClient struct {
	booked domain.BookedSlotIndex
	err    error
}

func (c *fakeBookingClient) GetBookedSlots(ctx context.Context, facilityID int64, date time.Time) (domain.BookedSlotIndex, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.booked, nil
}

func newUseCaseForTest(fc *fakeFacilityClient, bc *fakeBookingClient, now time.Time) *UseCase {
	uc := NewUseCase(fc, bc, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc
}

func TestExecute_ClassifiesGrid(t *testing.T) {
	now := time.Date(2025, time.June, 10, 14, 30, 0, 0, time.UTC)
	today := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)

	fc := &fakeFacilityClient{facility: &facilityClient.Facility{
		ID:           7,
		Name:         "Sunrise Sport Center",
		SportType:    "badminton",
		Location:     "District 1",
		PricePerHour: 120000,
		OpeningHours: "13:00 - 16:00",
	}}
	bc := &fakeBookingClient{booked: domain.BookedSlotIndex{"16:00": true}}

	resp, err := newUseCaseForTest(fc, bc, now).Execute(context.Background(), &Request{FacilityID: 7, Date: today})
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.FacilityID)
	assert.Equal(t, "Sunrise Sport Center", resp.FacilityName)
	assert.Equal(t, []Slot{
		{Time: "13:00", Status: "past"},
		{Time: "14:00", Status: "past"}, // текущий час уже недоступен
		{Time: "15:00", Status: "available"},
		{Time: "16:00", Status: "booked"},
	}, resp.Slots)
}

func TestExecute_FutureDateHasNoPastSlots(t *testing.T) {
	now := time.Date(2025, time.June, 10, 14, 30, 0, 0, time.UTC)
	tomorrow := time.Date(2025, time.June, 11, 0, 0, 0, 0, time.UTC)

	fc := &fakeFacilityClient{facility: &facilityClient.Facility{ID: 7, OpeningHours: "08:00 - 10:00"}}
	bc := &fakeBookingClient{booked: domain.BookedSlotIndex{}}

	resp, err := newUseCaseForTest(fc, bc, now).Execute(context.Background(), &Request{FacilityID: 7, Date: tomorrow})
	require.NoError(t, err)

	for _, slot := range resp.Slots {
		assert.Equal(t, "available", slot.Status)
	}
}

func TestExecute_Errors(t *testing.T) {
	now := time.Date(2025, time.June, 10, 14, 30, 0, 0, time.UTC)
	today := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)

	t.Run("invalid facility id", func(t *testing.T) {
		uc := newUseCaseForTest(&fakeFacilityClient{}, &fakeBookingClient{}, now)
		_, err := uc.Execute(context.Background(), &Request{FacilityID: 0, Date: today})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("date in past", func(t *testing.T) {
		uc := newUseCaseForTest(&fakeFacilityClient{}, &fakeBookingClient{}, now)
		_, err := uc.Execute(context.Background(), &Request{FacilityID: 7, Date: today.AddDate(0, 0, -1)})
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("facility not found", func(t *testing.T) {
		uc := newUseCaseForTest(&fakeFacilityClient{err: facilityClient.ErrFacilityNotFound}, &fakeBookingClient{}, now)
		_, err := uc.Execute(context.Background(), &Request{FacilityID: 7, Date: today})
		assert.ErrorIs(t, err, ErrFacilityNotFound)
	})

	t.Run("booking api failure", func(t *testing.T) {
		fc := &fakeFacilityClient{facility: &facilityClient.Facility{ID: 7, OpeningHours: "08:00 - 10:00"}}
		bc := &fakeBookingClient{err: errors.New("connection refused")}
		_, err := newUseCaseForTest(fc, bc, now).Execute(context.Background(), &Request{FacilityID: 7, Date: today})
		assert.ErrorIs(t, err, ErrInternal)
	})
}
