package facilityservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SportBookingService/pkg/types"
)

func TestFacility_SlotLabels(t *testing.T) {
	f := &Facility{OpeningHours: "06:00 - 09:00"}

	labels, err := f.SlotLabels()
	require.NoError(t, err)

	// Обе границы включительно
	assert.Equal(t, []types.TimeString{"06:00", "07:00", "08:00", "09:00"}, labels)
}

func TestFacility_SlotLabels_SingleHour(t *testing.T) {
	f := &Facility{OpeningHours: "10:00 - 10:00"}

	labels, err := f.SlotLabels()
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"10:00"}, labels)
}

func TestFacility_SlotLabels_Invalid(t *testing.T) {
	for _, hours := range []string{"", "06:00", "06:00-22:00", "22:00 - 06:00", "ab:cd - 22:00"} {
		f := &Facility{OpeningHours: hours}
		_, err := f.SlotLabels()
		assert.ErrorIs(t, err, ErrInvalidResponse, "opening_hours %q", hours)
	}
}
