package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("08:00")
	require.NoError(t, err)
	assert.Equal(t, TimeString("08:00"), ts)

	for _, raw := range []string{"", "8:00", "25:00", "08:60", "08-00", "abcde"} {
		_, err := NewTimeStringFromString(raw)
		assert.ErrorIs(t, err, ErrInvalidTimeString, "input %q", raw)
	}
}

func TestTimeString_Components(t *testing.T) {
	ts := TimeString("14:45")
	assert.Equal(t, 14, ts.Hour())
	assert.Equal(t, 45, ts.Minute())

	assert.Equal(t, -1, TimeString("bad").Hour())
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("08:00").IsBefore("09:00"))
	assert.True(t, TimeString("09:30").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	next, err := TimeString("08:00").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:00"), next)

	// Перенос через полночь
	wrapped, err := TimeString("23:30").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:30"), wrapped)
}
