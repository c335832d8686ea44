package domain

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransactionID(t *testing.T) {
	now := time.Date(2025, time.June, 10, 14, 30, 0, 0, time.UTC)

	id := NewTransactionID(now)

	require.True(t, strings.HasPrefix(id, TransactionIDPrefix))

	// После префикса идут unix-миллисекунды, затем 8 случайных символов
	rest := strings.TrimPrefix(id, TransactionIDPrefix)
	require.Len(t, rest, len(strconv.FormatInt(now.UnixMilli(), 10))+8)

	millis, err := strconv.ParseInt(rest[:len(rest)-8], 10, 64)
	require.NoError(t, err)
	assert.Equal(t, now.UnixMilli(), millis)
}

func TestNewTransactionID_UniqueWithinMillisecond(t *testing.T) {
	now := time.Now()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewTransactionID(now)
		assert.False(t, seen[id], "duplicate transaction id: %s", id)
		seen[id] = true
	}
}
