package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewTransactionID builds a client-generated transaction id:
// "TXN" + unix milliseconds + short random suffix. The timestamp keeps ids
// roughly sortable, the suffix guards against same-millisecond collisions.
func NewTransactionID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s%d%s", TransactionIDPrefix, now.UnixMilli(), suffix)
}
