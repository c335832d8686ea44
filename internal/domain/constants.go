package domain

// Slot granularity: every bookable slot is exactly one hour, identified by
// its starting time label ("08:00").
const SlotDurationMinutes = 60

// Default payment polling policy.
// MaxPollAttempts = 0 keeps the legacy behavior: poll until a terminal
// status arrives or the session is cancelled.
const (
	DefaultPollIntervalSeconds = 3
	DefaultInitialDelaySeconds = 3
	DefaultMaxPollAttempts     = 0
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// TransactionIDPrefix префикс клиентских идентификаторов платежных попыток.
const TransactionIDPrefix = "TXN"
