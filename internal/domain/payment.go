package domain

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-SportBookingService/pkg/types"
)

// PaymentMethod is one of the two supported payment strategies.
type PaymentMethod string

const (
	MethodBank         PaymentMethod = "bank"
	MethodMobileWallet PaymentMethod = "mobileWallet"

	// MethodPending is the placeholder a booking carries before the user
	// picks a real method.
	MethodPending PaymentMethod = "pending"
)

// IsValid reports whether the method is one a payment can start with.
func (m PaymentMethod) IsValid() bool {
	return m == MethodBank || m == MethodMobileWallet
}

// PaymentState is the orchestrator state machine:
//
//	selecting_method -> awaiting_confirmation -> succeeded | failed
//
// succeeded and failed are terminal for a session; a retry requires a new
// session with a new transaction id. cancelled is the user-initiated
// terminal state.
type PaymentState string

const (
	StateSelectingMethod      PaymentState = "selecting_method"
	StateAwaitingConfirmation PaymentState = "awaiting_confirmation"
	StateSucceeded            PaymentState = "succeeded"
	StateFailed               PaymentState = "failed"
	StateCancelled            PaymentState = "cancelled"
)

// PaymentSession tracks one payment attempt for one BookingRequest.
type PaymentSession struct {
	TransactionID string
	BookingID     int64
	UserID        int64
	Method        PaymentMethod
	State         PaymentState
	Amount        int64

	// Denormalized booking data: the session must be able to rebuild
	// transfer instructions and the QR payload without refetching the
	// booking.
	FacilityID   int64
	FacilityName string
	SportType    string
	CourtID      int64
	CourtName    string
	Date         time.Time
	Slots        []types.TimeString

	// PayURL is the wallet redirect target, set for mobileWallet sessions.
	PayURL *string

	FailureReason *string
	// FinalizeWarning is set when the booking-finalize call failed after a
	// successful payment. The session still counts as succeeded.
	FinalizeWarning *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsTerminal reports whether no further transitions are possible.
func (s *PaymentSession) IsTerminal() bool {
	return s.State == StateSucceeded || s.State == StateFailed || s.State == StateCancelled
}

// IsAwaiting reports whether the session is being polled.
func (s *PaymentSession) IsAwaiting() bool {
	return s.State == StateAwaitingConfirmation
}

// CanStart reports whether a payment may be started on this session.
func (s *PaymentSession) CanStart() bool {
	return s.State == StateSelectingMethod
}

// SlotLabels returns the slot labels as plain strings.
func (s *PaymentSession) SlotLabels() []string {
	labels := make([]string, len(s.Slots))
	for i, sl := range s.Slots {
		labels[i] = sl.String()
	}
	return labels
}

// JoinSlots returns the comma-joined slot list ("16:00,17:00").
func (s *PaymentSession) JoinSlots() string {
	return strings.Join(s.SlotLabels(), ",")
}

// StartTime returns the earliest slot label of the paid booking.
func (s *PaymentSession) StartTime() types.TimeString {
	if len(s.Slots) == 0 {
		return ""
	}
	min := s.Slots[0]
	for _, sl := range s.Slots[1:] {
		if sl.IsBefore(min) {
			min = sl
		}
	}
	return min
}

// EndTime returns the end of the latest slot (label plus one hour).
func (s *PaymentSession) EndTime() types.TimeString {
	if len(s.Slots) == 0 {
		return ""
	}
	max := s.Slots[0]
	for _, sl := range s.Slots[1:] {
		if sl.IsAfter(max) {
			max = sl
		}
	}
	end, err := max.AddMinutes(SlotDurationMinutes)
	if err != nil {
		return max
	}
	return end
}
