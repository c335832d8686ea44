package domain

import (
	"time"

	"github.com/m04kA/SMC-SportBookingService/pkg/types"
)

// Selection is the user's in-progress slot pick for one facility.
// It is transient: recreated when a new facility is chosen, cleared on
// cancel or successful submission. Slots keep insertion order for display
// but behave as a set for membership.
type Selection struct {
	ID        string
	UserID    int64
	Facility  Facility
	Date      time.Time
	Slots     []types.TimeString
	CreatedAt time.Time
}

// HasSlot reports whether the slot is currently selected.
func (s *Selection) HasSlot(slot types.TimeString) bool {
	for _, sel := range s.Slots {
		if sel == slot {
			return true
		}
	}
	return false
}

// ToggleSlot adds or removes a slot. Booked and past slots are a silent
// no-op, mirroring the disabled-button semantics of the original flow.
// Returns true if the selection changed.
func (s *Selection) ToggleSlot(slot types.TimeString, status SlotStatus) bool {
	if status == SlotBooked || status == SlotPast {
		return false
	}
	for i, sel := range s.Slots {
		if sel == slot {
			s.Slots = append(s.Slots[:i], s.Slots[i+1:]...)
			return true
		}
	}
	s.Slots = append(s.Slots, slot)
	return true
}

// ApplyDate replaces the active date. Slots that are booked or past under
// the new date are dropped from the selection and returned so the caller
// can notify the user.
func (s *Selection) ApplyDate(date time.Time, statusOf func(types.TimeString) SlotStatus) []types.TimeString {
	s.Date = date

	kept := s.Slots[:0]
	var dropped []types.TimeString
	for _, slot := range s.Slots {
		if st := statusOf(slot); st == SlotBooked || st == SlotPast {
			dropped = append(dropped, slot)
			continue
		}
		kept = append(kept, slot)
	}
	s.Slots = kept
	return dropped
}

// TotalPrice returns count(slots) * price_per_hour. Zero for an empty
// selection, never negative.
func (s *Selection) TotalPrice() int64 {
	return int64(len(s.Slots)) * s.Facility.PricePerHour
}

// CanSubmit reports whether the selection is submittable: at least one
// slot picked and the date not in the past.
func (s *Selection) CanSubmit(now time.Time) bool {
	return len(s.Slots) > 0 && !DateInPast(s.Date, now)
}
