package domain

import (
	"github.com/m04kA/SMC-SportBookingService/pkg/types"
)

// Facility represents a bookable sports venue as seen by this service.
// The facility itself is owned by the external Facility API; this is a
// read-only snapshot taken when a selection is created.
type Facility struct {
	ID           int64
	Name         string
	SportType    string
	CourtID      int64
	CourtName    string
	Location     string
	PricePerHour int64  // integer currency units (VND)
	OpeningHours string // display string, e.g. "06:00 - 22:00"

	// AvailableSlots is the ordered sequence of slot labels derived from
	// OpeningHours (one-hour granularity).
	AvailableSlots []types.TimeString
}

// HasSlot reports whether the label belongs to the facility's slot grid.
func (f *Facility) HasSlot(slot types.TimeString) bool {
	for _, s := range f.AvailableSlots {
		if s == slot {
			return true
		}
	}
	return false
}
