package domain

import (
	"time"

	"github.com/m04kA/SMC-SportBookingService/pkg/types"
)

// SlotStatus classifies a slot for a concrete facility and date.
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotBooked    SlotStatus = "booked"
	SlotPast      SlotStatus = "past"
)

// BookedSlotIndex is the externally-sourced set of already reserved slot
// labels for one (facility, date) pair. A slot present here can never be
// selected.
type BookedSlotIndex map[types.TimeString]bool

// ClassifySlot classifies a single slot. Pure function of its inputs.
//
// The booked check runs first, then the past check. A slot counts as past
// once its starting hour has arrived, not just passed: on the target day
// slot_hour <= now_hour means past. Both rules can hold at once; the
// booked classification wins by rule ordering.
func ClassifySlot(slot types.TimeString, date time.Time, now time.Time, booked BookedSlotIndex) SlotStatus {
	if booked[slot] {
		return SlotBooked
	}
	if SameDay(date, now) && slot.Hour() <= now.Hour() {
		return SlotPast
	}
	return SlotAvailable
}

// SameDay проверяет, что две даты относятся к одному и тому же дню.
func SameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня).
func DateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
