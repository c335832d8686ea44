package domain

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-SportBookingService/pkg/types"
)

// BookingStatus represents the server-side booking lifecycle as far as
// this service drives it.
type BookingStatus string

const (
	StatusPendingPayment BookingStatus = "pending_payment"
	StatusConfirmed      BookingStatus = "confirmed"
)

// BookingPaymentStatus is the payment flag carried by a booking.
type BookingPaymentStatus string

const (
	PaymentStatusUnpaid BookingPaymentStatus = "unpaid"
	PaymentStatusPaid   BookingPaymentStatus = "paid"
)

// BookingRequest is the immutable payload representing one user's intent
// to reserve specific slots. Built once at submission time, sent exactly
// once; authoritative state lives server-side afterwards.
type BookingRequest struct {
	UserID        int64
	FacilityID    int64
	FacilityName  string
	SportType     string
	CourtID       int64
	CourtName     string
	Location      string
	Date          time.Time
	Slots         []types.TimeString // ordered as selected
	TotalPrice    int64
	PaymentMethod PaymentMethod
	TransactionID string
	Notes         *string
}

// StartTime returns the earliest selected slot label.
// Slots need not be contiguous, so this is the chronological minimum.
func (r *BookingRequest) StartTime() types.TimeString {
	if len(r.Slots) == 0 {
		return ""
	}
	min := r.Slots[0]
	for _, s := range r.Slots[1:] {
		if s.IsBefore(min) {
			min = s
		}
	}
	return min
}

// EndTime returns the end of the latest selected slot (its label plus one
// hour).
func (r *BookingRequest) EndTime() types.TimeString {
	if len(r.Slots) == 0 {
		return ""
	}
	max := r.Slots[0]
	for _, s := range r.Slots[1:] {
		if s.IsAfter(max) {
			max = s
		}
	}
	end, err := max.AddMinutes(SlotDurationMinutes)
	if err != nil {
		return max
	}
	return end
}

// SlotLabels returns the slot labels as plain strings, selection order
// preserved.
func (r *BookingRequest) SlotLabels() []string {
	labels := make([]string, len(r.Slots))
	for i, s := range r.Slots {
		labels[i] = s.String()
	}
	return labels
}

// JoinSlots returns the comma-joined slot list ("16:00,17:00").
func (r *BookingRequest) JoinSlots() string {
	return strings.Join(r.SlotLabels(), ",")
}
