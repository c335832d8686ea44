package models

import (
	"time"

	"github.com/m04kA/SMC-SportBookingService/internal/domain"
)

// Request модели

// CreateSelectionRequest запрос на создание выборки
type CreateSelectionRequest struct {
	UserID     int64
	FacilityID int64
	Date       time.Time
}

// Response модели

// SlotView один слот сетки сооружения с вычисленным статусом
type SlotView struct {
	Time     string `json:"time"`   // "16:00"
	Status   string `json:"status"` // available | booked | past
	Selected bool   `json:"selected"`
}

// SelectionResponse ответ с состоянием выборки
type SelectionResponse struct {
	ID           string     `json:"id"`
	UserID       int64      `json:"userId"`
	FacilityID   int64      `json:"facilityId"`
	FacilityName string     `json:"facilityName"`
	SportType    string     `json:"sportType"`
	CourtID      int64      `json:"courtId"`
	CourtName    string     `json:"courtName,omitempty"`
	Location     string     `json:"location"`
	PricePerHour int64      `json:"pricePerHour"`
	OpeningHours string     `json:"openingHours"`
	Date         string     `json:"date"`  // "2025-10-15"
	Grid         []SlotView `json:"grid"`  // Полная сетка сооружения
	Slots        []string   `json:"slots"` // Выбранные слоты в порядке выбора
	TotalPrice   int64      `json:"totalPrice"`
	CanSubmit    bool       `json:"canSubmit"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// FromDomainSelection собирает DTO, классифицируя каждый слот сетки
// относительно текущего времени и индекса занятых слотов
func FromDomainSelection(s *domain.Selection, now time.Time, booked domain.BookedSlotIndex) *SelectionResponse {
	if s == nil {
		return nil
	}

	grid := make([]SlotView, len(s.Facility.AvailableSlots))
	for i, slot := range s.Facility.AvailableSlots {
		grid[i] = SlotView{
			Time:     slot.String(),
			Status:   string(domain.ClassifySlot(slot, s.Date, now, booked)),
			Selected: s.HasSlot(slot),
		}
	}

	slots := make([]string, len(s.Slots))
	for i, slot := range s.Slots {
		slots[i] = slot.String()
	}

	return &SelectionResponse{
		ID:           s.ID,
		UserID:       s.UserID,
		FacilityID:   s.Facility.ID,
		FacilityName: s.Facility.Name,
		SportType:    s.Facility.SportType,
		CourtID:      s.Facility.CourtID,
		CourtName:    s.Facility.CourtName,
		Location:     s.Facility.Location,
		PricePerHour: s.Facility.PricePerHour,
		OpeningHours: s.Facility.OpeningHours,
		Date:         s.Date.Format(domain.DateFormat),
		Grid:         grid,
		Slots:        slots,
		TotalPrice:   s.TotalPrice(),
		CanSubmit:    s.CanSubmit(now),
		CreatedAt:    s.CreatedAt,
	}
}
