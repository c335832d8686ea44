package bookingservice

// CreateBookingRequest тело запроса POST /api/bookings
type CreateBookingRequest struct {
	FacilityID    int64    `json:"facility_id"`
	SportType     string   `json:"sport_type"`
	CourtID       int64    `json:"court_id"`
	BookingDate   string   `json:"booking_date"` // YYYY-MM-DD
	StartTime     string   `json:"start_time"`   // HH:MM
	EndTime       string   `json:"end_time"`     // HH:MM
	TimeSlots     []string `json:"time_slots"`
	TotalPrice    int64    `json:"total_price"`
	PaymentMethod string   `json:"payment_method"`
	TransactionID string   `json:"transaction_id"`
	Status        string   `json:"status"`
	Notes         *string  `json:"notes,omitempty"`
}

// CreateBookingResponse ответ Booking API на создание бронирования
type CreateBookingResponse struct {
	BookingID    int64    `json:"booking_id"`
	FacilityName string   `json:"facility_name"`
	BookingDate  string   `json:"booking_date"`
	TimeSlots    []string `json:"time_slots"`
	TotalPrice   int64    `json:"total_price"`
	Message      string   `json:"message"`
}

// FinalizeBookingRequest тело запроса PATCH /api/bookings/{id}
type FinalizeBookingRequest struct {
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
}

// Booking модель бронирования из выдачи поиска по сооружению и дате
type Booking struct {
	ID        int64    `json:"id"`
	FacilityID int64   `json:"facility_id"`
	SportType string   `json:"sport_type"`
	CourtID   *int64   `json:"court_id"`
	UserID    int64    `json:"user_id"`
	StartTime string   `json:"start_time"` // HH:MM
	EndTime   string   `json:"end_time"`   // HH:MM
	Status    string   `json:"status"`
	TimeSlots []string `json:"time_slots,omitempty"`
}

// Статусы бронирований, не блокирующие слоты
var inactiveStatuses = map[string]bool{
	"cancelled": true,
	"failed":    true,
}

// IsActive возвращает true, если бронирование удерживает свои слоты
func (b *Booking) IsActive() bool {
	return !inactiveStatuses[b.Status]
}

// ErrorResponse модель ошибки от Booking API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
