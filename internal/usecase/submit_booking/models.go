package submit_booking

import (
	"time"

	"github.com/m04kA/SMC-SportBookingService/pkg/types"
)

// Request модель запроса отправки бронирования
type Request struct {
	UserID      int64   // ID пользователя
	SelectionID string  // ID выборки
	Notes       *string // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	BookingID     int64
	TransactionID string
	FacilityID    int64
	FacilityName  string
	Date          time.Time
	Slots         []types.TimeString
	TotalPrice    int64
	Status        string // pending_payment
}
