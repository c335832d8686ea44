package get_slot_availability

import (
	"time"

	"github.com/m04kA/SMC-SportBookingService/pkg/types"
)

// Request модель запроса доступности слотов
type Request struct {
	FacilityID int64     // ID спортивного сооружения
	Date       time.Time // Дата, на которую запрашивается сетка (без времени)
}

// Slot один слот почасовой сетки с вычисленным статусом
type Slot struct {
	Time   types.TimeString // Метка начала слота ("16:00")
	Status string           // available | booked | past
}

// Response модель ответа с сеткой слотов
type Response struct {
	FacilityID   int64
	FacilityName string
	SportType    string
	Location     string
	PricePerHour int64
	OpeningHours string
	Date         time.Time
	Slots        []Slot // В порядке сетки сооружения
}
