package set_selection_date

import (
	"time"

	"github.com/m04kA/SMC-SportBookingService/pkg/types"
)

// Request модель запроса смены даты выборки
type Request struct {
	UserID      int64     // ID пользователя
	SelectionID string    // ID выборки
	Date        time.Time // Новая дата (без времени)
}

// Response модель ответа с актуальным состоянием выборки
type Response struct {
	SelectionID  string
	Date         time.Time
	Slots        []types.TimeString // Оставшиеся выбранные слоты
	DroppedSlots []types.TimeString // Слоты, недоступные на новую дату
	TotalPrice   int64
	CanSubmit    bool
}
