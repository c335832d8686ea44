package toggle_slot

import (
	"time"

	"github.com/m04kA/SMC-SportBookingService/pkg/types"
)

// Request модель запроса переключения слота
type Request struct {
	UserID      int64            // ID пользователя
	SelectionID string           // ID выборки
	Slot        types.TimeString // Метка слота ("16:00")
}

// Response модель ответа с актуальным состоянием выборки
type Response struct {
	SelectionID string
	Date        time.Time
	Slots       []types.TimeString // Выбранные слоты в порядке выбора
	TotalPrice  int64
	CanSubmit   bool
	Changed     bool // false, если слот занят или прошел и выборка не изменилась
}
