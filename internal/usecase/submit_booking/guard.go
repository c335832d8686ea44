package submit_booking

import "sync"

// submitGuard не допускает параллельных отправок одной выборки.
// Повторное нажатие "забронировать" до ответа сервера не должно породить
// второе бронирование.
type submitGuard struct {
	mu       sync.Mutex
	inFlight map[string]bool
}

func newSubmitGuard() *submitGuard {
	return &submitGuard{
		inFlight: make(map[string]bool),
	}
}

// acquire занимает выборку. Возвращает false, если отправка уже идет.
func (g *submitGuard) acquire(selectionID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.inFlight[selectionID] {
		return false
	}
	g.inFlight[selectionID] = true
	return true
}

// release освобождает выборку
func (g *submitGuard) release(selectionID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.inFlight, selectionID)
}
