package payments

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-SportBookingService/internal/domain"
	"github.com/m04kA/SMC-SportBookingService/internal/integrations/paymentservice"
)

// activePoll один запущенный цикл опроса статуса платежа
type activePoll struct {
	transactionID string
	cancel        context.CancelFunc
	done          chan struct{}
}

// pollRegistry реестр активных опросов, по одному на бронирование.
// Новый запуск оплаты для того же бронирования вытесняет предыдущий опрос.
type pollRegistry struct {
	mu    sync.Mutex
	polls map[int64]*activePoll
}

func newPollRegistry() *pollRegistry {
	return &pollRegistry{
		polls: make(map[int64]*activePoll),
	}
}

// replace регистрирует новый опрос, отменяя предыдущий для этого бронирования
func (r *pollRegistry) replace(bookingID int64, poll *activePoll) {
	r.mu.Lock()
	prev := r.polls[bookingID]
	r.polls[bookingID] = poll
	r.mu.Unlock()

	if prev != nil {
		prev.cancel()
	}
}

// claim снимает опрос с учета, если он все еще принадлежит транзакции.
// Возвращает false, если опрос был вытеснен или отменен: его результат
// нужно отбросить.
func (r *pollRegistry) claim(bookingID int64, transactionID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	poll, ok := r.polls[bookingID]
	if !ok || poll.transactionID != transactionID {
		return false
	}
	delete(r.polls, bookingID)
	return true
}

// stop отменяет опрос транзакции, если он активен
func (r *pollRegistry) stop(bookingID int64, transactionID string) bool {
	r.mu.Lock()
	poll, ok := r.polls[bookingID]
	if !ok || poll.transactionID != transactionID {
		r.mu.Unlock()
		return false
	}
	delete(r.polls, bookingID)
	r.mu.Unlock()

	poll.cancel()
	return true
}

// stopAll отменяет все активные опросы (graceful shutdown)
func (r *pollRegistry) stopAll() {
	r.mu.Lock()
	polls := make([]*activePoll, 0, len(r.polls))
	for id, poll := range r.polls {
		polls = append(polls, poll)
		delete(r.polls, id)
	}
	r.mu.Unlock()

	for _, poll := range polls {
		poll.cancel()
		<-poll.done
	}
}

// schedulePoll запускает цикл опроса статуса для сессии.
// Аргумент fetch задает метод Payment API, соответствующий способу оплаты.
func (s *Service) schedulePoll(session *domain.PaymentSession, fetch func(context.Context, string) (string, error)) {
	pollCtx, cancel := context.WithCancel(context.Background())
	poll := &activePoll{
		transactionID: session.TransactionID,
		cancel:        cancel,
		done:          make(chan struct{}),
	}

	s.registry.replace(session.BookingID, poll)
	if s.metrics != nil {
		s.metrics.IncActivePolls()
	}

	go s.runPoll(pollCtx, poll, session, fetch)
}

// runPoll крутит цикл опроса: начальная задержка, затем запрос статуса
// каждые polling.Interval до терминального результата, отмены или
// исчерпания попыток.
func (s *Service) runPoll(ctx context.Context, poll *activePoll, session *domain.PaymentSession, fetch func(context.Context, string) (string, error)) {
	defer close(poll.done)
	defer func() {
		if s.metrics != nil {
			s.metrics.DecActivePolls()
		}
	}()

	method := string(session.Method)

	// Начальная задержка перед первым опросом
	timer := time.NewTimer(s.polling.InitialDelay)
	select {
	case <-ctx.Done():
		timer.Stop()
		s.logger.Info("runPoll: poll for txn=%s cancelled before first attempt", session.TransactionID)
		return
	case <-timer.C:
	}

	attempts := 0
	for {
		attempts++

		status, err := fetch(ctx, session.TransactionID)
		switch {
		case ctx.Err() != nil:
			s.logger.Info("runPoll: poll for txn=%s cancelled", session.TransactionID)
			return

		case err != nil:
			// Транзиентная ошибка не роняет цикл, ждем следующей попытки
			if s.metrics != nil {
				s.metrics.IncPaymentPoll(method, "error")
			}
			s.logger.Warn("runPoll: status check failed for txn=%s (attempt %d): %v", session.TransactionID, attempts, err)

		case status == paymentservice.StatusSuccess:
			if s.metrics != nil {
				s.metrics.IncPaymentPoll(method, "success")
			}
			s.completeSuccess(session)
			return

		case status == paymentservice.StatusFailed:
			if s.metrics != nil {
				s.metrics.IncPaymentPoll(method, "failed")
			}
			s.completeFailure(session, "payment rejected by provider")
			return

		default:
			if s.metrics != nil {
				s.metrics.IncPaymentPoll(method, "pending")
			}
		}

		// При MaxAttempts = 0 опрашиваем без ограничения
		if s.polling.MaxAttempts > 0 && attempts >= s.polling.MaxAttempts {
			s.logger.Warn("runPoll: txn=%s exhausted %d attempts", session.TransactionID, attempts)
			s.completeFailure(session, "payment confirmation timed out")
			return
		}

		select {
		case <-ctx.Done():
			s.logger.Info("runPoll: poll for txn=%s cancelled", session.TransactionID)
			return
		case <-time.After(s.polling.Interval):
		}
	}
}

// completeSuccess фиксирует успешный платеж и финализирует бронирование
func (s *Service) completeSuccess(session *domain.PaymentSession) {
	// Опрос мог быть вытеснен новым запуском, тогда результат ничей
	if !s.registry.claim(session.BookingID, session.TransactionID) {
		s.logger.Warn("completeSuccess: txn=%s superseded, result discarded", session.TransactionID)
		return
	}

	// Свежий контекст: отмена самого опроса уже невозможна, а результат
	// платежа терять нельзя
	ctx, cancel := context.WithTimeout(context.Background(), completionTimeout)
	defer cancel()

	if err := s.sessions.UpdateState(ctx, session.TransactionID, domain.StateSucceeded, nil); err != nil {
		s.logger.Error("completeSuccess: failed to mark txn=%s succeeded: %v", session.TransactionID, err)
		return
	}
	if s.metrics != nil {
		s.metrics.IncPaymentSession(string(domain.StateSucceeded))
	}

	s.logger.Info("completeSuccess: txn=%s confirmed, finalizing booking id=%d", session.TransactionID, session.BookingID)

	// Финализация бронирования: status=confirmed, payment_status=paid.
	// Неудача не отменяет успех платежа, пишем предупреждение в сессию.
	if err := s.bookings.FinalizeBooking(ctx, session.BookingID, domain.StatusConfirmed, domain.PaymentStatusPaid); err != nil {
		s.logger.Error("completeSuccess: failed to finalize booking id=%d for txn=%s: %v",
			session.BookingID, session.TransactionID, err)
		warning := "payment confirmed but booking finalization failed: " + err.Error()
		if werr := s.sessions.SetFinalizeWarning(ctx, session.TransactionID, warning); werr != nil {
			s.logger.Error("completeSuccess: failed to record finalize warning for txn=%s: %v", session.TransactionID, werr)
		}
		return
	}

	s.logger.Info("completeSuccess: booking id=%d finalized", session.BookingID)
}

// completeFailure фиксирует неуспех платежа
func (s *Service) completeFailure(session *domain.PaymentSession, reason string) {
	if !s.registry.claim(session.BookingID, session.TransactionID) {
		s.logger.Warn("completeFailure: txn=%s superseded, result discarded", session.TransactionID)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), completionTimeout)
	defer cancel()

	if err := s.sessions.UpdateState(ctx, session.TransactionID, domain.StateFailed, &reason); err != nil {
		s.logger.Error("completeFailure: failed to mark txn=%s failed: %v", session.TransactionID, err)
		return
	}
	if s.metrics != nil {
		s.metrics.IncPaymentSession(string(domain.StateFailed))
	}

	s.logger.Info("completeFailure: txn=%s failed: %s", session.TransactionID, reason)
}
