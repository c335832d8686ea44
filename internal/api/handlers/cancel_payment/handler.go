package cancel_payment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SportBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SportBookingService/internal/api/middleware"
	paymentsService "github.com/m04kA/SMC-SportBookingService/internal/service/payments"
)

const (
	msgSessionNotFound = "платежная сессия не найдена"
	msgAccessDenied    = "нет доступа к этой платежной сессии"
	msgSessionFinished = "платежная сессия уже завершена"
	msgUnauthorized    = "пользователь не аутентифицирован"
)

type Handler struct {
	service PaymentsService
	logger  Logger
}

func NewHandler(service PaymentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/{transactionId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	transactionID := mux.Vars(r)["transactionId"]

	result, err := h.service.Cancel(r.Context(), transactionID, userID)
	if err != nil {
		switch {
		case errors.Is(err, paymentsService.ErrSessionNotFound):
			h.logger.Warn("POST /payments/{txn}/cancel - Not found: txn=%s", transactionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, paymentsService.ErrAccessDenied):
			h.logger.Warn("POST /payments/{txn}/cancel - Access denied: txn=%s, user_id=%d", transactionID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, paymentsService.ErrSessionFinished):
			h.logger.Warn("POST /payments/{txn}/cancel - Already finished: txn=%s", transactionID)
			handlers.RespondError(w, http.StatusConflict, msgSessionFinished)

		default:
			h.logger.Error("POST /payments/{txn}/cancel - Failed: txn=%s, error=%v", transactionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments/{txn}/cancel - Payment cancelled: txn=%s, user_id=%d", transactionID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
