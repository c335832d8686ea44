package get_payment

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

// Handle GET /api/v1/payments/{transactionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	transactionID := mux.Vars(r)["transactionId"]

	result, err := h.service.Get(r.Context(), transactionID, userID)
	if err != nil {
		switch {
		case errors.Is(err, paymentsService.ErrSessionNotFound):
			h.logger.Warn("GET /payments/{txn} - Not found: txn=%s", transactionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, paymentsService.ErrAccessDenied):
			h.logger.Warn("GET /payments/{txn} - Access denied: txn=%s, user_id=%d", transactionID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /payments/{txn} - Failed: txn=%s, error=%v", transactionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
