package start_payment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SportBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SportBookingService/internal/api/middleware"
	paymentsService "github.com/m04kA/SMC-SportBookingService/internal/service/payments"
	"github.com/m04kA/SMC-SportBookingService/internal/service/payments/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSessionNotFound    = "платежная сессия не найдена"
	msgAccessDenied       = "нет доступа к этой платежной сессии"
	msgInvalidMethod      = "неизвестный способ оплаты"
	msgPaymentInitFailed  = "не удалось создать платеж, попробуйте еще раз"
	msgUnauthorized       = "пользователь не аутентифицирован"
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

// Handle POST /api/v1/payments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req StartPaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Start(r.Context(), &models.StartPaymentRequest{
		UserID:        userID,
		TransactionID: req.TransactionID,
		Method:        req.Method,
	})
	if err != nil {
		switch {
		case errors.Is(err, paymentsService.ErrSessionNotFound):
			h.logger.Warn("POST /payments - Session not found: txn=%s", req.TransactionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, paymentsService.ErrAccessDenied):
			h.logger.Warn("POST /payments - Access denied: txn=%s, user_id=%d", req.TransactionID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, paymentsService.ErrInvalidMethod):
			h.logger.Warn("POST /payments - Invalid method %q: txn=%s", req.Method, req.TransactionID)
			handlers.RespondBadRequest(w, msgInvalidMethod)

		case errors.Is(err, paymentsService.ErrPaymentInit):
			h.logger.Error("POST /payments - Payment init failed: txn=%s, error=%v", req.TransactionID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgPaymentInitFailed)

		case errors.Is(err, paymentsService.ErrInvalidInput):
			h.logger.Warn("POST /payments - Invalid input: txn=%s", req.TransactionID)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /payments - Failed: txn=%s, error=%v", req.TransactionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments - Payment started: txn=%s, method=%s, user_id=%d",
		result.TransactionID, result.Method, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
