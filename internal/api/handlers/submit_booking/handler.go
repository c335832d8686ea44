package submit_booking

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SportBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SportBookingService/internal/api/middleware"
	submitBooking "github.com/m04kA/SMC-SportBookingService/internal/usecase/submit_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSelectionNotFound  = "выборка слотов не найдена"
	msgAccessDenied       = "нет доступа к этой выборке"
	msgNothingSelected    = "не выбран ни один слот"
	msgDateInPast         = "дата бронирования уже прошла"
	msgSubmissionInFlight = "бронирование уже отправляется, дождитесь результата"
	msgBookingRejected    = "не удалось создать бронирование, оплата не начата"
	msgUnauthorized       = "пользователь не аутентифицирован"
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/selections/{selectionId}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	selectionID := mux.Vars(r)["selectionId"]

	// Тело опционально: заметки может не быть
	var req SubmitBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /selections/{id}/submit - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &submitBooking.Request{
		UserID:      userID,
		SelectionID: selectionID,
		Notes:       req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, submitBooking.ErrSelectionNotFound):
			h.logger.Warn("POST /selections/{id}/submit - Not found: selection_id=%s", selectionID)
			handlers.RespondNotFound(w, msgSelectionNotFound)

		case errors.Is(err, submitBooking.ErrAccessDenied):
			h.logger.Warn("POST /selections/{id}/submit - Access denied: selection_id=%s, user_id=%d", selectionID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, submitBooking.ErrNothingSelected):
			h.logger.Warn("POST /selections/{id}/submit - Nothing selected: selection_id=%s", selectionID)
			handlers.RespondBadRequest(w, msgNothingSelected)

		case errors.Is(err, submitBooking.ErrInvalidDate):
			h.logger.Warn("POST /selections/{id}/submit - Date in past: selection_id=%s", selectionID)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, submitBooking.ErrSubmissionInFlight):
			h.logger.Warn("POST /selections/{id}/submit - Already in flight: selection_id=%s", selectionID)
			handlers.RespondError(w, http.StatusConflict, msgSubmissionInFlight)

		case errors.Is(err, submitBooking.ErrBookingCreation):
			h.logger.Error("POST /selections/{id}/submit - Booking creation failed: selection_id=%s, error=%v", selectionID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgBookingRejected)

		case errors.Is(err, submitBooking.ErrInvalidInput):
			h.logger.Warn("POST /selections/{id}/submit - Invalid input: selection_id=%s", selectionID)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /selections/{id}/submit - Failed: selection_id=%s, error=%v", selectionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /selections/{id}/submit - Booking created: booking_id=%d, txn=%s, user_id=%d",
		result.BookingID, result.TransactionID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
