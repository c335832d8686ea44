package set_selection_date

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SportBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SportBookingService/internal/api/middleware"
	setSelectionDate "github.com/m04kA/SMC-SportBookingService/internal/usecase/set_selection_date"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateInPast         = "дата не может быть в прошлом"
	msgSelectionNotFound  = "выборка слотов не найдена"
	msgAccessDenied       = "нет доступа к этой выборке"
	msgUnauthorized       = "пользователь не аутентифицирован"
)

type Handler struct {
	useCase SetSelectionDateUseCase
	logger  Logger
}

func NewHandler(useCase SetSelectionDateUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/selections/{selectionId}/date
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	selectionID := mux.Vars(r)["selectionId"]

	var req SetDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /selections/{id}/date - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID, selectionID)
	if err != nil {
		h.logger.Warn("PATCH /selections/{id}/date - Invalid date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, setSelectionDate.ErrSelectionNotFound):
			h.logger.Warn("PATCH /selections/{id}/date - Not found: selection_id=%s", selectionID)
			handlers.RespondNotFound(w, msgSelectionNotFound)

		case errors.Is(err, setSelectionDate.ErrAccessDenied):
			h.logger.Warn("PATCH /selections/{id}/date - Access denied: selection_id=%s, user_id=%d", selectionID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, setSelectionDate.ErrInvalidDate):
			h.logger.Warn("PATCH /selections/{id}/date - Date in past: selection_id=%s", selectionID)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, setSelectionDate.ErrInvalidInput):
			h.logger.Warn("PATCH /selections/{id}/date - Invalid input: selection_id=%s", selectionID)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /selections/{id}/date - Failed: selection_id=%s, error=%v", selectionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
