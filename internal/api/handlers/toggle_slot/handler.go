package toggle_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SportBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SportBookingService/internal/api/middleware"
	toggleSlot "github.com/m04kA/SMC-SportBookingService/internal/usecase/toggle_slot"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSlot        = "некорректный формат слота, ожидается HH:MM"
	msgSelectionNotFound  = "выборка слотов не найдена"
	msgAccessDenied       = "нет доступа к этой выборке"
	msgUnknownSlot        = "слот не входит в расписание сооружения"
	msgUnauthorized       = "пользователь не аутентифицирован"
)

type Handler struct {
	useCase ToggleSlotUseCase
	logger  Logger
}

func NewHandler(useCase ToggleSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/selections/{selectionId}/slots/toggle
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	selectionID := mux.Vars(r)["selectionId"]

	var req ToggleSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /selections/{id}/slots/toggle - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID, selectionID)
	if err != nil {
		h.logger.Warn("POST /selections/{id}/slots/toggle - Invalid slot %q: %v", req.Slot, err)
		handlers.RespondBadRequest(w, msgInvalidSlot)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, toggleSlot.ErrSelectionNotFound):
			h.logger.Warn("POST /selections/{id}/slots/toggle - Not found: selection_id=%s", selectionID)
			handlers.RespondNotFound(w, msgSelectionNotFound)

		case errors.Is(err, toggleSlot.ErrAccessDenied):
			h.logger.Warn("POST /selections/{id}/slots/toggle - Access denied: selection_id=%s, user_id=%d", selectionID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, toggleSlot.ErrUnknownSlot):
			h.logger.Warn("POST /selections/{id}/slots/toggle - Unknown slot %s: selection_id=%s", req.Slot, selectionID)
			handlers.RespondBadRequest(w, msgUnknownSlot)

		case errors.Is(err, toggleSlot.ErrInvalidInput):
			h.logger.Warn("POST /selections/{id}/slots/toggle - Invalid input: selection_id=%s", selectionID)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /selections/{id}/slots/toggle - Failed: selection_id=%s, error=%v", selectionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
