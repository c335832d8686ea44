package get_selection

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SportBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SportBookingService/internal/api/middleware"
	selectionsService "github.com/m04kA/SMC-SportBookingService/internal/service/selections"
)

const (
	msgSelectionNotFound = "выборка слотов не найдена"
	msgAccessDenied      = "нет доступа к этой выборке"
	msgUnauthorized      = "пользователь не аутентифицирован"
)

type Handler struct {
	service SelectionsService
	logger  Logger
}

func NewHandler(service SelectionsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/selections/{selectionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	selectionID := mux.Vars(r)["selectionId"]

	result, err := h.service.Get(r.Context(), selectionID, userID)
	if err != nil {
		switch {
		case errors.Is(err, selectionsService.ErrSelectionNotFound):
			h.logger.Warn("GET /selections/{id} - Not found: selection_id=%s", selectionID)
			handlers.RespondNotFound(w, msgSelectionNotFound)

		case errors.Is(err, selectionsService.ErrAccessDenied):
			h.logger.Warn("GET /selections/{id} - Access denied: selection_id=%s, user_id=%d", selectionID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /selections/{id} - Failed: selection_id=%s, error=%v", selectionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
