package list_reschedules

import (
	"errors"
	"net/http"

	"github.com/avdeec/salon-booking-service/internal/api/handlers"
	"github.com/avdeec/salon-booking-service/internal/api/middleware"
	"github.com/avdeec/salon-booking-service/internal/service/reschedule"
	"github.com/avdeec/salon-booking-service/internal/service/reschedule/models"
)

const (
	msgNoIdentity   = "не удалось определить пользователя"
	msgAccessDenied = "доступ запрещен"
	msgInvalidKind  = "некорректный тип переноса"
)

type Handler struct {
	service RescheduleService
	logger  Logger
}

func NewHandler(service RescheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reschedules?kind=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgNoIdentity)
		return
	}

	var kind *string
	if raw := r.URL.Query().Get("kind"); raw != "" {
		kind = &raw
	}

	result, err := h.service.ListActive(r.Context(), kind,
		models.Actor{UserID: actor.UserID, IsMaster: actor.IsMaster})
	if err != nil {
		switch {
		case errors.Is(err, reschedule.ErrPermissionDenied):
			h.logger.Warn("GET /reschedules - Access denied: user=%s", actor.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, reschedule.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidKind)

		default:
			h.logger.Error("GET /reschedules - Failed: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
