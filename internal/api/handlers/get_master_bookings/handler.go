package get_master_bookings

import (
	"errors"
	"net/http"

	"github.com/avdeec/salon-booking-service/internal/api/handlers"
	"github.com/avdeec/salon-booking-service/internal/api/middleware"
	"github.com/avdeec/salon-booking-service/internal/service/bookings"
	"github.com/avdeec/salon-booking-service/internal/service/bookings/models"
)

const (
	msgNoIdentity    = "не удалось определить пользователя"
	msgAccessDenied  = "доступ запрещен"
	msgInvalidStatus = "некорректный статус"
	msgStatusMissing = "не указан статус"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/master/bookings?status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgNoIdentity)
		return
	}

	status := r.URL.Query().Get("status")
	if status == "" {
		handlers.RespondBadRequest(w, msgStatusMissing)
		return
	}

	result, err := h.service.ListByStatus(r.Context(), status, models.Actor{UserID: actor.UserID, IsMaster: actor.IsMaster})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /master/bookings - Access denied: user=%s", actor.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /master/bookings - Failed: status=%s, error=%v", status, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
