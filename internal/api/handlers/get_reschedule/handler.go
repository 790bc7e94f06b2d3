package get_reschedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/avdeec/salon-booking-service/internal/api/handlers"
	"github.com/avdeec/salon-booking-service/internal/api/middleware"
	"github.com/avdeec/salon-booking-service/internal/service/reschedule"
	"github.com/avdeec/salon-booking-service/internal/service/reschedule/models"
)

const (
	msgNoIdentity          = "не удалось определить пользователя"
	msgNegotiationNotFound = "открытый перенос не найден"
	msgAccessDenied        = "доступ запрещен"
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

// Handle GET /api/v1/reschedules/{bookingId}
// Принимает id как оригинала, так и теневой записи
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgNoIdentity)
		return
	}

	bookingID := mux.Vars(r)["bookingId"]

	result, err := h.service.GetRelation(r.Context(), bookingID,
		models.Actor{UserID: actor.UserID, IsMaster: actor.IsMaster})
	if err != nil {
		switch {
		case errors.Is(err, reschedule.ErrNegotiationNotFound), errors.Is(err, reschedule.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgNegotiationNotFound)

		case errors.Is(err, reschedule.ErrPermissionDenied):
			h.logger.Warn("GET /reschedules/{id} - Access denied: user=%s, booking_id=%s", actor.UserID, bookingID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /reschedules/{id} - Failed: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
