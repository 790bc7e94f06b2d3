package get_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/avdeec/salon-booking-service/internal/api/handlers"
	"github.com/avdeec/salon-booking-service/internal/api/middleware"
	"github.com/avdeec/salon-booking-service/internal/service/bookings"
	"github.com/avdeec/salon-booking-service/internal/service/bookings/models"
)

const (
	msgNoIdentity      = "не удалось определить пользователя"
	msgBookingNotFound = "запись не найдена"
	msgAccessDenied    = "доступ запрещен"
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

// Handle GET /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgNoIdentity)
		return
	}

	bookingID := mux.Vars(r)["bookingId"]

	result, err := h.service.GetByID(r.Context(), bookingID, models.Actor{UserID: actor.UserID, IsMaster: actor.IsMaster})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /bookings/{id} - Access denied: user=%s, booking_id=%s", actor.UserID, bookingID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /bookings/{id} - Failed: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
