package cancel_reschedule

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
	msgAccessDenied        = "отозвать перенос может только его инициатор"
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

// Handle POST /api/v1/bookings/{bookingId}/reschedule/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgNoIdentity)
		return
	}

	bookingID := mux.Vars(r)["bookingId"]

	result, err := h.service.CancelRequest(r.Context(), bookingID,
		models.Actor{UserID: actor.UserID, IsMaster: actor.IsMaster})
	if err != nil {
		switch {
		case errors.Is(err, reschedule.ErrNegotiationNotFound), errors.Is(err, reschedule.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgNegotiationNotFound)

		case errors.Is(err, reschedule.ErrPermissionDenied):
			h.logger.Warn("POST /bookings/{id}/reschedule/cancel - Permission denied: user=%s, booking_id=%s", actor.UserID, bookingID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("POST /bookings/{id}/reschedule/cancel - Failed: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/reschedule/cancel - Withdrawn: booking_id=%s, status=%s", result.BookingID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
