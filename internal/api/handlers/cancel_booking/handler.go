package cancel_booking

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/avdeec/salon-booking-service/internal/api/handlers"
	"github.com/avdeec/salon-booking-service/internal/api/middleware"
	"github.com/avdeec/salon-booking-service/internal/service/bookings"
	"github.com/avdeec/salon-booking-service/internal/service/bookings/models"
)

const (
	msgNoIdentity         = "не удалось определить пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgBookingNotFound    = "запись не найдена"
	msgAccessDenied       = "доступ запрещен"
	msgCannotCancel       = "запись нельзя отменить в текущем статусе"
	msgBookingFrozen      = "по записи идет согласование переноса"
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

// Handle PATCH /api/v1/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgNoIdentity)
		return
	}

	bookingID := mux.Vars(r)["bookingId"]

	// Тело необязательно
	var req CancelBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq := &models.CancelRequest{
		Actor:  models.Actor{UserID: actor.UserID, IsMaster: actor.IsMaster},
		Reason: req.Reason,
	}

	result, err := h.service.Cancel(r.Context(), bookingID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Access denied: user=%s, booking_id=%s", actor.UserID, bookingID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookings.ErrBookingFrozen):
			handlers.RespondConflict(w, msgBookingFrozen)

		case errors.Is(err, bookings.ErrCannotCancel):
			handlers.RespondConflict(w, msgCannotCancel)

		default:
			h.logger.Error("PATCH /bookings/{id}/cancel - Failed: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/cancel - Cancelled: booking_id=%s, user=%s", bookingID, actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
