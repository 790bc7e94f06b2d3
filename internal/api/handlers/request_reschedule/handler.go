package request_reschedule

import (
	"errors"
	"net/http"

	"github.com/avdeec/salon-booking-service/internal/api/handlers"
	"github.com/avdeec/salon-booking-service/internal/api/middleware"
	"github.com/avdeec/salon-booking-service/internal/service/reschedule"
	"github.com/avdeec/salon-booking-service/internal/service/reschedule/models"
)

const (
	msgNoIdentity         = "не удалось определить пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректная дата или время"
	msgBookingNotFound    = "запись не найдена"
	msgAccessDenied       = "доступ запрещен"
	msgCannotReschedule   = "запись нельзя перенести в текущем статусе"
	msgAlreadyNegotiating = "по записи уже идет согласование переноса"
	msgSlotUnavailable    = "выбранный слот недоступен"
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

// Handle POST /api/v1/reschedules/requests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgNoIdentity)
		return
	}

	var req RequestRescheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reschedules/requests - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(models.Actor{UserID: actor.UserID, IsMaster: actor.IsMaster})
	if err != nil {
		h.logger.Warn("POST /reschedules/requests - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.service.Request(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, reschedule.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, reschedule.ErrPermissionDenied):
			h.logger.Warn("POST /reschedules/requests - Permission denied: user=%s, booking_id=%s", actor.UserID, req.BookingID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, reschedule.ErrCannotReschedule):
			handlers.RespondConflict(w, msgCannotReschedule)

		case errors.Is(err, reschedule.ErrAlreadyNegotiating):
			handlers.RespondConflict(w, msgAlreadyNegotiating)

		case errors.Is(err, reschedule.ErrSlotUnavailable):
			handlers.RespondConflict(w, msgSlotUnavailable)

		default:
			h.logger.Error("POST /reschedules/requests - Failed: booking_id=%s, error=%v", req.BookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reschedules/requests - Opened: original=%s, shadow=%s", result.OriginalID, result.ShadowID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
