package resolve_reschedule

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/avdeec/salon-booking-service/internal/api/handlers"
	"github.com/avdeec/salon-booking-service/internal/api/middleware"
	"github.com/avdeec/salon-booking-service/internal/service/reschedule"
	"github.com/avdeec/salon-booking-service/internal/service/reschedule/models"
)

const (
	msgNoIdentity          = "не удалось определить пользователя"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgNegotiationNotFound = "открытый перенос не найден"
	msgAccessDenied        = "закрыть перенос может только противоположная сторона"
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

// HandleAccept POST /api/v1/reschedules/{shadowId}/accept
func (h *Handler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "accept", "", h.service.Accept)
}

// HandleReject POST /api/v1/reschedules/{shadowId}/reject
func (h *Handler) HandleReject(w http.ResponseWriter, r *http.Request) {
	// Тело необязательно
	var body RejectRescheduleRequest
	if err := handlers.DecodeJSON(r, &body); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /reschedules/{id}/reject - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	h.handle(w, r, "reject", body.Reason, h.service.Reject)
}

func (h *Handler) handle(
	w http.ResponseWriter,
	r *http.Request,
	verb string,
	reason string,
	resolve func(ctx context.Context, req *models.ResolveRequest) (*models.ResolveResponse, error),
) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgNoIdentity)
		return
	}

	shadowID := mux.Vars(r)["shadowId"]

	req := &models.ResolveRequest{
		ShadowID: shadowID,
		Actor:    models.Actor{UserID: actor.UserID, IsMaster: actor.IsMaster},
		Reason:   reason,
	}

	result, err := resolve(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reschedule.ErrNegotiationNotFound):
			handlers.RespondNotFound(w, msgNegotiationNotFound)

		case errors.Is(err, reschedule.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgNegotiationNotFound)

		case errors.Is(err, reschedule.ErrPermissionDenied):
			h.logger.Warn("POST /reschedules/{id}/%s - Permission denied: user=%s, shadow_id=%s", verb, actor.UserID, shadowID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("POST /reschedules/{id}/%s - Failed: shadow_id=%s, error=%v", verb, shadowID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reschedules/{id}/%s - Resolved: booking_id=%s, status=%s", verb, result.BookingID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
