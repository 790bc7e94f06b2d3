package add_day_off

import (
	"net/http"
	"time"

	"github.com/avdeec/salon-booking-service/internal/api/handlers"
	"github.com/avdeec/salon-booking-service/internal/api/middleware"
	"github.com/avdeec/salon-booking-service/internal/domain"
)

const (
	msgNoIdentity         = "не удалось определить пользователя"
	msgAccessDenied       = "доступ запрещен"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
)

// AddDayOffRequest HTTP request model
type AddDayOffRequest struct {
	Date string `json:"date"` // "2026-09-15"
}

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/schedule/days-off
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgNoIdentity)
		return
	}
	if !actor.IsMaster {
		h.logger.Warn("POST /schedule/days-off - Access denied: user=%s", actor.UserID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	var req AddDayOffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedule/days-off - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	day, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if err := h.service.AddDayOff(r.Context(), day); err != nil {
		h.logger.Error("POST /schedule/days-off - Failed: date=%s, error=%v", req.Date, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /schedule/days-off - Added: date=%s", req.Date)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
