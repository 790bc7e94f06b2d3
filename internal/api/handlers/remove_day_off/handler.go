package remove_day_off

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/avdeec/salon-booking-service/internal/api/handlers"
	"github.com/avdeec/salon-booking-service/internal/api/middleware"
	"github.com/avdeec/salon-booking-service/internal/domain"
)

const (
	msgNoIdentity   = "не удалось определить пользователя"
	msgAccessDenied = "доступ запрещен"
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
)

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

// Handle DELETE /api/v1/schedule/days-off/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgNoIdentity)
		return
	}
	if !actor.IsMaster {
		h.logger.Warn("DELETE /schedule/days-off/{date} - Access denied: user=%s", actor.UserID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	raw := mux.Vars(r)["date"]
	day, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if err := h.service.RemoveDayOff(r.Context(), day); err != nil {
		h.logger.Error("DELETE /schedule/days-off/{date} - Failed: date=%s, error=%v", raw, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /schedule/days-off/{date} - Removed: date=%s", raw)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
