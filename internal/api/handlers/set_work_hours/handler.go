package set_work_hours

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/avdeec/salon-booking-service/internal/api/handlers"
	"github.com/avdeec/salon-booking-service/internal/api/middleware"
	"github.com/avdeec/salon-booking-service/internal/service/schedule"
	"github.com/avdeec/salon-booking-service/internal/service/schedule/models"
)

const (
	msgNoIdentity         = "не удалось определить пользователя"
	msgAccessDenied       = "доступ запрещен"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidWeekday     = "некорректный день недели"
	msgInvalidInterval    = "некорректный интервал рабочих часов"
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

// Handle PUT /api/v1/schedule/work-hours/{weekday}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgNoIdentity)
		return
	}
	if !actor.IsMaster {
		h.logger.Warn("PUT /schedule/work-hours/{weekday} - Access denied: user=%s", actor.UserID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	weekday := mux.Vars(r)["weekday"]

	var req SetWorkHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedule/work-hours/{weekday} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq := &models.SetWorkHoursRequest{
		Weekday: weekday,
		Start:   req.Start,
		End:     req.End,
		Enabled: req.Enabled,
	}

	if err := h.service.SetWorkHours(r.Context(), serviceReq); err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidWeekday):
			handlers.RespondBadRequest(w, msgInvalidWeekday)

		case errors.Is(err, schedule.ErrInvalidInterval):
			handlers.RespondBadRequest(w, msgInvalidInterval)

		default:
			h.logger.Error("PUT /schedule/work-hours/{weekday} - Failed: weekday=%s, error=%v", weekday, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /schedule/work-hours/{weekday} - Updated: weekday=%s %s-%s enabled=%t",
		weekday, req.Start, req.End, req.Enabled)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
