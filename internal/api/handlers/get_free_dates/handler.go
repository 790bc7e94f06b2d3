package get_free_dates

import (
	"net/http"
	"strconv"

	"github.com/avdeec/salon-booking-service/internal/api/handlers"
	getFreeDates "github.com/avdeec/salon-booking-service/internal/usecase/get_free_dates"
)

const msgInvalidDaysAhead = "некорректное значение daysAhead"

type Handler struct {
	useCase GetFreeDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetFreeDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/free-dates?daysAhead=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &getFreeDates.Request{}
	if raw := r.URL.Query().Get("daysAhead"); raw != "" {
		daysAhead, err := strconv.Atoi(raw)
		if err != nil || daysAhead <= 0 {
			handlers.RespondBadRequest(w, msgInvalidDaysAhead)
			return
		}
		req.DaysAhead = daysAhead
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /free-dates - Failed: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
