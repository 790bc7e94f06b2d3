package get_free_slots

import (
	"errors"
	"net/http"

	"github.com/avdeec/salon-booking-service/internal/api/handlers"
	getFreeSlots "github.com/avdeec/salon-booking-service/internal/usecase/get_free_slots"
)

const (
	msgDateMissing = "не указана дата"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgPastDate    = "дата уже прошла"
)

type Handler struct {
	useCase GetFreeSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetFreeSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/free-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		handlers.RespondBadRequest(w, msgDateMissing)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getFreeSlots.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getFreeSlots.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getFreeSlots.ErrPastDate):
			handlers.RespondBadRequest(w, msgPastDate)

		default:
			h.logger.Error("GET /free-slots - Failed: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
