package list_reschedules

import (
	"context"

	"github.com/avdeec/salon-booking-service/internal/service/reschedule/models"
)

type RescheduleService interface {
	ListActive(ctx context.Context, kind *string, actor models.Actor) (*models.RescheduleListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
