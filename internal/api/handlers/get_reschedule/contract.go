package get_reschedule

import (
	"context"

	"github.com/avdeec/salon-booking-service/internal/service/reschedule/models"
)

type RescheduleService interface {
	GetRelation(ctx context.Context, id string, actor models.Actor) (*models.RescheduleView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
