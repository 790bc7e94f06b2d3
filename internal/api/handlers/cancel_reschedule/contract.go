package cancel_reschedule

import (
	"context"

	"github.com/avdeec/salon-booking-service/internal/service/reschedule/models"
)

type RescheduleService interface {
	CancelRequest(ctx context.Context, originalID string, actor models.Actor) (*models.ResolveResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
