package offer_reschedule

import (
	"context"

	"github.com/avdeec/salon-booking-service/internal/service/reschedule/models"
)

type RescheduleService interface {
	Offer(ctx context.Context, req *models.ProposeRequest) (*models.RescheduleView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
