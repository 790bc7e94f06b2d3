package resolve_reschedule

import (
	"context"

	"github.com/avdeec/salon-booking-service/internal/service/reschedule/models"
)

type RescheduleService interface {
	Accept(ctx context.Context, req *models.ResolveRequest) (*models.ResolveResponse, error)
	Reject(ctx context.Context, req *models.ResolveRequest) (*models.ResolveResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
