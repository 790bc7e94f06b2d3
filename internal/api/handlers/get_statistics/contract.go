package get_statistics

import (
	"context"

	"github.com/avdeec/salon-booking-service/internal/service/bookings/models"
)

type BookingsService interface {
	Statistics(ctx context.Context, actor models.Actor) (*models.StatisticsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
