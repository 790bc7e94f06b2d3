package get_master_bookings

import (
	"context"

	"github.com/avdeec/salon-booking-service/internal/service/bookings/models"
)

type BookingsService interface {
	ListByStatus(ctx context.Context, status string, actor models.Actor) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
