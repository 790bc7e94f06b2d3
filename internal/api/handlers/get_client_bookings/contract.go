package get_client_bookings

import (
	"context"

	"github.com/avdeec/salon-booking-service/internal/service/bookings/models"
)

type BookingsService interface {
	ListByClient(ctx context.Context, req *models.ListByClientRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
