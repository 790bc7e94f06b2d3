package get_free_dates

import (
	"context"

	getFreeDates "github.com/avdeec/salon-booking-service/internal/usecase/get_free_dates"
)

type GetFreeDatesUseCase interface {
	Execute(ctx context.Context, req *getFreeDates.Request) (*getFreeDates.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
