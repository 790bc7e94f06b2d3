package set_work_hours

import (
	"context"

	"github.com/avdeec/salon-booking-service/internal/service/schedule/models"
)

type ScheduleService interface {
	SetWorkHours(ctx context.Context, req *models.SetWorkHoursRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
