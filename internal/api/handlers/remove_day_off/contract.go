package remove_day_off

import (
	"context"
	"time"
)

type ScheduleService interface {
	RemoveDayOff(ctx context.Context, day time.Time) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
