package schedule

import (
	"context"
	"time"

	"github.com/avdeec/salon-booking-service/internal/domain"
)

// ScheduleRepository контракт хранилища рабочего расписания
type ScheduleRepository interface {
	GetWeekSchedule(ctx context.Context) (domain.WeekSchedule, error)
	UpsertDayRule(ctx context.Context, rule domain.DayRule) error
	GetDaysOff(ctx context.Context) ([]time.Time, error)
	AddDayOff(ctx context.Context, day time.Time) error
	RemoveDayOff(ctx context.Context, day time.Time) error
}

// Logger контракт логгера
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
