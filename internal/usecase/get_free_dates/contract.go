package get_free_dates

import (
	"context"
	"time"

	"github.com/avdeec/salon-booking-service/internal/domain"
	"github.com/avdeec/salon-booking-service/pkg/types"
)

// ScheduleProvider выдает сетку слотов и рабочие дни
type ScheduleProvider interface {
	IsWorkingDay(ctx context.Context, date time.Time) (bool, error)
	GenerateDaySlots(ctx context.Context, date time.Time) ([]types.TimeString, error)
}

// BookingRepository читает занятые слоты на дату
type BookingRepository interface {
	GetOccupiedTimes(ctx context.Context, date time.Time, statuses []domain.BookingStatus) ([]types.TimeString, error)
}

// TimeProvider источник текущего времени, подменяется в тестах
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger контракт логгера
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
