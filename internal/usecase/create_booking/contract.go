package create_booking

import (
	"context"
	"time"

	"github.com/avdeec/salon-booking-service/internal/domain"
	"github.com/avdeec/salon-booking-service/internal/integrations/notify"
	"github.com/avdeec/salon-booking-service/pkg/types"
)

// BookingRepository контракт хранилища записей
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetOccupiedTimes(ctx context.Context, date time.Time, statuses []domain.BookingStatus) ([]types.TimeString, error)
}

// ScheduleProvider выдает сетку слотов рабочего дня
type ScheduleProvider interface {
	GenerateDaySlots(ctx context.Context, date time.Time) ([]types.TimeString, error)
}

// TxManager контракт менеджера транзакций
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Mirror контракт зеркалирования во внешнюю таблицу
type Mirror interface {
	UpsertBooking(ctx context.Context, booking *domain.Booking)
}

// Notifier контракт отправки уведомлений
type Notifier interface {
	Send(ctx context.Context, msg *notify.Message) error
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
