package reschedule

import (
	"context"
	"time"

	"github.com/avdeec/salon-booking-service/internal/domain"
	"github.com/avdeec/salon-booking-service/internal/integrations/notify"
	"github.com/avdeec/salon-booking-service/pkg/types"
)

// BookingRepository контракт хранилища записей для протокола переноса
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus, comment *string) error
	FreezeStatus(ctx context.Context, id string, status domain.BookingStatus, prior domain.BookingStatus, comment *string) error
}

// NegotiationRepository контракт хранилища связей переноса
type NegotiationRepository interface {
	Create(ctx context.Context, n *domain.Negotiation) error
	GetByOriginalID(ctx context.Context, originalID string) (*domain.Negotiation, error)
	GetByShadowID(ctx context.Context, shadowID string) (*domain.Negotiation, error)
	GetByEitherID(ctx context.Context, id string) (*domain.Negotiation, error)
	Delete(ctx context.Context, originalID string) error
	List(ctx context.Context, kind *domain.NegotiationKind) ([]*domain.Negotiation, error)
}

// Availability проверка доступности слота для теневой записи
type Availability interface {
	IsSlotFree(ctx context.Context, date time.Time, slot types.TimeString) (bool, error)
}

// TxManager контракт менеджера транзакций
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Locker сериализует операции над одной записью
type Locker interface {
	Lock(key string)
	Unlock(key string)
}

// Mirror контракт зеркалирования во внешнюю таблицу
type Mirror interface {
	UpsertBooking(ctx context.Context, booking *domain.Booking)
}

// Notifier контракт отправки уведомлений
type Notifier interface {
	Send(ctx context.Context, msg *notify.Message) error
}

// Logger контракт логгера
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
