package bookings

import (
	"context"

	"github.com/avdeec/salon-booking-service/internal/domain"
	"github.com/avdeec/salon-booking-service/internal/integrations/notify"
)

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByClient(ctx context.Context, clientID string, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetByStatus(ctx context.Context, status domain.BookingStatus) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus, comment *string) error
	CountByStatus(ctx context.Context) (map[domain.BookingStatus]int, error)
}

// Mirror интерфейс постановщика зеркалирования во внешнюю таблицу
// Вызывается после каждой мутации; сбои зеркала не прерывают операцию
type Mirror interface {
	UpsertBooking(ctx context.Context, b *domain.Booking)
}

// Notifier интерфейс исходящего чат-транспорта
type Notifier interface {
	Send(ctx context.Context, msg *notify.Message) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
