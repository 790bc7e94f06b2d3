package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/avdeec/salon-booking-service/internal/domain"
	"github.com/avdeec/salon-booking-service/internal/integrations/notify"
	"github.com/avdeec/salon-booking-service/pkg/types"
)

type fakeRepo struct{ bookings []*domain.Booking }

func (f *fakeRepo) GetByStatus(ctx context.Context, status domain.BookingStatus) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.Status == status {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeNotifier struct {
	sent []*notify.Message
	fail bool
}

func (f *fakeNotifier) Send(ctx context.Context, msg *notify.Message) error {
	if f.fail {
		return errors.New("transport down")
	}
	f.sent = append(f.sent, msg)
	return nil
}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func confirmedAt(id string, date time.Time, slot types.TimeString) *domain.Booking {
	return &domain.Booking{
		ID:       id,
		ClientID: "client-1",
		Date:     time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		Time:     slot,
		Status:   domain.StatusConfirmed,
		Service:  "Маникюр",
	}
}

func TestSweep(t *testing.T) {
	// Запись 2026-09-15 14:00
	bookingDate := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	b := confirmedAt("b1", bookingDate, "14:00")

	newService := func(now time.Time, repo *fakeRepo, notifier *fakeNotifier) *Service {
		return NewService(repo, notifier, &fixedTime{now: now}, time.Minute, nopLogger{})
	}

	t.Run("day window hit", func(t *testing.T) {
		// За 24 часа до начала
		now := time.Date(2026, 9, 14, 14, 0, 0, 0, time.UTC)
		notifier := &fakeNotifier{}
		svc := newService(now, &fakeRepo{bookings: []*domain.Booking{b}}, notifier)

		svc.sweep(context.Background())

		require.Len(t, notifier.sent, 1)
		require.Equal(t, "reminder", notifier.sent[0].Event)
		require.Equal(t, "b1", notifier.sent[0].BookingID)
	})

	t.Run("hour window hit", func(t *testing.T) {
		// За 2 часа до начала
		now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)
		notifier := &fakeNotifier{}
		svc := newService(now, &fakeRepo{bookings: []*domain.Booking{b}}, notifier)

		svc.sweep(context.Background())

		require.Len(t, notifier.sent, 1)
	})

	t.Run("between windows nothing is sent", func(t *testing.T) {
		// За 10 часов до начала
		now := time.Date(2026, 9, 15, 4, 0, 0, 0, time.UTC)
		notifier := &fakeNotifier{}
		svc := newService(now, &fakeRepo{bookings: []*domain.Booking{b}}, notifier)

		svc.sweep(context.Background())

		require.Empty(t, notifier.sent)
	})

	t.Run("past booking skipped", func(t *testing.T) {
		now := time.Date(2026, 9, 15, 15, 0, 0, 0, time.UTC)
		notifier := &fakeNotifier{}
		svc := newService(now, &fakeRepo{bookings: []*domain.Booking{b}}, notifier)

		svc.sweep(context.Background())

		require.Empty(t, notifier.sent)
	})

	t.Run("pending booking skipped", func(t *testing.T) {
		pending := confirmedAt("b2", bookingDate, "14:00")
		pending.Status = domain.StatusPending

		now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)
		notifier := &fakeNotifier{}
		svc := newService(now, &fakeRepo{bookings: []*domain.Booking{pending}}, notifier)

		svc.sweep(context.Background())

		require.Empty(t, notifier.sent)
	})

	t.Run("repeated sweep deduplicated", func(t *testing.T) {
		now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)
		notifier := &fakeNotifier{}
		svc := newService(now, &fakeRepo{bookings: []*domain.Booking{b}}, notifier)

		svc.sweep(context.Background())
		svc.sweep(context.Background())
		svc.sweep(context.Background())

		require.Len(t, notifier.sent, 1)
	})

	t.Run("failed send retried on next sweep", func(t *testing.T) {
		now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)
		notifier := &fakeNotifier{fail: true}
		svc := newService(now, &fakeRepo{bookings: []*domain.Booking{b}}, notifier)

		svc.sweep(context.Background())
		require.Empty(t, notifier.sent)

		notifier.fail = false
		svc.sweep(context.Background())
		require.Len(t, notifier.sent, 1)
	})

	t.Run("both windows fire independently", func(t *testing.T) {
		notifier := &fakeNotifier{}
		repo := &fakeRepo{bookings: []*domain.Booking{b}}

		day := newService(time.Date(2026, 9, 14, 14, 0, 0, 0, time.UTC), repo, notifier)
		day.sweep(context.Background())

		// Тот же сервис позже попадает в часовое окно
		day.timeProvider = &fixedTime{now: time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)}
		day.sweep(context.Background())

		require.Len(t, notifier.sent, 2)
	})
}

func TestStartStop(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := NewService(&fakeRepo{}, notifier, &fixedTime{now: time.Now()}, time.Hour, nopLogger{})

	svc.Start(context.Background())
	svc.Stop()
	// Stop дождался завершения цикла, повторных паник нет
}
