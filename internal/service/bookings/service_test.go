package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/avdeec/salon-booking-service/internal/domain"
	bookingRepo "github.com/avdeec/salon-booking-service/internal/infra/storage/booking"
	"github.com/avdeec/salon-booking-service/internal/integrations/notify"
	"github.com/avdeec/salon-booking-service/internal/service/bookings/models"
	"github.com/avdeec/salon-booking-service/pkg/ptr"
)

type fakeRepo struct {
	byID    map[string]*domain.Booking
	counts  map[domain.BookingStatus]int
	updates []struct {
		id     string
		status domain.BookingStatus
	}
}

func newFakeRepo(seed ...*domain.Booking) *fakeRepo {
	f := &fakeRepo{byID: map[string]*domain.Booking{}}
	for _, b := range seed {
		f.byID[b.ID] = b
	}
	return f
}

func (f *fakeRepo) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	f.byID[b.ID] = b
	return b, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeRepo) GetByClient(ctx context.Context, clientID string, status *domain.BookingStatus) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.byID {
		if b.ClientID != clientID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeRepo) GetByStatus(ctx context.Context, status domain.BookingStatus) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.byID {
		if b.Status == status {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus, comment *string) error {
	b, ok := f.byID[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	b.PriorStatus = nil
	if comment != nil {
		b.MasterComment = comment
	}
	f.updates = append(f.updates, struct {
		id     string
		status domain.BookingStatus
	}{id, status})
	return nil
}

func (f *fakeRepo) CountByStatus(ctx context.Context) (map[domain.BookingStatus]int, error) {
	return f.counts, nil
}

type fakeMirror struct{ upserts []*domain.Booking }

func (f *fakeMirror) UpsertBooking(ctx context.Context, b *domain.Booking) {
	f.upserts = append(f.upserts, b)
}

type fakeNotifier struct{ sent []*notify.Message }

func (f *fakeNotifier) Send(ctx context.Context, msg *notify.Message) error {
	f.sent = append(f.sent, msg)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	svc      *Service
	repo     *fakeRepo
	mirror   *fakeMirror
	notifier *fakeNotifier
}

func newFixture(seed ...*domain.Booking) *fixture {
	f := &fixture{
		repo:     newFakeRepo(seed...),
		mirror:   &fakeMirror{},
		notifier: &fakeNotifier{},
	}
	f.svc = NewService(f.repo, f.mirror, f.notifier, nopLogger{})
	return f
}

func booking(id, clientID string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:         id,
		ClientID:   clientID,
		ClientName: "Анна",
		Phone:      "+79001234567",
		Date:       time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		Time:       "11:00",
		Service:    "Маникюр",
		Status:     status,
	}
}

var (
	client = models.Actor{UserID: "client-1"}
	master = models.Actor{UserID: "master-1", IsMaster: true}
)

func TestGetByID(t *testing.T) {
	f := newFixture(booking("b1", "client-1", domain.StatusPending))

	t.Run("owner sees own booking", func(t *testing.T) {
		resp, err := f.svc.GetByID(context.Background(), "b1", client)
		require.NoError(t, err)
		require.Equal(t, "b1", resp.ID)
		require.Equal(t, "2026-09-15", resp.Date)
	})

	t.Run("master sees any booking", func(t *testing.T) {
		_, err := f.svc.GetByID(context.Background(), "b1", master)
		require.NoError(t, err)
	})

	t.Run("foreign client denied", func(t *testing.T) {
		_, err := f.svc.GetByID(context.Background(), "b1", models.Actor{UserID: "client-2"})
		require.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := f.svc.GetByID(context.Background(), "nope", master)
		require.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestListByClient(t *testing.T) {
	f := newFixture(
		booking("b1", "client-1", domain.StatusPending),
		booking("b2", "client-1", domain.StatusConfirmed),
		booking("b3", "client-2", domain.StatusPending),
	)

	t.Run("client lists own bookings", func(t *testing.T) {
		resp, err := f.svc.ListByClient(context.Background(), &models.ListByClientRequest{
			Actor: client, ClientID: "client-1",
		})
		require.NoError(t, err)
		require.Len(t, resp.Bookings, 2)
	})

	t.Run("status filter", func(t *testing.T) {
		resp, err := f.svc.ListByClient(context.Background(), &models.ListByClientRequest{
			Actor: client, ClientID: "client-1", Status: ptr.Ptr("confirmed"),
		})
		require.NoError(t, err)
		require.Len(t, resp.Bookings, 1)
		require.Equal(t, "b2", resp.Bookings[0].ID)
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		_, err := f.svc.ListByClient(context.Background(), &models.ListByClientRequest{
			Actor: client, ClientID: "client-1", Status: ptr.Ptr("whatever"),
		})
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("foreign history denied", func(t *testing.T) {
		_, err := f.svc.ListByClient(context.Background(), &models.ListByClientRequest{
			Actor: client, ClientID: "client-2",
		})
		require.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("master reads any history", func(t *testing.T) {
		resp, err := f.svc.ListByClient(context.Background(), &models.ListByClientRequest{
			Actor: master, ClientID: "client-2",
		})
		require.NoError(t, err)
		require.Len(t, resp.Bookings, 1)
	})
}

func TestListByStatus(t *testing.T) {
	f := newFixture(
		booking("b1", "client-1", domain.StatusPending),
		booking("b2", "client-2", domain.StatusPending),
	)

	t.Run("master only", func(t *testing.T) {
		_, err := f.svc.ListByStatus(context.Background(), "pending", client)
		require.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("lists by status", func(t *testing.T) {
		resp, err := f.svc.ListByStatus(context.Background(), "pending", master)
		require.NoError(t, err)
		require.Len(t, resp.Bookings, 2)
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := f.svc.ListByStatus(context.Background(), "nope", master)
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestStatistics(t *testing.T) {
	f := newFixture()
	f.repo.counts = map[domain.BookingStatus]int{
		domain.StatusPending:   3,
		domain.StatusConfirmed: 2,
		domain.StatusCancelled: 1,
	}

	t.Run("master only", func(t *testing.T) {
		_, err := f.svc.Statistics(context.Background(), client)
		require.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("totals across all statuses", func(t *testing.T) {
		resp, err := f.svc.Statistics(context.Background(), master)
		require.NoError(t, err)

		require.Equal(t, 6, resp.Total)
		require.Equal(t, 3, resp.ByStatus["pending"])
		require.Equal(t, 0, resp.ByStatus["completed"])
		require.Len(t, resp.ByStatus, len(domain.AllStatuses))
	})
}

func TestUpdateStatus(t *testing.T) {
	t.Run("pending to confirmed", func(t *testing.T) {
		f := newFixture(booking("b1", "client-1", domain.StatusPending))

		resp, err := f.svc.UpdateStatus(context.Background(), "b1", &models.UpdateStatusRequest{
			Actor: master, Status: "confirmed",
		})
		require.NoError(t, err)

		require.Equal(t, "confirmed", resp.Status)
		require.Len(t, f.mirror.upserts, 1)
		require.Len(t, f.notifier.sent, 1)
		require.Equal(t, "client-1", f.notifier.sent[0].ChatID)
		require.Equal(t, "status_change", f.notifier.sent[0].Event)
	})

	t.Run("client denied", func(t *testing.T) {
		f := newFixture(booking("b1", "client-1", domain.StatusPending))

		_, err := f.svc.UpdateStatus(context.Background(), "b1", &models.UpdateStatusRequest{
			Actor: client, Status: "confirmed",
		})
		require.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("unknown status", func(t *testing.T) {
		f := newFixture(booking("b1", "client-1", domain.StatusPending))

		_, err := f.svc.UpdateStatus(context.Background(), "b1", &models.UpdateStatusRequest{
			Actor: master, Status: "nope",
		})
		require.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("reschedule statuses unreachable directly", func(t *testing.T) {
		f := newFixture(booking("b1", "client-1", domain.StatusPending))

		_, err := f.svc.UpdateStatus(context.Background(), "b1", &models.UpdateStatusRequest{
			Actor: master, Status: "reschedule_requested",
		})
		require.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("frozen booking rejected", func(t *testing.T) {
		b := booking("b1", "client-1", domain.StatusRescheduleRequested)
		prior := domain.StatusConfirmed
		b.PriorStatus = &prior
		f := newFixture(b)

		_, err := f.svc.UpdateStatus(context.Background(), "b1", &models.UpdateStatusRequest{
			Actor: master, Status: "confirmed",
		})
		require.ErrorIs(t, err, ErrBookingFrozen)
	})

	t.Run("completed cannot go back to pending", func(t *testing.T) {
		f := newFixture(booking("b1", "client-1", domain.StatusCompleted))

		_, err := f.svc.UpdateStatus(context.Background(), "b1", &models.UpdateStatusRequest{
			Actor: master, Status: "pending",
		})
		require.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("comment persisted", func(t *testing.T) {
		f := newFixture(booking("b1", "client-1", domain.StatusPending))

		resp, err := f.svc.UpdateStatus(context.Background(), "b1", &models.UpdateStatusRequest{
			Actor: master, Status: "rejected", Comment: ptr.Ptr("нет окна"),
		})
		require.NoError(t, err)
		require.NotNil(t, resp.Comment)
		require.Equal(t, "нет окна", *resp.Comment)
	})
}

func TestCancel(t *testing.T) {
	t.Run("client cancels own pending booking", func(t *testing.T) {
		f := newFixture(booking("b1", "client-1", domain.StatusPending))

		resp, err := f.svc.Cancel(context.Background(), "b1", &models.CancelRequest{Actor: client})
		require.NoError(t, err)
		require.Equal(t, "cancelled", resp.Status)
	})

	t.Run("client cannot cancel completed booking", func(t *testing.T) {
		f := newFixture(booking("b1", "client-1", domain.StatusCompleted))

		_, err := f.svc.Cancel(context.Background(), "b1", &models.CancelRequest{Actor: client})
		require.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("client cannot cancel foreign booking", func(t *testing.T) {
		f := newFixture(booking("b1", "client-2", domain.StatusPending))

		_, err := f.svc.Cancel(context.Background(), "b1", &models.CancelRequest{Actor: client})
		require.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("master cancels completed booking", func(t *testing.T) {
		f := newFixture(booking("b1", "client-1", domain.StatusCompleted))

		resp, err := f.svc.Cancel(context.Background(), "b1", &models.CancelRequest{
			Actor: master, Reason: "салон закрыт",
		})
		require.NoError(t, err)
		require.Equal(t, "cancelled", resp.Status)
		require.Equal(t, "салон закрыт", *resp.Comment)
	})

	t.Run("already cancelled", func(t *testing.T) {
		f := newFixture(booking("b1", "client-1", domain.StatusCancelled))

		_, err := f.svc.Cancel(context.Background(), "b1", &models.CancelRequest{Actor: master})
		require.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("frozen booking rejected", func(t *testing.T) {
		b := booking("b1", "client-1", domain.StatusRescheduleOffered)
		prior := domain.StatusConfirmed
		b.PriorStatus = &prior
		f := newFixture(b)

		_, err := f.svc.Cancel(context.Background(), "b1", &models.CancelRequest{Actor: master})
		require.ErrorIs(t, err, ErrBookingFrozen)
	})
}
