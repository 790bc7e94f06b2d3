package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/avdeec/salon-booking-service/internal/domain"
	"github.com/avdeec/salon-booking-service/internal/integrations/notify"
	"github.com/avdeec/salon-booking-service/pkg/types"
)

type fakeBookingRepo struct {
	occupied []types.TimeString
	created  *domain.Booking
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	b.CreatedAt = time.Date(2026, 9, 14, 12, 0, 0, 0, time.UTC)
	f.created = b
	return b, nil
}

func (f *fakeBookingRepo) GetOccupiedTimes(ctx context.Context, date time.Time, statuses []domain.BookingStatus) ([]types.TimeString, error) {
	return f.occupied, nil
}

type fakeSchedule struct{ grid []types.TimeString }

func (f *fakeSchedule) GenerateDaySlots(ctx context.Context, date time.Time) ([]types.TimeString, error) {
	return f.grid, nil
}

type passTxManager struct{ calls int }

func (p *passTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
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

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	uc       *Usecase
	repo     *fakeBookingRepo
	tx       *passTxManager
	mirror   *fakeMirror
	notifier *fakeNotifier
}

func newFixture(grid, occupied []types.TimeString) *fixture {
	f := &fixture{
		repo:     &fakeBookingRepo{occupied: occupied},
		tx:       &passTxManager{},
		mirror:   &fakeMirror{},
		notifier: &fakeNotifier{},
	}
	f.uc = NewUsecase(
		f.repo,
		&fakeSchedule{grid: grid},
		f.tx,
		f.mirror,
		f.notifier,
		&fixedTime{now: time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)},
		"master-1",
		nopLogger{},
	)
	return f
}

func validRequest() *Request {
	return &Request{
		ClientID:   "client-1",
		ClientName: "Анна",
		Phone:      "+7 900 123-45-67",
		Date:       "2026-09-15",
		Time:       "11:00",
		Service:    "Маникюр",
	}
}

func TestExecute(t *testing.T) {
	grid := []types.TimeString{"10:00", "11:00", "12:00"}

	t.Run("creates pending booking and notifies master", func(t *testing.T) {
		f := newFixture(grid, nil)

		resp, err := f.uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)

		require.NotEmpty(t, resp.ID)
		require.Equal(t, string(domain.StatusPending), resp.Status)
		require.Equal(t, "2026-09-15", resp.Date)
		require.Equal(t, "11:00", resp.Time)

		require.Equal(t, 1, f.tx.calls)
		require.NotNil(t, f.repo.created)
		require.Equal(t, "client-1", f.repo.created.ClientID)
		require.Equal(t, domain.StatusPending, f.repo.created.Status)

		require.Len(t, f.mirror.upserts, 1)
		require.Len(t, f.notifier.sent, 1)
		require.Equal(t, "master-1", f.notifier.sent[0].ChatID)
		require.Equal(t, "new_booking", f.notifier.sent[0].Event)
	})

	t.Run("occupied slot conflicts", func(t *testing.T) {
		f := newFixture(grid, []types.TimeString{"11:00"})

		_, err := f.uc.Execute(context.Background(), validRequest())
		require.ErrorIs(t, err, ErrSlotUnavailable)
		require.Nil(t, f.repo.created)
		require.Empty(t, f.mirror.upserts)
	})

	t.Run("slot outside the grid conflicts", func(t *testing.T) {
		f := newFixture(grid, nil)

		req := validRequest()
		req.Time = "23:00"
		_, err := f.uc.Execute(context.Background(), req)
		require.ErrorIs(t, err, ErrSlotUnavailable)
	})
}

func TestExecuteValidation(t *testing.T) {
	grid := []types.TimeString{"11:00"}

	cases := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{"missing client id", func(r *Request) { r.ClientID = "" }, ErrInvalidInput},
		{"missing name", func(r *Request) { r.ClientName = "  " }, ErrInvalidInput},
		{"bad phone", func(r *Request) { r.Phone = "abc" }, ErrInvalidInput},
		{"short phone", func(r *Request) { r.Phone = "+7123" }, ErrInvalidInput},
		{"missing service", func(r *Request) { r.Service = "" }, ErrInvalidInput},
		{"bad date", func(r *Request) { r.Date = "15.09.2026" }, ErrInvalidDate},
		{"bad time", func(r *Request) { r.Time = "25:99" }, ErrInvalidTime},
		{"past date", func(r *Request) { r.Date = "2026-09-13" }, ErrPastDate},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(grid, nil)

			req := validRequest()
			tc.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, tc.wantErr)
			require.Equal(t, 0, f.tx.calls)
		})
	}
}
