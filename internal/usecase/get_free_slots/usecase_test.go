package get_free_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/avdeec/salon-booking-service/internal/domain"
	"github.com/avdeec/salon-booking-service/pkg/types"
)

type fakeSchedule struct {
	grid map[string][]types.TimeString
}

func (f *fakeSchedule) GenerateDaySlots(ctx context.Context, date time.Time) ([]types.TimeString, error) {
	return f.grid[date.Format(domain.DateFormat)], nil
}

type fakeBookingRepo struct {
	occupied map[string][]types.TimeString
	statuses []domain.BookingStatus
}

func (f *fakeBookingRepo) GetOccupiedTimes(ctx context.Context, date time.Time, statuses []domain.BookingStatus) ([]types.TimeString, error) {
	f.statuses = statuses
	return f.occupied[date.Format(domain.DateFormat)], nil
}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newUsecase(grid []types.TimeString, occupied []types.TimeString, now time.Time, date string) (*Usecase, *fakeBookingRepo) {
	repo := &fakeBookingRepo{occupied: map[string][]types.TimeString{date: occupied}}
	return NewUsecase(
		&fakeSchedule{grid: map[string][]types.TimeString{date: grid}},
		repo,
		&fixedTime{now: now},
		nopLogger{},
	), repo
}

func TestExecute(t *testing.T) {
	now := time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)
	grid := []types.TimeString{"10:00", "11:00", "12:00", "13:00"}

	t.Run("occupied slots are excluded", func(t *testing.T) {
		uc, repo := newUsecase(grid, []types.TimeString{"11:00", "13:00"}, now, "2026-09-15")

		resp, err := uc.Execute(context.Background(), &Request{Date: "2026-09-15"})
		require.NoError(t, err)

		require.Equal(t, []string{"10:00", "12:00"}, resp.Slots)
		require.Equal(t, domain.BlockingStatuses, repo.statuses)
	})

	t.Run("past slots excluded for today", func(t *testing.T) {
		// 11:30: слот 11:00 уже начался, 12:00 еще нет
		uc, _ := newUsecase(grid, nil, time.Date(2026, 9, 14, 11, 30, 0, 0, time.UTC), "2026-09-14")

		resp, err := uc.Execute(context.Background(), &Request{Date: "2026-09-14"})
		require.NoError(t, err)

		require.Equal(t, []string{"12:00", "13:00"}, resp.Slots)
	})

	t.Run("non-working day returns empty list", func(t *testing.T) {
		uc, _ := newUsecase(nil, nil, now, "2026-09-20")

		resp, err := uc.Execute(context.Background(), &Request{Date: "2026-09-20"})
		require.NoError(t, err)
		require.Empty(t, resp.Slots)
	})

	t.Run("malformed date rejected", func(t *testing.T) {
		uc, _ := newUsecase(grid, nil, now, "2026-09-15")

		_, err := uc.Execute(context.Background(), &Request{Date: "15.09.2026"})
		require.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("past date rejected", func(t *testing.T) {
		uc, _ := newUsecase(grid, nil, now, "2026-09-13")

		_, err := uc.Execute(context.Background(), &Request{Date: "2026-09-13"})
		require.ErrorIs(t, err, ErrPastDate)
	})
}

func TestIsSlotFree(t *testing.T) {
	now := time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)
	grid := []types.TimeString{"10:00", "11:00"}
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	t.Run("free slot", func(t *testing.T) {
		uc, _ := newUsecase(grid, nil, now, "2026-09-15")

		free, err := uc.IsSlotFree(context.Background(), date, "10:00")
		require.NoError(t, err)
		require.True(t, free)
	})

	t.Run("occupied slot", func(t *testing.T) {
		uc, _ := newUsecase(grid, []types.TimeString{"10:00"}, now, "2026-09-15")

		free, err := uc.IsSlotFree(context.Background(), date, "10:00")
		require.NoError(t, err)
		require.False(t, free)
	})

	t.Run("slot outside the grid", func(t *testing.T) {
		uc, _ := newUsecase(grid, nil, now, "2026-09-15")

		free, err := uc.IsSlotFree(context.Background(), date, "23:00")
		require.NoError(t, err)
		require.False(t, free)
	})

	t.Run("past date never free", func(t *testing.T) {
		uc, _ := newUsecase(grid, nil, now, "2026-09-10")

		free, err := uc.IsSlotFree(context.Background(), time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), "10:00")
		require.NoError(t, err)
		require.False(t, free)
	})
}
