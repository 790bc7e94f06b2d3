package get_free_dates

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/avdeec/salon-booking-service/internal/domain"
	"github.com/avdeec/salon-booking-service/pkg/types"
)

type fakeSchedule struct {
	daysOff map[string]bool
	grid    []types.TimeString
}

func (f *fakeSchedule) IsWorkingDay(ctx context.Context, date time.Time) (bool, error) {
	if f.daysOff[date.Format(domain.DateFormat)] {
		return false, nil
	}
	// Воскресенье нерабочее
	return date.Weekday() != time.Sunday, nil
}

func (f *fakeSchedule) GenerateDaySlots(ctx context.Context, date time.Time) ([]types.TimeString, error) {
	working, _ := f.IsWorkingDay(ctx, date)
	if !working {
		return []types.TimeString{}, nil
	}
	return f.grid, nil
}

type fakeBookingRepo struct {
	occupied map[string][]types.TimeString
}

func (f *fakeBookingRepo) GetOccupiedTimes(ctx context.Context, date time.Time, statuses []domain.BookingStatus) ([]types.TimeString, error) {
	return f.occupied[date.Format(domain.DateFormat)], nil
}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute(t *testing.T) {
	// Понедельник 2026-09-14; окно начинается со вторника 15-го
	now := time.Date(2026, 9, 14, 12, 0, 0, 0, time.UTC)
	grid := []types.TimeString{"10:00", "11:00"}

	t.Run("window starts tomorrow and skips sundays", func(t *testing.T) {
		uc := NewUsecase(
			&fakeSchedule{grid: grid},
			&fakeBookingRepo{},
			&fixedTime{now: now},
			7,
			nopLogger{},
		)

		resp, err := uc.Execute(context.Background(), &Request{})
		require.NoError(t, err)

		require.NotContains(t, resp.Dates, "2026-09-14")
		require.Equal(t, "2026-09-15", resp.Dates[0])
		require.NotContains(t, resp.Dates, "2026-09-20") // воскресенье
		require.Len(t, resp.Dates, 6)
	})

	t.Run("fully booked day excluded", func(t *testing.T) {
		uc := NewUsecase(
			&fakeSchedule{grid: grid},
			&fakeBookingRepo{occupied: map[string][]types.TimeString{
				"2026-09-15": {"10:00", "11:00"},
				"2026-09-16": {"10:00"},
			}},
			&fixedTime{now: now},
			3,
			nopLogger{},
		)

		resp, err := uc.Execute(context.Background(), &Request{})
		require.NoError(t, err)

		require.NotContains(t, resp.Dates, "2026-09-15")
		require.Contains(t, resp.Dates, "2026-09-16")
	})

	t.Run("day off excluded", func(t *testing.T) {
		uc := NewUsecase(
			&fakeSchedule{grid: grid, daysOff: map[string]bool{"2026-09-16": true}},
			&fakeBookingRepo{},
			&fixedTime{now: now},
			3,
			nopLogger{},
		)

		resp, err := uc.Execute(context.Background(), &Request{})
		require.NoError(t, err)
		require.NotContains(t, resp.Dates, "2026-09-16")
	})

	t.Run("request overrides configured window", func(t *testing.T) {
		uc := NewUsecase(
			&fakeSchedule{grid: grid},
			&fakeBookingRepo{},
			&fixedTime{now: now},
			30,
			nopLogger{},
		)

		resp, err := uc.Execute(context.Background(), &Request{DaysAhead: 2})
		require.NoError(t, err)
		require.Equal(t, []string{"2026-09-15", "2026-09-16"}, resp.Dates)
	})

	t.Run("oversized window is capped", func(t *testing.T) {
		uc := NewUsecase(
			&fakeSchedule{grid: grid},
			&fakeBookingRepo{},
			&fixedTime{now: now},
			7,
			nopLogger{},
		)

		resp, err := uc.Execute(context.Background(), &Request{DaysAhead: 100000})
		require.NoError(t, err)
		require.LessOrEqual(t, len(resp.Dates), domain.MaxFreeDatesDaysAhead)
	})
}
