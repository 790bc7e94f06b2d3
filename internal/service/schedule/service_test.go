package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/avdeec/salon-booking-service/internal/domain"
	"github.com/avdeec/salon-booking-service/internal/service/schedule/models"
	"github.com/avdeec/salon-booking-service/pkg/types"
)

type fakeRepo struct {
	week        domain.WeekSchedule
	daysOff     []time.Time
	upserted    []domain.DayRule
	weekQueries int
}

func (f *fakeRepo) GetWeekSchedule(ctx context.Context) (domain.WeekSchedule, error) {
	f.weekQueries++
	return f.week, nil
}

func (f *fakeRepo) UpsertDayRule(ctx context.Context, rule domain.DayRule) error {
	f.upserted = append(f.upserted, rule)
	if f.week == nil {
		f.week = domain.WeekSchedule{}
	}
	f.week[rule.Weekday] = rule
	return nil
}

func (f *fakeRepo) GetDaysOff(ctx context.Context) ([]time.Time, error) { return f.daysOff, nil }

func (f *fakeRepo) AddDayOff(ctx context.Context, day time.Time) error {
	f.daysOff = append(f.daysOff, day)
	return nil
}

func (f *fakeRepo) RemoveDayOff(ctx context.Context, day time.Time) error {
	kept := f.daysOff[:0]
	for _, d := range f.daysOff {
		if !d.Equal(day) {
			kept = append(kept, d)
		}
	}
	f.daysOff = kept
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// 2026-09-14 - понедельник
var monday = time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

func TestGenerateDaySlots(t *testing.T) {
	repo := &fakeRepo{week: domain.DefaultWeekSchedule()}
	svc := NewService(repo, 60, nopLogger{})

	t.Run("full weekday grid excludes closing time", func(t *testing.T) {
		slots, err := svc.GenerateDaySlots(context.Background(), monday)
		require.NoError(t, err)

		require.Len(t, slots, 10)
		require.Equal(t, types.TimeString("10:00"), slots[0])
		require.Equal(t, types.TimeString("19:00"), slots[len(slots)-1])
		require.NotContains(t, slots, types.TimeString("20:00"))
	})

	t.Run("disabled weekday yields empty grid", func(t *testing.T) {
		sunday := monday.AddDate(0, 0, 6)
		slots, err := svc.GenerateDaySlots(context.Background(), sunday)
		require.NoError(t, err)
		require.Empty(t, slots)
	})

	t.Run("saturday uses its own end time", func(t *testing.T) {
		saturday := monday.AddDate(0, 0, 5)
		slots, err := svc.GenerateDaySlots(context.Background(), saturday)
		require.NoError(t, err)
		require.Len(t, slots, 8) // 10:00 .. 17:00
		require.Equal(t, types.TimeString("17:00"), slots[len(slots)-1])
	})
}

func TestGenerateDaySlotsDayOff(t *testing.T) {
	repo := &fakeRepo{week: domain.DefaultWeekSchedule()}
	svc := NewService(repo, 60, nopLogger{})

	require.NoError(t, svc.AddDayOff(context.Background(), monday))

	slots, err := svc.GenerateDaySlots(context.Background(), monday)
	require.NoError(t, err)
	require.Empty(t, slots)

	// Снятие пометки возвращает сетку
	require.NoError(t, svc.RemoveDayOff(context.Background(), monday))
	slots, err = svc.GenerateDaySlots(context.Background(), monday)
	require.NoError(t, err)
	require.Len(t, slots, 10)
}

func TestSetWorkHours(t *testing.T) {
	repo := &fakeRepo{week: domain.DefaultWeekSchedule()}
	svc := NewService(repo, 60, nopLogger{})

	t.Run("rejects unknown weekday", func(t *testing.T) {
		err := svc.SetWorkHours(context.Background(), &models.SetWorkHoursRequest{
			Weekday: "someday", Start: "10:00", End: "18:00", Enabled: true,
		})
		require.ErrorIs(t, err, ErrInvalidWeekday)
	})

	t.Run("rejects inverted interval", func(t *testing.T) {
		err := svc.SetWorkHours(context.Background(), &models.SetWorkHoursRequest{
			Weekday: "monday", Start: "18:00", End: "10:00", Enabled: true,
		})
		require.ErrorIs(t, err, ErrInvalidInterval)
	})

	t.Run("update invalidates cached template", func(t *testing.T) {
		_, err := svc.GenerateDaySlots(context.Background(), monday)
		require.NoError(t, err)

		err = svc.SetWorkHours(context.Background(), &models.SetWorkHoursRequest{
			Weekday: "monday", Start: "12:00", End: "15:00", Enabled: true,
		})
		require.NoError(t, err)

		slots, err := svc.GenerateDaySlots(context.Background(), monday)
		require.NoError(t, err)
		require.Equal(t, []types.TimeString{"12:00", "13:00", "14:00"}, slots)
	})
}

func TestWeekScheduleCaching(t *testing.T) {
	repo := &fakeRepo{week: domain.DefaultWeekSchedule()}
	svc := NewService(repo, 60, nopLogger{})

	for i := 0; i < 5; i++ {
		_, err := svc.GenerateDaySlots(context.Background(), monday)
		require.NoError(t, err)
	}

	require.Equal(t, 1, repo.weekQueries)
}

func TestEmptyTemplateFallsBackToDefault(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, 60, nopLogger{})

	resp, err := svc.GetSchedule(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Days, 7)
}
