package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/avdeec/salon-booking-service/internal/domain"
	"github.com/avdeec/salon-booking-service/pkg/dbmetrics"
	"github.com/avdeec/salon-booking-service/pkg/psqlbuilder"
)

// Repository репозиторий недельного шаблона рабочих часов и выходных дат
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWeekSchedule возвращает шаблон рабочих часов по всем дням недели
func (r *Repository) GetWeekSchedule(ctx context.Context) (domain.WeekSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("weekday", "start_time", "end_time", "enabled").
		From("work_schedule").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWeekSchedule - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeekSchedule - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	schedule := domain.WeekSchedule{}
	for rows.Next() {
		var rule domain.DayRule
		if err := rows.Scan(&rule.Weekday, &rule.Start, &rule.End, &rule.Enabled); err != nil {
			return nil, fmt.Errorf("%w: GetWeekSchedule - scan row: %v", ErrScanRow, err)
		}
		schedule[rule.Weekday] = rule
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWeekSchedule - rows error: %v", ErrScanRow, err)
	}

	return schedule, nil
}

// UpsertDayRule записывает рабочие часы для дня недели
func (r *Repository) UpsertDayRule(ctx context.Context, rule domain.DayRule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("work_schedule").
		Columns("weekday", "start_time", "end_time", "enabled").
		Values(rule.Weekday, rule.Start, rule.End, rule.Enabled).
		Suffix("ON CONFLICT (weekday) DO UPDATE SET start_time = EXCLUDED.start_time, end_time = EXCLUDED.end_time, enabled = EXCLUDED.enabled, updated_at = NOW()").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpsertDayRule - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpsertDayRule - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetDaysOff возвращает множество явных выходных дат
func (r *Repository) GetDaysOff(ctx context.Context) ([]time.Time, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("day").
		From("days_off").
		OrderBy("day ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetDaysOff - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetDaysOff - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	days := make([]time.Time, 0)
	for rows.Next() {
		var day time.Time
		if err := rows.Scan(&day); err != nil {
			return nil, fmt.Errorf("%w: GetDaysOff - scan day: %v", ErrScanRow, err)
		}
		days = append(days, day)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetDaysOff - rows error: %v", ErrScanRow, err)
	}

	return days, nil
}

// AddDayOff помечает дату выходной; повторная пометка не ошибка
func (r *Repository) AddDayOff(ctx context.Context, day time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("days_off").
		Columns("day").
		Values(day.Format(domain.DateFormat)).
		Suffix("ON CONFLICT (day) DO NOTHING").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AddDayOff - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: AddDayOff - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// RemoveDayOff снимает пометку выходного с даты
func (r *Repository) RemoveDayOff(ctx context.Context, day time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("days_off").
		Where(squirrel.Eq{"day": day.Format(domain.DateFormat)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: RemoveDayOff - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: RemoveDayOff - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}
