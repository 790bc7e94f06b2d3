package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/avdeec/salon-booking-service/internal/domain"
	"github.com/avdeec/salon-booking-service/pkg/dbmetrics"
	"github.com/avdeec/salon-booking-service/pkg/psqlbuilder"
	"github.com/avdeec/salon-booking-service/pkg/types"
)

var bookingColumns = []string{
	"id",
	"client_id",
	"client_name",
	"phone",
	"username",
	"booking_date",
	"start_time",
	"service",
	"status",
	"prior_status",
	"master_comment",
	"created_at",
	"status_updated_at",
}

// Repository репозиторий для работы с записями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую запись; id генерируется вызывающим слоем
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"client_id",
			"client_name",
			"phone",
			"username",
			"booking_date",
			"start_time",
			"service",
			"status",
			"prior_status",
			"master_comment",
		).
		Values(
			b.ID,
			b.ClientID,
			b.ClientName,
			b.Phone,
			b.Username,
			b.Date,
			b.Time,
			b.Service,
			b.Status,
			priorStatusValue(b.PriorStatus),
			b.MasterComment,
		).
		Suffix("RETURNING created_at, status_updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, statusUpdatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &statusUpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrDuplicateID
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.StatusUpdatedAt = statusUpdatedAt.Time

	return b, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// GetByClient получает записи клиента, отсортированные по (дата, время) ASC
// Опционально фильтрует по статусу
func (r *Repository) GetByClient(ctx context.Context, clientID string, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"client_id": clientID}).
		OrderBy("booking_date ASC, start_time ASC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByClient - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByClient - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetByStatus получает все записи со статусом status, отсортированные по (дата, время) ASC
func (r *Repository) GetByStatus(ctx context.Context, status domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"status": status}).
		OrderBy("booking_date ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByStatus - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStatus - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetOccupiedTimes возвращает занятые времена на дату: start_time всех записей,
// чей статус входит в statuses
func (r *Repository) GetOccupiedTimes(ctx context.Context, date time.Time, statuses []domain.BookingStatus) ([]types.TimeString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	statusStrings := make([]string, len(statuses))
	for i, s := range statuses {
		statusStrings[i] = string(s)
	}

	query, args, err := psqlbuilder.Select("start_time").
		Options("DISTINCT").
		From("bookings").
		Where(squirrel.Eq{"booking_date": date.Format(domain.DateFormat)}).
		Where(squirrel.Eq{"status": statusStrings}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOccupiedTimes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOccupiedTimes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	times := make([]types.TimeString, 0)
	for rows.Next() {
		var t types.TimeString
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("%w: GetOccupiedTimes - scan start_time: %v", ErrScanRow, err)
		}
		times = append(times, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetOccupiedTimes - rows error: %v", ErrScanRow, err)
	}

	return times, nil
}

// UpdateStatus безусловно устанавливает статус и сбрасывает prior_status
// Правомерность перехода проверяет вызывающий слой, не хранилище
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus, comment *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("prior_status", nil).
		Set("status_updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if comment != nil {
		updateBuilder = updateBuilder.Set("master_comment", *comment)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// FreezeStatus переводит запись в статус открытого переноса, сохраняя
// prior_status для восстановления при отклонении
func (r *Repository) FreezeStatus(ctx context.Context, id string, frozen domain.BookingStatus, prior domain.BookingStatus, comment *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Set("status", frozen).
		Set("prior_status", prior).
		Set("status_updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if comment != nil {
		updateBuilder = updateBuilder.Set("master_comment", *comment)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: FreezeStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: FreezeStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: FreezeStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// CountByStatus возвращает количество записей в каждом статусе
func (r *Repository) CountByStatus(ctx context.Context) (map[domain.BookingStatus]int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("status", "COUNT(*)").
		From("bookings").
		GroupBy("status").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CountByStatus - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountByStatus - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make(map[domain.BookingStatus]int)
	for rows.Next() {
		var status domain.BookingStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("%w: CountByStatus - scan row: %v", ErrScanRow, err)
		}
		counts[status] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountByStatus - rows error: %v", ErrScanRow, err)
	}

	return counts, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var priorStatus sql.NullString
	var createdAt, statusUpdatedAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.ClientID,
		&b.ClientName,
		&b.Phone,
		&b.Username,
		&b.Date,
		&b.Time,
		&b.Service,
		&b.Status,
		&priorStatus,
		&b.MasterComment,
		&createdAt,
		&statusUpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if priorStatus.Valid {
		prior := domain.BookingStatus(priorStatus.String)
		b.PriorStatus = &prior
	}
	b.CreatedAt = createdAt.Time
	b.StatusUpdatedAt = statusUpdatedAt.Time

	return &b, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

func priorStatusValue(prior *domain.BookingStatus) interface{} {
	if prior == nil {
		return nil
	}
	return string(*prior)
}
