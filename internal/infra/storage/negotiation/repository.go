package negotiation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/avdeec/salon-booking-service/internal/domain"
	"github.com/avdeec/salon-booking-service/pkg/dbmetrics"
	"github.com/avdeec/salon-booking-service/pkg/psqlbuilder"
)

// Repository репозиторий связей переноса (оригинальная запись <-> теневая)
// Первичный ключ по original_id гарантирует не более одного открытого
// переноса на запись
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория связей переноса
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет связь переноса
func (r *Repository) Create(ctx context.Context, n *domain.Negotiation) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("negotiations").
		Columns("original_id", "shadow_id", "kind").
		Values(n.OriginalID, n.ShadowID, n.Kind).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrAlreadyExists
		}
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	n.CreatedAt = createdAt.Time
	return nil
}

// GetByOriginalID находит связь по ID оригинальной записи
func (r *Repository) GetByOriginalID(ctx context.Context, originalID string) (*domain.Negotiation, error) {
	return r.getBy(ctx, squirrel.Eq{"original_id": originalID})
}

// GetByShadowID находит связь по ID теневой записи
func (r *Repository) GetByShadowID(ctx context.Context, shadowID string) (*domain.Negotiation, error) {
	return r.getBy(ctx, squirrel.Eq{"shadow_id": shadowID})
}

// GetByEitherID находит связь по ID любой из двух записей
func (r *Repository) GetByEitherID(ctx context.Context, id string) (*domain.Negotiation, error) {
	return r.getBy(ctx, squirrel.Or{
		squirrel.Eq{"original_id": id},
		squirrel.Eq{"shadow_id": id},
	})
}

func (r *Repository) getBy(ctx context.Context, cond squirrel.Sqlizer) (*domain.Negotiation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("original_id", "shadow_id", "kind", "created_at").
		From("negotiations").
		Where(cond).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getBy - build select query: %v", ErrBuildQuery, err)
	}

	var n domain.Negotiation
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&n.OriginalID,
		&n.ShadowID,
		&n.Kind,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNegotiationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getBy - scan negotiation: %v", ErrScanRow, err)
	}

	n.CreatedAt = createdAt.Time
	return &n, nil
}

// Delete удаляет связь переноса по ID оригинальной записи
// Возвращает ErrNegotiationNotFound, если связь уже удалена -
// на этом строится сериализация конкурирующих accept/reject
func (r *Repository) Delete(ctx context.Context, originalID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("negotiations").
		Where(squirrel.Eq{"original_id": originalID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrNegotiationNotFound
	}

	return nil
}

// List возвращает все открытые переносы, опционально фильтруя по инициатору,
// отсортированные по дате создания (сначала новые)
func (r *Repository) List(ctx context.Context, kind *domain.NegotiationKind) ([]*domain.Negotiation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("original_id", "shadow_id", "kind", "created_at").
		From("negotiations").
		OrderBy("created_at DESC")

	if kind != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"kind": *kind})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	negotiations := make([]*domain.Negotiation, 0)
	for rows.Next() {
		var n domain.Negotiation
		var createdAt sql.NullTime

		if err := rows.Scan(&n.OriginalID, &n.ShadowID, &n.Kind, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		n.CreatedAt = createdAt.Time
		negotiations = append(negotiations, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return negotiations, nil
}
