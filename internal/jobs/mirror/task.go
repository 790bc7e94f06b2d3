package mirror

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"github.com/avdeec/salon-booking-service/internal/domain"
	"github.com/avdeec/salon-booking-service/internal/integrations/sheets"
)

// TypeUpsert тип задачи зеркалирования записи во внешнюю таблицу
const TypeUpsert = "mirror:upsert"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NewUpsertTask создает задачу зеркалирования строки
func NewUpsertTask(row *sheets.Row) (*asynq.Task, error) {
	payload, err := json.Marshal(row)
	if err != nil {
		return nil, fmt.Errorf("mirror: marshal upsert payload: %w", err)
	}
	return asynq.NewTask(TypeUpsert, payload,
		asynq.MaxRetry(5),
		asynq.Timeout(30*time.Second),
	), nil
}

// Enqueuer ставит задачи зеркалирования в очередь
// Постановка best-effort: ошибка очереди логируется и не прерывает
// операцию, которая её вызвала
type Enqueuer struct {
	client *asynq.Client
	log    Logger
}

// NewEnqueuer создает новый экземпляр постановщика задач зеркалирования
func NewEnqueuer(client *asynq.Client, log Logger) *Enqueuer {
	return &Enqueuer{client: client, log: log}
}

// UpsertBooking ставит в очередь зеркалирование текущего состояния записи
func (e *Enqueuer) UpsertBooking(ctx context.Context, b *domain.Booking) {
	row := &sheets.Row{
		BookingID:  b.ID,
		ClientName: b.ClientName,
		Phone:      b.Phone,
		Date:       b.Date.Format(domain.DateFormat),
		Time:       b.Time.String(),
		Service:    b.Service,
		Status:     string(b.Status),
		UpdatedAt:  time.Now().Format(time.RFC3339),
	}
	if b.MasterComment != nil {
		row.Comment = *b.MasterComment
	}

	task, err := NewUpsertTask(row)
	if err != nil {
		e.log.Warn("Mirror: failed to build upsert task for booking %s: %v", b.ID, err)
		return
	}

	if _, err := e.client.EnqueueContext(ctx, task); err != nil {
		e.log.Warn("Mirror: failed to enqueue upsert for booking %s: %v", b.ID, err)
		return
	}

	e.log.Info("Mirror: enqueued upsert for booking %s (status=%s)", b.ID, b.Status)
}
