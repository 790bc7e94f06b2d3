package mirror

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/avdeec/salon-booking-service/internal/integrations/sheets"
)

// SheetsClient интерфейс клиента табличного зеркала
type SheetsClient interface {
	UpsertRow(ctx context.Context, row *sheets.Row) error
}

// Handler обработчик задач зеркалирования из очереди
type Handler struct {
	sheets SheetsClient
	log    Logger
}

// NewHandler создает новый экземпляр обработчика зеркалирования
func NewHandler(sheetsClient SheetsClient, log Logger) *Handler {
	return &Handler{sheets: sheetsClient, log: log}
}

// ProcessTask доставляет строку во внешнюю таблицу
// Ошибка возвращается asynq для повторной попытки; после исчерпания
// попыток задача остается в архиве очереди
func (h *Handler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var row sheets.Row
	if err := json.Unmarshal(task.Payload(), &row); err != nil {
		h.log.Error("Mirror: invalid upsert payload: %v", err)
		// Некорректный payload ретраить бессмысленно
		return fmt.Errorf("mirror: unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}

	if err := h.sheets.UpsertRow(ctx, &row); err != nil {
		h.log.Warn("Mirror: upsert for booking %s failed, will retry: %v", row.BookingID, err)
		return err
	}

	h.log.Info("Mirror: booking %s mirrored (status=%s)", row.BookingID, row.Status)
	return nil
}
