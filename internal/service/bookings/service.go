package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/avdeec/salon-booking-service/internal/domain"
	bookingRepo "github.com/avdeec/salon-booking-service/internal/infra/storage/booking"
	"github.com/avdeec/salon-booking-service/internal/integrations/notify"
	"github.com/avdeec/salon-booking-service/internal/service/bookings/models"
	"github.com/avdeec/salon-booking-service/pkg/ptr"
)

// Service сервис для работы с записями
// Хранилище не проверяет переходы статусов - прямой жизненный цикл
// (подтверждение, выполнение, отмена, отклонение) валидируется здесь;
// статусы переноса принадлежат сервису reschedule и отсюда недостижимы
type Service struct {
	bookingRepo BookingRepository
	mirror      Mirror
	notifier    Notifier
	logger      Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	bookingRepo BookingRepository,
	mirror Mirror,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		mirror:      mirror,
		notifier:    notifier,
		logger:      logger,
	}
}

// GetByID получает запись по ID
// Клиент видит только свои записи, мастер - любые
func (s *Service) GetByID(ctx context.Context, id string, actor models.Actor) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for user=%s", id, actor.UserID)

	b, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if !actor.IsMaster && b.ClientID != actor.UserID {
		s.logger.Warn("GetByID: access denied for user=%s to booking id=%s", actor.UserID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(b), nil
}

// ListByClient получает историю записей клиента, отсортированную по (дата, время)
// Опционально фильтрует по статусу
func (s *Service) ListByClient(ctx context.Context, req *models.ListByClientRequest) (*models.BookingListResponse, error) {
	s.logger.Info("ListByClient: fetching bookings for client=%s, status=%v", req.ClientID, req.Status)

	if !req.Actor.IsMaster && req.ClientID != req.Actor.UserID {
		s.logger.Warn("ListByClient: access denied for user=%s to client=%s", req.Actor.UserID, req.ClientID)
		return nil, ErrAccessDenied
	}

	var status *domain.BookingStatus
	if req.Status != nil {
		parsed, err := domain.ParseStatus(*req.Status)
		if err != nil {
			s.logger.Warn("ListByClient: invalid status=%s for client=%s", *req.Status, req.ClientID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		status = &parsed
	}

	bookings, err := s.bookingRepo.GetByClient(ctx, req.ClientID, status)
	if err != nil {
		s.logger.Error("ListByClient: repository error for client=%s: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: ListByClient - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByClient: fetched %d bookings for client=%s", len(bookings), req.ClientID)
	return models.FromDomainBookingList(bookings), nil
}

// ListByStatus получает все записи в указанном статусе (панель мастера)
func (s *Service) ListByStatus(ctx context.Context, rawStatus string, actor models.Actor) (*models.BookingListResponse, error) {
	s.logger.Info("ListByStatus: status=%s, user=%s", rawStatus, actor.UserID)

	if !actor.IsMaster {
		return nil, ErrAccessDenied
	}

	status, err := domain.ParseStatus(rawStatus)
	if err != nil {
		s.logger.Warn("ListByStatus: invalid status=%s", rawStatus)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByStatus(ctx, status)
	if err != nil {
		s.logger.Error("ListByStatus: repository error for status=%s: %v", status, err)
		return nil, fmt.Errorf("%w: ListByStatus - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// Statistics возвращает количество записей по каждому статусу
func (s *Service) Statistics(ctx context.Context, actor models.Actor) (*models.StatisticsResponse, error) {
	if !actor.IsMaster {
		return nil, ErrAccessDenied
	}

	counts, err := s.bookingRepo.CountByStatus(ctx)
	if err != nil {
		s.logger.Error("Statistics: repository error: %v", err)
		return nil, fmt.Errorf("%w: Statistics - repository error: %v", ErrInternal, err)
	}

	resp := &models.StatisticsResponse{ByStatus: make(map[string]int, len(domain.AllStatuses))}
	for _, status := range domain.AllStatuses {
		resp.ByStatus[string(status)] = counts[status]
		resp.Total += counts[status]
	}

	return resp, nil
}

// UpdateStatus выполняет прямой переход статуса (только мастер)
// Допустимые переходы: pending -> confirmed|rejected, confirmed -> completed
// Записи в открытом переносе недоступны для прямых переходов
func (s *Service) UpdateStatus(ctx context.Context, bookingID string, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: booking id=%s to status=%s by user=%s", bookingID, req.Status, req.Actor.UserID)

	if !req.Actor.IsMaster {
		s.logger.Warn("UpdateStatus: access denied for user=%s", req.Actor.UserID)
		return nil, ErrAccessDenied
	}

	newStatus, err := domain.ParseStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%s", req.Status, bookingID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidStatus)
	}

	// Статусы переноса устанавливает только сервис reschedule
	if newStatus == domain.StatusRescheduleRequested || newStatus == domain.StatusRescheduleOffered {
		s.logger.Warn("UpdateStatus: reschedule status %s not allowed for direct transition", newStatus)
		return nil, ErrInvalidTransition
	}

	b, err := s.getBooking(ctx, "UpdateStatus", bookingID)
	if err != nil {
		return nil, err
	}

	if b.IsFrozen() {
		s.logger.Warn("UpdateStatus: booking id=%s is frozen in an open reschedule", bookingID)
		return nil, ErrBookingFrozen
	}

	if !b.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for booking id=%s", b.Status, newStatus, bookingID)
		return nil, ErrInvalidTransition
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus, req.Comment); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	b.Status = newStatus
	b.PriorStatus = nil
	if req.Comment != nil {
		b.MasterComment = req.Comment
	}

	s.afterMutation(ctx, b)

	s.logger.Info("UpdateStatus: booking id=%s updated to status=%s", bookingID, newStatus)
	return models.FromDomainBooking(b), nil
}

// Cancel отменяет запись
// Клиент может отменить свою запись в статусе pending/confirmed,
// мастер - любую не отмененную запись вне открытого переноса
func (s *Service) Cancel(ctx context.Context, bookingID string, req *models.CancelRequest) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%s by user=%s", bookingID, req.Actor.UserID)

	b, err := s.getBooking(ctx, "Cancel", bookingID)
	if err != nil {
		return nil, err
	}

	if b.IsFrozen() {
		s.logger.Warn("Cancel: booking id=%s is frozen in an open reschedule", bookingID)
		return nil, ErrBookingFrozen
	}

	if req.Actor.IsMaster {
		if b.Status == domain.StatusCancelled {
			return nil, ErrCannotCancel
		}
	} else {
		if b.ClientID != req.Actor.UserID {
			s.logger.Warn("Cancel: access denied for user=%s to booking id=%s", req.Actor.UserID, bookingID)
			return nil, ErrAccessDenied
		}
		if !b.CanBeCancelledByClient() {
			s.logger.Warn("Cancel: booking id=%s cannot be cancelled, status=%s", bookingID, b.Status)
			return nil, ErrCannotCancel
		}
	}

	var comment *string
	if req.Reason != "" {
		comment = ptr.Ptr(req.Reason)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusCancelled, comment); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	b.Status = domain.StatusCancelled
	b.PriorStatus = nil
	if comment != nil {
		b.MasterComment = comment
	}

	s.afterMutation(ctx, b)

	s.logger.Info("Cancel: booking id=%s cancelled", bookingID)
	return models.FromDomainBooking(b), nil
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, op, id string) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return b, nil
}

// afterMutation зеркалирует запись и уведомляет клиента об изменении статуса
// Обе операции best-effort и выполняются после коммита основной мутации
func (s *Service) afterMutation(ctx context.Context, b *domain.Booking) {
	s.mirror.UpsertBooking(ctx, b)

	msg := &notify.Message{
		ChatID:    b.ClientID,
		Event:     "status_change",
		BookingID: b.ID,
		Text: fmt.Sprintf("Статус вашей записи на %s %s изменен: %s",
			b.Date.Format(domain.DateFormat), b.Time, statusText(b.Status)),
	}
	if err := s.notifier.Send(ctx, msg); err != nil {
		s.logger.Warn("afterMutation: failed to notify client %s about booking %s: %v", b.ClientID, b.ID, err)
	}
}

func statusText(status domain.BookingStatus) string {
	switch status {
	case domain.StatusConfirmed:
		return "подтверждена"
	case domain.StatusCompleted:
		return "выполнена"
	case domain.StatusCancelled:
		return "отменена"
	case domain.StatusRejected:
		return "отклонена"
	default:
		return string(status)
	}
}
