package reschedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/avdeec/salon-booking-service/internal/domain"
	bookingRepo "github.com/avdeec/salon-booking-service/internal/infra/storage/booking"
	negotiationRepo "github.com/avdeec/salon-booking-service/internal/infra/storage/negotiation"
	"github.com/avdeec/salon-booking-service/internal/integrations/notify"
	"github.com/avdeec/salon-booking-service/internal/service/reschedule/models"
	"github.com/avdeec/salon-booking-service/pkg/ptr"
)

// Service реализует протокол согласования переноса записи.
//
// Перенос всегда живет парой записей: оригинал замораживается в статусе
// переноса, а предложенный слот занимает теневая запись. Связь между ними
// хранится в отдельной таблице с первичным ключом по оригиналу, поэтому
// на одну запись одновременно открыт максимум один перенос.
//
// Все мутации протокола выполняются под блокировкой по id оригинала
// и в serializable-транзакции: проигравший гонку accept/reject видит
// уже удаленную связь и получает ErrNegotiationNotFound.
type Service struct {
	bookingRepo     BookingRepository
	negotiationRepo NegotiationRepository
	availability    Availability
	txManager       TxManager
	locker          Locker
	mirror          Mirror
	notifier        Notifier
	masterID        string
	logger          Logger
}

// NewService создает новый экземпляр сервиса переносов
func NewService(
	bookingRepo BookingRepository,
	negotiationRepo NegotiationRepository,
	availability Availability,
	txManager TxManager,
	locker Locker,
	mirror Mirror,
	notifier Notifier,
	masterID string,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:     bookingRepo,
		negotiationRepo: negotiationRepo,
		availability:    availability,
		txManager:       txManager,
		locker:          locker,
		mirror:          mirror,
		notifier:        notifier,
		masterID:        masterID,
		logger:          logger,
	}
}

// Request открывает клиентский запрос на перенос записи на новый слот
func (s *Service) Request(ctx context.Context, req *models.ProposeRequest) (*models.RescheduleView, error) {
	s.logger.Info("Request: booking id=%s to %s %s by user=%s",
		req.BookingID, req.NewDate.Format(domain.DateFormat), req.NewTime, req.Actor.UserID)

	if req.Actor.IsMaster {
		return nil, ErrPermissionDenied
	}

	s.locker.Lock(req.BookingID)
	defer s.locker.Unlock(req.BookingID)

	var view *models.RescheduleView
	var original, shadow *domain.Booking
	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		var err error
		original, err = s.getBooking(ctx, "Request", req.BookingID)
		if err != nil {
			return err
		}

		if original.ClientID != req.Actor.UserID {
			s.logger.Warn("Request: user=%s does not own booking id=%s", req.Actor.UserID, req.BookingID)
			return ErrPermissionDenied
		}
		if !original.CanBeRescheduled() {
			s.logger.Warn("Request: booking id=%s in status=%s cannot be rescheduled", original.ID, original.Status)
			return ErrCannotReschedule
		}

		if err := s.ensureNoNegotiation(ctx, original.ID); err != nil {
			return err
		}
		if err := s.ensureSlotFree(ctx, req); err != nil {
			return err
		}

		shadow, err = s.createShadow(ctx, original, req, domain.StatusRescheduleRequested)
		if err != nil {
			return err
		}

		prior := original.Status
		if err := s.freezeOriginal(ctx, original, domain.StatusRescheduleRequested, prior); err != nil {
			return err
		}

		n, err := s.createNegotiation(ctx, original.ID, shadow.ID, domain.KindClientRequested)
		if err != nil {
			return err
		}

		view = models.NewRescheduleView(n, original, shadow)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.mirrorPair(ctx, original, shadow)
	s.notifyBestEffort(ctx, s.masterID, "reschedule", original.ID,
		fmt.Sprintf("Клиент %s просит перенести запись с %s %s на %s %s",
			original.ClientName, view.OldDate, view.OldTime, view.NewDate, view.NewTime))

	s.logger.Info("Request: negotiation opened, original=%s shadow=%s", original.ID, shadow.ID)
	return view, nil
}

// Offer открывает встречное предложение мастера о переносе.
// Открытый клиентский запрос по той же записи вытесняется: его теневая
// запись отклоняется, а исходный статус оригинала переносится в новое
// предложение.
func (s *Service) Offer(ctx context.Context, req *models.ProposeRequest) (*models.RescheduleView, error) {
	s.logger.Info("Offer: booking id=%s to %s %s by user=%s",
		req.BookingID, req.NewDate.Format(domain.DateFormat), req.NewTime, req.Actor.UserID)

	if !req.Actor.IsMaster {
		return nil, ErrPermissionDenied
	}

	s.locker.Lock(req.BookingID)
	defer s.locker.Unlock(req.BookingID)

	var view *models.RescheduleView
	var original, shadow *domain.Booking
	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		var err error
		original, err = s.getBooking(ctx, "Offer", req.BookingID)
		if err != nil {
			return err
		}
		if !original.CanBeOffered() {
			s.logger.Warn("Offer: booking id=%s in status=%s cannot be offered", original.ID, original.Status)
			return ErrCannotReschedule
		}

		prior := original.Status
		existing, err := s.negotiationRepo.GetByEitherID(ctx, original.ID)
		switch {
		case err == nil:
			// Тень открытого переноса сама переносу не подлежит
			if existing.ShadowID == original.ID {
				s.logger.Warn("Offer: booking id=%s is the shadow of an open negotiation", original.ID)
				return ErrAlreadyNegotiating
			}
			if existing.Kind == domain.KindMasterOffered {
				s.logger.Warn("Offer: booking id=%s already has an open master offer", original.ID)
				return ErrAlreadyNegotiating
			}
			// Вытесняем клиентский запрос, сохраняя исходный статус
			if original.PriorStatus != nil {
				prior = *original.PriorStatus
			}
			if err := s.supersede(ctx, existing); err != nil {
				return err
			}
		case errors.Is(err, negotiationRepo.ErrNegotiationNotFound):
			// Открытых переносов нет
		default:
			s.logger.Error("Offer: failed to check negotiation for booking id=%s: %v", original.ID, err)
			return fmt.Errorf("%w: Offer - repository error: %v", ErrInternal, err)
		}

		if err := s.ensureSlotFree(ctx, req); err != nil {
			return err
		}

		shadow, err = s.createShadow(ctx, original, req, domain.StatusRescheduleOffered)
		if err != nil {
			return err
		}

		if err := s.freezeOriginal(ctx, original, domain.StatusRescheduleOffered, prior); err != nil {
			return err
		}

		n, err := s.createNegotiation(ctx, original.ID, shadow.ID, domain.KindMasterOffered)
		if err != nil {
			return err
		}

		view = models.NewRescheduleView(n, original, shadow)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.mirrorPair(ctx, original, shadow)
	s.notifyBestEffort(ctx, original.ClientID, "reschedule", original.ID,
		fmt.Sprintf("Мастер предлагает перенести вашу запись с %s %s на %s %s",
			view.OldDate, view.OldTime, view.NewDate, view.NewTime))

	s.logger.Info("Offer: negotiation opened, original=%s shadow=%s", original.ID, shadow.ID)
	return view, nil
}

// Accept принимает открытый перенос: теневая запись подтверждается,
// оригинал отменяется, связь удаляется
func (s *Service) Accept(ctx context.Context, req *models.ResolveRequest) (*models.ResolveResponse, error) {
	s.logger.Info("Accept: shadow id=%s by user=%s", req.ShadowID, req.Actor.UserID)
	return s.resolve(ctx, req, true)
}

// Reject отклоняет открытый перенос: теневая запись отклоняется,
// оригинал возвращается в исходный статус, связь удаляется
func (s *Service) Reject(ctx context.Context, req *models.ResolveRequest) (*models.ResolveResponse, error) {
	s.logger.Info("Reject: shadow id=%s by user=%s", req.ShadowID, req.Actor.UserID)
	return s.resolve(ctx, req, false)
}

// CancelRequest отзывает собственный открытый перенос инициатора.
// Эффект совпадает с отклонением: теневая запись отклоняется,
// оригинал возвращается в исходный статус.
func (s *Service) CancelRequest(ctx context.Context, originalID string, actor models.Actor) (*models.ResolveResponse, error) {
	s.logger.Info("CancelRequest: original id=%s by user=%s", originalID, actor.UserID)

	s.locker.Lock(originalID)
	defer s.locker.Unlock(originalID)

	var resp *models.ResolveResponse
	var original, shadow *domain.Booking
	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		n, err := s.getNegotiationByOriginal(ctx, "CancelRequest", originalID)
		if err != nil {
			return err
		}

		// Отзывать может только инициатор
		initiator := domain.RoleClient
		if n.Kind == domain.KindMasterOffered {
			initiator = domain.RoleMaster
		}
		if actor.Role() != initiator {
			s.logger.Warn("CancelRequest: user=%s is not the initiator of negotiation original=%s", actor.UserID, originalID)
			return ErrPermissionDenied
		}

		original, shadow, err = s.loadPair(ctx, "CancelRequest", n)
		if err != nil {
			return err
		}
		if !actor.IsMaster && original.ClientID != actor.UserID {
			return ErrPermissionDenied
		}

		resp, err = s.closeRejected(ctx, "CancelRequest", n, original, shadow, nil)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.mirrorPair(ctx, original, shadow)

	s.logger.Info("CancelRequest: negotiation original=%s withdrawn", originalID)
	return resp, nil
}

// GetRelation возвращает открытый перенос по id оригинала или теневой записи
func (s *Service) GetRelation(ctx context.Context, id string, actor models.Actor) (*models.RescheduleView, error) {
	n, err := s.negotiationRepo.GetByEitherID(ctx, id)
	if err != nil {
		if errors.Is(err, negotiationRepo.ErrNegotiationNotFound) {
			return nil, ErrNegotiationNotFound
		}
		s.logger.Error("GetRelation: repository error for id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetRelation - repository error: %v", ErrInternal, err)
	}

	original, shadow, err := s.loadPair(ctx, "GetRelation", n)
	if err != nil {
		return nil, err
	}

	if !actor.IsMaster && original.ClientID != actor.UserID {
		s.logger.Warn("GetRelation: access denied for user=%s to negotiation original=%s", actor.UserID, n.OriginalID)
		return nil, ErrPermissionDenied
	}

	return models.NewRescheduleView(n, original, shadow), nil
}

// ListActive возвращает все открытые переносы, опционально по типу (панель мастера)
func (s *Service) ListActive(ctx context.Context, rawKind *string, actor models.Actor) (*models.RescheduleListResponse, error) {
	if !actor.IsMaster {
		return nil, ErrPermissionDenied
	}

	var kind *domain.NegotiationKind
	if rawKind != nil {
		parsed, ok := domain.ParseKind(*rawKind)
		if !ok {
			s.logger.Warn("ListActive: invalid kind=%s", *rawKind)
			return nil, fmt.Errorf("%w: invalid kind", ErrInvalidInput)
		}
		kind = &parsed
	}

	negotiations, err := s.negotiationRepo.List(ctx, kind)
	if err != nil {
		s.logger.Error("ListActive: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListActive - repository error: %v", ErrInternal, err)
	}

	resp := &models.RescheduleListResponse{Reschedules: make([]*models.RescheduleView, 0, len(negotiations))}
	for _, n := range negotiations {
		original, shadow, err := s.loadPair(ctx, "ListActive", n)
		if err != nil {
			// Связь могла закрыться между списком и чтением пары
			if errors.Is(err, ErrBookingNotFound) {
				continue
			}
			return nil, err
		}
		resp.Reschedules = append(resp.Reschedules, models.NewRescheduleView(n, original, shadow))
	}
	resp.Total = len(resp.Reschedules)

	return resp, nil
}

// Закрытие переноса

func (s *Service) resolve(ctx context.Context, req *models.ResolveRequest, accept bool) (*models.ResolveResponse, error) {
	op := "Reject"
	if accept {
		op = "Accept"
	}

	// Связь читается без блокировки только ради ключа: внутри транзакции
	// она перечитывается, и проигравший гонку получает NotFound
	probe, err := s.getNegotiationByShadow(ctx, op, req.ShadowID)
	if err != nil {
		return nil, err
	}

	s.locker.Lock(probe.OriginalID)
	defer s.locker.Unlock(probe.OriginalID)

	var resp *models.ResolveResponse
	var original, shadow *domain.Booking
	txErr := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		n, err := s.getNegotiationByShadow(ctx, op, req.ShadowID)
		if err != nil {
			return err
		}

		original, shadow, err = s.loadPair(ctx, op, n)
		if err != nil {
			return err
		}

		// Закрывает перенос противоположная сторона
		if !n.ResolvableBy(req.Actor.Role()) {
			s.logger.Warn("%s: user=%s has wrong role for negotiation original=%s", op, req.Actor.UserID, n.OriginalID)
			return ErrPermissionDenied
		}
		if !req.Actor.IsMaster && original.ClientID != req.Actor.UserID {
			return ErrPermissionDenied
		}

		if accept {
			resp, err = s.closeAccepted(ctx, op, n, original, shadow)
		} else {
			resp, err = s.closeRejected(ctx, op, n, original, shadow, rejectionComment(req))
		}
		return err
	})
	if txErr != nil {
		return nil, txErr
	}

	s.mirrorPair(ctx, original, shadow)
	s.notifyResolution(ctx, probe, original, shadow, accept)

	s.logger.Info("%s: negotiation original=%s closed, booking=%s status=%s", op, original.ID, resp.BookingID, resp.Status)
	return resp, nil
}

func (s *Service) closeAccepted(ctx context.Context, op string, n *domain.Negotiation, original, shadow *domain.Booking) (*models.ResolveResponse, error) {
	if err := s.updateStatus(ctx, op, shadow, domain.StatusConfirmed, nil); err != nil {
		return nil, err
	}
	if err := s.updateStatus(ctx, op, original, domain.StatusCancelled, nil); err != nil {
		return nil, err
	}
	if err := s.deleteNegotiation(ctx, op, n.OriginalID); err != nil {
		return nil, err
	}
	return &models.ResolveResponse{
		BookingID: shadow.ID,
		Status:    string(shadow.Status),
		Date:      shadow.Date.Format(domain.DateFormat),
		Time:      shadow.Time.String(),
	}, nil
}

func (s *Service) closeRejected(ctx context.Context, op string, n *domain.Negotiation, original, shadow *domain.Booking, comment *string) (*models.ResolveResponse, error) {
	restored := domain.StatusPending
	if original.PriorStatus != nil {
		restored = *original.PriorStatus
	} else {
		s.logger.Warn("%s: booking id=%s frozen without prior status, restoring to pending", op, original.ID)
	}

	if err := s.updateStatus(ctx, op, shadow, domain.StatusRejected, nil); err != nil {
		return nil, err
	}
	if err := s.updateStatus(ctx, op, original, restored, comment); err != nil {
		return nil, err
	}
	if err := s.deleteNegotiation(ctx, op, n.OriginalID); err != nil {
		return nil, err
	}
	return &models.ResolveResponse{
		BookingID: original.ID,
		Status:    string(original.Status),
		Date:      original.Date.Format(domain.DateFormat),
		Time:      original.Time.String(),
	}, nil
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

func (s *Service) loadPair(ctx context.Context, op string, n *domain.Negotiation) (*domain.Booking, *domain.Booking, error) {
	original, err := s.getBooking(ctx, op, n.OriginalID)
	if err != nil {
		return nil, nil, err
	}
	shadow, err := s.getBooking(ctx, op, n.ShadowID)
	if err != nil {
		return nil, nil, err
	}
	return original, shadow, nil
}

func (s *Service) getNegotiationByShadow(ctx context.Context, op, shadowID string) (*domain.Negotiation, error) {
	n, err := s.negotiationRepo.GetByShadowID(ctx, shadowID)
	if err != nil {
		if errors.Is(err, negotiationRepo.ErrNegotiationNotFound) {
			s.logger.Warn("%s: negotiation for shadow id=%s not found", op, shadowID)
			return nil, ErrNegotiationNotFound
		}
		s.logger.Error("%s: repository error for shadow id=%s: %v", op, shadowID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return n, nil
}

func (s *Service) getNegotiationByOriginal(ctx context.Context, op, originalID string) (*domain.Negotiation, error) {
	n, err := s.negotiationRepo.GetByOriginalID(ctx, originalID)
	if err != nil {
		if errors.Is(err, negotiationRepo.ErrNegotiationNotFound) {
			s.logger.Warn("%s: negotiation for original id=%s not found", op, originalID)
			return nil, ErrNegotiationNotFound
		}
		s.logger.Error("%s: repository error for original id=%s: %v", op, originalID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return n, nil
}

func (s *Service) ensureNoNegotiation(ctx context.Context, originalID string) error {
	_, err := s.negotiationRepo.GetByOriginalID(ctx, originalID)
	switch {
	case err == nil:
		s.logger.Warn("Request: booking id=%s already has an open negotiation", originalID)
		return ErrAlreadyNegotiating
	case errors.Is(err, negotiationRepo.ErrNegotiationNotFound):
		return nil
	default:
		s.logger.Error("Request: failed to check negotiation for booking id=%s: %v", originalID, err)
		return fmt.Errorf("%w: Request - repository error: %v", ErrInternal, err)
	}
}

func (s *Service) ensureSlotFree(ctx context.Context, req *models.ProposeRequest) error {
	free, err := s.availability.IsSlotFree(ctx, req.NewDate, req.NewTime)
	if err != nil {
		s.logger.Error("ensureSlotFree: availability check failed for %s %s: %v",
			req.NewDate.Format(domain.DateFormat), req.NewTime, err)
		return fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
	}
	if !free {
		s.logger.Warn("ensureSlotFree: slot %s %s is not available", req.NewDate.Format(domain.DateFormat), req.NewTime)
		return ErrSlotUnavailable
	}
	return nil
}

// createShadow создает теневую запись сразу замороженной в статусе переноса:
// пока согласование открыто, обе записи пары недоступны прямому жизненному
// циклу. PriorStatus тени формальный (pending) и никогда не восстанавливается:
// при закрытии тень уходит в confirmed либо rejected.
func (s *Service) createShadow(ctx context.Context, original *domain.Booking, req *models.ProposeRequest, frozen domain.BookingStatus) (*domain.Booking, error) {
	prior := domain.StatusPending
	shadow := &domain.Booking{
		ID:          uuid.NewString(),
		ClientID:    original.ClientID,
		ClientName:  original.ClientName,
		Phone:       original.Phone,
		Username:    original.Username,
		Date:        req.NewDate,
		Time:        req.NewTime,
		Service:     original.Service,
		Status:      frozen,
		PriorStatus: &prior,
	}
	created, err := s.bookingRepo.Create(ctx, shadow)
	if err != nil {
		s.logger.Error("createShadow: failed to create shadow for booking id=%s: %v", original.ID, err)
		return nil, fmt.Errorf("%w: failed to create shadow booking: %v", ErrInternal, err)
	}
	return created, nil
}

func (s *Service) freezeOriginal(ctx context.Context, original *domain.Booking, frozen, prior domain.BookingStatus) error {
	if err := s.bookingRepo.FreezeStatus(ctx, original.ID, frozen, prior, nil); err != nil {
		s.logger.Error("freezeOriginal: failed to freeze booking id=%s: %v", original.ID, err)
		return fmt.Errorf("%w: failed to freeze booking: %v", ErrInternal, err)
	}
	original.Status = frozen
	original.PriorStatus = &prior
	return nil
}

func (s *Service) createNegotiation(ctx context.Context, originalID, shadowID string, kind domain.NegotiationKind) (*domain.Negotiation, error) {
	n := &domain.Negotiation{
		OriginalID: originalID,
		ShadowID:   shadowID,
		Kind:       kind,
	}
	if err := s.negotiationRepo.Create(ctx, n); err != nil {
		if errors.Is(err, negotiationRepo.ErrAlreadyExists) {
			return nil, ErrAlreadyNegotiating
		}
		s.logger.Error("createNegotiation: failed for original=%s shadow=%s: %v", originalID, shadowID, err)
		return nil, fmt.Errorf("%w: failed to create negotiation: %v", ErrInternal, err)
	}
	return n, nil
}

func (s *Service) deleteNegotiation(ctx context.Context, op, originalID string) error {
	if err := s.negotiationRepo.Delete(ctx, originalID); err != nil {
		if errors.Is(err, negotiationRepo.ErrNegotiationNotFound) {
			return ErrNegotiationNotFound
		}
		s.logger.Error("%s: failed to delete negotiation original=%s: %v", op, originalID, err)
		return fmt.Errorf("%w: %s - failed to delete negotiation: %v", ErrInternal, op, err)
	}
	return nil
}

// supersede отклоняет теневую запись вытесняемого клиентского запроса
// и удаляет его связь; оригинал замораживается заново вызывающей стороной
func (s *Service) supersede(ctx context.Context, n *domain.Negotiation) error {
	shadow, err := s.getBooking(ctx, "Offer", n.ShadowID)
	if err != nil {
		return err
	}
	if err := s.updateStatus(ctx, "Offer", shadow, domain.StatusRejected, nil); err != nil {
		return err
	}
	if err := s.deleteNegotiation(ctx, "Offer", n.OriginalID); err != nil {
		return err
	}
	s.logger.Info("Offer: superseded client request for booking id=%s, old shadow=%s rejected", n.OriginalID, n.ShadowID)
	return nil
}

func (s *Service) updateStatus(ctx context.Context, op string, b *domain.Booking, status domain.BookingStatus, comment *string) error {
	if err := s.bookingRepo.UpdateStatus(ctx, b.ID, status, comment); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("%s: failed to update booking id=%s to status=%s: %v", op, b.ID, status, err)
		return fmt.Errorf("%w: %s - failed to update booking status: %v", ErrInternal, op, err)
	}
	b.Status = status
	b.PriorStatus = nil
	if comment != nil {
		b.MasterComment = comment
	}
	return nil
}

// rejectionComment формирует комментарий восстановленной записи при отклонении
func rejectionComment(req *models.ResolveRequest) *string {
	if req.Reason == "" {
		return nil
	}
	rejectedBy := "клиент"
	if req.Actor.IsMaster {
		rejectedBy = "мастер"
	}
	return ptr.Ptr(fmt.Sprintf("Перенос отклонен (%s): %s", rejectedBy, req.Reason))
}

func (s *Service) mirrorPair(ctx context.Context, original, shadow *domain.Booking) {
	if original != nil {
		s.mirror.UpsertBooking(ctx, original)
	}
	if shadow != nil {
		s.mirror.UpsertBooking(ctx, shadow)
	}
}

func (s *Service) notifyResolution(ctx context.Context, n *domain.Negotiation, original, shadow *domain.Booking, accept bool) {
	// Уведомляется инициатор переноса - сторона, противоположная закрывшей
	recipient := s.masterID
	if n.Kind == domain.KindClientRequested {
		recipient = original.ClientID
	}

	verdict := "отклонен"
	if accept {
		verdict = "принят"
	}
	text := fmt.Sprintf("Перенос записи %s: итоговый слот %s %s", verdict,
		shadow.Date.Format(domain.DateFormat), shadow.Time)
	if !accept {
		text = fmt.Sprintf("Перенос записи %s: запись остается на %s %s", verdict,
			original.Date.Format(domain.DateFormat), original.Time)
	}

	s.notifyBestEffort(ctx, recipient, "reschedule", original.ID, text)
}

func (s *Service) notifyBestEffort(ctx context.Context, chatID, event, bookingID, text string) {
	msg := &notify.Message{ChatID: chatID, Event: event, BookingID: bookingID, Text: text}
	if err := s.notifier.Send(ctx, msg); err != nil {
		s.logger.Warn("notify: failed to send %s notification to %s: %v", event, chatID, err)
	}
}
