package create_booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/avdeec/salon-booking-service/internal/domain"
	"github.com/avdeec/salon-booking-service/internal/integrations/notify"
	"github.com/avdeec/salon-booking-service/pkg/types"
)

// Usecase создает новую запись.
// Проверка занятости слота и вставка выполняются в одной
// serializable-транзакции: из двух конкурентных запросов на один
// слот коммитится ровно один.
type Usecase struct {
	bookingRepo  BookingRepository
	schedule     ScheduleProvider
	txManager    TxManager
	mirror       Mirror
	notifier     Notifier
	timeProvider TimeProvider
	masterID     string
	logger       Logger
}

// NewUsecase создает новый экземпляр юзкейса создания записи
func NewUsecase(
	bookingRepo BookingRepository,
	schedule ScheduleProvider,
	txManager TxManager,
	mirror Mirror,
	notifier Notifier,
	timeProvider TimeProvider,
	masterID string,
	logger Logger,
) *Usecase {
	return &Usecase{
		bookingRepo:  bookingRepo,
		schedule:     schedule,
		txManager:    txManager,
		mirror:       mirror,
		notifier:     notifier,
		timeProvider: timeProvider,
		masterID:     masterID,
		logger:       logger,
	}
}

// Execute создает запись в статусе pending
func (u *Usecase) Execute(ctx context.Context, req *Request) (*Response, error) {
	u.logger.Info("Execute: creating booking for client=%s on %s %s", req.ClientID, req.Date, req.Time)

	date, slot, err := u.validate(req)
	if err != nil {
		u.logger.Warn("Execute: validation failed for client=%s: %v", req.ClientID, err)
		return nil, err
	}

	var created *domain.Booking
	err = u.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		free, err := u.slotIsFree(ctx, date, slot)
		if err != nil {
			return err
		}
		if !free {
			u.logger.Warn("Execute: slot %s %s is not available", req.Date, req.Time)
			return ErrSlotUnavailable
		}

		booking := &domain.Booking{
			ID:         uuid.NewString(),
			ClientID:   req.ClientID,
			ClientName: req.ClientName,
			Phone:      req.Phone,
			Username:   req.Username,
			Date:       date,
			Time:       slot,
			Service:    req.Service,
			Status:     domain.StatusPending,
		}

		created, err = u.bookingRepo.Create(ctx, booking)
		if err != nil {
			u.logger.Error("Execute: failed to create booking for client=%s: %v", req.ClientID, err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.mirror.UpsertBooking(ctx, created)
	u.notifyMaster(ctx, created)

	u.logger.Info("Execute: booking id=%s created for client=%s", created.ID, created.ClientID)
	return &Response{
		ID:        created.ID,
		Status:    string(created.Status),
		Date:      created.Date.Format(domain.DateFormat),
		Time:      created.Time.String(),
		Service:   created.Service,
		CreatedAt: created.CreatedAt.Format(time.RFC3339),
	}, nil
}

func (u *Usecase) slotIsFree(ctx context.Context, date time.Time, slot types.TimeString) (bool, error) {
	grid, err := u.schedule.GenerateDaySlots(ctx, date)
	if err != nil {
		u.logger.Error("slotIsFree: failed to generate grid for %s: %v", date.Format(domain.DateFormat), err)
		return false, fmt.Errorf("%w: failed to generate slot grid: %v", ErrInternal, err)
	}

	inGrid := false
	for _, s := range grid {
		if s == slot {
			inGrid = true
			break
		}
	}
	if !inGrid {
		return false, nil
	}

	occupied, err := u.bookingRepo.GetOccupiedTimes(ctx, date, domain.BlockingStatuses)
	if err != nil {
		u.logger.Error("slotIsFree: failed to load occupied slots for %s: %v", date.Format(domain.DateFormat), err)
		return false, fmt.Errorf("%w: failed to load occupied slots: %v", ErrInternal, err)
	}
	for _, t := range occupied {
		if t == slot {
			return false, nil
		}
	}
	return true, nil
}

func (u *Usecase) notifyMaster(ctx context.Context, b *domain.Booking) {
	msg := &notify.Message{
		ChatID:    u.masterID,
		Event:     "new_booking",
		BookingID: b.ID,
		Text: fmt.Sprintf("Новая запись: %s, %s %s, услуга %q, тел. %s",
			b.ClientName, b.Date.Format(domain.DateFormat), b.Time, b.Service, b.Phone),
	}
	if err := u.notifier.Send(ctx, msg); err != nil {
		u.logger.Warn("notifyMaster: failed to notify master about booking %s: %v", b.ID, err)
	}
}
