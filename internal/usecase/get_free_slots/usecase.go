package get_free_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/avdeec/salon-booking-service/internal/domain"
	"github.com/avdeec/salon-booking-service/pkg/types"
)

// Usecase вычисляет свободные слоты: полная сетка рабочего дня минус
// слоты, занятые записями в блокирующих статусах. Теневая запись
// открытого переноса занимает свой слот наравне с обычной.
type Usecase struct {
	schedule     ScheduleProvider
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUsecase создает новый экземпляр юзкейса свободных слотов
func NewUsecase(
	schedule ScheduleProvider,
	bookingRepo BookingRepository,
	timeProvider TimeProvider,
	logger Logger,
) *Usecase {
	return &Usecase{
		schedule:     schedule,
		bookingRepo:  bookingRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute возвращает свободные слоты на дату.
// Для сегодняшней даты уже начавшиеся слоты исключаются.
func (u *Usecase) Execute(ctx context.Context, req *Request) (*Response, error) {
	date, err := u.validateDate(req.Date)
	if err != nil {
		u.logger.Warn("Execute: invalid date %q: %v", req.Date, err)
		return nil, err
	}

	free, err := u.freeSlots(ctx, date)
	if err != nil {
		return nil, err
	}

	resp := &Response{Date: date.Format(domain.DateFormat), Slots: make([]string, 0, len(free))}
	for _, slot := range free {
		resp.Slots = append(resp.Slots, slot.String())
	}

	u.logger.Info("Execute: %d free slots on %s", len(resp.Slots), resp.Date)
	return resp, nil
}

// IsSlotFree сообщает, свободен ли конкретный слот на дату
func (u *Usecase) IsSlotFree(ctx context.Context, date time.Time, slot types.TimeString) (bool, error) {
	today := truncateToDay(u.timeProvider.Now())
	if date.Before(today) {
		return false, nil
	}

	free, err := u.freeSlots(ctx, date)
	if err != nil {
		return false, err
	}
	for _, s := range free {
		if s == slot {
			return true, nil
		}
	}
	return false, nil
}

func (u *Usecase) freeSlots(ctx context.Context, date time.Time) ([]types.TimeString, error) {
	grid, err := u.schedule.GenerateDaySlots(ctx, date)
	if err != nil {
		u.logger.Error("freeSlots: failed to generate grid for %s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to generate slot grid: %v", ErrInternal, err)
	}
	if len(grid) == 0 {
		return []types.TimeString{}, nil
	}

	occupied, err := u.bookingRepo.GetOccupiedTimes(ctx, date, domain.BlockingStatuses)
	if err != nil {
		u.logger.Error("freeSlots: failed to load occupied slots for %s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to load occupied slots: %v", ErrInternal, err)
	}

	taken := make(map[types.TimeString]struct{}, len(occupied))
	for _, t := range occupied {
		taken[t] = struct{}{}
	}

	now := u.timeProvider.Now()
	isToday := date.Format(domain.DateFormat) == now.Format(domain.DateFormat)
	nowSlot := types.NewTimeString(now)

	free := make([]types.TimeString, 0, len(grid))
	for _, slot := range grid {
		if _, ok := taken[slot]; ok {
			continue
		}
		if isToday && !nowSlot.IsBefore(slot) {
			continue
		}
		free = append(free, slot)
	}
	return free, nil
}
