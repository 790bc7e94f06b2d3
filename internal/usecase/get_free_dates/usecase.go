package get_free_dates

import (
	"context"
	"fmt"
	"time"

	"github.com/avdeec/salon-booking-service/internal/domain"
	"github.com/avdeec/salon-booking-service/pkg/types"
)

// Usecase перечисляет даты с хотя бы одним свободным слотом.
// Окно начинается с завтрашнего дня: запись день в день не предлагается.
type Usecase struct {
	schedule     ScheduleProvider
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	daysAhead    int
	logger       Logger
}

// NewUsecase создает новый экземпляр юзкейса свободных дат
func NewUsecase(
	schedule ScheduleProvider,
	bookingRepo BookingRepository,
	timeProvider TimeProvider,
	daysAhead int,
	logger Logger,
) *Usecase {
	if daysAhead <= 0 {
		daysAhead = domain.DefaultFreeDatesDaysAhead
	}
	return &Usecase{
		schedule:     schedule,
		bookingRepo:  bookingRepo,
		timeProvider: timeProvider,
		daysAhead:    daysAhead,
		logger:       logger,
	}
}

// Execute возвращает даты окна, доступные для новой записи
func (u *Usecase) Execute(ctx context.Context, req *Request) (*Response, error) {
	daysAhead := u.daysAhead
	if req != nil && req.DaysAhead > 0 {
		daysAhead = req.DaysAhead
		if daysAhead > domain.MaxFreeDatesDaysAhead {
			daysAhead = domain.MaxFreeDatesDaysAhead
		}
	}

	now := u.timeProvider.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)

	resp := &Response{Dates: make([]string, 0, daysAhead)}
	for i := 0; i < daysAhead; i++ {
		date := start.AddDate(0, 0, i)

		free, err := u.hasFreeSlot(ctx, date)
		if err != nil {
			return nil, err
		}
		if free {
			resp.Dates = append(resp.Dates, date.Format(domain.DateFormat))
		}
	}

	u.logger.Info("Execute: %d available dates in the next %d days", len(resp.Dates), daysAhead)
	return resp, nil
}

func (u *Usecase) hasFreeSlot(ctx context.Context, date time.Time) (bool, error) {
	working, err := u.schedule.IsWorkingDay(ctx, date)
	if err != nil {
		u.logger.Error("hasFreeSlot: working-day check failed for %s: %v", date.Format(domain.DateFormat), err)
		return false, fmt.Errorf("%w: working-day check failed: %v", ErrInternal, err)
	}
	if !working {
		return false, nil
	}

	grid, err := u.schedule.GenerateDaySlots(ctx, date)
	if err != nil {
		u.logger.Error("hasFreeSlot: failed to generate grid for %s: %v", date.Format(domain.DateFormat), err)
		return false, fmt.Errorf("%w: failed to generate slot grid: %v", ErrInternal, err)
	}
	if len(grid) == 0 {
		return false, nil
	}

	occupied, err := u.bookingRepo.GetOccupiedTimes(ctx, date, domain.BlockingStatuses)
	if err != nil {
		u.logger.Error("hasFreeSlot: failed to load occupied slots for %s: %v", date.Format(domain.DateFormat), err)
		return false, fmt.Errorf("%w: failed to load occupied slots: %v", ErrInternal, err)
	}
	if len(occupied) < len(grid) {
		return true, nil
	}

	taken := make(map[types.TimeString]struct{}, len(occupied))
	for _, t := range occupied {
		taken[t] = struct{}{}
	}
	for _, slot := range grid {
		if _, ok := taken[slot]; !ok {
			return true, nil
		}
	}
	return false, nil
}
