package schedule

import (
	"context"
	"fmt"
	"sort"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/avdeec/salon-booking-service/internal/domain"
	"github.com/avdeec/salon-booking-service/internal/service/schedule/models"
	"github.com/avdeec/salon-booking-service/pkg/types"
)

const (
	cacheKeyWeek    = "week_schedule"
	cacheKeyDaysOff = "days_off"

	cacheTTL     = 5 * time.Minute
	cacheCleanup = 10 * time.Minute
)

// Service управляет недельным шаблоном рабочих часов и выходными датами
// и генерирует сетку слотов для календарной даты.
// Шаблон и выходные кэшируются; любая мутация сбрасывает кэш.
type Service struct {
	repo         ScheduleRepository
	cache        *gocache.Cache
	slotDuration time.Duration
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(repo ScheduleRepository, slotDurationMinutes int, logger Logger) *Service {
	if slotDurationMinutes <= 0 {
		slotDurationMinutes = domain.DefaultSlotDurationMinutes
	}
	return &Service{
		repo:         repo,
		cache:        gocache.New(cacheTTL, cacheCleanup),
		slotDuration: time.Duration(slotDurationMinutes) * time.Minute,
		logger:       logger,
	}
}

// GetSchedule возвращает недельный шаблон и список выходных дат
func (s *Service) GetSchedule(ctx context.Context) (*models.ScheduleResponse, error) {
	week, err := s.weekSchedule(ctx)
	if err != nil {
		return nil, err
	}
	daysOff, err := s.daysOff(ctx)
	if err != nil {
		return nil, err
	}

	resp := &models.ScheduleResponse{
		Days:    make([]models.DayRuleView, 0, len(domain.Weekdays)),
		DaysOff: make([]string, 0, len(daysOff)),
	}
	for _, day := range domain.Weekdays {
		if rule, ok := week[day]; ok {
			resp.Days = append(resp.Days, models.FromDayRule(rule))
		}
	}
	dates := make([]string, 0, len(daysOff))
	for d := range daysOff {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	resp.DaysOff = dates

	return resp, nil
}

// SetWorkHours записывает рабочие часы для дня недели
func (s *Service) SetWorkHours(ctx context.Context, req *models.SetWorkHoursRequest) error {
	s.logger.Info("SetWorkHours: %s %s-%s enabled=%t", req.Weekday, req.Start, req.End, req.Enabled)

	if !domain.IsValidWeekday(req.Weekday) {
		return fmt.Errorf("%w: unknown weekday %q", ErrInvalidWeekday, req.Weekday)
	}
	start, err := types.NewTimeStringFromString(req.Start)
	if err != nil {
		return fmt.Errorf("%w: start: %v", ErrInvalidInterval, err)
	}
	end, err := types.NewTimeStringFromString(req.End)
	if err != nil {
		return fmt.Errorf("%w: end: %v", ErrInvalidInterval, err)
	}
	if !start.IsBefore(end) {
		return fmt.Errorf("%w: start %s must be before end %s", ErrInvalidInterval, start, end)
	}

	rule := domain.DayRule{Weekday: req.Weekday, Start: start, End: end, Enabled: req.Enabled}
	if err := s.repo.UpsertDayRule(ctx, rule); err != nil {
		s.logger.Error("SetWorkHours: repository error for %s: %v", req.Weekday, err)
		return fmt.Errorf("%w: SetWorkHours - repository error: %v", ErrInternal, err)
	}

	s.cache.Delete(cacheKeyWeek)
	return nil
}

// AddDayOff помечает дату выходной
func (s *Service) AddDayOff(ctx context.Context, day time.Time) error {
	s.logger.Info("AddDayOff: %s", day.Format(domain.DateFormat))

	if err := s.repo.AddDayOff(ctx, day); err != nil {
		s.logger.Error("AddDayOff: repository error for %s: %v", day.Format(domain.DateFormat), err)
		return fmt.Errorf("%w: AddDayOff - repository error: %v", ErrInternal, err)
	}

	s.cache.Delete(cacheKeyDaysOff)
	return nil
}

// RemoveDayOff снимает пометку выходного с даты
func (s *Service) RemoveDayOff(ctx context.Context, day time.Time) error {
	s.logger.Info("RemoveDayOff: %s", day.Format(domain.DateFormat))

	if err := s.repo.RemoveDayOff(ctx, day); err != nil {
		s.logger.Error("RemoveDayOff: repository error for %s: %v", day.Format(domain.DateFormat), err)
		return fmt.Errorf("%w: RemoveDayOff - repository error: %v", ErrInternal, err)
	}

	s.cache.Delete(cacheKeyDaysOff)
	return nil
}

// IsWorkingDay сообщает, рабочий ли календарный день:
// день недели включен в шаблоне и дата не помечена выходной
func (s *Service) IsWorkingDay(ctx context.Context, date time.Time) (bool, error) {
	daysOff, err := s.daysOff(ctx)
	if err != nil {
		return false, err
	}
	if _, off := daysOff[date.Format(domain.DateFormat)]; off {
		return false, nil
	}

	week, err := s.weekSchedule(ctx)
	if err != nil {
		return false, err
	}
	rule, ok := week[domain.WeekdayName(date)]
	if !ok {
		return false, nil
	}
	return rule.Enabled, nil
}

// GenerateDaySlots возвращает полную сетку слотов для даты.
// Интервал рабочего дня полуоткрытый: слот, начинающийся во время
// окончания работы, в сетку не входит. Для нерабочего дня сетка пустая.
func (s *Service) GenerateDaySlots(ctx context.Context, date time.Time) ([]types.TimeString, error) {
	working, err := s.IsWorkingDay(ctx, date)
	if err != nil {
		return nil, err
	}
	if !working {
		return []types.TimeString{}, nil
	}

	week, err := s.weekSchedule(ctx)
	if err != nil {
		return nil, err
	}
	rule := week[domain.WeekdayName(date)]

	step := int(s.slotDuration.Minutes())
	slots := make([]types.TimeString, 0, 16)
	for cur := rule.Start; cur.IsBefore(rule.End); {
		slots = append(slots, cur)
		next, err := cur.AddMinutes(step)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed slot time %q: %v", ErrInternal, cur, err)
		}
		// Переход через полночь завершает сетку
		if !next.IsAfter(cur) {
			break
		}
		cur = next
	}
	return slots, nil
}

// Кэшируемые чтения

func (s *Service) weekSchedule(ctx context.Context) (domain.WeekSchedule, error) {
	if cached, ok := s.cache.Get(cacheKeyWeek); ok {
		return cached.(domain.WeekSchedule), nil
	}

	week, err := s.repo.GetWeekSchedule(ctx)
	if err != nil {
		s.logger.Error("weekSchedule: repository error: %v", err)
		return nil, fmt.Errorf("%w: failed to load week schedule: %v", ErrInternal, err)
	}
	if len(week) == 0 {
		week = domain.DefaultWeekSchedule()
	}

	s.cache.Set(cacheKeyWeek, week, gocache.DefaultExpiration)
	return week, nil
}

func (s *Service) daysOff(ctx context.Context) (map[string]struct{}, error) {
	if cached, ok := s.cache.Get(cacheKeyDaysOff); ok {
		return cached.(map[string]struct{}), nil
	}

	days, err := s.repo.GetDaysOff(ctx)
	if err != nil {
		s.logger.Error("daysOff: repository error: %v", err)
		return nil, fmt.Errorf("%w: failed to load days off: %v", ErrInternal, err)
	}

	set := make(map[string]struct{}, len(days))
	for _, d := range days {
		set[d.Format(domain.DateFormat)] = struct{}{}
	}

	s.cache.Set(cacheKeyDaysOff, set, gocache.DefaultExpiration)
	return set, nil
}
