package reminder

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/avdeec/salon-booking-service/internal/domain"
	"github.com/avdeec/salon-booking-service/internal/integrations/notify"
)

// Окна напоминаний в минутах до начала записи.
// Ширина окна перекрывает период опроса, чтобы напоминание
// не проскочило между тиками.
const (
	dayWindowFrom  = 1380 // 23 часа
	dayWindowTo    = 1500 // 25 часов
	hourWindowFrom = 110
	hourWindowTo   = 130
)

// BookingRepository читает подтвержденные записи
type BookingRepository interface {
	GetByStatus(ctx context.Context, status domain.BookingStatus) ([]*domain.Booking, error)
}

// Notifier контракт отправки уведомлений
type Notifier interface {
	Send(ctx context.Context, msg *notify.Message) error
}

// TimeProvider источник текущего времени, подменяется в тестах
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger контракт логгера
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Service периодически напоминает клиентам о подтвержденных записях:
// за сутки и за два часа до начала. Отправленные напоминания
// дедуплицируются в памяти; после рестарта попавшее в окно напоминание
// может уйти повторно, это приемлемо.
type Service struct {
	bookingRepo  BookingRepository
	notifier     Notifier
	timeProvider TimeProvider
	interval     time.Duration
	logger       Logger

	mu   sync.Mutex
	sent map[string]struct{} // booking id + метка окна

	stop chan struct{}
	done chan struct{}
}

// NewService создает новый экземпляр сервиса напоминаний
func NewService(
	bookingRepo BookingRepository,
	notifier Notifier,
	timeProvider TimeProvider,
	interval time.Duration,
	logger Logger,
) *Service {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &Service{
		bookingRepo:  bookingRepo,
		notifier:     notifier,
		timeProvider: timeProvider,
		interval:     interval,
		logger:       logger,
		sent:         make(map[string]struct{}),
		stop:         make(chan struct{}),
		done:         make(chan struct{}),
	}
}

// Start запускает цикл опроса в отдельной горутине
func (s *Service) Start(ctx context.Context) {
	go s.run(ctx)
}

// Stop останавливает цикл и дожидается его завершения
func (s *Service) Stop() {
	close(s.stop)
	<-s.done
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.logger.Info("reminder: loop started, interval=%s", s.interval)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// Первый проход сразу, не дожидаясь тика
	s.sweep(ctx)

	for {
		select {
		case <-ticker.C:
			s.sweep(ctx)
		case <-s.stop:
			s.logger.Info("reminder: loop stopped")
			return
		case <-ctx.Done():
			s.logger.Info("reminder: context cancelled, loop stopped")
			return
		}
	}
}

// sweep один проход: по всем подтвержденным записям проверяются оба окна
func (s *Service) sweep(ctx context.Context) {
	bookings, err := s.bookingRepo.GetByStatus(ctx, domain.StatusConfirmed)
	if err != nil {
		s.logger.Error("reminder: failed to load confirmed bookings: %v", err)
		return
	}

	now := s.timeProvider.Now()
	for _, b := range bookings {
		minutesLeft := s.minutesUntil(now, b)
		if minutesLeft < 0 {
			continue
		}

		switch {
		case minutesLeft >= dayWindowFrom && minutesLeft <= dayWindowTo:
			s.remind(ctx, b, "day", "Напоминаем: завтра у вас запись")
		case minutesLeft >= hourWindowFrom && minutesLeft <= hourWindowTo:
			s.remind(ctx, b, "hour", "Напоминаем: через 2 часа у вас запись")
		}
	}

	s.gc()
}

func (s *Service) minutesUntil(now time.Time, b *domain.Booking) int {
	h, m := b.Time.HourMinute()
	start := time.Date(b.Date.Year(), b.Date.Month(), b.Date.Day(), h, m, 0, 0, now.Location())
	return int(start.Sub(now).Minutes())
}

func (s *Service) remind(ctx context.Context, b *domain.Booking, window, text string) {
	key := b.ID + ":" + window

	s.mu.Lock()
	if _, ok := s.sent[key]; ok {
		s.mu.Unlock()
		return
	}
	s.sent[key] = struct{}{}
	s.mu.Unlock()

	msg := &notify.Message{
		ChatID:    b.ClientID,
		Event:     "reminder",
		BookingID: b.ID,
		Text:      fmt.Sprintf("%s: %s %s, %s", text, b.Date.Format(domain.DateFormat), b.Time, b.Service),
	}
	if err := s.notifier.Send(ctx, msg); err != nil {
		s.logger.Warn("reminder: failed to send %s reminder for booking %s: %v", window, b.ID, err)
		// Повторная попытка на следующем тике
		s.mu.Lock()
		delete(s.sent, key)
		s.mu.Unlock()
		return
	}

	s.logger.Info("reminder: sent %s reminder for booking %s to client %s", window, b.ID, b.ClientID)
}

// gc ограничивает карту дедупликации по размеру: метки ключуются только
// по id записи и окну, поэтому чистка по времени невозможна
func (s *Service) gc() {
	const maxEntries = 10000

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.sent) > maxEntries {
		s.sent = make(map[string]struct{})
		s.logger.Warn("reminder: dedup map reset after exceeding %d entries", maxEntries)
	}
}
