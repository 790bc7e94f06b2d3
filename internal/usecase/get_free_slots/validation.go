package get_free_slots

import (
	"fmt"
	"time"

	"github.com/avdeec/salon-booking-service/internal/domain"
)

// validateDate разбирает дату запроса и отклоняет прошедшие дни
func (u *Usecase) validateDate(raw string) (time.Time, error) {
	date, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a valid YYYY-MM-DD date", ErrInvalidDate, raw)
	}

	today := truncateToDay(u.timeProvider.Now())
	if date.Before(today) {
		return time.Time{}, fmt.Errorf("%w: %s", ErrPastDate, raw)
	}

	return date, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
