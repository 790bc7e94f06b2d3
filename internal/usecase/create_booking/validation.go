package create_booking

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/avdeec/salon-booking-service/internal/domain"
	"github.com/avdeec/salon-booking-service/pkg/types"
)

var phoneRegexp = regexp.MustCompile(`^\+?[0-9][0-9 ()-]{6,19}$`)

// validate разбирает и проверяет запрос, возвращая дату и время слота
func (u *Usecase) validate(req *Request) (time.Time, types.TimeString, error) {
	if strings.TrimSpace(req.ClientID) == "" {
		return time.Time{}, "", fmt.Errorf("%w: client id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.ClientName) == "" {
		return time.Time{}, "", fmt.Errorf("%w: client name is required", ErrInvalidInput)
	}
	if !phoneRegexp.MatchString(strings.TrimSpace(req.Phone)) {
		return time.Time{}, "", fmt.Errorf("%w: invalid phone number", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Service) == "" {
		return time.Time{}, "", fmt.Errorf("%w: service is required", ErrInvalidInput)
	}
	if len(req.Service) > domain.MaxServiceNameLength {
		return time.Time{}, "", fmt.Errorf("%w: service name too long", ErrInvalidInput)
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: %q is not a valid YYYY-MM-DD date", ErrInvalidDate, req.Date)
	}

	slot, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: %q is not a valid HH:MM time", ErrInvalidTime, req.Time)
	}

	now := u.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if date.Before(today) {
		return time.Time{}, "", fmt.Errorf("%w: %s", ErrPastDate, req.Date)
	}

	return date, slot, nil
}
