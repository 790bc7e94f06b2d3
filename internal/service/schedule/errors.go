package schedule

import "errors"

var (
	ErrInvalidWeekday  = errors.New("schedule.service: invalid weekday")
	ErrInvalidInterval = errors.New("schedule.service: invalid work interval")
	ErrAccessDenied    = errors.New("schedule.service: access denied")
	ErrInternal        = errors.New("schedule.service: internal error")
)
