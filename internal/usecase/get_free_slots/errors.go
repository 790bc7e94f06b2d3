package get_free_slots

import "errors"

var (
	ErrInvalidDate = errors.New("get_free_slots.usecase: invalid date")
	ErrPastDate    = errors.New("get_free_slots.usecase: date is in the past")
	ErrInternal    = errors.New("get_free_slots.usecase: internal error")
)
