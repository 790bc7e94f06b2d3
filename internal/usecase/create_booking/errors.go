package create_booking

import "errors"

var (
	ErrInvalidInput    = errors.New("create_booking.usecase: invalid input")
	ErrInvalidDate     = errors.New("create_booking.usecase: invalid date")
	ErrInvalidTime     = errors.New("create_booking.usecase: invalid time")
	ErrPastDate        = errors.New("create_booking.usecase: date is in the past")
	ErrSlotUnavailable = errors.New("create_booking.usecase: slot is not available")
	ErrInternal        = errors.New("create_booking.usecase: internal error")
)
