package reschedule

import "errors"

var (
	ErrBookingNotFound     = errors.New("reschedule.service: booking not found")
	ErrNegotiationNotFound = errors.New("reschedule.service: negotiation not found")
	ErrCannotReschedule    = errors.New("reschedule.service: booking cannot be rescheduled")
	ErrAlreadyNegotiating  = errors.New("reschedule.service: booking already has an open negotiation")
	ErrSlotUnavailable     = errors.New("reschedule.service: requested slot is not available")
	ErrPermissionDenied    = errors.New("reschedule.service: permission denied")
	ErrInvalidInput        = errors.New("reschedule.service: invalid input")
	ErrInternal            = errors.New("reschedule.service: internal error")
)
