package domain

import (
	"fmt"
	"time"

	"github.com/avdeec/salon-booking-service/pkg/types"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusPending             BookingStatus = "pending"
	StatusConfirmed           BookingStatus = "confirmed"
	StatusCompleted           BookingStatus = "completed"
	StatusCancelled           BookingStatus = "cancelled"
	StatusRejected            BookingStatus = "rejected"
	StatusRescheduleRequested BookingStatus = "reschedule_requested"
	StatusRescheduleOffered   BookingStatus = "reschedule_offered"
)

// Booking represents one appointment record of the single provider
type Booking struct {
	ID         string // opaque uuid, immutable
	ClientID   string // chat identity of the requesting party
	ClientName string
	Phone      string
	Username   *string

	Date    time.Time        // day granularity
	Time    types.TimeString // slot label, e.g. "14:00"
	Service string

	Status BookingStatus

	// PriorStatus is set only while the booking is frozen inside an open
	// negotiation; used to restore it when the negotiation is rejected or
	// withdrawn. Non-nil iff Status is one of the two reschedule statuses.
	PriorStatus *BookingStatus

	MasterComment *string

	CreatedAt       time.Time
	StatusUpdatedAt time.Time
}

// IsFrozen returns true if the booking is the subject of an open negotiation
func (b *Booking) IsFrozen() bool {
	return b.Status == StatusRescheduleRequested || b.Status == StatusRescheduleOffered
}

// CanBeRescheduled returns true if a client may request moving this booking
func (b *Booking) CanBeRescheduled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeOffered returns true if the master may offer a new slot for this booking
// A counter-offer over an outstanding client request is permitted
func (b *Booking) CanBeOffered() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed || b.Status == StatusRescheduleRequested
}

// CanBeCancelledByClient returns true if the owner may still cancel
func (b *Booking) CanBeCancelledByClient() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsTerminal returns true if no direct transition leads out of the status
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled || b.Status == StatusRejected
}

// ParseStatus validates and converts a raw status string
func ParseStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	for _, valid := range AllStatuses {
		if status == valid {
			return status, nil
		}
	}
	return "", fmt.Errorf("unknown booking status %q", s)
}

// CanTransitionTo reports whether the direct (non-negotiated) lifecycle allows
// moving from the current status to next. The master override "any -> cancelled"
// is expressed here; negotiation statuses are owned by the reschedule service
// and never reachable through direct transitions.
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	if next == StatusCancelled {
		return b.Status != StatusCancelled
	}
	switch b.Status {
	case StatusPending:
		return next == StatusConfirmed || next == StatusRejected
	case StatusConfirmed:
		return next == StatusCompleted
	default:
		return false
	}
}
