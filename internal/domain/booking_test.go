package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"pending to rejected", StatusPending, StatusRejected, true},
		{"pending to completed", StatusPending, StatusCompleted, false},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, true},
		{"confirmed to rejected", StatusConfirmed, StatusRejected, false},
		{"completed is terminal", StatusCompleted, StatusConfirmed, false},
		{"rejected is terminal", StatusRejected, StatusConfirmed, false},
		{"any to cancelled", StatusCompleted, StatusCancelled, true},
		{"cancelled not re-cancellable", StatusCancelled, StatusCancelled, false},
		{"no transition into reschedule_requested", StatusPending, StatusRescheduleRequested, false},
		{"no transition into reschedule_offered", StatusConfirmed, StatusRescheduleOffered, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{Status: tt.from}
			require.Equal(t, tt.allowed, b.CanTransitionTo(tt.to))
		})
	}
}

func TestFrozenPredicates(t *testing.T) {
	prior := StatusConfirmed

	frozen := &Booking{Status: StatusRescheduleRequested, PriorStatus: &prior}
	require.True(t, frozen.IsFrozen())
	require.False(t, frozen.CanBeRescheduled())
	require.True(t, frozen.CanBeOffered()) // встречное предложение поверх запроса допустимо

	offered := &Booking{Status: StatusRescheduleOffered, PriorStatus: &prior}
	require.True(t, offered.IsFrozen())
	require.False(t, offered.CanBeOffered())

	live := &Booking{Status: StatusConfirmed}
	require.False(t, live.IsFrozen())
	require.True(t, live.CanBeRescheduled())
	require.True(t, live.CanBeCancelledByClient())
}

func TestParseStatus(t *testing.T) {
	status, err := ParseStatus("reschedule_requested")
	require.NoError(t, err)
	require.Equal(t, StatusRescheduleRequested, status)

	_, err = ParseStatus("unknown")
	require.Error(t, err)
}

func TestNegotiationResolvableBy(t *testing.T) {
	clientReq := &Negotiation{Kind: KindClientRequested}
	require.True(t, clientReq.ResolvableBy(RoleMaster))
	require.False(t, clientReq.ResolvableBy(RoleClient))

	masterOffer := &Negotiation{Kind: KindMasterOffered}
	require.True(t, masterOffer.ResolvableBy(RoleClient))
	require.False(t, masterOffer.ResolvableBy(RoleMaster))
}
