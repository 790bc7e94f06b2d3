package resolve_reschedule

// RejectRescheduleRequest HTTP request model
type RejectRescheduleRequest struct {
	Reason string `json:"reason,omitempty"`
}
