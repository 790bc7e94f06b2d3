package domain

import "time"

// NegotiationKind identifies who initiated the reschedule negotiation
type NegotiationKind string

const (
	KindClientRequested NegotiationKind = "client_requested"
	KindMasterOffered   NegotiationKind = "master_offered"
)

// ActorRole is the role of the party performing a negotiation operation
type ActorRole string

const (
	RoleClient ActorRole = "client"
	RoleMaster ActorRole = "master"
)

// Negotiation links an original booking with the shadow booking that carries
// the proposed new date/time. At most one open negotiation may reference a
// given original booking (enforced by the storage primary key).
type Negotiation struct {
	OriginalID string
	ShadowID   string
	Kind       NegotiationKind
	CreatedAt  time.Time
}

// ResolvableBy reports whether role may accept or reject this negotiation:
// the counterparty resolves, never the initiator
func (n *Negotiation) ResolvableBy(role ActorRole) bool {
	switch n.Kind {
	case KindClientRequested:
		return role == RoleMaster
	case KindMasterOffered:
		return role == RoleClient
	default:
		return false
	}
}

// ParseKind validates and converts a raw negotiation kind string
func ParseKind(s string) (NegotiationKind, bool) {
	kind := NegotiationKind(s)
	if kind == KindClientRequested || kind == KindMasterOffered {
		return kind, true
	}
	return "", false
}
