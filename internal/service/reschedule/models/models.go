package models

import (
	"time"

	"github.com/avdeec/salon-booking-service/internal/domain"
	"github.com/avdeec/salon-booking-service/pkg/types"
)

// Actor инициатор операции переноса
type Actor struct {
	UserID   string
	IsMaster bool
}

// Role возвращает роль инициатора в протоколе переноса
func (a Actor) Role() domain.ActorRole {
	if a.IsMaster {
		return domain.RoleMaster
	}
	return domain.RoleClient
}

// ProposeRequest запрос на перенос записи на новый слот
// Используется и клиентским запросом, и встречным предложением мастера
type ProposeRequest struct {
	BookingID string
	NewDate   time.Time
	NewTime   types.TimeString
	Actor     Actor
}

// ResolveRequest принятие или отклонение открытого переноса по теневой записи
// Reason используется только при отклонении и попадает в комментарий
// восстановленной записи
type ResolveRequest struct {
	ShadowID string
	Actor    Actor
	Reason   string
}

// RescheduleView денормализованное представление открытого переноса
type RescheduleView struct {
	OriginalID string                 `json:"originalId"`
	ShadowID   string                 `json:"shadowId"`
	Kind       domain.NegotiationKind `json:"kind"`
	ClientID   string                 `json:"clientId"`
	ClientName string                 `json:"clientName"`
	Phone      string                 `json:"phone"`
	Service    string                 `json:"service"`
	OldDate    string                 `json:"oldDate"`
	OldTime    string                 `json:"oldTime"`
	NewDate    string                 `json:"newDate"`
	NewTime    string                 `json:"newTime"`
	CreatedAt  time.Time              `json:"createdAt"`
}

// RescheduleListResponse список открытых переносов
type RescheduleListResponse struct {
	Total       int               `json:"total"`
	Reschedules []*RescheduleView `json:"reschedules"`
}

// ResolveResponse итог закрытия переноса
type ResolveResponse struct {
	BookingID string `json:"bookingId"`
	Status    string `json:"status"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}

// NewRescheduleView собирает представление из связи и обеих записей
func NewRescheduleView(n *domain.Negotiation, original, shadow *domain.Booking) *RescheduleView {
	return &RescheduleView{
		OriginalID: n.OriginalID,
		ShadowID:   n.ShadowID,
		Kind:       n.Kind,
		ClientID:   original.ClientID,
		ClientName: original.ClientName,
		Phone:      original.Phone,
		Service:    original.Service,
		OldDate:    original.Date.Format(domain.DateFormat),
		OldTime:    original.Time.String(),
		NewDate:    shadow.Date.Format(domain.DateFormat),
		NewTime:    shadow.Time.String(),
		CreatedAt:  n.CreatedAt,
	}
}
