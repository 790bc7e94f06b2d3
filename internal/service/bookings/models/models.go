package models

import (
	"time"

	"github.com/avdeec/salon-booking-service/internal/domain"
)

// Request модели

// Actor идентичность вызывающей стороны, определенная middleware
type Actor struct {
	UserID   string
	IsMaster bool
}

// UpdateStatusRequest запрос на прямой переход статуса (мастер)
type UpdateStatusRequest struct {
	Actor   Actor
	Status  string
	Comment *string
}

// CancelRequest запрос на отмену записи (владелец или мастер)
type CancelRequest struct {
	Actor  Actor
	Reason string
}

// ListByClientRequest запрос истории записей клиента
type ListByClientRequest struct {
	Actor    Actor
	ClientID string
	Status   *string
}

// Response модели

// BookingResponse ответ с данными записи
type BookingResponse struct {
	ID          string  `json:"id"`
	ClientID    string  `json:"clientId"`
	ClientName  string  `json:"clientName"`
	Phone       string  `json:"phone"`
	Username    *string `json:"username,omitempty"`
	Date        string  `json:"date"` // "2026-09-15"
	Time        string  `json:"time"` // "14:00"
	Service     string  `json:"service"`
	Status      string  `json:"status"`
	PriorStatus *string `json:"priorStatus,omitempty"`
	Comment     *string `json:"comment,omitempty"`

	CreatedAt       time.Time `json:"createdAt"`
	StatusUpdatedAt time.Time `json:"statusUpdatedAt"`
}

// BookingListResponse ответ со списком записей
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// StatisticsResponse количество записей по статусам
type StatisticsResponse struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"byStatus"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:              b.ID,
		ClientID:        b.ClientID,
		ClientName:      b.ClientName,
		Phone:           b.Phone,
		Username:        b.Username,
		Date:            b.Date.Format(domain.DateFormat),
		Time:            b.Time.String(),
		Service:         b.Service,
		Status:          string(b.Status),
		Comment:         b.MasterComment,
		CreatedAt:       b.CreatedAt,
		StatusUpdatedAt: b.StatusUpdatedAt,
	}

	if b.PriorStatus != nil {
		prior := string(*b.PriorStatus)
		resp.PriorStatus = &prior
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, b := range bookings {
		if br := FromDomainBooking(b); br != nil {
			resp.Bookings = append(resp.Bookings, *br)
		}
	}

	return resp
}
