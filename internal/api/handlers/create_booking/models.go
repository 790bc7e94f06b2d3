package create_booking

import (
	createBooking "github.com/avdeec/salon-booking-service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ClientName string  `json:"clientName"`
	Phone      string  `json:"phone"`
	Username   *string `json:"username,omitempty"`
	Date       string  `json:"date"` // "2026-09-15"
	Time       string  `json:"time"` // "10:00"
	Service    string  `json:"service"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(clientID string) *createBooking.Request {
	return &createBooking.Request{
		ClientID:   clientID,
		ClientName: r.ClientName,
		Phone:      r.Phone,
		Username:   r.Username,
		Date:       r.Date,
		Time:       r.Time,
		Service:    r.Service,
	}
}
