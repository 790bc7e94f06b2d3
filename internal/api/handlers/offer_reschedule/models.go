package offer_reschedule

import (
	"time"

	"github.com/avdeec/salon-booking-service/internal/domain"
	"github.com/avdeec/salon-booking-service/internal/service/reschedule/models"
	"github.com/avdeec/salon-booking-service/pkg/types"
)

// OfferRescheduleRequest HTTP request model
type OfferRescheduleRequest struct {
	BookingID string `json:"bookingId"`
	Date      string `json:"date"` // "2026-09-15"
	Time      string `json:"time"` // "14:00"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса (с парсингом даты и времени)
func (r *OfferRescheduleRequest) ToServiceRequest(actor models.Actor) (*models.ProposeRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	slot, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &models.ProposeRequest{
		BookingID: r.BookingID,
		NewDate:   date,
		NewTime:   slot,
		Actor:     actor,
	}, nil
}
