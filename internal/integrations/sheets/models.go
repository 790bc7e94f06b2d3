package sheets

// Row строка зеркала во внешней таблице - одна запись с её текущим статусом
type Row struct {
	BookingID  string `json:"bookingId"`
	ClientName string `json:"clientName"`
	Phone      string `json:"phone"`
	Date       string `json:"date"` // YYYY-MM-DD
	Time       string `json:"time"` // HH:MM
	Service    string `json:"service"`
	Status     string `json:"status"`
	Comment    string `json:"comment,omitempty"`
	UpdatedAt  string `json:"updatedAt"` // RFC 3339
}
