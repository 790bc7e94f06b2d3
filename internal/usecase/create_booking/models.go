package create_booking

// Request запрос на создание записи
type Request struct {
	ClientID   string  `json:"-"`
	ClientName string  `json:"clientName"`
	Phone      string  `json:"phone"`
	Username   *string `json:"username,omitempty"`
	Date       string  `json:"date"` // YYYY-MM-DD
	Time       string  `json:"time"` // HH:MM
	Service    string  `json:"service"`
}

// Response созданная запись
type Response struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Service   string `json:"service"`
	CreatedAt string `json:"createdAt"`
}
