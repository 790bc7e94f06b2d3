package get_free_slots

// Request запрос свободных слотов на дату
type Request struct {
	Date string `json:"date"` // YYYY-MM-DD
}

// Response свободные слоты на дату
type Response struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}
