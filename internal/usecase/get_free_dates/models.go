package get_free_dates

// Request параметры окна поиска; DaysAhead=0 означает настроенное окно
type Request struct {
	DaysAhead int
}

// Response даты с хотя бы одним свободным слотом
type Response struct {
	Dates []string `json:"dates"`
}
