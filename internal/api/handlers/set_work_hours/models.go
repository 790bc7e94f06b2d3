package set_work_hours

// SetWorkHoursRequest HTTP request model
type SetWorkHoursRequest struct {
	Start   string `json:"start"` // "10:00"
	End     string `json:"end"`   // "20:00"
	Enabled bool   `json:"enabled"`
}
