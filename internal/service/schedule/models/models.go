package models

import (
	"github.com/avdeec/salon-booking-service/internal/domain"
)

// SetWorkHoursRequest рабочие часы для одного дня недели
type SetWorkHoursRequest struct {
	Weekday string `json:"weekday"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Enabled bool   `json:"enabled"`
}

// DayRuleView представление правила дня недели
type DayRuleView struct {
	Weekday string `json:"weekday"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Enabled bool   `json:"enabled"`
}

// ScheduleResponse недельный шаблон и явные выходные даты
type ScheduleResponse struct {
	Days    []DayRuleView `json:"days"`
	DaysOff []string      `json:"daysOff"`
}

// FromDayRule конвертирует доменное правило в представление
func FromDayRule(rule domain.DayRule) DayRuleView {
	return DayRuleView{
		Weekday: rule.Weekday,
		Start:   rule.Start.String(),
		End:     rule.End.String(),
		Enabled: rule.Enabled,
	}
}
