package domain

import (
	"time"

	"github.com/avdeec/salon-booking-service/pkg/types"
)

// DayRule is the weekly template entry for one weekday
type DayRule struct {
	Weekday string // monday..sunday
	Start   types.TimeString
	End     types.TimeString
	Enabled bool
}

// WeekSchedule is the full weekly work-hour template keyed by weekday name
type WeekSchedule map[string]DayRule

// Weekdays in template order
var Weekdays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// IsValidWeekday reports whether name is one of the seven template keys
func IsValidWeekday(name string) bool {
	for _, d := range Weekdays {
		if d == name {
			return true
		}
	}
	return false
}

// WeekdayName returns the template key for a calendar date
func WeekdayName(date time.Time) string {
	switch date.Weekday() {
	case time.Monday:
		return "monday"
	case time.Tuesday:
		return "tuesday"
	case time.Wednesday:
		return "wednesday"
	case time.Thursday:
		return "thursday"
	case time.Friday:
		return "friday"
	case time.Saturday:
		return "saturday"
	default:
		return "sunday"
	}
}

// DefaultWeekSchedule is the template applied before the master customises it
func DefaultWeekSchedule() WeekSchedule {
	schedule := WeekSchedule{}
	for _, day := range Weekdays {
		rule := DayRule{Weekday: day, Start: "10:00", End: "20:00", Enabled: true}
		switch day {
		case "saturday":
			rule.End = "18:00"
		case "sunday":
			rule.End = "16:00"
			rule.Enabled = false
		}
		schedule[day] = rule
	}
	return schedule
}
