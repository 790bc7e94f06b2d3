package domain

// Slot grid defaults
const (
	DefaultSlotDurationMinutes = 60
	DefaultFreeDatesDaysAhead  = 30
)

// Validation limits
const (
	MinSlotDurationMinutes = 15
	MaxSlotDurationMinutes = 240
	MaxFreeDatesDaysAhead  = 365
	MaxCommentLength       = 500
	MaxServiceNameLength   = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// AllStatuses every valid booking status
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
	StatusRejected,
	StatusRescheduleRequested,
	StatusRescheduleOffered,
}

// BlockingStatuses статусы, занимающие слот при расчёте доступности.
// reschedule_offered включён: предложенный мастером слот считается занятым,
// иначе два клиента могут получить одно и то же время.
var BlockingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusRescheduleRequested,
	StatusRescheduleOffered,
}
