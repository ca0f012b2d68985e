package domain

// Default values applied when a field or setting is unknown
const (
	DefaultDurationMinutes = 30
	DefaultServerCount     = 1
)

// Business validation constants
const (
	MinDurationMinutes          = 1
	MaxDurationMinutes          = 480 // 8 hours
	MinServerCount              = 1
	MaxServerCount              = 100
	MaxClientNameLength         = 200
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Wildcard sentinels as they appear on the wire and in storage
const (
	AnyStaffSentinel = "any"
	AnyTimeStart     = "00:00"
	AnyTimeEnd       = "23:59"
)

// WeekdayNames lists the accepted lower-case weekday names for waitlist preferences
var WeekdayNames = []string{
	"sunday",
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
}

// IsWeekdayName reports whether name is one of WeekdayNames
func IsWeekdayName(name string) bool {
	for _, d := range WeekdayNames {
		if d == name {
			return true
		}
	}
	return false
}
