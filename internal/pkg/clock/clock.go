package clock

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Unknown is returned by ParseClockTime for input it cannot make sense of.
const Unknown = -1

const minutesPerDay = 24 * 60

// ParseClockTime parses a 12-hour wall-clock string ("09:30 AM") into
// minutes since midnight. Malformed input yields (Unknown, false); the
// function never panics so callers can degrade to "unknown duration".
func ParseClockTime(s string) (int, bool) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) != 2 {
		return Unknown, false
	}

	hhmm := strings.SplitN(fields[0], ":", 2)
	if len(hhmm) != 2 {
		return Unknown, false
	}

	hour, err := strconv.Atoi(hhmm[0])
	if err != nil {
		return Unknown, false
	}
	minute, err := strconv.Atoi(hhmm[1])
	if err != nil {
		return Unknown, false
	}
	if hour < 1 || hour > 12 || minute < 0 || minute > 59 {
		return Unknown, false
	}

	// 12 AM is midnight, 12 PM is noon.
	switch strings.ToUpper(fields[1]) {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	default:
		return Unknown, false
	}

	return hour*60 + minute, true
}

// FormatClockTime renders minutes since midnight back into "hh:mm AM/PM".
// Inputs outside a single day are normalized into it.
func FormatClockTime(totalMinutes int) string {
	m := ((totalMinutes % minutesPerDay) + minutesPerDay) % minutesPerDay

	hour := m / 60
	minute := m % 60

	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}

	return fmt.Sprintf("%02d:%02d %s", hour12, minute, meridiem)
}

// ComputeDuration returns the number of minutes between two wall-clock
// strings. A negative raw difference means the shift wrapped past midnight,
// so a full day is added. Either side failing to parse yields (Unknown, false).
func ComputeDuration(checkIn, checkOut string) (int, bool) {
	in, ok := ParseClockTime(checkIn)
	if !ok {
		return Unknown, false
	}
	out, ok := ParseClockTime(checkOut)
	if !ok {
		return Unknown, false
	}

	diff := out - in
	if diff < 0 {
		diff += minutesPerDay
	}
	return diff, true
}

// FormatDuration renders a minute count as "Xh Ym". Negative input is
// clamped to zero.
func FormatDuration(totalMinutes float64) string {
	if totalMinutes < 0 {
		totalMinutes = 0
	}
	hours := int(math.Floor(totalMinutes / 60))
	minutes := int(math.Round(math.Mod(totalMinutes, 60)))
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// MinutesOfDay returns t's wall-clock position as minutes since midnight.
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// FormatTime renders t as a 12-hour wall-clock string.
func FormatTime(t time.Time) string {
	return t.Format("03:04 PM")
}
