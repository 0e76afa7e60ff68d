package fixtures

import (
	"time"

	"github.com/staffhub-id/attendance-backend-go/internal/domain/attendance"
)

// ==========================================
// DEFAULT MONTH PATTERN
// ==========================================

// GenerateDefaultMonth synthesizes the attendance set for an employee month
// with no persisted data: every day NOT_MARKED except Sundays, which are
// WEEK_OFF. Kept pure and separate from the store's read path so the
// pattern is testable without persistence.
func GenerateDefaultMonth(employeeID string, year int, month time.Month) attendance.MonthlySet {
	days := DaysInMonth(year, month)

	records := make([]attendance.DailyRecord, 0, days)
	for day := 1; day <= days; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

		status := attendance.StatusNotMarked
		if date.Weekday() == time.Sunday {
			status = attendance.StatusWeekOff
		}

		records = append(records, attendance.DailyRecord{
			Date:   date.Format("2006-01-02"),
			Status: status,
		})
	}

	return attendance.MonthlySet{
		EmployeeID: employeeID,
		Year:       year,
		Month:      month,
		Records:    records,
	}
}

// DaysInMonth returns the number of calendar days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ==========================================
// BULK MARK DEFAULTS
// ==========================================

// Default check-in/check-out stamps applied when a bulk mark sets a day to
// PRESENT without a real punch.
const (
	DefaultCheckIn  = "09:30 AM"
	DefaultCheckOut = "06:30 PM"
)
