package attendance

import (
	"time"
)

// DayStatus is the marked state of a single calendar day.
type DayStatus string

const (
	StatusNotMarked DayStatus = "NOT_MARKED"
	StatusPresent   DayStatus = "PRESENT"
	StatusAbsent    DayStatus = "ABSENT"
	StatusHalfDay   DayStatus = "HALF_DAY"
	StatusPaidLeave DayStatus = "PAID_LEAVE"
	StatusWeekOff   DayStatus = "WEEK_OFF"
)

// AllStatuses lists every valid day status.
func AllStatuses() []DayStatus {
	return []DayStatus{
		StatusNotMarked,
		StatusPresent,
		StatusAbsent,
		StatusHalfDay,
		StatusPaidLeave,
		StatusWeekOff,
	}
}

func (s DayStatus) Valid() bool {
	for _, v := range AllStatuses() {
		if s == v {
			return true
		}
	}
	return false
}

// PunchState is the per-day position in the punch pipeline, derived from
// the stored record rather than kept separately.
type PunchState string

const (
	NotPunched PunchState = "NOT_PUNCHED"
	PunchedIn  PunchState = "PUNCHED_IN"
	PunchedOut PunchState = "PUNCHED_OUT"
)

// DailyRecord is one calendar day of one employee's attendance.
// CheckOut is meaningful only when CheckIn is set; IsLate is stamped at
// punch-in and never changes afterwards.
type DailyRecord struct {
	Date     string    `json:"date"` // "2006-01-02"
	Status   DayStatus `json:"status"`
	CheckIn  *string   `json:"check_in,omitempty"`  // "hh:mm AM/PM"
	CheckOut *string   `json:"check_out,omitempty"` // "hh:mm AM/PM"
	IsLate   bool      `json:"is_late"`
}

// Day returns the day-of-month, or 0 if the date string is malformed.
func (r DailyRecord) Day() int {
	t, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return 0
	}
	return t.Day()
}

// PunchState derives the day's punch pipeline position.
func (r DailyRecord) PunchState() PunchState {
	switch {
	case r.CheckIn == nil:
		return NotPunched
	case r.CheckOut == nil:
		return PunchedIn
	default:
		return PunchedOut
	}
}

// MonthlySet holds exactly one DailyRecord per calendar day of an
// employee's month, ordered by day.
type MonthlySet struct {
	EmployeeID string        `json:"employee_id"`
	Year       int           `json:"year"`
	Month      time.Month    `json:"month"`
	Records    []DailyRecord `json:"records"`
}

// RecordFor returns a pointer to the record for the given day-of-month,
// or nil when out of range.
func (s *MonthlySet) RecordFor(day int) *DailyRecord {
	for i := range s.Records {
		if s.Records[i].Day() == day {
			return &s.Records[i]
		}
	}
	return nil
}

// MonthStats is the aggregate view of one MonthlySet.
type MonthStats struct {
	Present            int    `json:"present"`
	Absent             int    `json:"absent"`
	HalfDay            int    `json:"half_day"`
	PaidLeave          int    `json:"paid_leave"`
	WeekOff            int    `json:"week_off"`
	NotMarked          int    `json:"not_marked"`
	Late               int    `json:"late"`
	TotalWorkedMinutes int    `json:"total_worked_minutes"`
	TotalWorked        string `json:"total_worked"` // "Xh Ym"
}

// MusterRow is one employee's line in a muster roll: a day-by-day status
// grid plus presence/absence/leave counts.
type MusterRow struct {
	EmployeeID   string      `json:"employee_id"`
	EmployeeName string      `json:"employee_name"`
	Days         []DayStatus `json:"days"` // index 0 is day 1
	Present      int         `json:"present"`
	Absent       int         `json:"absent"`
	Leave        int         `json:"leave"`
}

// DayTotals is the per-day column footer of a muster roll.
type DayTotals struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Leave   int `json:"leave"`
}

// MusterRoll is the multi-employee day-by-day attendance grid for a month.
type MusterRoll struct {
	Year        int         `json:"year"`
	Month       time.Month  `json:"month"`
	DaysInMonth int         `json:"days_in_month"` // truncated to today for the current month
	Rows        []MusterRow `json:"rows"`
	DayTotals   []DayTotals `json:"day_totals"`
}
