package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/staffhub-id/attendance-backend-go/internal/domain/attendance"
	"github.com/staffhub-id/attendance-backend-go/internal/fixtures"
	"github.com/staffhub-id/attendance-backend-go/internal/pkg/clock"
)

// AggregateIndividual implements attendance.AttendanceService: per-status
// counts, late count and total worked duration in a single pass.
func (s *AttendanceServiceImpl) AggregateIndividual(set attendance.MonthlySet) attendance.MonthStats {
	var stats attendance.MonthStats

	for _, rec := range set.Records {
		switch rec.Status {
		case attendance.StatusPresent:
			stats.Present++
		case attendance.StatusAbsent:
			stats.Absent++
		case attendance.StatusHalfDay:
			stats.HalfDay++
		case attendance.StatusPaidLeave:
			stats.PaidLeave++
		case attendance.StatusWeekOff:
			stats.WeekOff++
		default:
			stats.NotMarked++
		}

		if rec.IsLate {
			stats.Late++
		}

		stats.TotalWorkedMinutes += workedMinutes(rec)
	}

	stats.TotalWorked = clock.FormatDuration(float64(stats.TotalWorkedMinutes))
	return stats
}

// workedMinutes counts a day only when it was actually worked and both
// stamps are present. Malformed stamps degrade to zero, never an error.
func workedMinutes(rec attendance.DailyRecord) int {
	if rec.Status != attendance.StatusPresent && rec.Status != attendance.StatusHalfDay {
		return 0
	}
	if rec.CheckIn == nil || rec.CheckOut == nil {
		return 0
	}
	mins, ok := clock.ComputeDuration(*rec.CheckIn, *rec.CheckOut)
	if !ok {
		return 0
	}
	return mins
}

// MusterRoll implements attendance.AttendanceService. Every row reads the
// same persisted set the individual calendar reads, so the two views can
// never diverge for the same employee and month.
func (s *AttendanceServiceImpl) MusterRoll(ctx context.Context, employeeIDs []string, year int, month time.Month) (attendance.MusterRoll, error) {
	days := fixtures.DaysInMonth(year, month)
	now := s.now()
	if year == now.Year() && month == now.Month() && now.Day() < days {
		days = now.Day()
	}

	roll := attendance.MusterRoll{
		Year:        year,
		Month:       month,
		DaysInMonth: days,
		Rows:        make([]attendance.MusterRow, 0, len(employeeIDs)),
		DayTotals:   make([]attendance.DayTotals, days),
	}

	for _, id := range employeeIDs {
		emp, err := s.EmployeeRepository.GetByID(ctx, id)
		if err != nil {
			return attendance.MusterRoll{}, fmt.Errorf("failed to get employee %s: %w", id, err)
		}

		set, err := s.loadMonth(ctx, id, year, month, true)
		if err != nil {
			return attendance.MusterRoll{}, err
		}

		row := attendance.MusterRow{
			EmployeeID:   id,
			EmployeeName: emp.Name,
			Days:         make([]attendance.DayStatus, days),
		}

		for day := 1; day <= days; day++ {
			status := attendance.StatusNotMarked
			if rec := set.RecordFor(day); rec != nil {
				status = rec.Status
			}
			row.Days[day-1] = status

			switch status {
			case attendance.StatusPresent, attendance.StatusHalfDay:
				row.Present++
				roll.DayTotals[day-1].Present++
			case attendance.StatusAbsent:
				row.Absent++
				roll.DayTotals[day-1].Absent++
			case attendance.StatusPaidLeave:
				row.Leave++
				roll.DayTotals[day-1].Leave++
			}
		}

		roll.Rows = append(roll.Rows, row)
	}

	return roll, nil
}

// TotalMonthlyDuration sums worked minutes over a set. Exposed for the
// summary view alongside AggregateIndividual.
func (s *AttendanceServiceImpl) TotalMonthlyDuration(set attendance.MonthlySet) int {
	total := 0
	for _, rec := range set.Records {
		total += workedMinutes(rec)
	}
	return total
}
