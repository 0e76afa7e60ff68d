package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/staffhub-id/attendance-backend-go/internal/domain/attendance"
	"github.com/staffhub-id/attendance-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stamped(date string, status attendance.DayStatus, checkIn, checkOut string, isLate bool) attendance.DailyRecord {
	rec := attendance.DailyRecord{Date: date, Status: status, IsLate: isLate}
	if checkIn != "" {
		rec.CheckIn = &checkIn
	}
	if checkOut != "" {
		rec.CheckOut = &checkOut
	}
	return rec
}

func TestAggregateIndividual(t *testing.T) {
	t.Parallel()
	e := newEnv(t, testDay)

	set := attendance.MonthlySet{
		EmployeeID: "emp-1",
		Year:       2025,
		Month:      time.June,
		Records: []attendance.DailyRecord{
			stamped("2025-06-01", attendance.StatusWeekOff, "", "", false),
			stamped("2025-06-02", attendance.StatusPresent, "09:00 AM", "06:00 PM", false),
			stamped("2025-06-03", attendance.StatusPresent, "10:00 AM", "06:00 PM", true),
			stamped("2025-06-04", attendance.StatusHalfDay, "09:00 AM", "01:00 PM", false),
			stamped("2025-06-05", attendance.StatusAbsent, "", "", false),
			stamped("2025-06-06", attendance.StatusPaidLeave, "", "", false),
			stamped("2025-06-07", attendance.StatusNotMarked, "", "", false),
		},
	}

	stats := e.svc.AggregateIndividual(set)
	assert.Equal(t, 2, stats.Present)
	assert.Equal(t, 1, stats.Absent)
	assert.Equal(t, 1, stats.HalfDay)
	assert.Equal(t, 1, stats.PaidLeave)
	assert.Equal(t, 1, stats.WeekOff)
	assert.Equal(t, 1, stats.NotMarked)
	assert.Equal(t, 1, stats.Late)

	// 9h + 8h + 4h worked.
	assert.Equal(t, 21*60, stats.TotalWorkedMinutes)
	assert.Equal(t, "21h 0m", stats.TotalWorked)
}

func TestAggregateIndividual_SkipsUnworkedAndMalformed(t *testing.T) {
	t.Parallel()
	e := newEnv(t, testDay)

	set := attendance.MonthlySet{
		Records: []attendance.DailyRecord{
			// Stamps on a leave day do not count as worked time.
			stamped("2025-06-02", attendance.StatusPaidLeave, "09:00 AM", "06:00 PM", false),
			// Missing checkout.
			stamped("2025-06-03", attendance.StatusPresent, "09:00 AM", "", false),
			// Garbage stamp degrades to zero instead of erroring.
			stamped("2025-06-04", attendance.StatusPresent, "garbage", "06:00 PM", false),
		},
	}

	stats := e.svc.AggregateIndividual(set)
	assert.Equal(t, 0, stats.TotalWorkedMinutes)
	assert.Equal(t, "0h 0m", stats.TotalWorked)
}

func TestAggregateIndividual_OvernightShift(t *testing.T) {
	t.Parallel()
	e := newEnv(t, testDay)

	set := attendance.MonthlySet{
		Records: []attendance.DailyRecord{
			stamped("2025-06-02", attendance.StatusPresent, "10:00 PM", "06:00 AM", false),
		},
	}

	stats := e.svc.AggregateIndividual(set)
	assert.Equal(t, 8*60, stats.TotalWorkedMinutes)
	assert.Equal(t, "8h 0m", stats.TotalWorked)
}

func TestMusterRoll(t *testing.T) {
	t.Parallel()
	e := newEnv(t, testDay)

	ids := []string{"emp-1", "emp-2", "emp-3"}
	for _, id := range ids {
		e.employees.profiles[id] = geofencedEmployee(id)
	}

	// emp-1 and emp-2 present on the 16th, emp-3 absent.
	for _, id := range []string{"emp-1", "emp-2"} {
		set, err := e.svc.GetMonthlyAttendance(context.Background(), id, 2025, time.June)
		require.NoError(t, err)
		checkIn, checkOut := "09:30 AM", "06:30 PM"
		rec := set.RecordFor(16)
		rec.Status = attendance.StatusPresent
		rec.CheckIn = &checkIn
		rec.CheckOut = &checkOut
		require.NoError(t, e.records.Set(context.Background(), set))
	}
	set, err := e.svc.GetMonthlyAttendance(context.Background(), "emp-3", 2025, time.June)
	require.NoError(t, err)
	set.RecordFor(16).Status = attendance.StatusAbsent
	require.NoError(t, e.records.Set(context.Background(), set))

	roll, err := e.svc.MusterRoll(context.Background(), ids, 2025, time.June)
	require.NoError(t, err)

	// The current month is truncated at today.
	assert.Equal(t, 17, roll.DaysInMonth)
	require.Len(t, roll.Rows, 3)
	require.Len(t, roll.DayTotals, 17)

	assert.Equal(t, "Asha Putri", roll.Rows[0].EmployeeName)
	assert.Equal(t, attendance.StatusPresent, roll.Rows[0].Days[15])
	assert.Equal(t, attendance.StatusAbsent, roll.Rows[2].Days[15])

	assert.Equal(t, 2, roll.DayTotals[15].Present)
	assert.Equal(t, 1, roll.DayTotals[15].Absent)
	assert.Equal(t, 0, roll.DayTotals[15].Leave)

	// Per-row totals over the truncated window: the 1st, 8th and 15th were
	// generated as WEEK_OFF, the rest NOT_MARKED except the seeded 16th.
	assert.Equal(t, 1, roll.Rows[0].Present)
	assert.Equal(t, 0, roll.Rows[0].Absent)
	assert.Equal(t, 1, roll.Rows[2].Absent)
}

func TestMusterRoll_UnknownEmployeeFails(t *testing.T) {
	t.Parallel()
	e := newEnv(t, testDay)
	e.employees.profiles["emp-1"] = geofencedEmployee("emp-1")

	_, err := e.svc.MusterRoll(context.Background(), []string{"emp-1", "ghost"}, 2025, time.June)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestMusterRoll_PastMonthFullLength(t *testing.T) {
	t.Parallel()
	e := newEnv(t, testDay)
	e.employees.profiles["emp-1"] = geofencedEmployee("emp-1")

	roll, err := e.svc.MusterRoll(context.Background(), []string{"emp-1"}, 2025, time.April)
	require.NoError(t, err)
	assert.Equal(t, 30, roll.DaysInMonth)
	assert.Len(t, roll.Rows[0].Days, 30)
}

func TestTotalMonthlyDuration(t *testing.T) {
	t.Parallel()
	e := newEnv(t, testDay)

	set := attendance.MonthlySet{
		Records: []attendance.DailyRecord{
			stamped("2025-06-02", attendance.StatusPresent, "09:00 AM", "06:00 PM", false),
			stamped("2025-06-03", attendance.StatusHalfDay, "09:00 AM", "01:00 PM", false),
		},
	}
	assert.Equal(t, 13*60, e.svc.TotalMonthlyDuration(set))
}
