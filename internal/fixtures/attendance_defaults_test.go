package fixtures

import (
	"testing"
	"time"

	"github.com/staffhub-id/attendance-backend-go/internal/domain/attendance"
)

func TestGenerateDefaultMonth(t *testing.T) {
	set := GenerateDefaultMonth("emp-1", 2025, time.June)

	if len(set.Records) != 30 {
		t.Fatalf("June 2025 should have 30 records, got %d", len(set.Records))
	}

	for _, rec := range set.Records {
		day, err := time.Parse("2006-01-02", rec.Date)
		if err != nil {
			t.Fatalf("bad date %q: %v", rec.Date, err)
		}
		want := attendance.StatusNotMarked
		if day.Weekday() == time.Sunday {
			want = attendance.StatusWeekOff
		}
		if rec.Status != want {
			t.Errorf("day %s status = %s, want %s", rec.Date, rec.Status, want)
		}
		if rec.CheckIn != nil || rec.CheckOut != nil || rec.IsLate {
			t.Errorf("day %s should be generated clean, got %+v", rec.Date, rec)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2025, time.January, 31},
		{2025, time.February, 28},
		{2024, time.February, 29},
		{2025, time.April, 30},
	}
	for _, c := range cases {
		if got := DaysInMonth(c.year, c.month); got != c.want {
			t.Errorf("DaysInMonth(%d, %s) = %d, want %d", c.year, c.month, got, c.want)
		}
	}
}
