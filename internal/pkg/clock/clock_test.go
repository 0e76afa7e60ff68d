package clock

import (
	"testing"
	"time"
)

func TestParseClockTime(t *testing.T) {
	cases := []struct {
		input string
		want  int
		ok    bool
	}{
		{"09:30 AM", 570, true},
		{"06:30 PM", 1110, true},
		{"12:00 AM", 0, true},
		{"12:00 PM", 720, true},
		{"12:59 PM", 779, true},
		{"  11:05 pm ", 1385, true},
		{"", Unknown, false},
		{"09:30", Unknown, false},
		{"25:00 AM", Unknown, false},
		{"09:61 AM", Unknown, false},
		{"0930 AM", Unknown, false},
		{"09:30 XM", Unknown, false},
		{"ab:cd AM", Unknown, false},
	}
	for _, c := range cases {
		got, ok := ParseClockTime(c.input)
		if got != c.want || ok != c.ok {
			t.Errorf("ParseClockTime(%q) = (%d, %v), want (%d, %v)", c.input, got, ok, c.want, c.ok)
		}
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	inputs := []string{"09:30 AM", "12:00 AM", "12:00 PM", "11:59 PM", "01:05 AM", "06:45 PM"}
	for _, in := range inputs {
		mins, ok := ParseClockTime(in)
		if !ok {
			t.Fatalf("ParseClockTime(%q) unexpectedly failed", in)
		}
		out := FormatClockTime(mins)
		back, ok := ParseClockTime(out)
		if !ok || back != mins {
			t.Errorf("round trip %q -> %d -> %q -> %d", in, mins, out, back)
		}
	}
}

func TestComputeDuration(t *testing.T) {
	cases := []struct {
		in, out string
		want    int
		ok      bool
	}{
		{"09:30 AM", "06:30 PM", 540, true},
		{"09:00 AM", "09:00 AM", 0, true},
		{"10:00 PM", "06:00 AM", 480, true}, // overnight wrap
		{"bogus", "06:30 PM", Unknown, false},
		{"09:30 AM", "", Unknown, false},
	}
	for _, c := range cases {
		got, ok := ComputeDuration(c.in, c.out)
		if got != c.want || ok != c.ok {
			t.Errorf("ComputeDuration(%q, %q) = (%d, %v), want (%d, %v)", c.in, c.out, got, ok, c.want, c.ok)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		input float64
		want  string
	}{
		{540, "9h 0m"},
		{75, "1h 15m"},
		{0, "0h 0m"},
		{-30, "0h 0m"},
		{59.6, "0h 60m"},
	}
	for _, c := range cases {
		got := FormatDuration(c.input)
		if got != c.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestMinutesOfDay(t *testing.T) {
	at := time.Date(2025, 3, 14, 9, 44, 30, 0, time.UTC)
	if got := MinutesOfDay(at); got != 584 {
		t.Errorf("MinutesOfDay = %d, want 584", got)
	}
	if got := FormatTime(at); got != "09:44 AM" {
		t.Errorf("FormatTime = %q, want %q", got, "09:44 AM")
	}
}
