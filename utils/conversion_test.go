package utils

import "testing"

func TestFormatMinuteOfDay(t *testing.T) {
	cases := map[int]string{
		0:    "12:00 AM",
		570:  "9:30 AM",
		720:  "12:00 PM",
		1140: "7:00 PM",
		1439: "11:59 PM",
		1500: "1:00 AM", // wraps onto the next day
	}
	for minute, want := range cases {
		if got := FormatMinuteOfDay(minute); got != want {
			t.Errorf("FormatMinuteOfDay(%d) = %q, want %q", minute, got, want)
		}
	}
}

func TestFormatIntervalLabel(t *testing.T) {
	if got := FormatIntervalLabel(540, 630); got != "9:00 AM - 10:30 AM" {
		t.Fatalf("FormatIntervalLabel(540, 630) = %q", got)
	}
	if got := FormatIntervalLabel(1380, 60); got != "11:00 PM - 1:00 AM" {
		t.Fatalf("FormatIntervalLabel(1380, 60) = %q", got)
	}
}
