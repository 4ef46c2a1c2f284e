package feed

import (
	"errors"
	"testing"
	"time"

	"cie-dashboard/pkg/calendar"
)

func TestParseICS(t *testing.T) {
	events, skipped, err := ParseICS([]byte(sampleICS), time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 4 {
		t.Fatalf("parsed %d events, want 4", len(events))
	}
	if len(skipped) != 1 {
		t.Fatalf("skipped = %v, want the VEVENT without UID", skipped)
	}

	byUID := map[string]VEvent{}
	for _, ev := range events {
		if ev.RecurrenceID == nil {
			byUID[ev.UID] = ev
		}
	}

	republic := byUID["republic@cie"]
	if !republic.AllDay || republic.StartDate != calendar.MustParseDate("2024-01-26") || republic.EndDate != calendar.MustParseDate("2024-01-27") {
		t.Errorf("republic = %+v", republic)
	}

	seminar := byUID["seminar@cie"]
	if seminar.AllDay || seminar.RRule != "FREQ=WEEKLY;COUNT=4" || len(seminar.ExDates) != 1 {
		t.Errorf("seminar = %+v", seminar)
	}
	if seminar.Description != "Room 101" || seminar.End.Sub(seminar.Start) != time.Hour {
		t.Errorf("seminar details = %+v", seminar)
	}
}

func TestParseICSEmpty(t *testing.T) {
	if _, _, err := ParseICS([]byte("  \r\n"), nil); !errors.Is(err, ErrEmptyBody) {
		t.Fatalf("err = %v, want ErrEmptyBody", err)
	}
}

func TestParseICSTime(t *testing.T) {
	ist := time.FixedZone("IST", 19800)

	tests := []struct {
		in   string
		want time.Time
	}{
		{"20240311T093000Z", time.Date(2024, 3, 11, 9, 30, 0, 0, time.UTC)},
		{"20240311T093000", time.Date(2024, 3, 11, 9, 30, 0, 0, ist)},
		{"20240311", time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseICSTime(tt.in, ist)
			if err != nil || !got.Equal(tt.want) {
				t.Errorf("parseICSTime(%q) = %v, %v", tt.in, got, err)
			}
		})
	}
}

func TestRedactURL(t *testing.T) {
	if got := redactURL("https://calendar.example.com/private/abc.ics?token=x"); got != "https://calendar.example.com/...(redacted)" {
		t.Errorf("redactURL = %s", got)
	}
	if got := redactURL("not a url"); got != "ics://...(redacted)" {
		t.Errorf("redactURL = %s", got)
	}
}
