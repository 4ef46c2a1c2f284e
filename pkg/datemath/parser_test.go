package datemath_test

import (
	"errors"
	"testing"
	"time"

	"cie-dashboard/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	if _, err := datemath.NewParser("Asia/Kolkata"); err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}
	if _, err := datemath.NewParser("Invalid/Timezone"); err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParseDate(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday

	tests := []struct {
		expr string
		want string
	}{
		{"2024-03-15", "2024-03-15"},
		{"today", "2024-05-01"},
		{"  Tomorrow ", "2024-05-02"},
		{"yesterday", "2024-04-30"},
		{"in 3 days", "2024-05-04"},
		{"in 2 weeks", "2024-05-15"},
		{"in 1 month", "2024-06-01"},
		{"2 weeks ago", "2024-04-17"},
		{"1 month ago", "2024-04-01"},
		{"next friday", "2024-05-03"},
		{"Next Wednesday", "2024-05-08"},
		{"last wednesday", "2024-04-24"},
		{"last mon", "2024-04-29"},
		{"this saturday", "2024-05-04"},
		{"this sunday", "2024-04-28"},
		{"next week", "2024-05-05"},
		{"last week", "2024-04-21"},
		{"this month", "2024-05-01"},
		{"next month", "2024-06-01"},
		{"last month", "2024-04-01"},
		{"next year", "2025-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := parser.ParseDate(tt.expr, base)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("ParseDate(%q) = %s, want %s", tt.expr, got, tt.want)
			}
		})
	}
}

func TestParseDateMonthClamp(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC)

	got, err := parser.ParseDate("in 1 month", base)
	if err != nil || got.String() != "2024-02-29" {
		t.Fatalf("in 1 month from Jan 31 = %s, %v", got, err)
	}
	got, _ = parser.ParseDate("1 month ago", time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC))
	if got.String() != "2024-02-29" {
		t.Fatalf("1 month ago from Mar 31 = %s", got)
	}
}

func TestParseDateTimezone(t *testing.T) {
	parser, _ := datemath.NewParser("Asia/Kolkata")
	// 20:00 UTC on Apr 30 is already May 1 in India.
	base := time.Date(2024, 4, 30, 20, 0, 0, 0, time.UTC)

	got, err := parser.ParseDate("today", base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "2024-05-01" {
		t.Errorf("today = %s, want 2024-05-01", got)
	}
}

func TestParseDateUnrecognized(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	for _, expr := range []string{"sometime soon", "next fortnight", "in 2 weeks please", "2024-02-30", ""} {
		t.Run(expr, func(t *testing.T) {
			if _, err := parser.ParseDate(expr, base); !errors.Is(err, datemath.ErrUnrecognized) {
				t.Fatalf("ParseDate(%q) err = %v, want ErrUnrecognized", expr, err)
			}
		})
	}
}
