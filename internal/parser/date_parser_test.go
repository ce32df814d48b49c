package parser

import (
	"testing"
	"time"

	"github.com/balkashynov/tdo/internal/models"
)

// Friday
var refNow = time.Date(2025, time.February, 14, 16, 30, 0, 0, time.Local)

func TestResolveDate(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2025-03-01", "2025-03-01"},
		{"today", "2025-02-14"},
		{"TODAY", "2025-02-14"},
		{"tomorrow", "2025-02-15"},
		{"friday", "2025-02-21"},
		{"Saturday", "2025-02-15"},
		{"thursday", "2025-02-20"},
		{"fri", "2025-02-21"},
		{"next-friday", "2025-02-21"},
		{"next-saturday", "2025-02-22"},
		{"next-thursday", "2025-02-27"},
		{"next monday", "2025-02-24"},
		{"next-week", "2025-02-21"},
		{"  tomorrow ", "2025-02-15"},
		{"2024-02-29", "2024-02-29"},
	}

	for _, tt := range tests {
		got, err := ResolveDateString(tt.input, refNow)
		if err != nil {
			t.Fatalf("ResolveDate(%q) returned error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Fatalf("ResolveDate(%q) = %s, expected %s", tt.input, got, tt.want)
		}
	}
}

func TestResolveDateRejectsInvalidInput(t *testing.T) {
	for _, input := range []string{"", "someday-soon", "2025-13-01", "2025-02-30", "2025-00-10", "2025-2-1", "next-month", "next-"} {
		_, err := ResolveDate(input, refNow)
		if err == nil {
			t.Fatalf("ResolveDate(%q) expected error", input)
		}
		if !models.IsCode(err, models.ErrCodeInvalid) {
			t.Fatalf("ResolveDate(%q) error code = %v, expected INVALID", input, err)
		}
		if err.Error() != "Invalid date format: "+input {
			t.Fatalf("ResolveDate(%q) message = %q", input, err.Error())
		}
	}
}

func TestResolveDateReturnsMidnight(t *testing.T) {
	d, err := ResolveDate("tomorrow", refNow)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if d.Hour() != 0 || d.Minute() != 0 {
		t.Fatalf("expected midnight, got %s", d)
	}
}

func TestFormatDateHeader(t *testing.T) {
	if got := FormatDateHeader("2025-02-15", refNow); got != "Tomorrow" {
		t.Fatalf("expected Tomorrow, got %q", got)
	}
	if got := FormatDateHeader("2025-02-17", refNow); got != "Monday, Feb 17" {
		t.Fatalf("expected weekday header, got %q", got)
	}
	if got := FormatDateHeader("2026-01-05", refNow); got != "Monday, Jan 5 2026" {
		t.Fatalf("expected header with year, got %q", got)
	}
}
