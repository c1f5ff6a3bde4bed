package planner

import (
	"fmt"
	"testing"
	"time"
)

var testNow = time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"March 5th", fmt.Sprintf("March 05 %d", testNow.Year())},
		{"March 21st", fmt.Sprintf("March 21 %d", testNow.Year())},
		{"June 2nd", fmt.Sprintf("June 02 %d", testNow.Year())},
		{"July 3rd", fmt.Sprintf("July 03 %d", testNow.Year())},
		{"March 5 2027", "March 5 2027"},
		{"March 5th, 2027", "March 5 2027"},
	}

	for _, tc := range tests {
		if got := normalizeDate(tc.input, testNow); got != tc.expected {
			t.Errorf("normalizeDate(%q) = %q, expected %q", tc.input, got, tc.expected)
		}
	}
}

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"6PM", "6:00 PM"},
		{"6 PM", "6:00 PM"},
		{"6pm", "6:00 PM"},
		{"6 :00 PM", "6:00 PM"},
		{"6:30 pm", "6:30 PM"},
		{"11AM", "11:00 AM"},
		{"none", "12:00 PM"},
		{"", "12:00 PM"},
	}

	for _, tc := range tests {
		if got := normalizeTime(tc.input); got != tc.expected {
			t.Errorf("normalizeTime(%q) = %q, expected %q", tc.input, got, tc.expected)
		}
	}
}

func TestParseEventStart(t *testing.T) {
	start, err := parseEventStart("March 5th", "6 PM", testNow)
	if err != nil {
		t.Fatalf("unexpected parse error: %s", err)
	}

	expected := time.Date(testNow.Year(), time.March, 5, 18, 0, 0, 0, time.UTC)
	if !start.Equal(expected) {
		t.Errorf("expected start %s got %s", expected, start)
	}
}

func TestParseEventStartBadInput(t *testing.T) {
	if _, err := parseEventStart("whenever", "sometime", testNow); err == nil {
		t.Error("expected an error for unparsable input")
	}
}
