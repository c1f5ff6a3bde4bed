package planner

import (
	"testing"
	"time"
)

func TestBuildCalendarEvent(t *testing.T) {
	args := CalendarFuncArgs{
		Title:    "Birthday",
		Date:     "March 5th",
		Time:     "6 PM",
		Location: "",
	}

	event, start, err := buildCalendarEvent(args, "", testNow, "America/Los_Angeles")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	expectedStart := time.Date(testNow.Year(), time.March, 5, 18, 0, 0, 0, time.UTC)
	if !start.Equal(expectedStart) {
		t.Errorf("expected start %s got %s", expectedStart, start)
	}

	if event.Summary != "Birthday" {
		t.Errorf("expected summary Birthday got %q", event.Summary)
	}
	if event.Location != LOCATION_PLACEHOLDER {
		t.Errorf("expected placeholder location got %q", event.Location)
	}
	if event.Description != THEME_PLACEHOLDER {
		t.Errorf("expected placeholder description got %q", event.Description)
	}
	if event.Start.TimeZone != "America/Los_Angeles" {
		t.Errorf("unexpected time zone %q", event.Start.TimeZone)
	}

	// default window is exactly 2 hours
	startTime, err := time.Parse("2006-01-02T15:04:05", event.Start.DateTime)
	if err != nil {
		t.Fatalf("unable to parse start datetime: %s", err)
	}
	endTime, err := time.Parse("2006-01-02T15:04:05", event.End.DateTime)
	if err != nil {
		t.Fatalf("unable to parse end datetime: %s", err)
	}
	if endTime.Sub(startTime) != EVENT_DURATION {
		t.Errorf("expected end %s after start, got %s", EVENT_DURATION, endTime.Sub(startTime))
	}
	if startTime.Hour() != 18 {
		t.Errorf("expected event to start at 18:00 got %d:00", startTime.Hour())
	}
}

func TestBuildCalendarEventWithTheme(t *testing.T) {
	args := CalendarFuncArgs{
		Title:    "Launch Party",
		Date:     "June 2nd",
		Time:     "7PM",
		Location: "The Warehouse",
	}

	event, _, err := buildCalendarEvent(args, "Retro Arcade", testNow, "America/Los_Angeles")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if event.Location != "The Warehouse" {
		t.Errorf("expected location kept got %q", event.Location)
	}
	if event.Description != "Theme: Retro Arcade" {
		t.Errorf("expected theme description got %q", event.Description)
	}
}

func TestBuildCalendarEventBadDate(t *testing.T) {
	args := CalendarFuncArgs{
		Title: "Birthday",
		Date:  "sometime soon",
		Time:  "6 PM",
	}

	if _, _, err := buildCalendarEvent(args, "", testNow, "America/Los_Angeles"); err == nil {
		t.Error("expected an error for an unparsable date")
	}
}
