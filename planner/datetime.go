package planner

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// layout matching the normalized "{Month Day Year} {Time}" string
const eventDateTimeLayout = "January 02 2006 3:04 PM"

var (
	ordinalSuffixPattern = regexp.MustCompile(`(\d+)(st|nd|rd|th)`)
	hourOnlyPattern      = regexp.MustCompile(`(?i)^(\d{1,2})\s?(AM|PM)$`)
	spaceBeforeColon     = regexp.MustCompile(`\s+:`)
)

// normalizeDate converts natural language dates such as "March 5th" into
// "March 05 2025" form: ordinal suffixes stripped, single-digit days padded,
// and the current year appended when the input carries none.
func normalizeDate(dateStr string, now time.Time) string {
	dateStr = ordinalSuffixPattern.ReplaceAllString(dateStr, "$1")
	dateStr = strings.ReplaceAll(dateStr, ",", "")

	parts := strings.Fields(dateStr)
	if len(parts) == 2 {
		month, day := parts[0], parts[1]
		if len(day) == 1 {
			day = "0" + day
		}
		return fmt.Sprintf("%s %s %d", month, day, now.Year())
	}
	return strings.Join(parts, " ")
}

// normalizeTime collapses forms like "6PM" and "6 PM" into "6:00 PM".
func normalizeTime(timeStr string) string {
	if timeStr == "" || strings.EqualFold(timeStr, "none") {
		return "12:00 PM"
	}
	timeStr = hourOnlyPattern.ReplaceAllString(timeStr, "$1:00 $2")
	timeStr = spaceBeforeColon.ReplaceAllString(timeStr, ":")
	timeStr = strings.Join(strings.Fields(timeStr), " ")
	return strings.ToUpper(timeStr)
}

// parseEventStart builds the normalized datetime string and parses it against
// the fixed layout.
func parseEventStart(dateStr string, timeStr string, now time.Time) (time.Time, error) {
	formatted := fmt.Sprintf("%s %s", normalizeDate(dateStr, now), normalizeTime(timeStr))
	start, err := time.Parse(eventDateTimeLayout, formatted)
	if err != nil {
		return time.Time{}, fmt.Errorf("could not understand the date and time %q", formatted)
	}
	return start, nil
}
