package planner

import (
	"time"
)

type Config struct {
	DefaultModel string
	// number of conversation lines kept per channel session
	WindowSize int
	// minimum spacing between consecutive completion calls for one session.
	// keeps the bot from hammering the chat api during tool turns
	CompletionInterval time.Duration
	// how far ahead of an event's start time the reminder is sent
	ReminderLead time.Duration
	MapsAPIKey   string
	// IANA zone used for created calendar events
	Timezone string
}
