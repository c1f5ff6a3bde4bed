package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const (
	DEFAULT_CREDENTIALS_FILE = "gcal_credentials.json"
	DEFAULT_TOKEN_FILE       = "gcal_token.json"

	// default length of a created event
	EVENT_DURATION = 2 * time.Hour

	LOCATION_PLACEHOLDER = "TBD"
	THEME_PLACEHOLDER    = "No theme specified"
)

// CalendarClient wraps the Google Calendar service used to publish planned
// events. Repeated CreateEvent calls create duplicate entries; there is no
// dedup.
type CalendarClient struct {
	service  *calendar.Service
	timezone string
}

// NewCalendarClient builds an authenticated client from the OAuth credentials
// file and a previously cached token. Run the auth flow first to obtain one.
func NewCalendarClient(ctx context.Context, credentialsFile string, tokenFile string, timezone string) (*CalendarClient, error) {
	config, err := GetOAuthConfig(credentialsFile)
	if err != nil {
		return nil, err
	}

	token, err := tokenFromFile(tokenFile)
	if err != nil {
		return nil, fmt.Errorf("could not load calendar token: %w. Run the 'auth' command first", err)
	}

	client := config.Client(ctx, token)
	service, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}

	return &CalendarClient{service: service, timezone: timezone}, nil
}

// CreateEvent normalizes the model-provided date and time, inserts the event
// on the primary calendar, and returns the shareable link and parsed start.
// The theme comes from the live event state, not the tool arguments.
func (c *CalendarClient) CreateEvent(args CalendarFuncArgs, theme string, now time.Time) (string, time.Time, error) {
	event, start, err := buildCalendarEvent(args, theme, now, c.timezone)
	if err != nil {
		return "", time.Time{}, err
	}

	created, err := c.service.Events.Insert("primary", event).Do()
	if err != nil {
		return "", time.Time{}, err
	}

	log.Println("created calendar event: ", created.HtmlLink)
	return created.HtmlLink, start, nil
}

// buildCalendarEvent composes the request body. Missing location and theme get
// placeholder text rather than being left blank.
func buildCalendarEvent(args CalendarFuncArgs, theme string, now time.Time, timezone string) (*calendar.Event, time.Time, error) {
	start, err := parseEventStart(args.Date, args.Time, now)
	if err != nil {
		return nil, time.Time{}, err
	}
	end := start.Add(EVENT_DURATION)

	location := args.Location
	if location == "" || location == "none" {
		location = LOCATION_PLACEHOLDER
	}

	description := THEME_PLACEHOLDER
	if theme != "" && theme != "none" {
		description = "Theme: " + theme
	}

	event := &calendar.Event{
		Summary:     args.Title,
		Location:    location,
		Description: description,
		Start: &calendar.EventDateTime{
			DateTime: start.Format("2006-01-02T15:04:05"),
			TimeZone: timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: end.Format("2006-01-02T15:04:05"),
			TimeZone: timezone,
		},
		Visibility: "public",
	}
	return event, start, nil
}

// GetOAuthConfig reads the OAuth client credentials file.
func GetOAuthConfig(credentialsFile string) (*oauth2.Config, error) {
	b, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("unable to read calendar credentials file: %w", err)
	}

	config, err := google.ConfigFromJSON(b, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse calendar credentials: %w", err)
	}
	config.RedirectURL = "urn:ietf:wg:oauth:2.0:oob" // desktop app flow
	return config, nil
}

// TokenFromWeb exchanges an authorization code for a token.
func TokenFromWeb(config *oauth2.Config, authCode string) (*oauth2.Token, error) {
	return config.Exchange(context.Background(), authCode)
}

// SaveToken caches a token to a file path.
func SaveToken(path string, token *oauth2.Token) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create token file: %w", err)
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(token)
}

func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tok := &oauth2.Token{}
	err = json.NewDecoder(f).Decode(tok)
	return tok, err
}
