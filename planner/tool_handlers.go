package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// ToolKind is the closed set of functions the model may request. An
// unrecognized name fails the turn before any handler runs, since the
// dispatch table must exactly match the declared schema.
type ToolKind int

const (
	FindLocalPlaces ToolKind = iota
	CreateMapsQuery
	ExtractEventData
	CreateCalendarEvent
)

const (
	FindLocalPlacesKey     string = "find_local_places"
	CreateMapsQueryKey     string = "create_maps_query"
	ExtractEventDataKey    string = "extract_event_data"
	CreateCalendarEventKey string = "create_calendar_event"
)

func parseToolKind(name string) (ToolKind, error) {
	switch name {
	case FindLocalPlacesKey:
		return FindLocalPlaces, nil
	case CreateMapsQueryKey:
		return CreateMapsQuery, nil
	case ExtractEventDataKey:
		return ExtractEventData, nil
	case CreateCalendarEventKey:
		return CreateCalendarEvent, nil
	default:
		return 0, fmt.Errorf("unknown tool name %q", name)
	}
}

type FuncArgs struct {
	JsonValue string
	FuncName  string
	ToolID    string
}

type PlacesFuncArgs struct {
	Query string `json:"query"`
}

type MapsQueryFuncArgs struct {
	Message string `json:"message"`
}

type CalendarFuncArgs struct {
	Title    string `json:"title"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Location string `json:"location,omitempty"`
}

// GetToolOutputs executes the requested tool calls strictly in declaration
// order and returns their results as tool role messages for the follow-up
// completion.
func GetToolOutputs(
	ctx context.Context,
	toolCalls []openai.ToolCall,
	channelID string,
	session *Session,
	p *Planner,
) ([]openai.ChatCompletionMessage, error) {
	var toolOutputs []openai.ChatCompletionMessage
	for _, toolCall := range toolCalls {
		funcArg := FuncArgs{
			ToolID:    toolCall.ID,
			FuncName:  toolCall.Function.Name,
			JsonValue: toolCall.Function.Arguments,
		}

		kind, err := parseToolKind(funcArg.FuncName)
		if err != nil {
			return nil, err
		}

		log.Printf("received function request:%+v", funcArg)

		var output string
		switch kind {
		case FindLocalPlaces:
			output, err = handleFindLocalPlaces(funcArg, p)
		case CreateMapsQuery:
			output, err = handleCreateMapsQuery(ctx, funcArg, session, p)
		case ExtractEventData:
			output, err = handleExtractEventData(ctx, session, p)
		case CreateCalendarEvent:
			output, err = handleCreateCalendarEvent(funcArg, channelID, session, p)
		}
		if err != nil {
			log.Printf("error handling %s: %s\n", funcArg.FuncName, err)
		}

		toolOutputs = append(
			toolOutputs,
			openai.ChatCompletionMessage{ToolCallID: funcArg.ToolID, Content: output, Role: openai.ChatMessageRoleTool},
		)
	}
	return toolOutputs, nil
}

func handleFindLocalPlaces(funcArg FuncArgs, p *Planner) (string, error) {
	placesFuncArgs := PlacesFuncArgs{}
	err := json.Unmarshal([]byte(funcArg.JsonValue), &placesFuncArgs)
	if err != nil {
		log.Println("Could not unmarshal func args: ", funcArg.JsonValue)
		return "Error deserializing data", err
	}

	log.Println("searching venues for: ", placesFuncArgs.Query)

	return p.Places.FindLocalPlaces(placesFuncArgs.Query), nil
}

func handleCreateMapsQuery(
	ctx context.Context,
	funcArg FuncArgs,
	session *Session,
	p *Planner,
) (string, error) {
	mapsQueryFuncArgs := MapsQueryFuncArgs{}
	err := json.Unmarshal([]byte(funcArg.JsonValue), &mapsQueryFuncArgs)
	if err != nil {
		log.Println("Could not unmarshal func args: ", funcArg.JsonValue)
		return "Error deserializing data", err
	}

	query, err := createMapsQuery(ctx, mapsQueryFuncArgs.Message, session, p)
	if err != nil {
		return "There was a problem generating the maps query", err
	}
	if query == "" {
		return "No venue request found in the conversation", nil
	}
	return query, nil
}

func handleExtractEventData(
	ctx context.Context,
	session *Session,
	p *Planner,
) (string, error) {
	update, err := extractEventData(ctx, session, p)
	if err != nil {
		return "Could not extract event details from the conversation", err
	}

	session.Event.Merge(update)
	return "Updated event details: " + session.Event.JSON(), nil
}

func handleCreateCalendarEvent(
	funcArg FuncArgs,
	channelID string,
	session *Session,
	p *Planner,
) (string, error) {
	calendarFuncArgs := CalendarFuncArgs{}
	err := json.Unmarshal([]byte(funcArg.JsonValue), &calendarFuncArgs)
	if err != nil {
		log.Println("Could not unmarshal func args: ", funcArg.JsonValue)
		return "Error deserializing data", err
	}

	if p.Calendar == nil {
		return "Calendar integration is not configured", nil
	}

	link, start, err := p.Calendar.CreateEvent(calendarFuncArgs, session.Event.Theme, time.Now())
	if err != nil {
		// reported in-band so the model can relay it to the user
		return fmt.Sprintf("⚠️ Error creating Google Calendar event: %s", err), nil
	}

	if p.DB != nil {
		record := &EventRecord{
			ChannelID: channelID,
			Title:     calendarFuncArgs.Title,
			StartTime: start,
			Link:      link,
		}
		if err := p.DB.CreateEventRecord(record); err != nil {
			log.Println("unable to record calendar event: ", err)
		}
	}

	scheduleEventReminder(channelID, calendarFuncArgs.Title, start, p)

	return link, nil
}

// scheduleEventReminder queues a courtesy reminder message in the channel
// ahead of the event start. Events starting inside the lead window get none.
func scheduleEventReminder(channelID string, title string, start time.Time, p *Planner) {
	remindAt := start.Add(-p.Config.ReminderLead)
	if remindAt.Before(time.Now()) {
		return
	}

	err := p.Scheduler.AddReminderJob(channelID, remindAt, func() {
		message := fmt.Sprintf(REMINDER_MESSAGE_FORMAT, title, start.Format("3:04 PM"))
		sendChunkedChannelMessage(p.DiscordSession, channelID, message)
	})
	if err != nil {
		log.Println("could not schedule event reminder: ", err)
	}
}
