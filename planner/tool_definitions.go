package planner

import (
	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

var ALL_TOOLS = []openai.Tool{
	FindLocalPlacesTool,
	CreateMapsQueryTool,
	ExtractEventDataTool,
	CreateCalendarEventTool,
}

var FindLocalPlacesTool = openai.Tool{
	Type:     openai.ToolTypeFunction,
	Function: &FindLocalPlacesFuncDef,
}

var FindLocalPlacesFuncDef = openai.FunctionDefinition{
	Name:        "find_local_places",
	Description: "Search a query on Google Maps. Returns venue names, addresses, and links",
	Parameters: &jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"query": {
				Type:        jsonschema.String,
				Description: "The query to search on Google Maps",
			},
		},
		Required: []string{
			"query",
		},
	},
}

var CreateMapsQueryTool = openai.Tool{
	Type:     openai.ToolTypeFunction,
	Function: &CreateMapsQueryFuncDef,
}

var CreateMapsQueryFuncDef = openai.FunctionDefinition{
	Name:        "create_maps_query",
	Description: "Generate a search query optimized for Google Maps from the recent conversation",
	Parameters: &jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"message": {
				Type:        jsonschema.String,
				Description: "The message to generate a Google Maps query from",
			},
		},
		Required: []string{
			"message",
		},
	},
}

var ExtractEventDataTool = openai.Tool{
	Type:     openai.ToolTypeFunction,
	Function: &ExtractEventDataFuncDef,
}

var ExtractEventDataFuncDef = openai.FunctionDefinition{
	Name:        "extract_event_data",
	Description: "Extract newly decided event details from the conversation history and update the event. Call this whenever an event detail is decided upon",
	Parameters: &jsonschema.Definition{
		Type:       jsonschema.Object,
		Properties: map[string]jsonschema.Definition{},
	},
}

var CreateCalendarEventTool = openai.Tool{
	Type:     openai.ToolTypeFunction,
	Function: &CreateCalendarEventFuncDef,
}

var CreateCalendarEventFuncDef = openai.FunctionDefinition{
	Name:        "create_calendar_event",
	Description: "Create a Google Calendar entry for the planned event and return a shareable link. Only call this once the user has confirmed the title, date, and time",
	Parameters: &jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"title": {
				Type:        jsonschema.String,
				Description: "Title of the event",
			},
			"date": {
				Type:        jsonschema.String,
				Description: "Date of the event in natural language, e.g. 'March 5th'",
			},
			"time": {
				Type:        jsonschema.String,
				Description: "Start time of the event, e.g. '6 PM'",
			},
			"location": {
				Type:        jsonschema.String,
				Description: "Location of the event. May be empty if undecided",
			},
		},
		Required: []string{
			"title",
			"date",
			"time",
		},
	},
}
