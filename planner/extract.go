package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	openai "github.com/sashabaranov/go-openai"
)

// extractEventData asks the model to re-read the conversation window and
// return the event details with any newly decided fields filled in. The reply
// is decoded strictly; it is never merged as raw text.
func extractEventData(
	ctx context.Context,
	session *Session,
	p *Planner,
) (*EventDetails, error) {
	prompt := fmt.Sprintf(
		EXTRACT_INSTRUCTIONS_FORMAT,
		strings.Join(session.Window.Lines(), "\n"),
		session.Event.JSON(),
	)

	p.Pacer.Wait(session.ID)
	resp, err := p.AIClient.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.Config.DefaultModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return nil, err
	}

	return decodeEventDetails(resp.Choices[0].Message.Content)
}

// decodeEventDetails parses the model's reply into EventDetails. Strict json
// first, then a repair pass for the usual malformations (single quotes,
// trailing prose, truncation). Anything still unparsable is rejected so bad
// output never reaches the live event state.
func decodeEventDetails(text string) (*EventDetails, error) {
	text = strings.TrimSpace(text)
	// models like to wrap json in code fences
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	details := NewEventDetails()
	if err := json.Unmarshal([]byte(text), details); err == nil {
		return details, nil
	}

	repaired, err := jsonrepair.RepairJSON(text)
	if err != nil {
		return nil, fmt.Errorf("could not repair event details json: %w", err)
	}

	details = NewEventDetails()
	if err := json.Unmarshal([]byte(repaired), details); err != nil {
		return nil, fmt.Errorf("could not parse repaired event details: %w", err)
	}
	return details, nil
}
