package planner

import (
	"context"
	"log"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Respond runs one planning turn: a completion with the tool schema attached,
// any requested tool calls executed in order, then a follow-up completion over
// the augmented message list. The caller must hold the session lock.
func Respond(
	ctx context.Context,
	channelID string,
	message string,
	session *Session,
	p *Planner,
) (string, error) {
	messages := []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleSystem,
			Content: buildSystemPrompt(session),
		},
		{
			Role:    openai.ChatMessageRoleUser,
			Content: message,
		},
	}

	req := openai.ChatCompletionRequest{
		Model:    p.Config.DefaultModel,
		Messages: messages,
		Tools:    ALL_TOOLS,
	}

	p.Pacer.Wait(session.ID)
	startTime := time.Now()
	resp, err := p.AIClient.CreateChatCompletion(ctx, req)
	if err != nil {
		log.Println("error getting response from ai", err)
		return "", err
	}
	log.Println("Request took: ", time.Since(startTime))

	respMessage := resp.Choices[0].Message
	if len(respMessage.ToolCalls) == 0 {
		return respMessage.Content, nil
	}

	messages = append(messages, respMessage)

	toolOutputs, err := GetToolOutputs(ctx, respMessage.ToolCalls, channelID, session, p)
	if err != nil {
		return "", err
	}
	messages = append(messages, toolOutputs...)

	followUpReq := openai.ChatCompletionRequest{
		Model:    p.Config.DefaultModel,
		Messages: messages,
	}

	p.Pacer.Wait(session.ID)
	resp, err = p.AIClient.CreateChatCompletion(ctx, followUpReq)
	if err != nil {
		log.Println("error getting follow up response from ai", err)
		return "", err
	}

	return resp.Choices[0].Message.Content, nil
}

// buildSystemPrompt composes the instructional preamble, the current event
// state, and the recent conversation window.
func buildSystemPrompt(session *Session) string {
	var sb strings.Builder
	sb.WriteString(PLANNER_INSTRUCTIONS)
	sb.WriteString(session.Event.JSON())
	sb.WriteString(WINDOW_INSTRUCTIONS)
	sb.WriteString(strings.Join(session.Window.Lines(), "\n"))
	return sb.String()
}

// createMapsQuery asks the model for a short venue search phrase based on the
// recent conversation. Returns an empty string when no venue intent is found.
func createMapsQuery(
	ctx context.Context,
	message string,
	session *Session,
	p *Planner,
) (string, error) {
	prompt := MAPS_QUERY_INSTRUCTIONS + message + "\n" + strings.Join(session.Window.Lines(), "\n")

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
		return "", err
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
