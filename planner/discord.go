package planner

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"
)

const (
	// legacy text command prefix, filtered out before the agent sees anything
	COMMAND_PREFIX = "!"

	// discord's hard cap on message length
	MAX_MESSAGE_LENGTH = 2000
)

// messageCreate forwards every plain channel message to the orchestrator and
// relays the reply. Bot-authored and command-prefixed messages are ignored.
func messageCreate(m *discordgo.MessageCreate, p *Planner) {
	if m.Author.ID == p.DiscordSession.GetState().User.ID || m.Author.Bot {
		return
	}
	if strings.HasPrefix(m.Content, COMMAND_PREFIX) {
		return
	}

	log.Printf("Processing message from %s: %s\n", m.Author.Username, m.Content)

	session := p.State.GetOrCreateSession(m.ChannelID)
	session.Lock()
	defer session.Unlock()

	p.DiscordSession.ChannelTyping(m.ChannelID)

	response, err := Respond(context.Background(), m.ChannelID, m.Content, session, p)
	if err != nil {
		log.Println("Unable to get response: ", err)
		response = ERROR_RESPONSE
	}

	session.Window.Add("User: " + m.Content)
	session.Window.Add("Me: " + response)

	if err := sendChunkedChannelMessage(p.DiscordSession, m.ChannelID, response); err != nil {
		log.Println("unable to send response: ", err)
	}
}

// sendChunkedChannelMessage splits a reply into size-bounded chunks so
// replies longer than the discord cap still go through intact.
func sendChunkedChannelMessage(dg DiscordSession, channelID string, message string) error {
	for _, chunk := range splitMessage(message, MAX_MESSAGE_LENGTH) {
		if _, err := dg.ChannelMessageSend(channelID, chunk); err != nil {
			return fmt.Errorf("could not send message on channel %s: %w", channelID, err)
		}
	}
	return nil
}

// splitMessage cuts content into ceil(len/maxLength) pieces whose
// concatenation reproduces the original exactly.
func splitMessage(content string, maxLength int) []string {
	var chunks []string
	for len(content) > maxLength {
		chunks = append(chunks, content[:maxLength])
		content = content[maxLength:]
	}
	return append(chunks, content)
}
