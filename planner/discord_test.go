package planner

import (
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
)

const BOT_ID = "BOT"

func TestSplitMessage(t *testing.T) {
	tests := []struct {
		name      string
		length    int
		maxLength int
		expected  int
	}{
		{"shorter than limit", 10, 100, 1},
		{"exactly at limit", 100, 100, 1},
		{"one over limit", 101, 100, 2},
		{"several chunks", 450, 100, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			content := strings.Repeat("a", tc.length)
			chunks := splitMessage(content, tc.maxLength)

			if len(chunks) != tc.expected {
				t.Errorf("expected %d chunks got %d", tc.expected, len(chunks))
			}
			for i, chunk := range chunks {
				if len(chunk) > tc.maxLength {
					t.Errorf("chunk %d exceeds limit: %d > %d", i, len(chunk), tc.maxLength)
				}
			}
			if strings.Join(chunks, "") != content {
				t.Error("expected concatenated chunks to reproduce the original")
			}
		})
	}
}

func TestSendChunkedChannelMessage(t *testing.T) {
	dg := newMockDiscordSession(BOT_ID)
	message := strings.Repeat("b", MAX_MESSAGE_LENGTH+500)

	if err := sendChunkedChannelMessage(dg, "chan", message); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	sent := dg.channelMessages["chan"]
	if len(sent) != 2 {
		t.Fatalf("expected 2 messages got %d", len(sent))
	}
	if strings.Join(sent, "") != message {
		t.Error("expected sent chunks to reproduce the original message")
	}
}

func newTestPlanner(dg DiscordSession) *Planner {
	return &Planner{
		DiscordSession: dg,
		State:          NewState(DEFAULT_WINDOW_SIZE),
		Config: &Config{
			DefaultModel: "test-model",
			WindowSize:   DEFAULT_WINDOW_SIZE,
		},
		Pacer: NewPacer(0),
	}
}

func TestMessageCreateIgnoresBots(t *testing.T) {
	dg := newMockDiscordSession(BOT_ID)
	p := newTestPlanner(dg)

	msg := &discordgo.MessageCreate{
		Message: &discordgo.Message{
			ID:        "1",
			ChannelID: "chan",
			Content:   "hello",
			Author: &discordgo.User{
				ID: BOT_ID,
			},
		},
	}

	messageCreate(msg, p)

	if len(dg.channelMessages["chan"]) > 0 {
		t.Error("Expected ChannelMessageSend to not be called")
	}
	if dg.channelTypingCalled["chan"] {
		t.Error("Expected ChannelTyping to not be called")
	}
	if _, exists := p.State.GetSession("chan"); exists {
		t.Error("Expected no session to be created")
	}
}

func TestMessageCreateIgnoresOtherBots(t *testing.T) {
	dg := newMockDiscordSession(BOT_ID)
	p := newTestPlanner(dg)

	msg := &discordgo.MessageCreate{
		Message: &discordgo.Message{
			ID:        "1",
			ChannelID: "chan",
			Content:   "hello",
			Author: &discordgo.User{
				ID:  "OTHERBOT",
				Bot: true,
			},
		},
	}

	messageCreate(msg, p)

	if len(dg.channelMessages["chan"]) > 0 {
		t.Error("Expected ChannelMessageSend to not be called")
	}
}

func TestMessageCreateIgnoresCommands(t *testing.T) {
	dg := newMockDiscordSession(BOT_ID)
	p := newTestPlanner(dg)

	msg := &discordgo.MessageCreate{
		Message: &discordgo.Message{
			ID:        "1",
			ChannelID: "chan",
			Content:   "!ping",
			Author: &discordgo.User{
				ID: "USER",
			},
		},
	}

	messageCreate(msg, p)

	if len(dg.channelMessages["chan"]) > 0 {
		t.Error("Expected ChannelMessageSend to not be called")
	}
	if dg.channelTypingCalled["chan"] {
		t.Error("Expected ChannelTyping to not be called")
	}
}
