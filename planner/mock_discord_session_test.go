package planner

import (
	"github.com/bwmarrin/discordgo"
)

// FOR TESTING
type MockDiscordSession struct {
	channelMessages     map[string][]string
	channelTypingCalled map[string]bool
	State               *discordgo.State
}

func newMockDiscordSession(botID string) *MockDiscordSession {
	m := &MockDiscordSession{
		channelMessages:     make(map[string][]string),
		channelTypingCalled: make(map[string]bool),
	}
	m.State = &discordgo.State{
		Ready: discordgo.Ready{
			User: &discordgo.User{
				ID: botID,
			},
		},
	}
	return m
}

func (m *MockDiscordSession) Open() error {
	return nil
}

func (m *MockDiscordSession) Close() error {
	return nil
}

func (m *MockDiscordSession) ChannelMessageSend(
	channelID, content string,
	options ...discordgo.RequestOption,
) (*discordgo.Message, error) {
	m.channelMessages[channelID] = append(m.channelMessages[channelID], content)
	return nil, nil
}

func (m *MockDiscordSession) ChannelTyping(
	channelID string,
	options ...discordgo.RequestOption,
) error {
	m.channelTypingCalled[channelID] = true
	return nil
}

func (m *MockDiscordSession) InteractionRespond(
	interaction *discordgo.Interaction,
	resp *discordgo.InteractionResponse,
	options ...discordgo.RequestOption,
) error {
	return nil
}

func (m *MockDiscordSession) ApplicationCommandCreate(
	appID string,
	guildID string,
	cmd *discordgo.ApplicationCommand,
	options ...discordgo.RequestOption,
) (*discordgo.ApplicationCommand, error) {
	return cmd, nil
}

func (m *MockDiscordSession) AddHandler(handler interface{}) func() {
	return func() {}
}

func (m *MockDiscordSession) GetState() *discordgo.State {
	return m.State
}
