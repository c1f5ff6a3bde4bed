package planner

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"plannerbot/components"
)

const (
	PING        = "ping"
	HELP        = "help"
	SHOW_EVENT  = "show-event"
	RESET_EVENT = "reset-event"
)

const GENERAL_HELP = `Hello! 👋 I'm the Event Planner Bot, and I can help you plan your next event.
I can help with basic logistics, budgeting, and venue selection, and I can automatically generate a Google Calendar entry for your convenience.
Just talk to me in natural language, or use these commands:
` + "`/ping`" + ` - check that I'm awake
` + "`/show-event`" + ` - show the event details decided so far
` + "`/reset-event`" + ` - discard the current event and start over
`

func initSlashCommands(
	dg DiscordSession,
) ([]*discordgo.ApplicationCommand, error) {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        PING,
			Description: "Pings the bot",
		},
		{
			Name:        HELP,
			Description: "See what the event planner can do",
		},
		{
			Name:        SHOW_EVENT,
			Description: "Show the event details decided so far",
		},
		{
			Name:        RESET_EVENT,
			Description: "Discard the current event and start planning a new one",
		},
	}

	var created []*discordgo.ApplicationCommand
	for _, command := range commands {
		applicationCommand, err := dg.ApplicationCommandCreate(dg.GetState().User.ID, "", command)
		if err != nil {
			return nil, fmt.Errorf("error unable to create command %w", err)
		}
		created = append(created, applicationCommand)
	}
	return created, nil
}

func onCommand(i *discordgo.InteractionCreate, p *Planner) {
	log.Println(i.ApplicationCommandData().Name)
	switch i.ApplicationCommandData().Name {
	case PING:
		respondWithMessage(p.DiscordSession, i, "Pong!", false)
	case HELP:
		respondWithMessage(p.DiscordSession, i, GENERAL_HELP, true)
	case SHOW_EVENT:
		handleShowEvent(i, p)
	case RESET_EVENT:
		handleResetEvent(i, p)
	default:
		log.Println("received unrecognized command")
		respondWithMessage(p.DiscordSession, i, "Received unrecognized command", true)
	}
}

func handleShowEvent(i *discordgo.InteractionCreate, p *Planner) {
	session, exists := p.State.GetSession(i.ChannelID)
	if !exists {
		respondWithMessage(
			p.DiscordSession,
			i,
			"No event is being planned in this channel yet. Just say hi to get started!",
			true,
		)
		return
	}
	respondWithMessage(
		p.DiscordSession,
		i,
		"Here is what we have so far:\n```json\n"+session.Event.JSON()+"\n```",
		false,
	)
}

// handleResetEvent asks for a button confirmation before discarding the
// channel's session and any pending reminders.
func handleResetEvent(i *discordgo.InteractionCreate, p *Planner) {
	channelID := i.ChannelID
	confirm := p.ComponentHandler.WithSubmitButton(
		discordgo.Button{Label: "Start over", Style: discordgo.DangerButton},
		func(_ *discordgo.InteractionCreate) {
			p.State.ResetSession(channelID)
			p.Scheduler.CancelReminderJobs(channelID)
			if err := sendChunkedChannelMessage(
				p.DiscordSession,
				channelID,
				"Cleared the event. What are we planning next?",
			); err != nil {
				log.Println("unable to send reset confirmation: ", err)
			}
		},
	)
	keep := p.ComponentHandler.WithSubmitButton(
		discordgo.Button{Label: "Keep planning", Style: discordgo.SecondaryButton},
		func(_ *discordgo.InteractionCreate) {},
	)

	err := p.DiscordSession.InteractionRespond(i.Interaction,
		&discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content:    "This will discard everything planned so far. Are you sure?",
				Components: []discordgo.MessageComponent{components.ButtonRow(confirm, keep)},
			},
		})
	if err != nil {
		log.Printf("Error responding to slash command: %s\n", err)
	}
}

func respondWithMessage(
	dg DiscordSession,
	i *discordgo.InteractionCreate,
	message string,
	ephemeral bool,
) {
	data := &discordgo.InteractionResponseData{
		Content: message,
	}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	err := dg.InteractionRespond(i.Interaction,
		&discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: data,
		})
	if err != nil {
		log.Printf("Error responding to slash command: %s\n", err)
	}
}
