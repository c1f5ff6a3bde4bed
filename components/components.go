package components

import (
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
)

type ComponentClient interface {
	AddHandler(handler interface{}) func()
	// see discordgo.Session.InteractionRespond()
	InteractionRespond(
		interaction *discordgo.Interaction,
		resp *discordgo.InteractionResponse,
		options ...discordgo.RequestOption,
	) error
}

// ComponentHandler routes message component interactions to the callback
// registered for their generated CustomID.
type ComponentHandler struct {
	client            ComponentClient // discord client
	callbackFuncs     map[string]func(*discordgo.InteractionCreate)
	removeHandlerFunc func()
}

func NewComponentHandler(client ComponentClient) *ComponentHandler {
	componentHandler := &ComponentHandler{
		client:        client,
		callbackFuncs: map[string]func(*discordgo.InteractionCreate){},
	}

	removeHandlerFunc := client.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Type != discordgo.InteractionMessageComponent {
			return
		}
		if callbackFunc, ok := componentHandler.callbackFuncs[i.MessageComponentData().CustomID]; ok {
			noOpResponse(componentHandler.client, i)
			callbackFunc(i)
		} else {
			if err := client.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
				Type: discordgo.InteractionResponseChannelMessageWithSource,
				Data: &discordgo.InteractionResponseData{
					Content: "This component has expired",
					Flags:   discordgo.MessageFlagsEphemeral,
				},
			},
			); err != nil {
				log.Println("Error sending response", err)
			}
		}
	})

	componentHandler.removeHandlerFunc = removeHandlerFunc

	return componentHandler
}

func (c *ComponentHandler) Close() {
	c.removeHandlerFunc()
}

// WithButton creates a new CustomID for the button and registers a handler
// that will execute onClick after sending a default response.
func (c *ComponentHandler) WithButton(button discordgo.Button, onClick func(i *discordgo.InteractionCreate)) discordgo.Button {
	componentID := uuid.New().String()
	button.CustomID = componentID
	c.callbackFuncs[componentID] = onClick

	return button
}

// WithSubmitButton is WithButton for one-shot choices: the handler is
// deregistered after the first click.
func (c *ComponentHandler) WithSubmitButton(button discordgo.Button, onClick func(i *discordgo.InteractionCreate)) discordgo.Button {
	componentID := uuid.New().String()
	button.CustomID = componentID
	c.callbackFuncs[componentID] = func(i *discordgo.InteractionCreate) {
		onClick(i)
		delete(c.callbackFuncs, componentID)
	}

	return button
}

// ButtonRow packs buttons created with WithButton or WithSubmitButton into an
// ActionsRow component.
func ButtonRow(buttons ...discordgo.Button) discordgo.ActionsRow {
	components := make([]discordgo.MessageComponent, len(buttons))
	for i, button := range buttons {
		components[i] = button
	}
	return discordgo.ActionsRow{
		Components: components,
	}
}

func noOpResponse(client ComponentClient, i *discordgo.InteractionCreate) {
	if err := client.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	},
	); err != nil {
		log.Println("Error sending response", err)
	}
}
