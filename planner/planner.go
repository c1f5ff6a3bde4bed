package planner

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	openai "github.com/sashabaranov/go-openai"

	"plannerbot/components"
)

type Planner struct {
	DiscordSession   DiscordSession
	AIClient         *openai.Client
	State            *State
	DB               Database
	Calendar         *CalendarClient
	Places           *PlacesClient
	ComponentHandler *components.ComponentHandler
	Config           *Config
	Scheduler        *Scheduler
	Pacer            *Pacer
}

const (
	DEFAULT_WINDOW_SIZE = 10
	// courtesy spacing between completion calls for one session
	COMPLETION_INTERVAL = 3 * time.Second
	REMINDER_LEAD       = 1 * time.Hour
	DEFAULT_TIMEZONE    = "America/Los_Angeles"
	DEFAULT_DB_FILE     = "plannerbot.db"
)

func NewPlanner(aiClientKey string, discordToken string) *Planner {
	session, err := discordgo.New("Bot " + discordToken)
	if err != nil {
		log.Fatalln("Unable to get discord client")
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	aiClient := openai.NewClient(aiClientKey)

	timezone := os.Getenv("EVENT_TIMEZONE")
	if timezone == "" {
		timezone = DEFAULT_TIMEZONE
	}

	config := &Config{
		DefaultModel:       openai.GPT4o,
		WindowSize:         DEFAULT_WINDOW_SIZE,
		CompletionInterval: COMPLETION_INTERVAL,
		ReminderLead:       REMINDER_LEAD,
		MapsAPIKey:         os.Getenv("MAPS_API_KEY"),
		Timezone:           timezone,
	}

	dbFile := os.Getenv("DB_FILE")
	if dbFile == "" {
		dbFile = DEFAULT_DB_FILE
	}
	log.Println("Connecting to db")
	db, err := NewDB(dbFile)
	if err != nil {
		log.Fatalln("Unable to get database connection", err)
	}

	scheduler, err := NewScheduler()
	if err != nil {
		log.Fatal("could not create scheduler", err)
	}

	// the bot still plans without a calendar connection, it just can't
	// publish events
	calendarClient := newCalendarClientFromEnv(config.Timezone)

	return &Planner{
		DiscordSession:   NewDiscordBot(session),
		AIClient:         aiClient,
		State:            NewState(config.WindowSize),
		DB:               db,
		Calendar:         calendarClient,
		Places:           NewPlacesClient(config.MapsAPIKey),
		ComponentHandler: components.NewComponentHandler(session),
		Config:           config,
		Scheduler:        scheduler,
		Pacer:            NewPacer(config.CompletionInterval),
	}
}

func newCalendarClientFromEnv(timezone string) *CalendarClient {
	credentialsFile := os.Getenv("GCAL_CREDENTIALS_FILE")
	if credentialsFile == "" {
		credentialsFile = DEFAULT_CREDENTIALS_FILE
	}
	tokenFile := os.Getenv("GCAL_TOKEN_FILE")
	if tokenFile == "" {
		tokenFile = DEFAULT_TOKEN_FILE
	}

	calendarClient, err := NewCalendarClient(context.Background(), credentialsFile, tokenFile, timezone)
	if err != nil {
		log.Println("calendar integration disabled: ", err)
		return nil
	}
	return calendarClient
}

func (p *Planner) Run() error {
	err := p.DiscordSession.Open()
	if err != nil {
		return fmt.Errorf("error unable to open discord session %w", err)
	}
	defer p.DiscordSession.Close()

	p.DiscordSession.AddHandler(func(_ *discordgo.Session, m *discordgo.MessageCreate) {
		messageCreate(m, p)
	})

	p.DiscordSession.AddHandler(
		func(_ *discordgo.Session, i *discordgo.InteractionCreate) {
			switch i.Type {
			case discordgo.InteractionApplicationCommand:
				onCommand(i, p)
			}
		},
	)

	if _, err := initSlashCommands(p.DiscordSession); err != nil {
		return err
	}

	p.Scheduler.Start()
	defer p.Scheduler.Shutdown()

	log.Println("Bot is now running. Press CTRL+C to exit.")
	sc := make(chan os.Signal, 1)
	signal.Notify(
		sc,
		syscall.SIGINT,
		syscall.SIGTERM,
		os.Interrupt,
	)
	<-sc
	return nil
}
