package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/oauth2"

	"plannerbot/planner"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)
	log.Println("Initializing...")
	err := godotenv.Load()
	if err != nil {
		log.Println("no .env file found, using environment as is")
	}

	if len(os.Args) > 1 && os.Args[1] == "auth" {
		if err := runCalendarAuth(); err != nil {
			log.Fatalln("calendar auth failed: ", err)
		}
		return
	}

	openAIKey := os.Getenv("OPEN_AI_KEY")
	if openAIKey == "" {
		log.Fatalln("Unable to get Open AI API Key")
	}

	token := os.Getenv("DISCORD_TOKEN")
	if token == "" {
		log.Fatalln("could not read discord token")
	}

	p := planner.NewPlanner(openAIKey, token)
	if err := p.Run(); err != nil {
		log.Fatalln("error running bot: ", err)
	}
}

// runCalendarAuth walks through the OAuth consent flow once and caches the
// token so the bot can create calendar events without further interaction.
func runCalendarAuth() error {
	credentialsFile := os.Getenv("GCAL_CREDENTIALS_FILE")
	if credentialsFile == "" {
		credentialsFile = planner.DEFAULT_CREDENTIALS_FILE
	}
	tokenFile := os.Getenv("GCAL_TOKEN_FILE")
	if tokenFile == "" {
		tokenFile = planner.DEFAULT_TOKEN_FILE
	}

	config, err := planner.GetOAuthConfig(credentialsFile)
	if err != nil {
		return err
	}

	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Printf("Go to the following link in your browser then type the "+
		"authorization code: \n%v\n", authURL)

	fmt.Print("Enter Authorization Code: ")
	reader := bufio.NewReader(os.Stdin)
	authCode, _ := reader.ReadString('\n')
	authCode = strings.TrimSpace(authCode)

	token, err := planner.TokenFromWeb(config, authCode)
	if err != nil {
		return fmt.Errorf("unable to retrieve token from web: %w", err)
	}

	if err := planner.SaveToken(tokenFile, token); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}

	log.Println("Saved calendar token to ", tokenFile)
	return nil
}
