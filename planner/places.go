package planner

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
)

const (
	PLACES_SEARCH_URL = "https://places.googleapis.com/v1/places:searchText"
	PLACES_FIELD_MASK = "places.displayName,places.formattedAddress,places.googleMapsLinks"

	NO_VENUES_MESSAGE = "I wasn't able to find any venues nearby. Do you have another query in mind?"
)

// https://developers.google.com/maps/documentation/places/web-service/text-search
type placesSearchRequest struct {
	TextQuery string `json:"textQuery"`
}

type placesSearchResponse struct {
	Places []place `json:"places"`
}

type place struct {
	DisplayName struct {
		Text string `json:"text"`
	} `json:"displayName"`
	FormattedAddress string `json:"formattedAddress"`
	GoogleMapsLinks  struct {
		PlaceURI string `json:"placeUri"`
	} `json:"googleMapsLinks"`
}

type PlacesClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewPlacesClient(apiKey string) *PlacesClient {
	return &PlacesClient{
		apiKey:     apiKey,
		baseURL:    PLACES_SEARCH_URL,
		httpClient: http.DefaultClient,
	}
}

// FindLocalPlaces runs a text search and formats the results as venue blocks.
// Failures are reported in the returned text so the model can relay them,
// never as an error. Single attempt, no retries.
func (c *PlacesClient) FindLocalPlaces(query string) string {
	body, err := json.Marshal(placesSearchRequest{TextQuery: query})
	if err != nil {
		log.Println("unable to marshal places request: ", err)
		return NO_VENUES_MESSAGE
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		log.Println("unable to build places request: ", err)
		return NO_VENUES_MESSAGE
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.apiKey)
	req.Header.Set("X-Goog-FieldMask", PLACES_FIELD_MASK)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Println("error making places request: ", err)
		return NO_VENUES_MESSAGE
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Sprintf("Seems like I can't look up what's nearby (Error %d). Let's revisit this later.", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Println("error reading places response: ", err)
		return NO_VENUES_MESSAGE
	}

	searchResponse := placesSearchResponse{}
	if err := json.Unmarshal(respBody, &searchResponse); err != nil {
		log.Println("error unmarshalling places response: ", string(respBody))
		return NO_VENUES_MESSAGE
	}

	if len(searchResponse.Places) == 0 {
		return NO_VENUES_MESSAGE
	}

	log.Printf("%d venues found for query %q\n", len(searchResponse.Places), query)
	return formatPlaces(searchResponse.Places)
}

func formatPlaces(places []place) string {
	blocks := make([]string, 0, len(places))
	for _, p := range places {
		name := p.DisplayName.Text
		if name == "" {
			name = "No name available"
		}
		address := p.FormattedAddress
		if address == "" {
			address = "No address found"
		}
		link := p.GoogleMapsLinks.PlaceURI
		if link == "" {
			link = "about:blank"
		}
		blocks = append(blocks, fmt.Sprintf("Venue: %s\nAddress: %s\nLink: %s", name, address, link))
	}
	return strings.Join(blocks, "\n\n")
}
