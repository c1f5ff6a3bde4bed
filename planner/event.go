package planner

import (
	"encoding/json"
	"log"
)

// EventDetails is everything decided about the event so far. Undecided fields
// hold empty strings, zeroes, or empty containers rather than being absent so
// the serialized form the model sees always has the same shape.
type EventDetails struct {
	Title        string            `json:"title"`
	Date         string            `json:"date"`
	Time         string            `json:"time"`
	Location     string            `json:"location"`
	Theme        string            `json:"theme"`
	Invitation   InvitationDetails `json:"invitation_details"`
	GuestList    []string          `json:"guest_list"`
	Expenses     Expenses          `json:"expenses"`
	OtherDetails []string          `json:"other_details"`
}

type InvitationDetails struct {
	VisualDescription string `json:"visual_description"`
	Blurb             string `json:"blurb"`
}

type Expenses struct {
	TotalBudget   float64            `json:"total_budget"`
	TotalCost     float64            `json:"total_cost"`
	FoodAndDrinks map[string]float64 `json:"food_and_drinks"`
	Decorations   map[string]float64 `json:"decorations"`
	Logistics     map[string]float64 `json:"logistics"`
}

func NewEventDetails() *EventDetails {
	return &EventDetails{
		GuestList: []string{},
		Expenses: Expenses{
			FoodAndDrinks: map[string]float64{},
			Decorations:   map[string]float64{},
			Logistics:     map[string]float64{},
		},
		OtherDetails: []string{},
	}
}

// Merge shallow-merges an extracted update into e. Empty fields in the update
// keep the current value, so merging an update equal to the current state is
// a no-op.
func (e *EventDetails) Merge(update *EventDetails) {
	if update == nil {
		return
	}
	if update.Title != "" {
		e.Title = update.Title
	}
	if update.Date != "" {
		e.Date = update.Date
	}
	if update.Time != "" {
		e.Time = update.Time
	}
	if update.Location != "" {
		e.Location = update.Location
	}
	if update.Theme != "" {
		e.Theme = update.Theme
	}
	if update.Invitation.VisualDescription != "" {
		e.Invitation.VisualDescription = update.Invitation.VisualDescription
	}
	if update.Invitation.Blurb != "" {
		e.Invitation.Blurb = update.Invitation.Blurb
	}
	if len(update.GuestList) > 0 {
		e.GuestList = update.GuestList
	}
	if update.Expenses.TotalBudget != 0 {
		e.Expenses.TotalBudget = update.Expenses.TotalBudget
	}
	if update.Expenses.TotalCost != 0 {
		e.Expenses.TotalCost = update.Expenses.TotalCost
	}
	if len(update.Expenses.FoodAndDrinks) > 0 {
		e.Expenses.FoodAndDrinks = update.Expenses.FoodAndDrinks
	}
	if len(update.Expenses.Decorations) > 0 {
		e.Expenses.Decorations = update.Expenses.Decorations
	}
	if len(update.Expenses.Logistics) > 0 {
		e.Expenses.Logistics = update.Expenses.Logistics
	}
	if len(update.OtherDetails) > 0 {
		e.OtherDetails = update.OtherDetails
	}
}

// JSON renders the details in the stable form used in prompts.
func (e *EventDetails) JSON() string {
	data, err := json.Marshal(e)
	if err != nil {
		log.Println("unable to marshal event details: ", err)
		return "{}"
	}
	return string(data)
}
