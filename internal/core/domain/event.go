package domain

import "time"

// Event categories.
const (
	EventPast     = "past"
	EventUpcoming = "upcoming"
)

// Event is an admin-managed calendar entry with an optional image asset.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location,omitempty"`
	Category    string    `json:"category"`
	OwnerID     string    `json:"owner_id"`
	Image       Asset     `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
