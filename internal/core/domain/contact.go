package domain

import "time"

// Contact submission types.
const (
	ContactTypeVolunteer   = "volunteer"
	ContactTypeContact     = "contact"
	ContactTypePartnership = "partnership"
)

// Contact is an inbound contact-form submission. It has no owner; all
// management operations are admin-scoped.
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
