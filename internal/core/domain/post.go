package domain

import "time"

// Post is a user-owned publication with exactly one image asset.
// Likes holds user ids with set semantics: membership toggles, no duplicates,
// no ordering guarantee.
type Post struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	OwnerID     string    `json:"owner_id"`
	Image       Asset     `json:"image"`
	Likes       []string  `json:"likes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LikedBy reports whether userID is currently in the like set.
func (p *Post) LikedBy(userID string) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
