package domain

import "time"

// Comment belongs to one post and one author. Username is a denormalized
// snapshot of the author's name at creation time; it is deliberately not
// kept in sync with later renames.
type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	AuthorID  string    `json:"author_id"`
	Username  string    `json:"username"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
