package models

import "time"

// Author represents a blog author. Name is unique across all authors; the
// storage layer enforces that.
type Author struct {
	ID          int        `json:"id"`
	Name        string     `json:"name" validate:"author_name"`
	PhoneNumber string     `json:"phone_number,omitempty" validate:"author_phone"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

// Post represents a blog post.
type Post struct {
	ID        int        `json:"id"`
	Title     string     `json:"title" validate:"post_title"`
	Content   string     `json:"content,omitempty" validate:"post_content"`
	Summary   string     `json:"summary,omitempty" validate:"post_summary"`
	Category  string     `json:"category,omitempty" validate:"post_category"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// AuthorChanges holds a partial author update. Nil fields are left untouched.
type AuthorChanges struct {
	Name        *string `json:"name"`
	PhoneNumber *string `json:"phone_number"`
}

// PostChanges holds a partial post update. Nil fields are left untouched.
type PostChanges struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Summary  *string `json:"summary"`
	Category *string `json:"category"`
}
