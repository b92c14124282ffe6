package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	minContentLength = 250
	maxSummaryLength = 250
)

// clickbaitKeywords are substrings a post title may not contain, compared
// against the lowercased title.
var clickbaitKeywords = []string{"shocking", "amazing", "unbelievable"}

var categories = []string{"Fiction", "Non-Fiction"}

// Categories returns the accepted post categories.
func Categories() []string {
	return append([]string(nil), categories...)
}

// ValidateTitle rejects blank titles and titles containing a clickbait keyword.
func ValidateTitle(title string) (string, error) {
	if strings.TrimSpace(title) == "" {
		return "", newValidationError("title", "Post title cannot be empty.")
	}
	lower := strings.ToLower(title)
	for _, keyword := range clickbaitKeywords {
		if strings.Contains(lower, keyword) {
			return "", newValidationError("title", "Post title is clickbait.")
		}
	}
	return title, nil
}

// ValidateContent accepts empty content or content of at least 250 characters.
func ValidateContent(content string) (string, error) {
	if content != "" && utf8.RuneCountInString(content) < minContentLength {
		return "", newValidationError("content", "Post content must be at least 250 characters long.")
	}
	return content, nil
}

// ValidateSummary accepts summaries of at most 250 characters.
func ValidateSummary(summary string) (string, error) {
	if utf8.RuneCountInString(summary) > maxSummaryLength {
		return "", newValidationError("summary", "Post summary cannot exceed 250 characters.")
	}
	return summary, nil
}

// ValidateCategory accepts an empty category or one of the known categories, matched exactly.
func ValidateCategory(category string) (string, error) {
	if category == "" {
		return category, nil
	}
	for _, c := range categories {
		if category == c {
			return category, nil
		}
	}
	return "", newValidationError("category", "Post category must be Fiction or Non-Fiction.")
}

// NewPost builds a post, validating every field.
func NewPost(title, content, summary, category string) (*Post, error) {
	p := &Post{}
	changes := PostChanges{
		Title:    &title,
		Content:  &content,
		Summary:  &summary,
		Category: &category,
	}
	if err := changes.Apply(p); err != nil {
		return nil, err
	}
	return p, nil
}

// SetTitle validates and assigns the title.
func (p *Post) SetTitle(title string) error {
	v, err := ValidateTitle(title)
	if err != nil {
		return err
	}
	p.Title = v
	return nil
}

// SetContent validates and assigns the content.
func (p *Post) SetContent(content string) error {
	v, err := ValidateContent(content)
	if err != nil {
		return err
	}
	p.Content = v
	return nil
}

// SetSummary validates and assigns the summary.
func (p *Post) SetSummary(summary string) error {
	v, err := ValidateSummary(summary)
	if err != nil {
		return err
	}
	p.Summary = v
	return nil
}

// SetCategory validates and assigns the category.
func (p *Post) SetCategory(category string) error {
	v, err := ValidateCategory(category)
	if err != nil {
		return err
	}
	p.Category = v
	return nil
}

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	return validateStruct(p)
}

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate(now time.Time) {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = nil
}

// BeforeUpdate refreshes the modification time.
func (p *Post) BeforeUpdate(now time.Time) {
	p.UpdatedAt = &now
}

// Apply validates each supplied field and assigns it. Nothing is assigned
// unless every supplied field is valid.
func (c PostChanges) Apply(p *Post) error {
	next := *p
	if c.Title != nil {
		if err := next.SetTitle(*c.Title); err != nil {
			return err
		}
	}
	if c.Content != nil {
		if err := next.SetContent(*c.Content); err != nil {
			return err
		}
	}
	if c.Summary != nil {
		if err := next.SetSummary(*c.Summary); err != nil {
			return err
		}
	}
	if c.Category != nil {
		if err := next.SetCategory(*c.Category); err != nil {
			return err
		}
	}
	*p = next
	return nil
}

// Empty reports whether the change set touches no field.
func (c PostChanges) Empty() bool {
	return c.Title == nil && c.Content == nil && c.Summary == nil && c.Category == nil
}

func (p *Post) String() string {
	return fmt.Sprintf("Post(id=%d, title=%s content=%s, summary=%s)", p.ID, p.Title, p.Content, p.Summary)
}
