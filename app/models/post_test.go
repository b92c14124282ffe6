package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{name: "plain title", input: "A quiet afternoon"},
		{name: "empty", input: "", wantMsg: "Post title cannot be empty."},
		{name: "whitespace", input: "  \t ", wantMsg: "Post title cannot be empty."},
		{name: "capitalised keyword", input: "Shocking news", wantMsg: "Post title is clickbait."},
		{name: "upper case keyword", input: "AN AMAZING DAY", wantMsg: "Post title is clickbait."},
		{name: "lower case keyword", input: "truly unbelievable", wantMsg: "Post title is clickbait."},
		{name: "keyword inside a word", input: "Unshockingly calm", wantMsg: "Post title is clickbait."},
		{name: "mixed case", input: "aMaZiNg", wantMsg: "Post title is clickbait."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateTitle(tt.input)
			if tt.wantMsg != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantMsg, err.Error())
				assert.True(t, IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, got)
		})
	}
}

func TestValidateContent(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		wantErr bool
	}{
		{name: "absent", length: 0},
		{name: "one character", length: 1, wantErr: true},
		{name: "just under", length: 249, wantErr: true},
		{name: "exactly minimum", length: 250},
		{name: "long", length: 5000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateContent(strings.Repeat("x", tt.length))
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, "Post content must be at least 250 characters long.", err.Error())
				return
			}
			assert.NoError(t, err)
		})
	}

	t.Run("counts characters not bytes", func(t *testing.T) {
		_, err := ValidateContent(strings.Repeat("é", 200))
		assert.Error(t, err)
	})
}

func TestValidateSummary(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "absent", input: ""},
		{name: "short", input: "A short summary."},
		{name: "exactly maximum", input: strings.Repeat("s", 250)},
		{name: "one over", input: strings.Repeat("s", 251), wantErr: true},
		{name: "multibyte at maximum", input: strings.Repeat("ü", 250)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateSummary(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, "Post summary cannot exceed 250 characters.", err.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateCategory(t *testing.T) {
	valid := []string{"", "Fiction", "Non-Fiction"}
	for _, c := range valid {
		_, err := ValidateCategory(c)
		assert.NoError(t, err, "category %q", c)
	}

	invalid := []string{"fiction", "Nonfiction", "Non Fiction", "Poetry", " Fiction"}
	for _, c := range invalid {
		_, err := ValidateCategory(c)
		require.Error(t, err, "category %q", c)
		assert.Equal(t, "Post category must be Fiction or Non-Fiction.", err.Error())
	}
}

func TestPostValidation(t *testing.T) {
	longContent := strings.Repeat("x", 300)

	tests := []struct {
		name      string
		post      *Post
		wantField string
	}{
		{
			name: "valid post",
			post: &Post{Title: "Valid Title", Content: longContent, Summary: "short", Category: "Fiction"},
		},
		{
			name: "title only",
			post: &Post{Title: "Valid Title"},
		},
		{
			name:      "clickbait with valid content",
			post:      &Post{Title: "Amazing day", Content: longContent},
			wantField: "title",
		},
		{
			name:      "content too short",
			post:      &Post{Title: "Valid Title", Content: "Too short"},
			wantField: "content",
		},
		{
			name:      "summary too long",
			post:      &Post{Title: "Valid Title", Summary: strings.Repeat("s", 251)},
			wantField: "summary",
		},
		{
			name:      "unknown category",
			post:      &Post{Title: "Valid Title", Category: "Poetry"},
			wantField: "category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.post.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			ve, ok := AsValidationError(err)
			require.True(t, ok, "expected ValidationError, got %v", err)
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}

func TestNewPost(t *testing.T) {
	t.Run("valid post", func(t *testing.T) {
		p, err := NewPost("Quiet day", strings.Repeat("c", 250), "sum", "Non-Fiction")
		require.NoError(t, err)
		assert.Equal(t, "Quiet day", p.Title)
		assert.Equal(t, "Non-Fiction", p.Category)
	})

	t.Run("clickbait regardless of content", func(t *testing.T) {
		_, err := NewPost("Amazing day", strings.Repeat("x", 300), "", "")
		ve, ok := AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "Post title is clickbait.", ve.Message)
	})
}

func TestPostChangesApply(t *testing.T) {
	title := "Fresh title"
	short := "short"

	t.Run("applies touched fields", func(t *testing.T) {
		p := &Post{ID: 1, Title: "Old", Category: "Fiction"}
		require.NoError(t, PostChanges{Title: &title}.Apply(p))
		assert.Equal(t, "Fresh title", p.Title)
		assert.Equal(t, "Fiction", p.Category)
	})

	t.Run("invalid field leaves record untouched", func(t *testing.T) {
		p := &Post{Title: "Old"}
		err := PostChanges{Title: &title, Content: &short}.Apply(p)
		ve, ok := AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "content", ve.Field)
		assert.Equal(t, "Old", p.Title)
	})

	t.Run("untouched invalid field is not revalidated", func(t *testing.T) {
		p := &Post{Title: "Old", Content: short}
		assert.NoError(t, PostChanges{Title: &title}.Apply(p))
	})

	t.Run("empty change set", func(t *testing.T) {
		assert.True(t, PostChanges{}.Empty())
		assert.False(t, PostChanges{Summary: &short}.Empty())
	})
}

func TestPostTimestamps(t *testing.T) {
	now := time.Now()
	p := &Post{Title: "Test Post"}

	p.BeforeCreate(now)
	assert.Equal(t, now, p.CreatedAt)
	assert.Nil(t, p.UpdatedAt)

	p.BeforeUpdate(now.Add(time.Minute))
	require.NotNil(t, p.UpdatedAt)
	assert.True(t, p.UpdatedAt.After(p.CreatedAt))
}

func TestPostString(t *testing.T) {
	p := &Post{ID: 2, Title: "T", Content: "C", Summary: "S"}
	assert.Equal(t, "Post(id=2, title=T content=C, summary=S)", p.String())
}

func TestCategoriesIsACopy(t *testing.T) {
	cats := Categories()
	require.Equal(t, []string{"Fiction", "Non-Fiction"}, cats)

	cats[0] = "Poetry"
	_, err := ValidateCategory("Poetry")
	assert.Error(t, err)
	_, err = ValidateCategory("Fiction")
	assert.NoError(t, err)
}
