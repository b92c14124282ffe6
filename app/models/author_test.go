package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "plain name", input: "Jane Doe"},
		{name: "surrounding whitespace kept", input: "  Jane  "},
		{name: "empty", input: "", wantErr: true},
		{name: "spaces", input: "   ", wantErr: true},
		{name: "tabs and newlines", input: "\t\n \r", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateName(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				ve, ok := AsValidationError(err)
				require.True(t, ok)
				assert.Equal(t, "name", ve.Field)
				assert.Equal(t, "Author name cannot be empty.", ve.Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, got)
		})
	}
}

func TestValidatePhoneNumber(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "absent", input: ""},
		{name: "ten digits", input: "5551234567"},
		{name: "all zeros", input: "0000000000"},
		{name: "too short", input: "123", wantErr: true},
		{name: "nine digits", input: "555123456", wantErr: true},
		{name: "eleven digits", input: "55512345678", wantErr: true},
		{name: "dashes", input: "555-123-45", wantErr: true},
		{name: "letter", input: "555123456a", wantErr: true},
		{name: "spaces", input: "          ", wantErr: true},
		{name: "non-ascii digits", input: "５５５１２３４５６７", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidatePhoneNumber(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, "Phone number must be exactly ten digits.", err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, got)
		})
	}
}

func TestNewAuthor(t *testing.T) {
	t.Run("valid author", func(t *testing.T) {
		a, err := NewAuthor("Jane Doe", "5551234567")
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", a.Name)
		assert.Equal(t, "5551234567", a.PhoneNumber)
	})

	t.Run("empty name fails on name", func(t *testing.T) {
		_, err := NewAuthor("", "123")
		ve, ok := AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "name", ve.Field)
	})

	t.Run("bad phone", func(t *testing.T) {
		_, err := NewAuthor("Jane Doe", "123")
		ve, ok := AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "phone_number", ve.Field)
	})
}

func TestAuthorValidation(t *testing.T) {
	tests := []struct {
		name      string
		author    *Author
		wantField string
	}{
		{
			name:   "valid author",
			author: &Author{Name: "John Doe", PhoneNumber: "5551234567"},
		},
		{
			name:   "valid author without phone",
			author: &Author{Name: "John Doe"},
		},
		{
			name:      "blank name",
			author:    &Author{Name: " ", PhoneNumber: "5551234567"},
			wantField: "name",
		},
		{
			name:      "bad phone",
			author:    &Author{Name: "John Doe", PhoneNumber: "12345"},
			wantField: "phone_number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.author.Validate()
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

func TestAuthorSetters(t *testing.T) {
	a := &Author{Name: "Original"}

	assert.Error(t, a.SetName("  "))
	assert.Equal(t, "Original", a.Name)

	assert.NoError(t, a.SetName("Renamed"))
	assert.Equal(t, "Renamed", a.Name)

	assert.Error(t, a.SetPhoneNumber("abc"))
	assert.Empty(t, a.PhoneNumber)

	assert.NoError(t, a.SetPhoneNumber("1234567890"))
	assert.Equal(t, "1234567890", a.PhoneNumber)
}

func TestAuthorChangesApply(t *testing.T) {
	name := "New Name"
	badPhone := "12"
	goodPhone := "0123456789"

	t.Run("applies touched fields", func(t *testing.T) {
		a := &Author{ID: 3, Name: "Old", PhoneNumber: "5551234567"}
		err := AuthorChanges{Name: &name}.Apply(a)
		require.NoError(t, err)
		assert.Equal(t, "New Name", a.Name)
		assert.Equal(t, "5551234567", a.PhoneNumber)
		assert.Equal(t, 3, a.ID)
	})

	t.Run("invalid field leaves record untouched", func(t *testing.T) {
		a := &Author{Name: "Old"}
		err := AuthorChanges{Name: &name, PhoneNumber: &badPhone}.Apply(a)
		require.Error(t, err)
		assert.Equal(t, "Old", a.Name)
		assert.Empty(t, a.PhoneNumber)
	})

	t.Run("clearing phone", func(t *testing.T) {
		empty := ""
		a := &Author{Name: "Old", PhoneNumber: goodPhone}
		require.NoError(t, AuthorChanges{PhoneNumber: &empty}.Apply(a))
		assert.Empty(t, a.PhoneNumber)
	})

	t.Run("empty change set", func(t *testing.T) {
		assert.True(t, AuthorChanges{}.Empty())
		assert.False(t, AuthorChanges{Name: &name}.Empty())
	})
}

func TestAuthorTimestamps(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	a := &Author{Name: "John Doe"}

	assert.True(t, a.CreatedAt.IsZero())
	a.BeforeCreate(now)
	assert.Equal(t, now, a.CreatedAt)
	assert.Nil(t, a.UpdatedAt)

	later := now.Add(time.Hour)
	a.BeforeCreate(later)
	assert.Equal(t, now, a.CreatedAt, "created_at is set once")

	a.BeforeUpdate(later)
	require.NotNil(t, a.UpdatedAt)
	assert.Equal(t, later, *a.UpdatedAt)
}

func TestAuthorString(t *testing.T) {
	a := &Author{ID: 7, Name: "Jane"}
	assert.Equal(t, "Author(id=7, name=Jane)", a.String())
	assert.True(t, strings.HasPrefix(a.String(), "Author("))
}
