package models

import (
	"fmt"
	"strings"
	"time"
)

const phoneNumberLength = 10

// ValidateName rejects empty and whitespace-only author names.
func ValidateName(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", newValidationError("name", "Author name cannot be empty.")
	}
	return name, nil
}

// ValidatePhoneNumber accepts an empty phone number or exactly ten decimal digits.
func ValidatePhoneNumber(phone string) (string, error) {
	if phone == "" {
		return phone, nil
	}
	if len(phone) != phoneNumberLength || !isDigits(phone) {
		return "", newValidationError("phone_number", "Phone number must be exactly ten digits.")
	}
	return phone, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// NewAuthor builds an author, validating every field.
func NewAuthor(name, phoneNumber string) (*Author, error) {
	a := &Author{}
	if err := a.SetName(name); err != nil {
		return nil, err
	}
	if err := a.SetPhoneNumber(phoneNumber); err != nil {
		return nil, err
	}
	return a, nil
}

// SetName validates and assigns the author name.
func (a *Author) SetName(name string) error {
	v, err := ValidateName(name)
	if err != nil {
		return err
	}
	a.Name = v
	return nil
}

// SetPhoneNumber validates and assigns the phone number.
func (a *Author) SetPhoneNumber(phone string) error {
	v, err := ValidatePhoneNumber(phone)
	if err != nil {
		return err
	}
	a.PhoneNumber = v
	return nil
}

// Validate checks if the author meets all validation requirements
func (a *Author) Validate() error {
	return validateStruct(a)
}

// BeforeCreate sets up any necessary fields before creation
func (a *Author) BeforeCreate(now time.Time) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = nil
}

// BeforeUpdate refreshes the modification time.
func (a *Author) BeforeUpdate(now time.Time) {
	a.UpdatedAt = &now
}

// Apply validates each supplied field and assigns it. Nothing is assigned
// unless every supplied field is valid.
func (c AuthorChanges) Apply(a *Author) error {
	next := *a
	if c.Name != nil {
		if err := next.SetName(*c.Name); err != nil {
			return err
		}
	}
	if c.PhoneNumber != nil {
		if err := next.SetPhoneNumber(*c.PhoneNumber); err != nil {
			return err
		}
	}
	*a = next
	return nil
}

// Empty reports whether the change set touches no field.
func (c AuthorChanges) Empty() bool {
	return c.Name == nil && c.PhoneNumber == nil
}

func (a *Author) String() string {
	return fmt.Sprintf("Author(id=%d, name=%s)", a.ID, a.Name)
}
