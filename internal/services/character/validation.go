package character

import (
	"strings"
	"unicode/utf8"

	dnderr "github.com/mrredcon/ballroom/internal/errors"
)

// MaxNameLength bounds character names so they fit in embeds and autocomplete
const MaxNameLength = 100

// Validator interface for input validation
type Validator interface {
	Validate() error
}

// ValidateInput validates any input that implements Validator
func ValidateInput(input Validator) error {
	if input == nil {
		return dnderr.InvalidArgument("input cannot be nil")
	}
	return input.Validate()
}

// Validate checks CreateCharacterInput for validity
func (i *CreateCharacterInput) Validate() error {
	if i == nil {
		return dnderr.InvalidArgument("CreateCharacterInput cannot be nil")
	}

	if strings.TrimSpace(i.OwnerID) == "" {
		return dnderr.InvalidArgument("owner ID is required")
	}

	name := strings.TrimSpace(i.Name)
	if name == "" {
		return dnderr.InvalidArgument("character name is required")
	}

	if utf8.RuneCountInString(name) > MaxNameLength {
		return dnderr.InvalidArgumentf("character name cannot exceed %d characters", MaxNameLength)
	}

	return nil
}
