package characters

import (
	"github.com/mrredcon/ballroom/internal/domain/stats"
	"github.com/mrredcon/ballroom/internal/entities"
	dnderr "github.com/mrredcon/ballroom/internal/errors"
)

func validateNew(char *entities.Character) error {
	if char == nil {
		return dnderr.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		return dnderr.InvalidArgument("character ID is required")
	}
	if char.OwnerID == "" {
		return dnderr.InvalidArgument("character owner ID is required")
	}
	if entities.NameKey(char.Name) == "" {
		return dnderr.InvalidArgument("character name is required")
	}
	for a := range char.Attributes {
		if !a.Valid() {
			return dnderr.InvalidStatf("unknown attribute %q", string(a))
		}
	}
	for s := range char.Skills {
		if !s.Valid() {
			return dnderr.InvalidStatf("unknown skill %q", string(s))
		}
	}
	return nil
}

func validateAttribute(a stats.Attribute) error {
	if !a.Valid() {
		return dnderr.InvalidStatf("unknown attribute %q", string(a))
	}
	return nil
}

func validateSkill(s stats.Skill) error {
	if !s.Valid() {
		return dnderr.InvalidStatf("unknown skill %q", string(s))
	}
	return nil
}

func duplicateName(name string) error {
	return dnderr.AlreadyExistsf("a character named '%s' already exists", name).
		WithMeta("name", name)
}

func notFound(id string) error {
	return dnderr.NotFoundf("character with ID '%s' not found", id).
		WithMeta("character_id", id)
}
