package entities

import (
	"time"

	"github.com/mrredcon/ballroom/internal/domain/stats"
)

// Character is a player character owned by a single user
type Character struct {
	ID          string
	OwnerID     string
	Name        string
	Description string

	// Attributes and Skills hold only the values that have been stored.
	// Use Attribute and Skill to read them; unset entries are 0.
	Attributes map[stats.Attribute]int
	Skills     map[stats.Skill]int

	CreatedAt time.Time
}

// NewCharacter creates a character with empty stat maps
func NewCharacter(id, ownerID, name string) *Character {
	return &Character{
		ID:         id,
		OwnerID:    ownerID,
		Name:       name,
		Attributes: make(map[stats.Attribute]int),
		Skills:     make(map[stats.Skill]int),
	}
}

// Attribute returns the stored attribute value, 0 when unset
func (c *Character) Attribute(a stats.Attribute) int {
	if c == nil {
		return 0
	}
	return c.Attributes[a]
}

// Skill returns the stored skill value, 0 when unset
func (c *Character) Skill(s stats.Skill) int {
	if c == nil {
		return 0
	}
	return c.Skills[s]
}

// SetAttribute records an attribute value on the in-memory entity.
// Validation and persistence belong to the ledger service.
func (c *Character) SetAttribute(a stats.Attribute, value int) {
	if c.Attributes == nil {
		c.Attributes = make(map[stats.Attribute]int)
	}
	c.Attributes[a] = value
}

// SetSkill records a skill value on the in-memory entity
func (c *Character) SetSkill(s stats.Skill, value int) {
	if c.Skills == nil {
		c.Skills = make(map[stats.Skill]int)
	}
	c.Skills[s] = value
}

// Clone returns a deep copy
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}

	clone := *c
	clone.Attributes = make(map[stats.Attribute]int, len(c.Attributes))
	for k, v := range c.Attributes {
		clone.Attributes[k] = v
	}
	clone.Skills = make(map[stats.Skill]int, len(c.Skills))
	for k, v := range c.Skills {
		clone.Skills[k] = v
	}
	return &clone
}
