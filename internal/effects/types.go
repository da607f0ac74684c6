package effects

import "github.com/mrredcon/ballroom/internal/domain/stats"

// EffectLine is one item effect ready for display
type EffectLine struct {
	Value int

	// Signed is Value with an explicit sign, e.g. "+2" or "-1"
	Signed string

	Stat        string
	Description string
}

// SkillLine is a governed skill and its effective value
type SkillLine struct {
	Skill     stats.Skill
	Name      string
	Base      int
	Effective int
}

// SheetSection groups an attribute with the skills it governs
type SheetSection struct {
	Attribute stats.Attribute
	Name      string
	Value     int
	Skills    []SkillLine
}
