package effects

import (
	"strconv"

	"github.com/mrredcon/ballroom/internal/domain/stats"
	"github.com/mrredcon/ballroom/internal/entities"
	dnderr "github.com/mrredcon/ballroom/internal/errors"
)

// EffectiveSkill is the governing attribute's value plus the skill's own
// value. Unset values count as 0.
func EffectiveSkill(c *entities.Character, s stats.Skill) int {
	if c == nil {
		return 0
	}
	return c.Attribute(stats.AttributeOf(s)) + c.Skill(s)
}

// DescribeEffects renders each stored effect in storage order
func DescribeEffects(item *entities.Item) ([]EffectLine, error) {
	if item == nil {
		return []EffectLine{}, nil
	}

	lines := make([]EffectLine, 0, len(item.Effects))
	for _, effect := range item.Effects {
		name, err := stats.PrettyName(effect.Stat)
		if err != nil {
			return nil, dnderr.Wrapf(err, "effect on item %s", item.ID).
				WithMeta("item_id", item.ID)
		}
		lines = append(lines, EffectLine{
			Value:       effect.Value,
			Signed:      Signed(effect.Value),
			Stat:        name,
			Description: effect.Description,
		})
	}
	return lines, nil
}

// Signed formats v with a leading + when positive
func Signed(v int) string {
	if v > 0 {
		return "+" + strconv.Itoa(v)
	}
	return strconv.Itoa(v)
}

// BuildSheet lays out a character's attributes in declaration order, each
// followed by its governed skills with effective values.
func BuildSheet(c *entities.Character) []SheetSection {
	sections := make([]SheetSection, 0, len(stats.Attributes()))
	for _, a := range stats.Attributes() {
		section := SheetSection{
			Attribute: a,
			Name:      a.PrettyName(),
			Value:     c.Attribute(a),
		}
		for _, s := range stats.SkillsOf(a) {
			section.Skills = append(section.Skills, SkillLine{
				Skill:     s,
				Name:      s.PrettyName(),
				Base:      c.Skill(s),
				Effective: EffectiveSkill(c, s),
			})
		}
		sections = append(sections, section)
	}
	return sections
}
