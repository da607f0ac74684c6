package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkillIndexFirstClaimWins(t *testing.T) {
	first := make(map[string]Skill)
	for _, a := range skillAliases {
		if _, seen := first[normalize(a.alias)]; !seen {
			first[normalize(a.alias)] = a.skill
		}
	}

	for alias, want := range first {
		got, ok := ResolveSkill(alias)
		assert.True(t, ok, alias)
		assert.Equal(t, want, got, "alias %q", alias)
	}

	// Canonical keys only resolve to their own skill when no alias took them
	for _, info := range skillTable {
		if _, aliased := first[normalize(string(info.skill))]; aliased {
			continue
		}
		got, ok := ResolveSkill(string(info.skill))
		assert.True(t, ok)
		assert.Equal(t, info.skill, got)
	}
}
