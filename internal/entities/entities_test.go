package entities_test

import (
	"testing"

	"github.com/mrredcon/ballroom/internal/domain/stats"
	"github.com/mrredcon/ballroom/internal/entities"
	dnderr "github.com/mrredcon/ballroom/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameKeyFoldsCase(t *testing.T) {
	assert.Equal(t, entities.NameKey("Harry"), entities.NameKey("HARRY"))
	assert.Equal(t, entities.NameKey("Kim Kitsuragi"), entities.NameKey("  kim kitsuragi "))
	assert.Equal(t, entities.NameKey("Straße"), entities.NameKey("STRASSE"))
	assert.NotEqual(t, entities.NameKey("Harry"), entities.NameKey("Harriet"))
}

func TestParseItemType(t *testing.T) {
	got, err := entities.ParseItemType("wearable")
	require.NoError(t, err)
	assert.Equal(t, entities.ItemTypeWearable, got)
	assert.Equal(t, "Wearable", got.Display())

	_, err = entities.ParseItemType("weapon")
	assert.True(t, dnderr.IsInvalidArgument(err))
}

func TestParseSlot(t *testing.T) {
	got, err := entities.ParseSlot("HeldLeft")
	require.NoError(t, err)
	assert.Equal(t, entities.SlotHeldLeft, got)

	_, err = entities.ParseSlot("belt")
	assert.True(t, dnderr.IsInvalidArgument(err))
}

func TestCharacterDefaultsToZero(t *testing.T) {
	char := entities.NewCharacter("char_1", "owner_1", "Harry")
	assert.Equal(t, 0, char.Attribute(stats.AttributePsyche))
	assert.Equal(t, 0, char.Skill(stats.SkillVolition))

	char.SetSkill(stats.SkillVolition, 3)
	assert.Equal(t, 3, char.Skill(stats.SkillVolition))

	var nilChar *entities.Character
	assert.Equal(t, 0, nilChar.Skill(stats.SkillVolition))
}

func TestCharacterCloneIsDeep(t *testing.T) {
	char := entities.NewCharacter("char_1", "owner_1", "Harry")
	char.SetAttribute(stats.AttributeMotorics, 2)

	clone := char.Clone()
	clone.SetAttribute(stats.AttributeMotorics, 5)

	assert.Equal(t, 2, char.Attribute(stats.AttributeMotorics))
	assert.Equal(t, 5, clone.Attribute(stats.AttributeMotorics))
}

func TestItemCloneIsDeep(t *testing.T) {
	slot := entities.SlotHat
	item := &entities.Item{
		ID:   "item_1",
		Name: "Hat",
		Slot: &slot,
		Effects: []*entities.StatEffect{
			{ItemID: "item_1", Stat: stats.SkillRef(stats.SkillLogic), Value: 1},
		},
	}

	clone := item.Clone()
	clone.Effects[0].Value = 9
	*clone.Slot = entities.SlotShoes

	assert.Equal(t, 1, item.Effects[0].Value)
	assert.Equal(t, entities.SlotHat, *item.Slot)

	effect, ok := item.Effect(stats.SkillRef(stats.SkillLogic))
	require.True(t, ok)
	assert.Equal(t, 1, effect.Value)

	_, ok = item.Effect(stats.SkillRef(stats.SkillDrama))
	assert.False(t, ok)
}
