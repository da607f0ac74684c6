package testutils

import (
	"time"

	"github.com/mrredcon/ballroom/internal/domain/stats"
	"github.com/mrredcon/ballroom/internal/entities"
)

// FixedTime is the creation time fixtures use
var FixedTime = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

// CreateTestCharacter creates a character with a few stats set
func CreateTestCharacter(id, ownerID, name string) *entities.Character {
	char := entities.NewCharacter(id, ownerID, name)
	char.Description = "A test character"
	char.CreatedAt = FixedTime
	char.SetAttribute(stats.AttributeIntellect, 3)
	char.SetAttribute(stats.AttributePsyche, 2)
	char.SetSkill(stats.SkillLogic, 2)
	char.SetSkill(stats.SkillInlandEmpire, 1)
	return char
}

// CreateTestItem creates an item with no effects
func CreateTestItem(id, ownerID, name string, itemType entities.ItemType) *entities.Item {
	return &entities.Item{
		ID:          id,
		OwnerID:     ownerID,
		Name:        name,
		Description: "A test item",
		Type:        itemType,
		CreatedAt:   FixedTime,
	}
}

// CreateTestWearable creates a wearable item for slot
func CreateTestWearable(id, ownerID, name string, slot entities.Slot) *entities.Item {
	item := CreateTestItem(id, ownerID, name, entities.ItemTypeWearable)
	item.Slot = &slot
	return item
}

// CreateTestEffect creates an effect on ref for itemID
func CreateTestEffect(itemID string, ref stats.Ref, value int) *entities.StatEffect {
	return &entities.StatEffect{
		ItemID:      itemID,
		Stat:        ref,
		Description: "test effect",
		Value:       value,
	}
}
