package entities

import (
	"strings"
	"time"

	"github.com/mrredcon/ballroom/internal/domain/stats"
	dnderr "github.com/mrredcon/ballroom/internal/errors"
)

// ItemType classifies an item
type ItemType string

const (
	ItemTypeWearable   ItemType = "WEARABLE"
	ItemTypeConsumable ItemType = "CONSUMABLE"
	ItemTypeMisc       ItemType = "MISC"
)

// ItemTypes lists every item type in display order
var ItemTypes = []ItemType{ItemTypeWearable, ItemTypeConsumable, ItemTypeMisc}

// ParseItemType accepts an item type name in any case
func ParseItemType(text string) (ItemType, error) {
	candidate := ItemType(strings.ToUpper(strings.TrimSpace(text)))
	for _, t := range ItemTypes {
		if t == candidate {
			return t, nil
		}
	}
	return "", dnderr.InvalidArgumentf("unknown item type %q", text)
}

// Display returns the title-cased name
func (t ItemType) Display() string {
	switch t {
	case ItemTypeWearable:
		return "Wearable"
	case ItemTypeConsumable:
		return "Consumable"
	case ItemTypeMisc:
		return "Misc"
	default:
		return string(t)
	}
}

// Slot is where a wearable item is equipped
type Slot string

const (
	SlotHat       Slot = "HAT"
	SlotNeck      Slot = "NECK"
	SlotJacket    Slot = "JACKET"
	SlotShirt     Slot = "SHIRT"
	SlotGloves    Slot = "GLOVES"
	SlotPants     Slot = "PANTS"
	SlotShoes     Slot = "SHOES"
	SlotHeldLeft  Slot = "HELDLEFT"
	SlotHeldRight Slot = "HELDRIGHT"
)

// Slots lists every equip slot
var Slots = []Slot{
	SlotHat, SlotNeck, SlotJacket, SlotShirt, SlotGloves,
	SlotPants, SlotShoes, SlotHeldLeft, SlotHeldRight,
}

// ParseSlot accepts a slot name in any case
func ParseSlot(text string) (Slot, error) {
	candidate := Slot(strings.ToUpper(strings.TrimSpace(text)))
	for _, s := range Slots {
		if s == candidate {
			return s, nil
		}
	}
	return "", dnderr.InvalidArgumentf("unknown equip slot %q", text)
}

// StatEffect is a modifier an item applies to one stat
type StatEffect struct {
	ItemID      string
	Stat        stats.Ref
	Description string
	Value       int
}

// Item is a piece of gear owned by a single user
type Item struct {
	ID          string
	OwnerID     string
	Name        string
	Description string
	Type        ItemType

	// Slot is nil for items that are not equipped anywhere
	Slot *Slot

	// Effects are kept in storage order
	Effects []*StatEffect

	CreatedAt time.Time
}

// Effect returns the effect on ref, if any
func (i *Item) Effect(ref stats.Ref) (*StatEffect, bool) {
	for _, e := range i.Effects {
		if e.Stat == ref {
			return e, true
		}
	}
	return nil, false
}

// Clone returns a deep copy
func (i *Item) Clone() *Item {
	if i == nil {
		return nil
	}

	clone := *i
	if i.Slot != nil {
		slot := *i.Slot
		clone.Slot = &slot
	}
	clone.Effects = make([]*StatEffect, 0, len(i.Effects))
	for _, e := range i.Effects {
		effect := *e
		clone.Effects = append(clone.Effects, &effect)
	}
	return &clone
}
