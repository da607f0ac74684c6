package items

import (
	"slices"

	"github.com/mrredcon/ballroom/internal/domain/stats"
	"github.com/mrredcon/ballroom/internal/entities"
	dnderr "github.com/mrredcon/ballroom/internal/errors"
)

func validateNew(item *entities.Item) error {
	if item == nil {
		return dnderr.InvalidArgument("item cannot be nil")
	}
	if item.ID == "" {
		return dnderr.InvalidArgument("item ID is required")
	}
	if item.OwnerID == "" {
		return dnderr.InvalidArgument("item owner ID is required")
	}
	if entities.NameKey(item.Name) == "" {
		return dnderr.InvalidArgument("item name is required")
	}
	if !slices.Contains(entities.ItemTypes, item.Type) {
		return dnderr.InvalidArgumentf("unknown item type %q", string(item.Type))
	}
	if item.Slot != nil && !slices.Contains(entities.Slots, *item.Slot) {
		return dnderr.InvalidArgumentf("unknown equip slot %q", string(*item.Slot))
	}
	for _, effect := range item.Effects {
		if err := validateEffect(effect); err != nil {
			return err
		}
	}
	return nil
}

func validateEffect(effect *entities.StatEffect) error {
	if effect == nil {
		return dnderr.InvalidArgument("effect cannot be nil")
	}
	if err := validateRef(effect.Stat); err != nil {
		return err
	}
	if effect.Value == 0 {
		return dnderr.InvalidValuef("effect on %s must be non-zero", effect.Stat.Key())
	}
	return nil
}

func validateRef(ref stats.Ref) error {
	if !ref.Valid() {
		return dnderr.InvalidStatf("unknown stat %q", ref.Key())
	}
	return nil
}

func duplicateName(name string) error {
	return dnderr.AlreadyExistsf("an item named '%s' already exists", name).
		WithMeta("name", name)
}

func notFound(id string) error {
	return dnderr.NotFoundf("item with ID '%s' not found", id).
		WithMeta("item_id", id)
}
