package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/mrredcon/ballroom/internal/effects"
	"github.com/mrredcon/ballroom/internal/entities"
	dnderr "github.com/mrredcon/ballroom/internal/errors"
	"github.com/mrredcon/ballroom/internal/services/item"
	"github.com/mrredcon/ballroom/internal/services/ledger"
)

func (h *Handler) itemCommand(ctx context.Context, inv *invocation) (*discordgo.InteractionResponseData, error) {
	switch inv.Subcommand {
	case "create":
		return h.createItem(ctx, inv)
	case "details":
		return h.showItem(ctx, inv)
	case "list":
		return h.listItems(ctx, inv)
	case "setattribute":
		return h.setItemStat(ctx, inv, "attribute")
	case "setskill":
		return h.setItemStat(ctx, inv, "skill")
	default:
		return ephemeral("Unknown item command."), nil
	}
}

func (h *Handler) createItem(ctx context.Context, inv *invocation) (*discordgo.InteractionResponseData, error) {
	name := inv.Options.string("name")
	input := &item.CreateItemInput{
		OwnerID:     inv.UserID,
		Name:        name,
		Description: inv.Options.string("description"),
		Type:        entities.ItemType(inv.Options.string("type")),
	}
	if slot := inv.Options.string("slot"); slot != "" {
		s := entities.Slot(slot)
		input.Slot = &s
	}

	created, err := h.services.ItemService.CreateItem(ctx, input)
	if err != nil {
		return failure(err, map[dnderr.Code]string{
			dnderr.CodeAlreadyExists: fmt.Sprintf("An item named '%s' already exists.", name),
		})
	}

	return message(fmt.Sprintf("✅ Created %s item **%s**.", created.Type.Display(), created.Name)), nil
}

func (h *Handler) showItem(ctx context.Context, inv *invocation) (*discordgo.InteractionResponseData, error) {
	name := inv.Options.string("name")
	found, err := h.services.ItemService.FindItemByName(ctx, name)
	if err != nil {
		return failure(err, map[dnderr.Code]string{
			dnderr.CodeNotFound: fmt.Sprintf("Could not find an item named '%s'.", name),
		})
	}

	lines, err := effects.DescribeEffects(found)
	if err != nil {
		return nil, err
	}

	return &discordgo.InteractionResponseData{
		Content: fmt.Sprintf("Here's the details for %s.", found.Name),
		Embeds:  []*discordgo.MessageEmbed{itemEmbed(found, lines)},
	}, nil
}

func (h *Handler) listItems(ctx context.Context, inv *invocation) (*discordgo.InteractionResponseData, error) {
	owned, err := h.services.ItemService.ListItemsOwnedBy(ctx, inv.subjectID("user"))
	if err != nil {
		return failure(err, nil)
	}
	if len(owned) == 0 {
		return message("There aren't any items to show!"), nil
	}

	return message("Items: " + joinNames(owned, func(i *entities.Item) string { return i.Name }) + "."), nil
}

func (h *Handler) setItemStat(ctx context.Context, inv *invocation, kind string) (*discordgo.InteractionResponseData, error) {
	itemName := inv.Options.string("item")
	statName := inv.Options.string(kind)
	value, _ := inv.Options.int("value")

	input := &ledger.SetItemStatInput{
		OwnerID:     inv.UserID,
		ItemName:    itemName,
		StatName:    statName,
		Value:       value,
		Description: inv.Options.string("description"),
	}

	set := h.services.LedgerService.SetItemAttribute
	if kind == "skill" {
		set = h.services.LedgerService.SetItemSkill
	}

	ref, err := set(ctx, input)
	if err != nil {
		return failure(err, map[dnderr.Code]string{
			dnderr.CodeNotFound:         fmt.Sprintf("Could not find an item named '%s'.", itemName),
			dnderr.CodePermissionDenied: "You can only edit items you own.",
			dnderr.CodeInvalidStat:      fmt.Sprintf("'%s' is not a valid %s.", statName, kind),
		})
	}

	if value == 0 {
		return message(fmt.Sprintf("✅ Removed the %s effect from **%s**.", ref, itemName)), nil
	}
	return message(fmt.Sprintf("✅ **%s** now gives %s %s.", itemName, effects.Signed(value), ref)), nil
}
