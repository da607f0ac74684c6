package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/mrredcon/ballroom/internal/entities"
)

const (
	commandCharacter = "character"
	commandItem      = "item"
	commandRoll      = "roll"

	// userMenuActiveCharacter is the user context menu entry
	userMenuActiveCharacter = "Show active character"
)

var minZero = 0.0

func itemTypeChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(entities.ItemTypes))
	for _, t := range entities.ItemTypes {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: t.Display(), Value: string(t)})
	}
	return choices
}

func slotChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(entities.Slots))
	for _, s := range entities.Slots {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: string(s), Value: string(s)})
	}
	return choices
}

func userOption(description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionUser,
		Name:        "user",
		Description: description,
	}
}

// Commands returns every application command the bot registers
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        commandCharacter,
			Description: "Character commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "create",
					Description: "Creates a new character and makes it your active one",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionString, Name: "name", Description: "The character's name", Required: true},
						{Type: discordgo.ApplicationCommandOptionString, Name: "description", Description: "A short description"},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "activate",
					Description: "Activates one of your characters",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionString, Name: "name", Description: "The character's name", Required: true, Autocomplete: true},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "sheet",
					Description: "Display your active character's sheet",
					Options: []*discordgo.ApplicationCommandOption{
						userOption("Optionally view another user's active character"),
						{Type: discordgo.ApplicationCommandOptionString, Name: "name", Description: "Optionally find a character sheet by name"},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "list",
					Description: "Display a list of characters",
					Options:     []*discordgo.ApplicationCommandOption{userOption("Optionally view another user's characters")},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "setattribute",
					Description: "Set one of your active character's attributes",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionString, Name: "attribute", Description: "The attribute to edit", Required: true, Autocomplete: true},
						{Type: discordgo.ApplicationCommandOptionInteger, Name: "value", Description: "The new value", Required: true, MinValue: &minZero},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "setskill",
					Description: "Set one of your active character's skills",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionString, Name: "skill", Description: "The skill to edit", Required: true, Autocomplete: true},
						{Type: discordgo.ApplicationCommandOptionInteger, Name: "value", Description: "The new value", Required: true, MinValue: &minZero},
					},
				},
			},
		},
		{
			Name:        commandItem,
			Description: "Item commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "create",
					Description: "Creates a new item",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionString, Name: "name", Description: "The item's name", Required: true},
						{Type: discordgo.ApplicationCommandOptionString, Name: "type", Description: "What kind of item it is", Required: true, Choices: itemTypeChoices()},
						{Type: discordgo.ApplicationCommandOptionString, Name: "slot", Description: "Where a wearable item goes", Choices: slotChoices()},
						{Type: discordgo.ApplicationCommandOptionString, Name: "description", Description: "A short description"},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "details",
					Description: "Display details about an item",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionString, Name: "name", Description: "The item's name", Required: true, Autocomplete: true},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "list",
					Description: "Display a list of items",
					Options:     []*discordgo.ApplicationCommandOption{userOption("Optionally view another user's items")},
				},
				itemStatCommand("setattribute", "attribute", "Add or change an attribute effect on one of your items"),
				itemStatCommand("setskill", "skill", "Add or change a skill effect on one of your items"),
			},
		},
		{
			Name:        commandRoll,
			Description: "Announce a skill roll",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: "skill", Description: "The skill being rolled", Required: true, Autocomplete: true},
				{Type: discordgo.ApplicationCommandOptionString, Name: "body", Description: "The body of the message accompanying the roll", Required: true},
			},
		},
		{
			Name: userMenuActiveCharacter,
			Type: discordgo.UserApplicationCommand,
		},
	}
}

func itemStatCommand(name, stat, description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionSubCommand,
		Name:        name,
		Description: description,
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionString, Name: "item", Description: "The item to edit", Required: true, Autocomplete: true},
			{Type: discordgo.ApplicationCommandOptionString, Name: stat, Description: "The " + stat + " to modify", Required: true, Autocomplete: true},
			{Type: discordgo.ApplicationCommandOptionInteger, Name: "value", Description: "The modifier; 0 removes it", Required: true},
			{Type: discordgo.ApplicationCommandOptionString, Name: "description", Description: "Why the item has this effect"},
		},
	}
}

// RegisterCommands replaces the application's commands. An empty guildID
// registers global commands.
func (h *Handler) RegisterCommands(s *discordgo.Session, appID, guildID string) error {
	registered, err := s.ApplicationCommandBulkOverwrite(appID, guildID, Commands())
	if err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}
	for _, cmd := range registered {
		h.logger.Info().Str("command", cmd.Name).Str("guild_id", guildID).Msg("Registered command")
	}
	return nil
}
