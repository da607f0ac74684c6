package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/mrredcon/ballroom/internal/entities"
	dnderr "github.com/mrredcon/ballroom/internal/errors"
	"github.com/mrredcon/ballroom/internal/services/character"
)

const noActiveCharacter = "You don't have an active character. Use `/character create` or `/character activate` first."

func (h *Handler) characterCommand(ctx context.Context, inv *invocation) (*discordgo.InteractionResponseData, error) {
	switch inv.Subcommand {
	case "create":
		return h.createCharacter(ctx, inv)
	case "activate":
		return h.activateCharacter(ctx, inv)
	case "sheet":
		return h.showSheet(ctx, inv)
	case "list":
		return h.listCharacters(ctx, inv)
	case "setattribute":
		return h.setCharacterStat(ctx, inv, "attribute")
	case "setskill":
		return h.setCharacterStat(ctx, inv, "skill")
	default:
		return ephemeral("Unknown character command."), nil
	}
}

func (h *Handler) createCharacter(ctx context.Context, inv *invocation) (*discordgo.InteractionResponseData, error) {
	name := inv.Options.string("name")
	char, err := h.services.CharacterService.CreateCharacter(ctx, &character.CreateCharacterInput{
		OwnerID:     inv.UserID,
		Name:        name,
		Description: inv.Options.string("description"),
	})
	if err != nil {
		return failure(err, map[dnderr.Code]string{
			dnderr.CodeAlreadyExists: fmt.Sprintf("A character named '%s' already exists.", name),
		})
	}

	return message(fmt.Sprintf("✅ Created **%s**. They are now your active character.", char.Name)), nil
}

func (h *Handler) activateCharacter(ctx context.Context, inv *invocation) (*discordgo.InteractionResponseData, error) {
	name := inv.Options.string("name")
	ok, err := h.services.CharacterService.ActivateCharacter(ctx, inv.UserID, name)
	if err != nil {
		return failure(err, nil)
	}
	if !ok {
		return ephemeral(fmt.Sprintf("❌ You don't have a character named '%s'.", name)), nil
	}

	return message(fmt.Sprintf("✅ **%s** is now your active character.", name)), nil
}

func (h *Handler) showSheet(ctx context.Context, inv *invocation) (*discordgo.InteractionResponseData, error) {
	var (
		char *entities.Character
		err  error
	)

	if name := inv.Options.string("name"); name != "" {
		char, err = h.services.CharacterService.FindCharacterByName(ctx, name)
		if err != nil {
			return failure(err, map[dnderr.Code]string{
				dnderr.CodeNotFound: fmt.Sprintf("Could not find a character named '%s'.", name),
			})
		}
	} else {
		subject := inv.subjectID("user")
		char, err = h.services.CharacterService.GetActiveCharacter(ctx, subject)
		if err != nil {
			text := noActiveCharacter
			if subject != inv.UserID {
				text = fmt.Sprintf("%s does not have an active character.", displayName(inv.resolvedUser(subject), subject))
			}
			return failure(err, map[dnderr.Code]string{dnderr.CodeNotFound: text})
		}
	}

	return &discordgo.InteractionResponseData{
		Content: fmt.Sprintf("Here's the sheet for %s.", char.Name),
		Embeds:  []*discordgo.MessageEmbed{sheetEmbed(char)},
	}, nil
}

func (h *Handler) listCharacters(ctx context.Context, inv *invocation) (*discordgo.InteractionResponseData, error) {
	subject := inv.subjectID("user")
	owned, err := h.services.CharacterService.ListCharactersOwnedBy(ctx, subject)
	if err != nil {
		return failure(err, nil)
	}
	if len(owned) == 0 {
		return message("There aren't any characters to show!"), nil
	}

	return message("Characters: " + joinNames(owned, func(c *entities.Character) string { return c.Name }) + "."), nil
}

func (h *Handler) setCharacterStat(ctx context.Context, inv *invocation, kind string) (*discordgo.InteractionResponseData, error) {
	statName := inv.Options.string(kind)
	value, _ := inv.Options.int("value")

	set := h.services.LedgerService.SetCharacterAttribute
	if kind == "skill" {
		set = h.services.LedgerService.SetCharacterSkill
	}

	ref, err := set(ctx, inv.UserID, statName, value)
	if err != nil {
		return failure(err, map[dnderr.Code]string{
			dnderr.CodeNotFound:     noActiveCharacter,
			dnderr.CodeInvalidStat:  fmt.Sprintf("'%s' is not a valid %s.", statName, kind),
			dnderr.CodeInvalidValue: "Values must be zero or more.",
		})
	}

	return message(fmt.Sprintf("✅ %s set to %d.", ref, value)), nil
}

// showActiveCharacter backs the user context menu
func (h *Handler) showActiveCharacter(ctx context.Context, inv *invocation) (*discordgo.InteractionResponseData, error) {
	target := inv.TargetID
	member := inv.resolvedUser(target)

	char, err := h.services.CharacterService.GetActiveCharacter(ctx, target)
	if err != nil {
		return failure(err, map[dnderr.Code]string{
			dnderr.CodeNotFound: "That user does not have an active character.",
		})
	}

	embed := &discordgo.MessageEmbed{
		Title:       displayName(member, target),
		Description: fmt.Sprintf("<@%s>'s active character is: %s", target, char.Name),
		Color:       colorSheet,
	}
	if member != nil {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: member.AvatarURL("")}
	}

	return &discordgo.InteractionResponseData{Embeds: []*discordgo.MessageEmbed{embed}}, nil
}
