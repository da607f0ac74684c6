package discord

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/mrredcon/ballroom/internal/domain/stats"
	"github.com/mrredcon/ballroom/internal/entities"
)

// maxChoices is Discord's limit on autocomplete results
const maxChoices = 25

func (h *Handler) autocomplete(ctx context.Context, inv *invocation) ([]*discordgo.ApplicationCommandOptionChoice, error) {
	focused := inv.Options.focused()
	if focused == nil {
		return []*discordgo.ApplicationCommandOptionChoice{}, nil
	}
	query, _ := focused.Value.(string)

	switch focused.Name {
	case "attribute":
		return toChoices(prefixMatches(stats.AttributeNames(), query)), nil
	case "skill":
		return toChoices(prefixMatches(stats.SkillNames(), query)), nil
	case "item":
		// Only the caller's items can be edited
		names, err := h.services.LookupService.FuzzySearchItemNames(ctx, query, maxChoices, inv.UserID)
		return toChoices(names), err
	case "name":
		switch {
		case inv.Command == commandItem:
			names, err := h.services.LookupService.FuzzySearchItemNames(ctx, query, maxChoices, "")
			return toChoices(names), err
		case inv.Command == commandCharacter && inv.Subcommand == "activate":
			names, err := h.services.LookupService.FuzzySearchCharacterNames(ctx, query, maxChoices, inv.UserID)
			return toChoices(names), err
		}
	}

	return []*discordgo.ApplicationCommandOptionChoice{}, nil
}

// prefixMatches keeps options starting with query, ignoring case
func prefixMatches(options []string, query string) []string {
	prefix := entities.NameKey(query)
	out := make([]string, 0, len(options))
	for _, option := range options {
		if len(out) == maxChoices {
			break
		}
		if strings.HasPrefix(entities.NameKey(option), prefix) {
			out = append(out, option)
		}
	}
	return out
}

func toChoices(names []string) []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(names))
	for _, name := range names {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: name, Value: name})
	}
	return choices
}
