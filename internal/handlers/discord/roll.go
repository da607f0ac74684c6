package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/mrredcon/ballroom/internal/domain/stats"
	dnderr "github.com/mrredcon/ballroom/internal/errors"
)

// rollCommand announces a skill roll. Players roll at the table; the embed
// carries the skill, the message body and, when the caller has an active
// character, that character's effective value.
func (h *Handler) rollCommand(ctx context.Context, inv *invocation) (*discordgo.InteractionResponseData, error) {
	skillName := inv.Options.string("skill")
	skill, ok := stats.ResolveSkill(skillName)
	if !ok {
		return ephemeral(fmt.Sprintf("❌ '%s' is not a valid skill.", skillName)), nil
	}

	char, err := h.services.CharacterService.GetActiveCharacter(ctx, inv.UserID)
	switch {
	case dnderr.IsNotFound(err):
		char = nil
	case err != nil:
		return nil, err
	}

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{rollEmbed(char, skill, inv.Options.string("body"))},
	}, nil
}
