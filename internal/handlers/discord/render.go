package discord

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/mrredcon/ballroom/internal/domain/stats"
	"github.com/mrredcon/ballroom/internal/effects"
	"github.com/mrredcon/ballroom/internal/entities"
	dnderr "github.com/mrredcon/ballroom/internal/errors"
)

const (
	colorSheet = 0x3498db // Blue
	colorItem  = 0xe67e22 // Orange
	colorRoll  = 0x9b59b6 // Purple
)

func ephemeral(content string) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	}
}

func message(content string) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{Content: content}
}

// failure turns an expected error into a message for the caller. Codes
// missing from messages fall through as unexpected errors, except
// invalid_argument which is always shown.
func failure(err error, messages map[dnderr.Code]string) (*discordgo.InteractionResponseData, error) {
	code := dnderr.GetCode(err)
	if text, ok := messages[code]; ok {
		return ephemeral("❌ " + text), nil
	}
	if code == dnderr.CodeInvalidArgument {
		return ephemeral("❌ " + capitalize(rootMessage(err)) + "."), nil
	}
	return nil, err
}

// rootMessage is the message of the innermost application error
func rootMessage(err error) string {
	msg := err.Error()
	for err != nil {
		var appErr *dnderr.Error
		if !errors.As(err, &appErr) {
			break
		}
		msg = appErr.Message
		err = appErr.Cause
	}
	return msg
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// displayName is the resolved username when Discord sent one, else a mention
func displayName(user *discordgo.User, id string) string {
	if user != nil {
		if user.GlobalName != "" {
			return user.GlobalName
		}
		return user.Username
	}
	return "<@" + id + ">"
}

// sheetEmbed renders one field per attribute with the effective values of
// its skills
func sheetEmbed(char *entities.Character) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       char.Name,
		Description: char.Description,
		Color:       colorSheet,
	}

	for _, section := range effects.BuildSheet(char) {
		var sb strings.Builder
		for _, skill := range section.Skills {
			fmt.Fprintf(&sb, "%s: %d\n", skill.Name, skill.Effective)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("%s: %d", section.Name, section.Value),
			Value:  sb.String(),
			Inline: true,
		})
	}

	return embed
}

// itemEmbed lists an item's effects in storage order
func itemEmbed(item *entities.Item, lines []effects.EffectLine) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       item.Name,
		Description: item.Description,
		Color:       colorItem,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Type", Value: item.Type.Display(), Inline: true},
		},
	}
	if item.Slot != nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Slot", Value: string(*item.Slot), Inline: true,
		})
	}

	effectText := "No effects."
	if len(lines) > 0 {
		var sb strings.Builder
		for _, line := range lines {
			fmt.Fprintf(&sb, "**%s %s**", line.Signed, line.Stat)
			if line.Description != "" {
				fmt.Fprintf(&sb, ": %s", line.Description)
			}
			sb.WriteString("\n")
		}
		effectText = sb.String()
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name: "Effects", Value: effectText,
	})

	return embed
}

func rollEmbed(char *entities.Character, skill stats.Skill, body string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       skill.PrettyName(),
		Description: body,
		Color:       colorRoll,
	}
	if char != nil {
		embed.Fields = []*discordgo.MessageEmbedField{{
			Name:  char.Name,
			Value: fmt.Sprintf("%s %d", skill.PrettyName(), effects.EffectiveSkill(char, skill)),
		}}
	}
	return embed
}

func joinNames[T any](entries []T, name func(T) string) string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, name(e))
	}
	return strings.Join(names, ", ")
}
