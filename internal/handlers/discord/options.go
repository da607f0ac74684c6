package discord

import (
	"github.com/bwmarrin/discordgo"
)

// options indexes a subcommand's options by name
type options map[string]*discordgo.ApplicationCommandInteractionDataOption

func optionsOf(opts []*discordgo.ApplicationCommandInteractionDataOption) options {
	out := make(options, len(opts))
	for _, opt := range opts {
		out[opt.Name] = opt
	}
	return out
}

func (o options) string(name string) string {
	opt, ok := o[name]
	if !ok || opt.Type != discordgo.ApplicationCommandOptionString {
		return ""
	}
	return opt.StringValue()
}

func (o options) int(name string) (int, bool) {
	opt, ok := o[name]
	if !ok || opt.Type != discordgo.ApplicationCommandOptionInteger {
		return 0, false
	}
	return int(opt.IntValue()), true
}

// userID returns the snowflake of a user option
func (o options) userID(name string) string {
	opt, ok := o[name]
	if !ok || opt.Type != discordgo.ApplicationCommandOptionUser {
		return ""
	}
	id, _ := opt.Value.(string)
	return id
}

// focused returns the option the user is typing into during autocomplete
func (o options) focused() *discordgo.ApplicationCommandInteractionDataOption {
	for _, opt := range o {
		if opt.Focused {
			return opt
		}
	}
	return nil
}

// invocation is everything a command needs from an interaction
type invocation struct {
	UserID     string
	Command    string
	Subcommand string
	Options    options

	// TargetID is the user a context menu command was used on
	TargetID string

	Resolved *discordgo.ApplicationCommandInteractionDataResolved
}

func invocationFrom(i *discordgo.InteractionCreate) *invocation {
	data := i.ApplicationCommandData()
	inv := &invocation{
		Command:  data.Name,
		TargetID: data.TargetID,
		Resolved: data.Resolved,
		Options:  optionsOf(data.Options),
	}

	switch {
	case i.Member != nil && i.Member.User != nil:
		inv.UserID = i.Member.User.ID
	case i.User != nil:
		inv.UserID = i.User.ID
	}

	if len(data.Options) == 1 && data.Options[0].Type == discordgo.ApplicationCommandOptionSubCommand {
		inv.Subcommand = data.Options[0].Name
		inv.Options = optionsOf(data.Options[0].Options)
	}

	return inv
}

// resolvedUser returns the resolved user for id, if Discord sent one
func (inv *invocation) resolvedUser(id string) *discordgo.User {
	if inv.Resolved == nil {
		return nil
	}
	return inv.Resolved.Users[id]
}

// subjectID is the user option if present, otherwise the caller
func (inv *invocation) subjectID(option string) string {
	if id := inv.Options.userID(option); id != "" {
		return id
	}
	return inv.UserID
}
