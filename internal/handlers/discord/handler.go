package discord

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/mrredcon/ballroom/internal/services"
	"github.com/rs/zerolog"
)

// interactionTimeout bounds the work done for one interaction. Discord
// expects a response within three seconds.
const interactionTimeout = 2500 * time.Millisecond

// Handler handles all Discord interactions
type Handler struct {
	services *services.Provider
	logger   zerolog.Logger
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	ServiceProvider *services.Provider // Required
	Logger          *zerolog.Logger
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg.ServiceProvider == nil {
		panic("service provider is required")
	}

	h := &Handler{
		services: cfg.ServiceProvider,
		logger:   zerolog.Nop(),
	}
	if cfg.Logger != nil {
		h.logger = cfg.Logger.With().Str("component", "discord").Logger()
	}
	return h
}

// HandleInteraction handles all Discord interactions
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx, cancel := context.WithTimeout(context.Background(), interactionTimeout)
	defer cancel()

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		h.handleCommand(ctx, s, i)
	case discordgo.InteractionApplicationCommandAutocomplete:
		h.handleAutocomplete(ctx, s, i)
	}
}

func (h *Handler) handleCommand(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	inv := invocationFrom(i)
	log := h.logger.With().
		Str("command", inv.Command).
		Str("subcommand", inv.Subcommand).
		Str("user_id", inv.UserID).
		Logger()

	data, err := h.dispatch(ctx, inv)
	if err != nil {
		log.Error().Err(err).Msg("Command failed")
		data = ephemeral("❌ Something went wrong. Please try again.")
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to respond to interaction")
	}
}

func (h *Handler) handleAutocomplete(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	inv := invocationFrom(i)

	choices, err := h.autocomplete(ctx, inv)
	if err != nil {
		h.logger.Warn().Err(err).Str("command", inv.Command).Msg("Autocomplete failed")
		choices = []*discordgo.ApplicationCommandOptionChoice{}
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{Choices: choices},
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to send autocomplete choices")
	}
}

// dispatch routes a command to its handler. A returned error is
// unexpected; expected failures come back as a message.
func (h *Handler) dispatch(ctx context.Context, inv *invocation) (*discordgo.InteractionResponseData, error) {
	switch inv.Command {
	case commandCharacter:
		return h.characterCommand(ctx, inv)
	case commandItem:
		return h.itemCommand(ctx, inv)
	case commandRoll:
		return h.rollCommand(ctx, inv)
	case userMenuActiveCharacter:
		return h.showActiveCharacter(ctx, inv)
	default:
		return ephemeral("Unknown command."), nil
	}
}
