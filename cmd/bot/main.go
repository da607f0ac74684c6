package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/mrredcon/ballroom/internal/config"
	"github.com/mrredcon/ballroom/internal/handlers/discord"
	"github.com/mrredcon/ballroom/internal/logging"
	"github.com/mrredcon/ballroom/internal/services"
	"github.com/mrredcon/ballroom/internal/storage"
)

func main() {
	// Load .env file
	envErr := godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger := logging.New(config.LogConfig{}, os.Stderr)
		logger.Fatal().Err(err).Msg("Failed to load config")
	}

	logger := logging.New(cfg.Log, os.Stdout)
	if envErr != nil {
		logger.Debug().Msg("No .env file found")
	}

	if err := cfg.ValidateBot(); err != nil {
		logger.Fatal().Err(err).Msg("Invalid bot configuration")
	}

	if err := run(cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("Bot stopped with an error")
	}
}

func run(cfg *config.Config, logger zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		if cfg.Storage.Backend != config.BackendRedis {
			return err
		}
		logger.Error().Err(err).Msg("Failed to connect to Redis, falling back to in-memory repositories")
		repos = storage.Memory()
	}
	defer func() {
		if err := repos.Close(); err != nil {
			logger.Error().Err(err).Msg("Failed to close storage")
		}
	}()

	provider := services.NewProvider(&services.ProviderConfig{
		CharacterRepository: repos.Characters,
		ItemRepository:      repos.Items,
		Logger:              &logger,
	})

	handler := discord.NewHandler(&discord.HandlerConfig{
		ServiceProvider: provider,
		Logger:          &logger,
	})

	// Create Discord session
	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		return err
	}
	dg.AddHandler(discord.RecoverMiddleware(logger, handler.HandleInteraction))
	dg.AddHandler(func(_ *discordgo.Session, r *discordgo.Ready) {
		logger.Info().Str("user", r.User.Username).Int("guilds", len(r.Guilds)).Msg("Connected to Discord")
	})

	// Open connection to Discord
	if err := dg.Open(); err != nil {
		return err
	}

	if err := handler.RegisterCommands(dg, cfg.Discord.AppID, cfg.Discord.GuildID); err != nil {
		_ = dg.Close()
		return err
	}
	if cfg.Discord.GuildID != "" {
		logger.Info().Str("guild_id", cfg.Discord.GuildID).Msg("Registered guild commands")
	} else {
		logger.Info().Msg("Registered global commands (may take up to 1 hour to propagate)")
	}

	logger.Info().Str("backend", repos.Backend).Msg("Bot is now running. Press CTRL-C to exit.")

	return waitForShutdown(ctx, logger, dg)
}

// waitForShutdown blocks until ctx is done, then closes the session
func waitForShutdown(ctx context.Context, logger zerolog.Logger, session io.Closer) error {
	<-ctx.Done()
	logger.Info().Msg("Shutting down...")
	return session.Close()
}
