package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrredcon/ballroom/internal/config"
	"github.com/mrredcon/ballroom/internal/logging"
	"github.com/mrredcon/ballroom/internal/services"
	"github.com/mrredcon/ballroom/internal/storage"
)

const (
	keyBackend    = "backend"
	keySQLitePath = "sqlite-path"
	keyRedisURL   = "redis-url"
	keyJSON       = "json"
)

// app is the state shared by subcommands once the store is open
type app struct {
	v        *viper.Viper
	repos    *storage.Repositories
	services *services.Provider
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "ballroomctl",
		Short: "Inspect ballroom characters and items",
		Long: `ballroomctl reads the same store the Discord bot writes to.

Settings come from flags, then BALLROOM_* environment variables, then the
bot's own environment (STORAGE_BACKEND, SQLITE_PATH, REDIS_URL).`,
		SilenceUsage:       true,
		PersistentPreRunE:  a.open,
		PersistentPostRunE: a.close,
	}

	flags := root.PersistentFlags()
	flags.String(keyBackend, "", "storage backend: memory, sqlite or redis")
	flags.String(keySQLitePath, "", "path to the SQLite database")
	flags.String(keyRedisURL, "", "Redis connection URL")
	flags.Bool(keyJSON, false, "print JSON instead of text")

	a.v.SetEnvPrefix("BALLROOM")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	for _, key := range []string{keyBackend, keySQLitePath, keyRedisURL, keyJSON} {
		_ = a.v.BindPFlag(key, flags.Lookup(key))
	}

	root.AddCommand(
		newCharacterCmd(a),
		newItemCmd(a),
		newStatsCmd(a),
	)
	return root
}

// loadConfig layers flags and BALLROOM_* variables over config.Load
func (a *app) loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if a.v.IsSet(keyBackend) {
		cfg.Storage.Backend = strings.ToLower(a.v.GetString(keyBackend))
	}
	if a.v.IsSet(keySQLitePath) {
		cfg.Storage.SQLitePath = a.v.GetString(keySQLitePath)
	}
	if a.v.IsSet(keyRedisURL) {
		cfg.Redis.URL = a.v.GetString(keyRedisURL)
	}

	if err := cfg.Storage.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (a *app) open(cmd *cobra.Command, _ []string) error {
	// The catalog needs no store
	if cmd.Name() == "stats" {
		return nil
	}

	_ = godotenv.Load()

	cfg, err := a.loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Only problems go to stderr; stdout is the command output
	logger := logging.New(config.LogConfig{Level: "warn", Format: "console"}, os.Stderr)
	repos, err := storage.Open(cmd.Context(), cfg, logger)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Storage.Backend, err)
	}

	a.repos = repos
	a.services = services.NewProvider(&services.ProviderConfig{
		CharacterRepository: repos.Characters,
		ItemRepository:      repos.Items,
		Logger:              &logger,
	})
	return nil
}

func (a *app) close(*cobra.Command, []string) error {
	if a.repos == nil {
		return nil
	}
	return a.repos.Close()
}

func (a *app) jsonOutput() bool {
	return a.v.GetBool(keyJSON)
}
