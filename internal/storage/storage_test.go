package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mrredcon/ballroom/internal/config"
	"github.com/mrredcon/ballroom/internal/entities"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMemory(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Backend: config.BackendMemory}}

	repos, err := Open(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, config.BackendMemory, repos.Backend)
	assert.NoError(t, repos.Close())
}

func TestOpenSQLite(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{Storage: config.StorageConfig{
		Backend:    config.BackendSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "ballroom.db"),
	}}

	repos, err := Open(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)
	defer func() { assert.NoError(t, repos.Close()) }()

	require.NoError(t, repos.Characters.Create(ctx, entities.NewCharacter("char-1", "owner-1", "Harry")))
	require.NoError(t, repos.Items.Create(ctx, &entities.Item{
		ID: "item-1", OwnerID: "owner-1", Name: "Tie", Type: entities.ItemTypeMisc,
	}))

	names, err := repos.Items.ListNames(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Tie"}, names)
}

func TestOpenUnknownBackend(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Backend: "postgres"}}

	_, err := Open(context.Background(), cfg, zerolog.Nop())
	assert.Error(t, err)
}

func TestNewRedisClientBadURL(t *testing.T) {
	_, err := NewRedisClient(context.Background(), config.RedisConfig{URL: "not a url"})
	assert.ErrorContains(t, err, "parse Redis URL")
}
