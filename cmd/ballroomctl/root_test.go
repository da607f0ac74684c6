package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrredcon/ballroom/internal/entities"
	"github.com/mrredcon/ballroom/internal/services"
	"github.com/mrredcon/ballroom/internal/services/character"
	"github.com/mrredcon/ballroom/internal/services/item"
	"github.com/mrredcon/ballroom/internal/services/ledger"
	"github.com/mrredcon/ballroom/internal/storage/sqlite"
)

// seedStore writes a small fixture to a fresh SQLite file and returns its path
func seedStore(t *testing.T) string {
	t.Helper()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "ballroom.db")

	store, err := sqlite.Open(ctx, path)
	require.NoError(t, err)
	defer store.Close()

	provider := services.NewProvider(&services.ProviderConfig{
		CharacterRepository: store.Characters(),
		ItemRepository:      store.Items(),
	})

	_, err = provider.CharacterService.CreateCharacter(ctx, &character.CreateCharacterInput{OwnerID: "1", Name: "Harry"})
	require.NoError(t, err)
	_, err = provider.LedgerService.SetCharacterAttribute(ctx, "1", "Intellect", 3)
	require.NoError(t, err)
	_, err = provider.LedgerService.SetCharacterSkill(ctx, "1", "Logic", 2)
	require.NoError(t, err)

	_, err = provider.ItemService.CreateItem(ctx, &item.CreateItemInput{
		OwnerID: "1", Name: "Flask", Type: entities.ItemTypeConsumable,
	})
	require.NoError(t, err)
	_, err = provider.LedgerService.SetItemAttribute(ctx, &ledger.SetItemStatInput{
		OwnerID: "1", ItemName: "Flask", StatName: "Psyche", Value: 2, Description: "calms nerves",
	})
	require.NoError(t, err)

	return path
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestItemSearch(t *testing.T) {
	path := seedStore(t)

	out := execute(t, "--backend", "sqlite", "--sqlite-path", path, "item", "search", "fla")
	assert.Equal(t, "Flask\n", out)
}

func TestItemShow(t *testing.T) {
	path := seedStore(t)

	out := execute(t, "--sqlite-path", path, "--backend", "sqlite", "item", "show", "flask")
	assert.Contains(t, out, "Flask (Consumable, owner 1)")
	assert.Contains(t, out, "+2 Psyche: calms nerves")
}

func TestCharacterShowJSON(t *testing.T) {
	path := seedStore(t)

	out := execute(t, "--sqlite-path", path, "--backend", "sqlite", "--json", "character", "show", "HARRY")

	var decoded struct {
		Name  string
		Sheet []struct {
			Name   string
			Value  int
			Skills []struct {
				Name      string
				Effective int
			}
		}
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "Harry", decoded.Name)
	require.NotEmpty(t, decoded.Sheet)
	assert.Equal(t, "Intellect", decoded.Sheet[0].Name)
	assert.Equal(t, 5, decoded.Sheet[0].Skills[0].Effective)
}

func TestCharacterListMarksActive(t *testing.T) {
	path := seedStore(t)

	out := execute(t, "--sqlite-path", path, "--backend", "sqlite", "character", "list", "--owner", "1")
	assert.Contains(t, out, "ACTIVE")
	assert.Regexp(t, `\*\s+Harry`, out)
}

func TestEnvSelectsBackend(t *testing.T) {
	path := seedStore(t)
	t.Setenv("BALLROOM_BACKEND", "sqlite")
	t.Setenv("BALLROOM_SQLITE_PATH", path)

	out := execute(t, "item", "list", "--owner", "1")
	assert.Contains(t, out, "Flask")
}

func TestStatsNeedsNoStore(t *testing.T) {
	t.Setenv("BALLROOM_BACKEND", "redis")
	t.Setenv("BALLROOM_REDIS_URL", "redis://127.0.0.1:1/0")

	out := execute(t, "stats")
	assert.Contains(t, out, "Inland Empire")
	assert.Contains(t, out, "INLANDEMPIRE")
}
