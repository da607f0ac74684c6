//go:build integration

package characters_test

import (
	"context"
	"testing"

	"github.com/mrredcon/ballroom/internal/domain/stats"
	dnderr "github.com/mrredcon/ballroom/internal/errors"
	"github.com/mrredcon/ballroom/internal/repositories/characters"
	"github.com/mrredcon/ballroom/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.CreateTestRedisClientOrSkip(t)
	repo := characters.NewRedis(client)
	ctx := context.Background()

	harry := testutils.CreateTestCharacter("char_1", "owner_1", "Harry")
	require.NoError(t, repo.Create(ctx, harry))

	t.Run("duplicate name in any case is rejected", func(t *testing.T) {
		err := repo.Create(ctx, testutils.CreateTestCharacter("char_2", "owner_2", "HARRY"))
		assert.True(t, dnderr.IsAlreadyExists(err))
	})

	t.Run("stats round trip", func(t *testing.T) {
		require.NoError(t, repo.SetSkill(ctx, "char_1", stats.SkillLogic, 4))

		got, err := repo.GetByName(ctx, "harry")
		require.NoError(t, err)
		assert.Equal(t, 3, got.Attribute(stats.AttributeIntellect))
		assert.Equal(t, 4, got.Skill(stats.SkillLogic))
		assert.Equal(t, 0, got.Skill(stats.SkillDrama))
		assert.True(t, got.CreatedAt.Equal(testutils.FixedTime))
	})

	t.Run("active pointer", func(t *testing.T) {
		require.NoError(t, repo.SetActive(ctx, "owner_1", "char_1"))
		id, err := repo.GetActiveID(ctx, "owner_1")
		require.NoError(t, err)
		assert.Equal(t, "char_1", id)

		err = repo.SetActive(ctx, "owner_1", "missing")
		assert.True(t, dnderr.IsNotFound(err))
	})

	t.Run("delete cascades", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "char_1"))

		_, err := repo.GetActiveID(ctx, "owner_1")
		assert.True(t, dnderr.IsNotFound(err))

		owned, err := repo.ListByOwner(ctx, "owner_1")
		require.NoError(t, err)
		assert.Empty(t, owned)

		// The name is free again
		require.NoError(t, repo.Create(ctx, testutils.CreateTestCharacter("char_3", "owner_2", "Harry")))
	})
}
