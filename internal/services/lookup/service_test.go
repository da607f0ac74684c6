package lookup_test

import (
	"context"
	"testing"

	"github.com/mrredcon/ballroom/internal/entities"
	dnderr "github.com/mrredcon/ballroom/internal/errors"
	"github.com/mrredcon/ballroom/internal/repositories/characters"
	"github.com/mrredcon/ballroom/internal/repositories/items"
	mockitems "github.com/mrredcon/ballroom/internal/repositories/items/mock"
	"github.com/mrredcon/ballroom/internal/services/lookup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func seeded(t *testing.T) lookup.Service {
	t.Helper()
	ctx := context.Background()

	charRepo := characters.NewInMemoryRepository()
	itemRepo := items.NewInMemoryRepository()

	require.NoError(t, charRepo.Create(ctx, entities.NewCharacter("char_1", "owner_1", "Harry")))
	require.NoError(t, charRepo.Create(ctx, entities.NewCharacter("char_2", "owner_1", "Flask Man")))
	require.NoError(t, charRepo.Create(ctx, entities.NewCharacter("char_3", "owner_2", "Kim")))

	for _, it := range []*entities.Item{
		{ID: "item_1", OwnerID: "owner_1", Name: "Flask", Type: entities.ItemTypeConsumable},
		{ID: "item_2", OwnerID: "owner_2", Name: "Hip Flask", Type: entities.ItemTypeMisc},
		{ID: "item_3", OwnerID: "owner_1", Name: "Necktie", Type: entities.ItemTypeWearable},
		{ID: "item_4", OwnerID: "owner_2", Name: "Harry", Type: entities.ItemTypeMisc},
	} {
		require.NoError(t, itemRepo.Create(ctx, it))
	}

	return lookup.NewService(&lookup.ServiceConfig{Characters: charRepo, Items: itemRepo})
}

func TestExactLookup_CharactersFirst(t *testing.T) {
	svc := seeded(t)

	match, err := svc.ExactLookup(context.Background(), "harry")
	require.NoError(t, err)
	assert.Equal(t, lookup.MatchCharacter, match.Kind)
	assert.Equal(t, "char_1", match.Character.ID)
	assert.Nil(t, match.Item)
}

func TestExactLookup_FallsBackToItems(t *testing.T) {
	svc := seeded(t)

	match, err := svc.ExactLookup(context.Background(), "NECKTIE")
	require.NoError(t, err)
	assert.Equal(t, lookup.MatchItem, match.Kind)
	assert.Equal(t, "item_3", match.Item.ID)
}

func TestExactLookup_NoMatch(t *testing.T) {
	svc := seeded(t)

	_, err := svc.ExactLookup(context.Background(), "Cuno")
	assert.True(t, dnderr.IsNotFound(err))
}

func TestFuzzySearchItemNames(t *testing.T) {
	svc := seeded(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		query   string
		limit   int
		ownerID string
		want    []string
	}{
		{name: "all owners", query: "fla", limit: 25, want: []string{"Flask", "Hip Flask"}},
		{name: "one owner", query: "fla", limit: 25, ownerID: "owner_1", want: []string{"Flask"}},
		{name: "case folded", query: "FLASK", limit: 25, want: []string{"Flask", "Hip Flask"}},
		{name: "limit applies in order", query: "", limit: 2, want: []string{"Flask", "Hip Flask"}},
		{name: "zero limit", query: "fla", limit: 0, want: []string{}},
		{name: "negative limit", query: "fla", limit: -3, want: []string{}},
		{name: "no match", query: "zzz", limit: 25, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.FuzzySearchItemNames(ctx, tt.query, tt.limit, tt.ownerID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFuzzySearchCharacterNames(t *testing.T) {
	svc := seeded(t)
	ctx := context.Background()

	got, err := svc.FuzzySearchCharacterNames(ctx, "a", 25, "owner_1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Harry", "Flask Man"}, got)

	got, err = svc.FuzzySearchCharacterNames(ctx, "a", 25, "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFuzzySearchItemNames_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	itemRepo := mockitems.NewMockRepository(ctrl)
	itemRepo.EXPECT().ListNames(gomock.Any(), "").Return(nil, dnderr.Internal("connection reset"))

	svc := lookup.NewService(&lookup.ServiceConfig{
		Characters: characters.NewInMemoryRepository(),
		Items:      itemRepo,
	})

	_, err := svc.FuzzySearchItemNames(context.Background(), "fla", 25, "")
	assert.True(t, dnderr.IsInternal(err))
}
