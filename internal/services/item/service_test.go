package item_test

import (
	"context"
	"testing"

	"github.com/mrredcon/ballroom/internal/entities"
	dnderr "github.com/mrredcon/ballroom/internal/errors"
	mockitems "github.com/mrredcon/ballroom/internal/repositories/items/mock"
	"github.com/mrredcon/ballroom/internal/services/item"
	mockuuid "github.com/mrredcon/ballroom/internal/uuid/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*mockitems.MockRepository, *mockuuid.MockGenerator, item.Service) {
	ctrl := gomock.NewController(t)
	repo := mockitems.NewMockRepository(ctrl)
	gen := mockuuid.NewMockGenerator(ctrl)
	svc := item.NewService(&item.ServiceConfig{
		Repository:    repo,
		UUIDGenerator: gen,
	})
	return repo, gen, svc
}

func TestCreateItem(t *testing.T) {
	ctx := context.Background()
	repo, gen, svc := setup(t)

	slot := entities.Slot("hat")
	repo.EXPECT().GetByName(ctx, "Hat").Return(nil, dnderr.NotFound("no item named 'Hat'"))
	gen.EXPECT().New().Return("item_1")
	repo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, it *entities.Item) error {
			assert.Equal(t, "item_1", it.ID)
			assert.Equal(t, entities.ItemTypeWearable, it.Type)
			require.NotNil(t, it.Slot)
			assert.Equal(t, entities.SlotHat, *it.Slot)
			assert.Empty(t, it.Effects)
			return nil
		})

	created, err := svc.CreateItem(ctx, &item.CreateItemInput{
		OwnerID: "owner_1",
		Name:    "Hat",
		Type:    "wearable",
		Slot:    &slot,
	})

	require.NoError(t, err)
	assert.Equal(t, "Hat", created.Name)
}

func TestCreateItem_NameTakenByAnyOwner(t *testing.T) {
	ctx := context.Background()
	repo, _, svc := setup(t)

	existing := &entities.Item{ID: "item_1", OwnerID: "owner_2", Name: "Hat", Type: entities.ItemTypeMisc}
	repo.EXPECT().GetByName(ctx, "HAT").Return(existing, nil)

	created, err := svc.CreateItem(ctx, &item.CreateItemInput{
		OwnerID: "owner_1",
		Name:    "HAT",
		Type:    entities.ItemTypeMisc,
	})

	assert.Nil(t, created)
	assert.True(t, dnderr.IsAlreadyExists(err))
}

func TestCreateItem_StorageErrorOnNameCheck(t *testing.T) {
	ctx := context.Background()
	repo, _, svc := setup(t)

	repo.EXPECT().GetByName(ctx, "Hat").Return(nil, dnderr.Internal("connection refused"))

	_, err := svc.CreateItem(ctx, &item.CreateItemInput{
		OwnerID: "owner_1",
		Name:    "Hat",
		Type:    entities.ItemTypeMisc,
	})

	assert.True(t, dnderr.IsInternal(err))
}

func TestCreateItem_Validation(t *testing.T) {
	badSlot := entities.Slot("belt")
	tests := []struct {
		name  string
		input *item.CreateItemInput
	}{
		{name: "nil", input: nil},
		{name: "no owner", input: &item.CreateItemInput{Name: "Hat", Type: entities.ItemTypeMisc}},
		{name: "no name", input: &item.CreateItemInput{OwnerID: "owner_1", Type: entities.ItemTypeMisc}},
		{name: "bad type", input: &item.CreateItemInput{OwnerID: "owner_1", Name: "Hat", Type: "WEAPON"}},
		{name: "bad slot", input: &item.CreateItemInput{OwnerID: "owner_1", Name: "Hat", Type: entities.ItemTypeWearable, Slot: &badSlot}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, svc := setup(t)
			_, err := svc.CreateItem(context.Background(), tt.input)
			assert.True(t, dnderr.IsInvalidArgument(err))
		})
	}
}

func TestListItemsOwnedBy(t *testing.T) {
	ctx := context.Background()
	repo, _, svc := setup(t)

	owned := []*entities.Item{{ID: "item_1", OwnerID: "owner_1", Name: "Hat"}}
	repo.EXPECT().ListByOwner(ctx, "owner_1").Return(owned, nil)

	got, err := svc.ListItemsOwnedBy(ctx, "owner_1")
	require.NoError(t, err)
	assert.Equal(t, owned, got)
}
