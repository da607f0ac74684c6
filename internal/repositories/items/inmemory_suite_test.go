package items_test

import (
	"context"
	"testing"

	"github.com/mrredcon/ballroom/internal/domain/stats"
	"github.com/mrredcon/ballroom/internal/entities"
	dnderr "github.com/mrredcon/ballroom/internal/errors"
	"github.com/mrredcon/ballroom/internal/repositories/items"
	"github.com/stretchr/testify/suite"
)

type InMemoryRepositoryTestSuite struct {
	suite.Suite
	repo items.Repository
	ctx  context.Context
}

func (s *InMemoryRepositoryTestSuite) SetupTest() {
	s.repo = items.NewInMemoryRepository()
	s.ctx = context.Background()
}

func TestInMemoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(InMemoryRepositoryTestSuite))
}

func (s *InMemoryRepositoryTestSuite) create(id, owner, name string) *entities.Item {
	item := &entities.Item{ID: id, OwnerID: owner, Name: name, Type: entities.ItemTypeMisc}
	s.Require().NoError(s.repo.Create(s.ctx, item))
	return item
}

func (s *InMemoryRepositoryTestSuite) TestCreate_Success() {
	slot := entities.SlotNeck
	item := &entities.Item{
		ID:      "item_1",
		OwnerID: "user_1",
		Name:    "Horrific Necktie",
		Type:    entities.ItemTypeWearable,
		Slot:    &slot,
	}
	s.Require().NoError(s.repo.Create(s.ctx, item))

	got, err := s.repo.Get(s.ctx, "item_1")
	s.Require().NoError(err)
	s.Equal("Horrific Necktie", got.Name)
	s.Equal(entities.SlotNeck, *got.Slot)
	s.Empty(got.Effects)
	s.False(got.CreatedAt.IsZero())
}

func (s *InMemoryRepositoryTestSuite) TestCreate_DuplicateNameIgnoresCase() {
	s.create("item_1", "user_1", "Ledger")

	err := s.repo.Create(s.ctx, &entities.Item{ID: "item_2", OwnerID: "user_2", Name: "LEDGER", Type: entities.ItemTypeMisc})
	s.True(dnderr.IsAlreadyExists(err))
}

func (s *InMemoryRepositoryTestSuite) TestCreate_Validation() {
	err := s.repo.Create(s.ctx, &entities.Item{ID: "item_1", OwnerID: "user_1", Name: "Ledger", Type: "WEAPON"})
	s.True(dnderr.IsInvalidArgument(err))

	bad := entities.Slot("BELT")
	err = s.repo.Create(s.ctx, &entities.Item{ID: "item_1", OwnerID: "user_1", Name: "Ledger", Type: entities.ItemTypeWearable, Slot: &bad})
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *InMemoryRepositoryTestSuite) TestGetByName() {
	s.create("item_1", "user_1", "Pale Driver")

	got, err := s.repo.GetByName(s.ctx, "pale driver")
	s.NoError(err)
	s.Equal("item_1", got.ID)

	_, err = s.repo.GetByName(s.ctx, "Driver")
	s.True(dnderr.IsNotFound(err))
}

func (s *InMemoryRepositoryTestSuite) TestListNames() {
	s.create("item_1", "user_1", "Alpha")
	s.create("item_2", "user_2", "Beta")
	s.create("item_3", "user_1", "Gamma")

	names, err := s.repo.ListNames(s.ctx, "")
	s.NoError(err)
	s.Equal([]string{"Alpha", "Beta", "Gamma"}, names)

	names, err = s.repo.ListNames(s.ctx, "user_1")
	s.NoError(err)
	s.Equal([]string{"Alpha", "Gamma"}, names)

	owned, err := s.repo.ListByOwner(s.ctx, "user_3")
	s.NoError(err)
	s.NotNil(owned)
	s.Empty(owned)
}

func (s *InMemoryRepositoryTestSuite) TestSetEffect_UpsertKeepsPosition() {
	s.create("item_1", "user_1", "Tie")

	logic := stats.SkillRef(stats.SkillLogic)
	psyche := stats.AttributeRef(stats.AttributePsyche)

	s.NoError(s.repo.SetEffect(s.ctx, &entities.StatEffect{ItemID: "item_1", Stat: logic, Value: 1, Description: "first"}))
	s.NoError(s.repo.SetEffect(s.ctx, &entities.StatEffect{ItemID: "item_1", Stat: psyche, Value: -2}))
	s.NoError(s.repo.SetEffect(s.ctx, &entities.StatEffect{ItemID: "item_1", Stat: logic, Value: 3, Description: "second"}))

	got, err := s.repo.Get(s.ctx, "item_1")
	s.Require().NoError(err)
	s.Require().Len(got.Effects, 2)
	s.Equal(logic, got.Effects[0].Stat)
	s.Equal(3, got.Effects[0].Value)
	s.Equal("second", got.Effects[0].Description)
	s.Equal(psyche, got.Effects[1].Stat)
}

func (s *InMemoryRepositoryTestSuite) TestSetEffect_Errors() {
	s.create("item_1", "user_1", "Tie")

	err := s.repo.SetEffect(s.ctx, &entities.StatEffect{ItemID: "item_1", Stat: stats.SkillRef(stats.SkillLogic)})
	s.True(dnderr.IsInvalidValue(err))

	err = s.repo.SetEffect(s.ctx, &entities.StatEffect{ItemID: "item_1", Value: 1})
	s.True(dnderr.IsInvalidStat(err))

	err = s.repo.SetEffect(s.ctx, &entities.StatEffect{ItemID: "missing", Stat: stats.SkillRef(stats.SkillLogic), Value: 1})
	s.True(dnderr.IsNotFound(err))
}

func (s *InMemoryRepositoryTestSuite) TestDeleteEffect() {
	s.create("item_1", "user_1", "Tie")
	logic := stats.SkillRef(stats.SkillLogic)
	s.NoError(s.repo.SetEffect(s.ctx, &entities.StatEffect{ItemID: "item_1", Stat: logic, Value: 1}))

	s.NoError(s.repo.DeleteEffect(s.ctx, "item_1", logic))
	s.NoError(s.repo.DeleteEffect(s.ctx, "item_1", logic))

	got, err := s.repo.Get(s.ctx, "item_1")
	s.NoError(err)
	s.Empty(got.Effects)
}

func (s *InMemoryRepositoryTestSuite) TestDelete() {
	s.create("item_1", "user_1", "Tie")

	s.NoError(s.repo.Delete(s.ctx, "item_1"))

	_, err := s.repo.Get(s.ctx, "item_1")
	s.True(dnderr.IsNotFound(err))

	names, err := s.repo.ListNames(s.ctx, "")
	s.NoError(err)
	s.Empty(names)

	s.create("item_2", "user_1", "TIE")
}
