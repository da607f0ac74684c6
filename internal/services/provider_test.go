package services_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/mrredcon/ballroom/internal/domain/stats"
	"github.com/mrredcon/ballroom/internal/effects"
	"github.com/mrredcon/ballroom/internal/entities"
	dnderr "github.com/mrredcon/ballroom/internal/errors"
	"github.com/mrredcon/ballroom/internal/repositories/characters"
	"github.com/mrredcon/ballroom/internal/repositories/items"
	"github.com/mrredcon/ballroom/internal/services"
	"github.com/mrredcon/ballroom/internal/services/character"
	"github.com/mrredcon/ballroom/internal/services/item"
	"github.com/mrredcon/ballroom/internal/services/ledger"
	"github.com/mrredcon/ballroom/internal/storage/sqlite"
	"github.com/mrredcon/ballroom/internal/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	ownerOne = "111111111111111111"
	ownerTwo = "222222222222222222"
)

// ScenarioTestSuite runs the end-to-end flows against one backend
type ScenarioTestSuite struct {
	suite.Suite
	open     func(t *testing.T) (characters.Repository, items.Repository)
	provider *services.Provider
	ctx      context.Context
}

func (s *ScenarioTestSuite) SetupTest() {
	charRepo, itemRepo := s.open(s.T())
	s.provider = services.NewProvider(&services.ProviderConfig{
		CharacterRepository: charRepo,
		ItemRepository:      itemRepo,
		UUIDGenerator:       uuid.NewSequentialGenerator("id"),
	})
	s.ctx = context.Background()
}

func TestScenariosInMemory(t *testing.T) {
	suite.Run(t, &ScenarioTestSuite{
		open: func(*testing.T) (characters.Repository, items.Repository) {
			return characters.NewInMemoryRepository(), items.NewInMemoryRepository()
		},
	})
}

func TestScenariosSQLite(t *testing.T) {
	suite.Run(t, &ScenarioTestSuite{
		open: func(t *testing.T) (characters.Repository, items.Repository) {
			store, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "ballroom.db"))
			require.NoError(t, err)
			t.Cleanup(func() { _ = store.Close() })
			return store.Characters(), store.Items()
		},
	})
}

func (s *ScenarioTestSuite) createFlask() *entities.Item {
	flask, err := s.provider.ItemService.CreateItem(s.ctx, &item.CreateItemInput{
		OwnerID:     ownerOne,
		Name:        "Flask",
		Description: "A dented flask",
		Type:        entities.ItemTypeConsumable,
	})
	s.Require().NoError(err)
	return flask
}

func (s *ScenarioTestSuite) TestCreateActivatesAndEffectiveSkillSums() {
	_, err := s.provider.CharacterService.CreateCharacter(s.ctx, &character.CreateCharacterInput{
		OwnerID: ownerOne,
		Name:    "Harry",
	})
	s.Require().NoError(err)

	_, err = s.provider.LedgerService.SetCharacterAttribute(s.ctx, ownerOne, "Intellect", 3)
	s.Require().NoError(err)
	_, err = s.provider.LedgerService.SetCharacterSkill(s.ctx, ownerOne, "Logic", 2)
	s.Require().NoError(err)

	active, err := s.provider.CharacterService.GetActiveCharacter(s.ctx, ownerOne)
	s.Require().NoError(err)
	s.Equal("Harry", active.Name)
	s.Equal(5, effects.EffectiveSkill(active, stats.SkillLogic))
}

func (s *ScenarioTestSuite) TestItemNamesAreGloballyUnique() {
	s.createFlask()

	_, err := s.provider.ItemService.CreateItem(s.ctx, &item.CreateItemInput{
		OwnerID: ownerTwo,
		Name:    "flask",
		Type:    entities.ItemTypeMisc,
	})
	s.True(dnderr.IsAlreadyExists(err))
}

func (s *ScenarioTestSuite) TestZeroValueRemovesItemEffect() {
	s.createFlask()

	_, err := s.provider.LedgerService.SetItemAttribute(s.ctx, &ledger.SetItemStatInput{
		OwnerID: ownerOne, ItemName: "Flask", StatName: "Psyche", Value: 2, Description: "calms nerves",
	})
	s.Require().NoError(err)

	_, err = s.provider.LedgerService.SetItemAttribute(s.ctx, &ledger.SetItemStatInput{
		OwnerID: ownerOne, ItemName: "Flask", StatName: "Psyche", Value: 0,
	})
	s.Require().NoError(err)

	flask, err := s.provider.ItemService.FindItemByName(s.ctx, "Flask")
	s.Require().NoError(err)
	lines, err := effects.DescribeEffects(flask)
	s.Require().NoError(err)
	for _, line := range lines {
		s.NotEqual("Psyche", line.Stat)
	}
}

func (s *ScenarioTestSuite) TestNonOwnerCannotEditItem() {
	s.createFlask()

	_, err := s.provider.LedgerService.SetItemSkill(s.ctx, &ledger.SetItemStatInput{
		OwnerID: ownerOne, ItemName: "Flask", StatName: "Shivers", Value: 1, Description: "cold metal",
	})
	s.Require().NoError(err)

	_, err = s.provider.LedgerService.SetItemAttribute(s.ctx, &ledger.SetItemStatInput{
		OwnerID: ownerTwo, ItemName: "Flask", StatName: "Psyche", Value: 5, Description: "steal buff",
	})
	s.True(dnderr.IsPermissionDenied(err))

	flask, err := s.provider.ItemService.FindItemByName(s.ctx, "flask")
	s.Require().NoError(err)
	s.Require().Len(flask.Effects, 1)
	s.Equal(stats.SkillRef(stats.SkillShivers), flask.Effects[0].Stat)
}

func (s *ScenarioTestSuite) TestFuzzySearchFindsItem() {
	s.createFlask()

	names, err := s.provider.LookupService.FuzzySearchItemNames(s.ctx, "fla", 25, "")
	s.Require().NoError(err)
	s.Equal([]string{"Flask"}, names)
}

func (s *ScenarioTestSuite) TestUpdatedEffectKeepsPosition() {
	s.createFlask()

	for _, in := range []*ledger.SetItemStatInput{
		{OwnerID: ownerOne, ItemName: "Flask", StatName: "Psyche", Value: 2, Description: "calms nerves"},
		{OwnerID: ownerOne, ItemName: "Flask", StatName: "Physique", Value: -1, Description: "heavy"},
		{OwnerID: ownerOne, ItemName: "Flask", StatName: "Psyche", Value: 4, Description: "very calming"},
	} {
		_, err := s.provider.LedgerService.SetItemAttribute(s.ctx, in)
		s.Require().NoError(err)
	}

	flask, err := s.provider.ItemService.FindItemByName(s.ctx, "Flask")
	s.Require().NoError(err)
	lines, err := effects.DescribeEffects(flask)
	s.Require().NoError(err)
	s.Require().Len(lines, 2)
	s.Equal("Psyche", lines[0].Stat)
	s.Equal("+4", lines[0].Signed)
	s.Equal("very calming", lines[0].Description)
	s.Equal("Physique", lines[1].Stat)
	s.Equal("-1", lines[1].Signed)
}

func (s *ScenarioTestSuite) TestActivateSwitchesOnlyOnExactName() {
	for _, name := range []string{"Harry", "Kim"} {
		_, err := s.provider.CharacterService.CreateCharacter(s.ctx, &character.CreateCharacterInput{
			OwnerID: ownerOne,
			Name:    name,
		})
		s.Require().NoError(err)
	}

	ok, err := s.provider.CharacterService.ActivateCharacter(s.ctx, ownerOne, "harry")
	s.Require().NoError(err)
	s.False(ok)

	active, err := s.provider.CharacterService.GetActiveCharacter(s.ctx, ownerOne)
	s.Require().NoError(err)
	s.Equal("Kim", active.Name)

	ok, err = s.provider.CharacterService.ActivateCharacter(s.ctx, ownerOne, "Harry")
	s.Require().NoError(err)
	s.True(ok)

	active, err = s.provider.CharacterService.GetActiveCharacter(s.ctx, ownerOne)
	s.Require().NoError(err)
	s.Equal("Harry", active.Name)
}

func (s *ScenarioTestSuite) TestActivateAcceptsNameAsTyped() {
	created, err := s.provider.CharacterService.CreateCharacter(s.ctx, &character.CreateCharacterInput{
		OwnerID: ownerOne,
		Name:    "Harry ",
	})
	s.Require().NoError(err)
	s.Equal("Harry", created.Name)

	_, err = s.provider.CharacterService.CreateCharacter(s.ctx, &character.CreateCharacterInput{
		OwnerID: ownerOne,
		Name:    "Kim",
	})
	s.Require().NoError(err)

	ok, err := s.provider.CharacterService.ActivateCharacter(s.ctx, ownerOne, "Harry ")
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.provider.CharacterService.ActivateCharacter(s.ctx, "", "Harry")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *ScenarioTestSuite) TestDuplicateCharacterNameRejectedByStorage() {
	_, err := s.provider.CharacterService.CreateCharacter(s.ctx, &character.CreateCharacterInput{
		OwnerID: ownerOne,
		Name:    "Harry",
	})
	s.Require().NoError(err)

	_, err = s.provider.CharacterService.CreateCharacter(s.ctx, &character.CreateCharacterInput{
		OwnerID: ownerTwo,
		Name:    "HARRY",
	})
	s.True(dnderr.IsAlreadyExists(err))

	_, err = s.provider.CharacterService.GetActiveCharacter(s.ctx, ownerTwo)
	s.True(dnderr.IsNotFound(err))
}

func TestConcurrentItemCreationAllowsOneWinner(t *testing.T) {
	provider := services.NewProvider(&services.ProviderConfig{})
	ctx := context.Background()

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := provider.ItemService.CreateItem(ctx, &item.CreateItemInput{
				OwnerID: ownerOne,
				Name:    "Flask",
				Type:    entities.ItemTypeMisc,
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case dnderr.IsAlreadyExists(err):
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 7, conflicts)
}
