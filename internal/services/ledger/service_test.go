package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/mrredcon/ballroom/internal/domain/stats"
	"github.com/mrredcon/ballroom/internal/entities"
	dnderr "github.com/mrredcon/ballroom/internal/errors"
	"github.com/mrredcon/ballroom/internal/keylock"
	mockcharacters "github.com/mrredcon/ballroom/internal/repositories/characters/mock"
	mockitems "github.com/mrredcon/ballroom/internal/repositories/items/mock"
	"github.com/mrredcon/ballroom/internal/services/ledger"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	characters *mockcharacters.MockRepository
	items      *mockitems.MockRepository
	service    ledger.Service
	ctx        context.Context
	flask      *entities.Item
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.characters = mockcharacters.NewMockRepository(s.ctrl)
	s.items = mockitems.NewMockRepository(s.ctrl)
	s.service = ledger.NewService(&ledger.ServiceConfig{
		Characters: s.characters,
		Items:      s.items,
	})
	s.ctx = context.Background()
	s.flask = &entities.Item{ID: "item_1", OwnerID: "owner_1", Name: "Flask", Type: entities.ItemTypeConsumable}
}

func (s *LedgerServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestLedgerServiceSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func (s *LedgerServiceTestSuite) TestSetCharacterAttribute() {
	s.characters.EXPECT().GetActiveID(s.ctx, "owner_1").Return("char_1", nil)
	s.characters.EXPECT().SetAttribute(s.ctx, "char_1", stats.AttributeIntellect, 3).Return(nil)

	ref, err := s.service.SetCharacterAttribute(s.ctx, "owner_1", "intellect", 3)

	s.Require().NoError(err)
	s.Equal(stats.AttributeRef(stats.AttributeIntellect), ref)
	s.Equal("Intellect", ref.String())
}

func (s *LedgerServiceTestSuite) TestSetCharacterSkill_ResolvesAlias() {
	s.characters.EXPECT().GetActiveID(s.ctx, "owner_1").Return("char_1", nil)
	s.characters.EXPECT().SetSkill(s.ctx, "char_1", stats.SkillInlandEmpire, 0).Return(nil)

	ref, err := s.service.SetCharacterSkill(s.ctx, "owner_1", "inland", 0)

	s.Require().NoError(err)
	s.Equal(stats.SkillRef(stats.SkillInlandEmpire), ref)
}

func (s *LedgerServiceTestSuite) TestSetCharacterStat_NoActiveCharacterComesFirst() {
	s.characters.EXPECT().
		GetActiveID(s.ctx, "owner_1").
		Return("", dnderr.NotFound("owner has no active character"))

	_, err := s.service.SetCharacterAttribute(s.ctx, "owner_1", "Charisma", -1)

	s.True(dnderr.IsNotFound(err))
}

func (s *LedgerServiceTestSuite) TestSetCharacterStat_InvalidStatBeforeInvalidValue() {
	s.characters.EXPECT().GetActiveID(s.ctx, "owner_1").Return("char_1", nil)

	_, err := s.service.SetCharacterAttribute(s.ctx, "owner_1", "Charisma", -1)

	s.True(dnderr.IsInvalidStat(err))
}

func (s *LedgerServiceTestSuite) TestSetCharacterAttribute_RejectsSkillName() {
	s.characters.EXPECT().GetActiveID(s.ctx, "owner_1").Return("char_1", nil)

	_, err := s.service.SetCharacterAttribute(s.ctx, "owner_1", "Logic", 1)

	s.True(dnderr.IsInvalidStat(err))
}

func (s *LedgerServiceTestSuite) TestSetCharacterSkill_NegativeValue() {
	s.characters.EXPECT().GetActiveID(s.ctx, "owner_1").Return("char_1", nil)

	_, err := s.service.SetCharacterSkill(s.ctx, "owner_1", "Logic", -1)

	s.True(dnderr.IsInvalidValue(err))
}

func (s *LedgerServiceTestSuite) TestSetItemAttribute_Upserts() {
	s.items.EXPECT().GetByName(s.ctx, "flask").Return(s.flask, nil)
	s.items.EXPECT().
		SetEffect(s.ctx, &entities.StatEffect{
			ItemID:      "item_1",
			Stat:        stats.AttributeRef(stats.AttributePsyche),
			Description: "calms nerves",
			Value:       2,
		}).
		Return(nil)

	ref, err := s.service.SetItemAttribute(s.ctx, &ledger.SetItemStatInput{
		OwnerID:     "owner_1",
		ItemName:    "flask",
		StatName:    "Psyche",
		Value:       2,
		Description: "calms nerves",
	})

	s.Require().NoError(err)
	s.Equal(stats.AttributeRef(stats.AttributePsyche), ref)
}

func (s *LedgerServiceTestSuite) TestSetItemSkill_ZeroDeletes() {
	s.items.EXPECT().GetByName(s.ctx, "Flask").Return(s.flask, nil)
	s.items.EXPECT().DeleteEffect(s.ctx, "item_1", stats.SkillRef(stats.SkillShivers)).Return(nil)

	_, err := s.service.SetItemSkill(s.ctx, &ledger.SetItemStatInput{
		OwnerID:  "owner_1",
		ItemName: "Flask",
		StatName: "shivers",
	})

	s.Require().NoError(err)
}

func (s *LedgerServiceTestSuite) TestSetItemStat_MissingItem() {
	s.items.EXPECT().GetByName(s.ctx, "Hat").Return(nil, dnderr.NotFound("no item named 'Hat'"))

	_, err := s.service.SetItemSkill(s.ctx, &ledger.SetItemStatInput{
		OwnerID:  "owner_1",
		ItemName: "Hat",
		StatName: "nonsense",
		Value:    1,
	})

	s.True(dnderr.IsNotFound(err))
}

func (s *LedgerServiceTestSuite) TestSetItemStat_PermissionBeforeStatName() {
	s.items.EXPECT().GetByName(s.ctx, "Flask").Return(s.flask, nil)

	_, err := s.service.SetItemAttribute(s.ctx, &ledger.SetItemStatInput{
		OwnerID:  "owner_2",
		ItemName: "Flask",
		StatName: "nonsense",
		Value:    5,
	})

	s.True(dnderr.IsPermissionDenied(err))
}

func (s *LedgerServiceTestSuite) TestSetItemStat_InvalidStat() {
	s.items.EXPECT().GetByName(s.ctx, "Flask").Return(s.flask, nil)

	_, err := s.service.SetItemAttribute(s.ctx, &ledger.SetItemStatInput{
		OwnerID:  "owner_1",
		ItemName: "Flask",
		StatName: "Logic",
		Value:    5,
	})

	s.True(dnderr.IsInvalidStat(err))
}

func (s *LedgerServiceTestSuite) TestSetItemStat_ContextDoneWhileWaitingForLock() {
	locker := keylock.New()
	svc := ledger.NewService(&ledger.ServiceConfig{
		Characters: s.characters,
		Items:      s.items,
		Locker:     locker,
	})

	unlock, err := locker.Lock(s.ctx, ledger.ItemLockKey("FLASK"))
	s.Require().NoError(err)
	defer unlock()

	ctx, cancel := context.WithTimeout(s.ctx, 20*time.Millisecond)
	defer cancel()

	_, err = svc.SetItemAttribute(ctx, &ledger.SetItemStatInput{
		OwnerID:  "owner_1",
		ItemName: "Flask",
		StatName: "Psyche",
		Value:    1,
	})

	s.ErrorIs(err, context.DeadlineExceeded)
}
