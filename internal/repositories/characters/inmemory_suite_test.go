package characters_test

import (
	"context"
	"testing"

	"github.com/mrredcon/ballroom/internal/domain/stats"
	"github.com/mrredcon/ballroom/internal/entities"
	dnderr "github.com/mrredcon/ballroom/internal/errors"
	"github.com/mrredcon/ballroom/internal/repositories/characters"
	"github.com/stretchr/testify/suite"
)

// InMemoryRepositoryTestSuite defines the test suite for in-memory repository
type InMemoryRepositoryTestSuite struct {
	suite.Suite
	repo characters.Repository
	ctx  context.Context
}

// SetupTest runs before each test
func (s *InMemoryRepositoryTestSuite) SetupTest() {
	s.repo = characters.NewInMemoryRepository()
	s.ctx = context.Background()
}

// Test suite runner
func TestInMemoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(InMemoryRepositoryTestSuite))
}

func (s *InMemoryRepositoryTestSuite) create(id, owner, name string) *entities.Character {
	char := entities.NewCharacter(id, owner, name)
	s.Require().NoError(s.repo.Create(s.ctx, char))
	return char
}

// Create Tests

func (s *InMemoryRepositoryTestSuite) TestCreate_Success() {
	char := s.create("char_123", "user_456", "Harry")
	s.False(char.CreatedAt.IsZero())

	gotChar, err := s.repo.Get(s.ctx, "char_123")
	s.NoError(err)
	s.Equal("Harry", gotChar.Name)
	s.Equal("user_456", gotChar.OwnerID)
}

func (s *InMemoryRepositoryTestSuite) TestCreate_DuplicateID() {
	s.create("char_123", "user_456", "Harry")

	err := s.repo.Create(s.ctx, entities.NewCharacter("char_123", "user_456", "Kim"))

	s.Error(err)
	s.True(dnderr.IsAlreadyExists(err))
}

func (s *InMemoryRepositoryTestSuite) TestCreate_DuplicateNameIgnoresCase() {
	s.create("char_1", "user_1", "Harry")

	err := s.repo.Create(s.ctx, entities.NewCharacter("char_2", "user_2", "HARRY"))

	s.True(dnderr.IsAlreadyExists(err))
}

func (s *InMemoryRepositoryTestSuite) TestCreate_Validation() {
	s.True(dnderr.IsInvalidArgument(s.repo.Create(s.ctx, nil)))
	s.True(dnderr.IsInvalidArgument(s.repo.Create(s.ctx, entities.NewCharacter("", "user_1", "Harry"))))
	s.True(dnderr.IsInvalidArgument(s.repo.Create(s.ctx, entities.NewCharacter("char_1", "", "Harry"))))
	s.True(dnderr.IsInvalidArgument(s.repo.Create(s.ctx, entities.NewCharacter("char_1", "user_1", "  "))))
}

func (s *InMemoryRepositoryTestSuite) TestCreate_IsolatesData() {
	char := s.create("char_123", "user_456", "Harry")

	char.Name = "Modified"
	char.SetSkill(stats.SkillDrama, 9)

	gotChar, err := s.repo.Get(s.ctx, "char_123")
	s.NoError(err)
	s.Equal("Harry", gotChar.Name)
	s.Equal(0, gotChar.Skill(stats.SkillDrama))
}

// Get Tests

func (s *InMemoryRepositoryTestSuite) TestGet_NotFound() {
	_, err := s.repo.Get(s.ctx, "missing")
	s.True(dnderr.IsNotFound(err))
}

func (s *InMemoryRepositoryTestSuite) TestGetByName() {
	s.create("char_1", "user_1", "Kim Kitsuragi")

	got, err := s.repo.GetByName(s.ctx, "kim kitsuragi")
	s.NoError(err)
	s.Equal("char_1", got.ID)

	_, err = s.repo.GetByName(s.ctx, "Kim")
	s.True(dnderr.IsNotFound(err))
}

// ListByOwner Tests

func (s *InMemoryRepositoryTestSuite) TestListByOwner_InsertionOrder() {
	s.create("char_c", "user_1", "Cuno")
	s.create("char_a", "user_2", "Kim")
	s.create("char_b", "user_1", "Harry")

	chars, err := s.repo.ListByOwner(s.ctx, "user_1")
	s.NoError(err)
	s.Require().Len(chars, 2)
	s.Equal("Cuno", chars[0].Name)
	s.Equal("Harry", chars[1].Name)
}

func (s *InMemoryRepositoryTestSuite) TestListByOwner_Empty() {
	chars, err := s.repo.ListByOwner(s.ctx, "nobody")
	s.NoError(err)
	s.NotNil(chars)
	s.Empty(chars)
}

// Stat Tests

func (s *InMemoryRepositoryTestSuite) TestSetStats_Upsert() {
	s.create("char_1", "user_1", "Harry")

	s.NoError(s.repo.SetAttribute(s.ctx, "char_1", stats.AttributePsyche, 3))
	s.NoError(s.repo.SetAttribute(s.ctx, "char_1", stats.AttributePsyche, 4))
	s.NoError(s.repo.SetSkill(s.ctx, "char_1", stats.SkillVolition, 2))

	got, err := s.repo.Get(s.ctx, "char_1")
	s.NoError(err)
	s.Equal(4, got.Attribute(stats.AttributePsyche))
	s.Equal(2, got.Skill(stats.SkillVolition))
	s.Len(got.Attributes, 1)
}

func (s *InMemoryRepositoryTestSuite) TestSetStats_Errors() {
	err := s.repo.SetSkill(s.ctx, "missing", stats.SkillLogic, 1)
	s.True(dnderr.IsNotFound(err))

	s.create("char_1", "user_1", "Harry")
	err = s.repo.SetSkill(s.ctx, "char_1", stats.Skill("LUCK"), 1)
	s.True(dnderr.IsInvalidStat(err))
}

// Active pointer Tests

func (s *InMemoryRepositoryTestSuite) TestActivePointer() {
	_, err := s.repo.GetActiveID(s.ctx, "user_1")
	s.True(dnderr.IsNotFound(err))

	s.create("char_1", "user_1", "Harry")
	s.create("char_2", "user_1", "Raphael")

	s.NoError(s.repo.SetActive(s.ctx, "user_1", "char_1"))
	s.NoError(s.repo.SetActive(s.ctx, "user_1", "char_2"))

	id, err := s.repo.GetActiveID(s.ctx, "user_1")
	s.NoError(err)
	s.Equal("char_2", id)

	err = s.repo.SetActive(s.ctx, "user_1", "missing")
	s.True(dnderr.IsNotFound(err))
}

// Delete Tests

func (s *InMemoryRepositoryTestSuite) TestDelete_Cascades() {
	s.create("char_1", "user_1", "Harry")
	s.NoError(s.repo.SetActive(s.ctx, "user_1", "char_1"))

	s.NoError(s.repo.Delete(s.ctx, "char_1"))

	_, err := s.repo.Get(s.ctx, "char_1")
	s.True(dnderr.IsNotFound(err))

	_, err = s.repo.GetActiveID(s.ctx, "user_1")
	s.True(dnderr.IsNotFound(err))

	chars, err := s.repo.ListByOwner(s.ctx, "user_1")
	s.NoError(err)
	s.Empty(chars)

	// The name is free again
	s.create("char_2", "user_2", "harry")
}

func (s *InMemoryRepositoryTestSuite) TestDelete_KeepsOtherActivePointer() {
	s.create("char_1", "user_1", "Harry")
	s.create("char_2", "user_1", "Raphael")
	s.NoError(s.repo.SetActive(s.ctx, "user_1", "char_2"))

	s.NoError(s.repo.Delete(s.ctx, "char_1"))

	id, err := s.repo.GetActiveID(s.ctx, "user_1")
	s.NoError(err)
	s.Equal("char_2", id)
}

func (s *InMemoryRepositoryTestSuite) TestDelete_NotFound() {
	err := s.repo.Delete(s.ctx, "missing")
	s.True(dnderr.IsNotFound(err))
}
