package character

//go:generate mockgen -destination=mock/mock.go -package=mockcharacter -source=service.go

import (
	"context"
	"strings"

	"github.com/mrredcon/ballroom/internal/entities"
	dnderr "github.com/mrredcon/ballroom/internal/errors"
	"github.com/mrredcon/ballroom/internal/keylock"
	"github.com/mrredcon/ballroom/internal/repositories/characters"
	"github.com/mrredcon/ballroom/internal/uuid"
	"github.com/rs/zerolog"
)

// Repository is an alias for the character repository interface
type Repository = characters.Repository

// Service defines the character service interface
type Service interface {
	// CreateCharacter creates a character and makes it the owner's active one
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*entities.Character, error)

	// ActivateCharacter switches the owner's active character to the one
	// whose stored name equals name, ignoring surrounding whitespace. It reports
	// false, leaving the pointer alone, when the owner has no such character.
	ActivateCharacter(ctx context.Context, ownerID, name string) (bool, error)

	// GetActiveCharacter returns the owner's active character
	GetActiveCharacter(ctx context.Context, ownerID string) (*entities.Character, error)

	// GetCharacter retrieves a character by ID
	GetCharacter(ctx context.Context, characterID string) (*entities.Character, error)

	// FindCharacterByName looks a character up by name, ignoring case
	FindCharacterByName(ctx context.Context, name string) (*entities.Character, error)

	// ListCharactersOwnedBy lists an owner's characters in creation order
	ListCharactersOwnedBy(ctx context.Context, ownerID string) ([]*entities.Character, error)
}

// CreateCharacterInput contains all data needed to create a character
type CreateCharacterInput struct {
	OwnerID     string
	Name        string
	Description string
}

type service struct {
	repository    Repository
	uuidGenerator uuid.Generator
	locker        *keylock.Locker
	logger        zerolog.Logger
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    Repository      // Required
	UUIDGenerator uuid.Generator  // Optional, defaults to google/uuid
	Locker        *keylock.Locker // Optional, share one with the ledger service
	Logger        *zerolog.Logger // Optional
}

// NewService creates a new character service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		repository:    cfg.Repository,
		uuidGenerator: cfg.UUIDGenerator,
		locker:        cfg.Locker,
		logger:        zerolog.Nop(),
	}
	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if svc.locker == nil {
		svc.locker = keylock.New()
	}
	if cfg.Logger != nil {
		svc.logger = cfg.Logger.With().Str("service", "character").Logger()
	}

	return svc
}

// OwnerLockKey is the lock key guarding an owner's characters and active pointer
func OwnerLockKey(ownerID string) string {
	return "owner:" + ownerID
}

// CreateCharacter creates a new character. There is no duplicate-name
// pre-check here; the repository rejects clashes.
func (s *service) CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*entities.Character, error) {
	if err := ValidateInput(input); err != nil {
		return nil, dnderr.Wrap(err, "invalid character creation input").
			WithMeta("operation", "CreateCharacter")
	}

	unlock, err := s.locker.Lock(ctx, OwnerLockKey(input.OwnerID))
	if err != nil {
		return nil, err
	}
	defer unlock()

	char := entities.NewCharacter(s.uuidGenerator.New(), input.OwnerID, strings.TrimSpace(input.Name))
	char.Description = strings.TrimSpace(input.Description)

	if err := s.repository.Create(ctx, char); err != nil {
		return nil, dnderr.Wrapf(err, "failed to create character '%s'", char.Name).
			WithMeta("owner_id", input.OwnerID).
			WithMeta("name", char.Name)
	}

	if err := s.repository.SetActive(ctx, input.OwnerID, char.ID); err != nil {
		return nil, dnderr.Wrap(err, "failed to activate new character").
			WithMeta("owner_id", input.OwnerID).
			WithMeta("character_id", char.ID)
	}

	s.logger.Info().
		Str("owner_id", char.OwnerID).
		Str("character_id", char.ID).
		Str("name", char.Name).
		Msg("Created character")

	return char, nil
}

// ActivateCharacter sets the active character by exact name. Names are
// trimmed the same way CreateCharacter trims them; case is kept. An unknown
// owner or name is a plain false.
func (s *service) ActivateCharacter(ctx context.Context, ownerID, name string) (bool, error) {
	name = strings.TrimSpace(name)
	if strings.TrimSpace(ownerID) == "" || name == "" {
		return false, nil
	}

	unlock, err := s.locker.Lock(ctx, OwnerLockKey(ownerID))
	if err != nil {
		return false, err
	}
	defer unlock()

	owned, err := s.repository.ListByOwner(ctx, ownerID)
	if err != nil {
		return false, dnderr.Wrap(err, "failed to list characters").
			WithMeta("owner_id", ownerID)
	}

	for _, char := range owned {
		if char.Name != name {
			continue
		}
		if err := s.repository.SetActive(ctx, ownerID, char.ID); err != nil {
			return false, dnderr.Wrap(err, "failed to set active character").
				WithMeta("owner_id", ownerID).
				WithMeta("character_id", char.ID)
		}
		s.logger.Info().
			Str("owner_id", ownerID).
			Str("character_id", char.ID).
			Msg("Activated character")
		return true, nil
	}

	return false, nil
}

// GetActiveCharacter returns the owner's active character
func (s *service) GetActiveCharacter(ctx context.Context, ownerID string) (*entities.Character, error) {
	id, err := s.repository.GetActiveID(ctx, ownerID)
	if err != nil {
		return nil, dnderr.Wrap(err, "no active character").
			WithMeta("owner_id", ownerID)
	}

	char, err := s.repository.Get(ctx, id)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to load active character").
			WithMeta("owner_id", ownerID).
			WithMeta("character_id", id)
	}
	return char, nil
}

// GetCharacter retrieves a character by ID
func (s *service) GetCharacter(ctx context.Context, characterID string) (*entities.Character, error) {
	if characterID == "" {
		return nil, dnderr.InvalidArgument("character ID is required")
	}

	char, err := s.repository.Get(ctx, characterID)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to get character '%s'", characterID).
			WithMeta("character_id", characterID)
	}
	return char, nil
}

// FindCharacterByName looks a character up by case-insensitive name
func (s *service) FindCharacterByName(ctx context.Context, name string) (*entities.Character, error) {
	char, err := s.repository.GetByName(ctx, name)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to find character '%s'", name).
			WithMeta("name", name)
	}
	return char, nil
}

// ListCharactersOwnedBy lists an owner's characters
func (s *service) ListCharactersOwnedBy(ctx context.Context, ownerID string) ([]*entities.Character, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	owned, err := s.repository.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to list characters").
			WithMeta("owner_id", ownerID)
	}
	return owned, nil
}
