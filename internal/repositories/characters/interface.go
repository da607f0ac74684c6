package characters

//go:generate mockgen -destination=mock/mock.go -package=mockcharacters -source=interface.go

import (
	"context"
	"time"

	"github.com/mrredcon/ballroom/internal/domain/stats"
	"github.com/mrredcon/ballroom/internal/entities"
)

// Repository defines the interface for character persistence
type Repository interface {
	// Create stores a new character. Names are unique ignoring case.
	Create(ctx context.Context, character *entities.Character) error

	// Get retrieves a character and all of its stored stats by ID
	Get(ctx context.Context, id string) (*entities.Character, error)

	// GetByName retrieves a character by name, ignoring case
	GetByName(ctx context.Context, name string) (*entities.Character, error)

	// ListByOwner returns an owner's characters in creation order
	ListByOwner(ctx context.Context, ownerID string) ([]*entities.Character, error)

	// SetAttribute upserts one attribute value
	SetAttribute(ctx context.Context, characterID string, attribute stats.Attribute, value int) error

	// SetSkill upserts one skill value
	SetSkill(ctx context.Context, characterID string, skill stats.Skill, value int) error

	// SetActive points the owner's active character at characterID
	SetActive(ctx context.Context, ownerID, characterID string) error

	// GetActiveID returns the owner's active character ID
	GetActiveID(ctx context.Context, ownerID string) (string, error)

	// Delete removes a character with its stats and any active pointer to it
	Delete(ctx context.Context, id string) error
}

// TimeProvider supplies creation timestamps
type TimeProvider interface {
	Now() time.Time
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
