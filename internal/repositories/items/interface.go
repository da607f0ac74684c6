package items

//go:generate mockgen -destination=mock/mock.go -package=mockitems -source=interface.go

import (
	"context"
	"time"

	"github.com/mrredcon/ballroom/internal/domain/stats"
	"github.com/mrredcon/ballroom/internal/entities"
)

// Repository defines the interface for item persistence
type Repository interface {
	// Create stores a new item. Names are unique ignoring case.
	Create(ctx context.Context, item *entities.Item) error

	// Get retrieves an item and its effects by ID
	Get(ctx context.Context, id string) (*entities.Item, error)

	// GetByName retrieves an item by name, ignoring case
	GetByName(ctx context.Context, name string) (*entities.Item, error)

	// ListByOwner returns an owner's items in creation order
	ListByOwner(ctx context.Context, ownerID string) ([]*entities.Item, error)

	// ListNames returns item names in creation order. An empty ownerID
	// lists every owner's items.
	ListNames(ctx context.Context, ownerID string) ([]string, error)

	// SetEffect upserts the effect on (item, stat). An existing effect
	// keeps its position.
	SetEffect(ctx context.Context, effect *entities.StatEffect) error

	// DeleteEffect removes the effect on (item, stat) if there is one
	DeleteEffect(ctx context.Context, itemID string, stat stats.Ref) error

	// Delete removes an item and its effects
	Delete(ctx context.Context, id string) error
}

// TimeProvider supplies creation timestamps and effect ordering
type TimeProvider interface {
	Now() time.Time
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
