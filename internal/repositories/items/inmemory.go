package items

import (
	"context"
	"sync"

	"github.com/mrredcon/ballroom/internal/domain/stats"
	"github.com/mrredcon/ballroom/internal/entities"
	dnderr "github.com/mrredcon/ballroom/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the item repository
type InMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]*entities.Item
	order []string
	names map[string]string
	clock TimeProvider
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		items: make(map[string]*entities.Item),
		names: make(map[string]string),
		clock: realTimeProvider{},
	}
}

// Create stores a new item
func (r *InMemoryRepository) Create(ctx context.Context, item *entities.Item) error {
	if err := validateNew(item); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; exists {
		return dnderr.AlreadyExistsf("item with ID '%s' already exists", item.ID).
			WithMeta("item_id", item.ID)
	}

	key := entities.NameKey(item.Name)
	if _, taken := r.names[key]; taken {
		return duplicateName(item.Name)
	}

	itemCopy := item.Clone()
	for _, effect := range itemCopy.Effects {
		effect.ItemID = item.ID
	}
	if itemCopy.CreatedAt.IsZero() {
		itemCopy.CreatedAt = r.clock.Now()
		item.CreatedAt = itemCopy.CreatedAt
	}

	r.items[item.ID] = itemCopy
	r.names[key] = item.ID
	r.order = append(r.order, item.ID)

	return nil
}

// Get retrieves an item by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*entities.Item, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("item ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[id]
	if !exists {
		return nil, notFound(id)
	}
	return item.Clone(), nil
}

// GetByName retrieves an item by case-insensitive name
func (r *InMemoryRepository) GetByName(ctx context.Context, name string) (*entities.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, exists := r.names[entities.NameKey(name)]
	if !exists {
		return nil, dnderr.NotFoundf("no item named '%s'", name).
			WithMeta("name", name)
	}
	return r.items[id].Clone(), nil
}

// ListByOwner retrieves all items for a specific owner
func (r *InMemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Item, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entities.Item, 0)
	for _, id := range r.order {
		if item := r.items[id]; item.OwnerID == ownerID {
			result = append(result, item.Clone())
		}
	}
	return result, nil
}

// ListNames returns item names, optionally filtered by owner
func (r *InMemoryRepository) ListNames(ctx context.Context, ownerID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.order))
	for _, id := range r.order {
		item := r.items[id]
		if ownerID == "" || item.OwnerID == ownerID {
			names = append(names, item.Name)
		}
	}
	return names, nil
}

// SetEffect upserts an effect
func (r *InMemoryRepository) SetEffect(ctx context.Context, effect *entities.StatEffect) error {
	if err := validateEffect(effect); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	item, exists := r.items[effect.ItemID]
	if !exists {
		return notFound(effect.ItemID)
	}

	effectCopy := *effect
	if existing, ok := item.Effect(effect.Stat); ok {
		*existing = effectCopy
		return nil
	}
	item.Effects = append(item.Effects, &effectCopy)

	return nil
}

// DeleteEffect removes an effect if present
func (r *InMemoryRepository) DeleteEffect(ctx context.Context, itemID string, stat stats.Ref) error {
	if err := validateRef(stat); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	item, exists := r.items[itemID]
	if !exists {
		return nil
	}
	for i, effect := range item.Effects {
		if effect.Stat == stat {
			item.Effects = append(item.Effects[:i], item.Effects[i+1:]...)
			break
		}
	}
	return nil
}

// Delete removes an item
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("item ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	item, exists := r.items[id]
	if !exists {
		return notFound(id)
	}

	delete(r.items, id)
	delete(r.names, entities.NameKey(item.Name))
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
