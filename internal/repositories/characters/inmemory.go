package characters

import (
	"context"
	"sync"

	"github.com/mrredcon/ballroom/internal/domain/stats"
	"github.com/mrredcon/ballroom/internal/entities"
	dnderr "github.com/mrredcon/ballroom/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the character repository
// Useful for testing and development
type InMemoryRepository struct {
	mu         sync.RWMutex
	characters map[string]*entities.Character
	order      []string
	names      map[string]string
	active     map[string]string
	clock      TimeProvider
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		characters: make(map[string]*entities.Character),
		names:      make(map[string]string),
		active:     make(map[string]string),
		clock:      realTimeProvider{},
	}
}

// Create stores a new character
func (r *InMemoryRepository) Create(ctx context.Context, character *entities.Character) error {
	if err := validateNew(character); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[character.ID]; exists {
		return dnderr.AlreadyExistsf("character with ID '%s' already exists", character.ID).
			WithMeta("character_id", character.ID)
	}

	key := entities.NameKey(character.Name)
	if _, taken := r.names[key]; taken {
		return duplicateName(character.Name)
	}

	// Store a copy to avoid external modifications
	charCopy := character.Clone()
	if charCopy.CreatedAt.IsZero() {
		charCopy.CreatedAt = r.clock.Now()
		character.CreatedAt = charCopy.CreatedAt
	}

	r.characters[character.ID] = charCopy
	r.names[key] = character.ID
	r.order = append(r.order, character.ID)

	return nil
}

// Get retrieves a character by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*entities.Character, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("character ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	character, exists := r.characters[id]
	if !exists {
		return nil, notFound(id)
	}

	return character.Clone(), nil
}

// GetByName retrieves a character by case-insensitive name
func (r *InMemoryRepository) GetByName(ctx context.Context, name string) (*entities.Character, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, exists := r.names[entities.NameKey(name)]
	if !exists {
		return nil, dnderr.NotFoundf("no character named '%s'", name).
			WithMeta("name", name)
	}

	return r.characters[id].Clone(), nil
}

// ListByOwner retrieves all characters for a specific owner
func (r *InMemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Character, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entities.Character, 0)
	for _, id := range r.order {
		char := r.characters[id]
		if char.OwnerID == ownerID {
			result = append(result, char.Clone())
		}
	}

	return result, nil
}

// SetAttribute upserts an attribute value
func (r *InMemoryRepository) SetAttribute(ctx context.Context, characterID string, attribute stats.Attribute, value int) error {
	if err := validateAttribute(attribute); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	char, exists := r.characters[characterID]
	if !exists {
		return notFound(characterID)
	}
	char.SetAttribute(attribute, value)

	return nil
}

// SetSkill upserts a skill value
func (r *InMemoryRepository) SetSkill(ctx context.Context, characterID string, skill stats.Skill, value int) error {
	if err := validateSkill(skill); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	char, exists := r.characters[characterID]
	if !exists {
		return notFound(characterID)
	}
	char.SetSkill(skill, value)

	return nil
}

// SetActive upserts the owner's active pointer
func (r *InMemoryRepository) SetActive(ctx context.Context, ownerID, characterID string) error {
	if ownerID == "" {
		return dnderr.InvalidArgument("owner ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[characterID]; !exists {
		return notFound(characterID)
	}
	r.active[ownerID] = characterID

	return nil
}

// GetActiveID returns the owner's active character ID
func (r *InMemoryRepository) GetActiveID(ctx context.Context, ownerID string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, exists := r.active[ownerID]
	if !exists {
		return "", dnderr.NotFoundf("owner '%s' has no active character", ownerID).
			WithMeta("owner_id", ownerID)
	}

	return id, nil
}

// Delete removes a character
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	char, exists := r.characters[id]
	if !exists {
		return notFound(id)
	}

	delete(r.characters, id)
	delete(r.names, entities.NameKey(char.Name))
	if r.active[char.OwnerID] == id {
		delete(r.active, char.OwnerID)
	}
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}
