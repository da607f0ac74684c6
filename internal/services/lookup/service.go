package lookup

//go:generate mockgen -destination=mock/mock.go -package=mocklookup -source=service.go

import (
	"context"
	"strings"

	"github.com/mrredcon/ballroom/internal/entities"
	dnderr "github.com/mrredcon/ballroom/internal/errors"
	"github.com/mrredcon/ballroom/internal/repositories/characters"
	"github.com/mrredcon/ballroom/internal/repositories/items"
)

// MatchKind says which entity an exact lookup found
type MatchKind string

const (
	MatchCharacter MatchKind = "character"
	MatchItem      MatchKind = "item"
)

// Match is the result of an exact name lookup. Exactly one of Character
// and Item is set, according to Kind.
type Match struct {
	Kind      MatchKind
	Character *entities.Character
	Item      *entities.Item
}

// Service resolves names to characters and items
type Service interface {
	// ExactLookup finds a character or item by case-insensitive name.
	// Characters win when both exist.
	ExactLookup(ctx context.Context, name string) (*Match, error)

	// FuzzySearchItemNames returns up to limit item names containing
	// query, ignoring case. An empty ownerID searches every owner.
	FuzzySearchItemNames(ctx context.Context, query string, limit int, ownerID string) ([]string, error)

	// FuzzySearchCharacterNames is FuzzySearchItemNames over the owner's
	// characters
	FuzzySearchCharacterNames(ctx context.Context, query string, limit int, ownerID string) ([]string, error)
}

type service struct {
	characters characters.Repository
	items      items.Repository
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Characters characters.Repository // Required
	Items      items.Repository      // Required
}

// NewService creates a new lookup service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Characters == nil {
		panic("character repository is required")
	}
	if cfg.Items == nil {
		panic("item repository is required")
	}
	return &service{
		characters: cfg.Characters,
		items:      cfg.Items,
	}
}

func (s *service) ExactLookup(ctx context.Context, name string) (*Match, error) {
	char, err := s.characters.GetByName(ctx, name)
	if err == nil {
		return &Match{Kind: MatchCharacter, Character: char}, nil
	}
	if !dnderr.IsNotFound(err) {
		return nil, dnderr.Wrap(err, "failed to look up character").
			WithMeta("name", name)
	}

	item, err := s.items.GetByName(ctx, name)
	if err == nil {
		return &Match{Kind: MatchItem, Item: item}, nil
	}
	if !dnderr.IsNotFound(err) {
		return nil, dnderr.Wrap(err, "failed to look up item").
			WithMeta("name", name)
	}

	return nil, dnderr.NotFoundf("nothing named '%s'", name).
		WithMeta("name", name)
}

func (s *service) FuzzySearchItemNames(ctx context.Context, query string, limit int, ownerID string) ([]string, error) {
	if limit <= 0 {
		return []string{}, nil
	}

	names, err := s.items.ListNames(ctx, ownerID)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to list item names").
			WithMeta("owner_id", ownerID)
	}
	return filterNames(names, query, limit), nil
}

func (s *service) FuzzySearchCharacterNames(ctx context.Context, query string, limit int, ownerID string) ([]string, error) {
	if limit <= 0 || ownerID == "" {
		return []string{}, nil
	}

	owned, err := s.characters.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to list characters").
			WithMeta("owner_id", ownerID)
	}

	names := make([]string, 0, len(owned))
	for _, c := range owned {
		names = append(names, c.Name)
	}
	return filterNames(names, query, limit), nil
}

// filterNames keeps input order
func filterNames(names []string, query string, limit int) []string {
	needle := entities.NameKey(query)
	out := make([]string, 0, min(limit, len(names)))
	for _, name := range names {
		if len(out) == limit {
			break
		}
		if strings.Contains(entities.NameKey(name), needle) {
			out = append(out, name)
		}
	}
	return out
}
