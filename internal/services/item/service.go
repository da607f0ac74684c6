package item

//go:generate mockgen -destination=mock/mock.go -package=mockitem -source=service.go

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/mrredcon/ballroom/internal/entities"
	dnderr "github.com/mrredcon/ballroom/internal/errors"
	"github.com/mrredcon/ballroom/internal/keylock"
	"github.com/mrredcon/ballroom/internal/repositories/items"
	"github.com/mrredcon/ballroom/internal/uuid"
	"github.com/rs/zerolog"
)

// MaxNameLength bounds item names
const MaxNameLength = 100

// Service defines the item service interface
type Service interface {
	// CreateItem creates an item with no effects
	CreateItem(ctx context.Context, input *CreateItemInput) (*entities.Item, error)

	// FindItemByName looks an item up by name, ignoring case
	FindItemByName(ctx context.Context, name string) (*entities.Item, error)

	// ListItemsOwnedBy lists an owner's items in creation order
	ListItemsOwnedBy(ctx context.Context, ownerID string) ([]*entities.Item, error)
}

// CreateItemInput contains all data needed to create an item
type CreateItemInput struct {
	OwnerID     string
	Name        string
	Description string
	Type        entities.ItemType
	Slot        *entities.Slot
}

// Validate checks CreateItemInput for validity
func (i *CreateItemInput) Validate() error {
	if i == nil {
		return dnderr.InvalidArgument("CreateItemInput cannot be nil")
	}
	if strings.TrimSpace(i.OwnerID) == "" {
		return dnderr.InvalidArgument("owner ID is required")
	}
	name := strings.TrimSpace(i.Name)
	if name == "" {
		return dnderr.InvalidArgument("item name is required")
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return dnderr.InvalidArgumentf("item name cannot exceed %d characters", MaxNameLength)
	}
	if _, err := entities.ParseItemType(string(i.Type)); err != nil {
		return err
	}
	if i.Slot != nil {
		if _, err := entities.ParseSlot(string(*i.Slot)); err != nil {
			return err
		}
	}
	return nil
}

type service struct {
	repository    items.Repository
	uuidGenerator uuid.Generator
	locker        *keylock.Locker
	logger        zerolog.Logger
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    items.Repository // Required
	UUIDGenerator uuid.Generator
	Locker        *keylock.Locker
	Logger        *zerolog.Logger
}

// NewService creates a new item service
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
		svc.logger = cfg.Logger.With().Str("service", "item").Logger()
	}

	return svc
}

// NameLockKey guards creation of the item called name
func NameLockKey(name string) string {
	return "item-name:" + entities.NameKey(name)
}

// CreateItem creates an item after checking that no item of any owner
// already uses the name
func (s *service) CreateItem(ctx context.Context, input *CreateItemInput) (*entities.Item, error) {
	if err := input.Validate(); err != nil {
		return nil, dnderr.Wrap(err, "invalid item creation input").
			WithMeta("operation", "CreateItem")
	}

	name := strings.TrimSpace(input.Name)
	unlock, err := s.locker.Lock(ctx, NameLockKey(name))
	if err != nil {
		return nil, err
	}
	defer unlock()

	existing, err := s.repository.GetByName(ctx, name)
	switch {
	case err == nil:
		return nil, dnderr.AlreadyExistsf("an item named '%s' already exists", existing.Name).
			WithMeta("name", name)
	case !dnderr.IsNotFound(err):
		return nil, dnderr.Wrap(err, "failed to check item name").
			WithMeta("name", name)
	}

	itemType, _ := entities.ParseItemType(string(input.Type))
	item := &entities.Item{
		ID:          s.uuidGenerator.New(),
		OwnerID:     input.OwnerID,
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Type:        itemType,
	}
	if input.Slot != nil {
		slot, _ := entities.ParseSlot(string(*input.Slot))
		item.Slot = &slot
	}

	if err := s.repository.Create(ctx, item); err != nil {
		return nil, dnderr.Wrapf(err, "failed to create item '%s'", name).
			WithMeta("owner_id", input.OwnerID)
	}

	s.logger.Info().
		Str("owner_id", item.OwnerID).
		Str("item_id", item.ID).
		Str("name", item.Name).
		Str("type", string(item.Type)).
		Msg("Created item")

	return item, nil
}

// FindItemByName looks an item up by case-insensitive name
func (s *service) FindItemByName(ctx context.Context, name string) (*entities.Item, error) {
	item, err := s.repository.GetByName(ctx, name)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to find item '%s'", name).
			WithMeta("name", name)
	}
	return item, nil
}

// ListItemsOwnedBy lists an owner's items
func (s *service) ListItemsOwnedBy(ctx context.Context, ownerID string) ([]*entities.Item, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	owned, err := s.repository.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to list items").
			WithMeta("owner_id", ownerID)
	}
	return owned, nil
}
