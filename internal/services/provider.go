package services

import (
	"github.com/mrredcon/ballroom/internal/keylock"
	"github.com/mrredcon/ballroom/internal/repositories/characters"
	"github.com/mrredcon/ballroom/internal/repositories/items"
	characterService "github.com/mrredcon/ballroom/internal/services/character"
	itemService "github.com/mrredcon/ballroom/internal/services/item"
	ledgerService "github.com/mrredcon/ballroom/internal/services/ledger"
	lookupService "github.com/mrredcon/ballroom/internal/services/lookup"
	"github.com/mrredcon/ballroom/internal/uuid"
	"github.com/rs/zerolog"
)

// Provider holds all service instances
type Provider struct {
	CharacterService characterService.Service
	ItemService      itemService.Service
	LedgerService    ledgerService.Service
	LookupService    lookupService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	CharacterRepository characters.Repository
	ItemRepository      items.Repository
	UUIDGenerator       uuid.Generator
	Logger              *zerolog.Logger
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repositories if none provided
	charRepo := cfg.CharacterRepository
	if charRepo == nil {
		charRepo = characters.NewInMemoryRepository()
	}

	itemRepo := cfg.ItemRepository
	if itemRepo == nil {
		itemRepo = items.NewInMemoryRepository()
	}

	// Character creation and character stat writes share owner keys
	locker := keylock.New()

	return &Provider{
		CharacterService: characterService.NewService(&characterService.ServiceConfig{
			Repository:    charRepo,
			UUIDGenerator: cfg.UUIDGenerator,
			Locker:        locker,
			Logger:        cfg.Logger,
		}),
		ItemService: itemService.NewService(&itemService.ServiceConfig{
			Repository:    itemRepo,
			UUIDGenerator: cfg.UUIDGenerator,
			Locker:        locker,
			Logger:        cfg.Logger,
		}),
		LedgerService: ledgerService.NewService(&ledgerService.ServiceConfig{
			Characters: charRepo,
			Items:      itemRepo,
			Locker:     locker,
			Logger:     cfg.Logger,
		}),
		LookupService: lookupService.NewService(&lookupService.ServiceConfig{
			Characters: charRepo,
			Items:      itemRepo,
		}),
	}
}
