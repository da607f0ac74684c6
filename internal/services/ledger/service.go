package ledger

//go:generate mockgen -destination=mock/mock.go -package=mockledger -source=service.go

import (
	"context"

	"github.com/mrredcon/ballroom/internal/domain/stats"
	"github.com/mrredcon/ballroom/internal/entities"
	dnderr "github.com/mrredcon/ballroom/internal/errors"
	"github.com/mrredcon/ballroom/internal/keylock"
	"github.com/mrredcon/ballroom/internal/repositories/characters"
	"github.com/mrredcon/ballroom/internal/repositories/items"
	"github.com/mrredcon/ballroom/internal/services/character"
	"github.com/rs/zerolog"
)

// Service writes stat values for characters and stat effects for items.
// Every call returns the resolved stat so callers can render it.
type Service interface {
	SetCharacterAttribute(ctx context.Context, ownerID, attributeName string, value int) (stats.Ref, error)
	SetCharacterSkill(ctx context.Context, ownerID, skillName string, value int) (stats.Ref, error)
	SetItemAttribute(ctx context.Context, input *SetItemStatInput) (stats.Ref, error)
	SetItemSkill(ctx context.Context, input *SetItemStatInput) (stats.Ref, error)
}

// SetItemStatInput names an item effect to write. A zero Value removes
// the effect.
type SetItemStatInput struct {
	OwnerID     string
	ItemName    string
	StatName    string
	Value       int
	Description string
}

type service struct {
	characters characters.Repository
	items      items.Repository
	locker     *keylock.Locker
	logger     zerolog.Logger
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Characters characters.Repository // Required
	Items      items.Repository      // Required
	Locker     *keylock.Locker
	Logger     *zerolog.Logger
}

// NewService creates a new ledger service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Characters == nil {
		panic("character repository is required")
	}
	if cfg.Items == nil {
		panic("item repository is required")
	}

	svc := &service{
		characters: cfg.Characters,
		items:      cfg.Items,
		locker:     cfg.Locker,
		logger:     zerolog.Nop(),
	}
	if svc.locker == nil {
		svc.locker = keylock.New()
	}
	if cfg.Logger != nil {
		svc.logger = cfg.Logger.With().Str("service", "ledger").Logger()
	}

	return svc
}

func (s *service) SetCharacterAttribute(ctx context.Context, ownerID, attributeName string, value int) (stats.Ref, error) {
	return s.setCharacterStat(ctx, ownerID, attributeName, value, func(text string) (stats.Ref, bool) {
		a, ok := stats.ResolveAttribute(text)
		return stats.AttributeRef(a), ok
	})
}

func (s *service) SetCharacterSkill(ctx context.Context, ownerID, skillName string, value int) (stats.Ref, error) {
	return s.setCharacterStat(ctx, ownerID, skillName, value, func(text string) (stats.Ref, bool) {
		sk, ok := stats.ResolveSkill(text)
		return stats.SkillRef(sk), ok
	})
}

func (s *service) SetItemAttribute(ctx context.Context, input *SetItemStatInput) (stats.Ref, error) {
	return s.setItemStat(ctx, input, func(text string) (stats.Ref, bool) {
		a, ok := stats.ResolveAttribute(text)
		return stats.AttributeRef(a), ok
	})
}

func (s *service) SetItemSkill(ctx context.Context, input *SetItemStatInput) (stats.Ref, error) {
	return s.setItemStat(ctx, input, func(text string) (stats.Ref, bool) {
		sk, ok := stats.ResolveSkill(text)
		return stats.SkillRef(sk), ok
	})
}

type resolveFunc func(text string) (stats.Ref, bool)

// setCharacterStat checks, in order: active character, stat name, value.
func (s *service) setCharacterStat(ctx context.Context, ownerID, statName string, value int, resolve resolveFunc) (stats.Ref, error) {
	unlock, err := s.locker.Lock(ctx, character.OwnerLockKey(ownerID))
	if err != nil {
		return stats.Ref{}, err
	}
	defer unlock()

	characterID, err := s.characters.GetActiveID(ctx, ownerID)
	if err != nil {
		return stats.Ref{}, dnderr.Wrap(err, "no active character").
			WithMeta("owner_id", ownerID)
	}

	ref, ok := resolve(statName)
	if !ok {
		return stats.Ref{}, dnderr.InvalidStatf("'%s' is not a valid stat", statName).
			WithMeta("stat", statName)
	}

	if value < 0 {
		return ref, dnderr.InvalidValuef("value must be zero or positive, got %d", value).
			WithMeta("stat", ref.Key())
	}

	if a, isAttr := ref.Attribute(); isAttr {
		err = s.characters.SetAttribute(ctx, characterID, a, value)
	} else {
		sk, _ := ref.Skill()
		err = s.characters.SetSkill(ctx, characterID, sk, value)
	}
	if err != nil {
		return ref, dnderr.Wrapf(err, "failed to set %s", ref).
			WithMeta("character_id", characterID).
			WithMeta("stat", ref.Key())
	}

	s.logger.Debug().
		Str("owner_id", ownerID).
		Str("character_id", characterID).
		Str("stat", ref.Key()).
		Int("value", value).
		Msg("Set character stat")

	return ref, nil
}

// ItemLockKey guards effect writes on the item called name
func ItemLockKey(name string) string {
	return "item:" + entities.NameKey(name)
}

// setItemStat checks, in order: item, ownership, stat name.
func (s *service) setItemStat(ctx context.Context, input *SetItemStatInput, resolve resolveFunc) (stats.Ref, error) {
	if input == nil {
		return stats.Ref{}, dnderr.InvalidArgument("SetItemStatInput cannot be nil")
	}

	unlock, err := s.locker.Lock(ctx, ItemLockKey(input.ItemName))
	if err != nil {
		return stats.Ref{}, err
	}
	defer unlock()

	item, err := s.items.GetByName(ctx, input.ItemName)
	if err != nil {
		return stats.Ref{}, dnderr.Wrapf(err, "failed to find item '%s'", input.ItemName).
			WithMeta("name", input.ItemName)
	}

	if item.OwnerID != input.OwnerID {
		return stats.Ref{}, dnderr.PermissionDeniedf("you do not own '%s'", item.Name).
			WithMeta("item_id", item.ID).
			WithMeta("owner_id", input.OwnerID)
	}

	ref, ok := resolve(input.StatName)
	if !ok {
		return stats.Ref{}, dnderr.InvalidStatf("'%s' is not a valid stat", input.StatName).
			WithMeta("stat", input.StatName)
	}

	log := s.logger.Debug().
		Str("owner_id", input.OwnerID).
		Str("item_id", item.ID).
		Str("stat", ref.Key()).
		Int("value", input.Value)

	if input.Value == 0 {
		if err := s.items.DeleteEffect(ctx, item.ID, ref); err != nil {
			return ref, dnderr.Wrapf(err, "failed to clear %s on '%s'", ref, item.Name).
				WithMeta("item_id", item.ID)
		}
		log.Msg("Cleared item effect")
		return ref, nil
	}

	effect := &entities.StatEffect{
		ItemID:      item.ID,
		Stat:        ref,
		Description: input.Description,
		Value:       input.Value,
	}
	if err := s.items.SetEffect(ctx, effect); err != nil {
		return ref, dnderr.Wrapf(err, "failed to set %s on '%s'", ref, item.Name).
			WithMeta("item_id", item.ID)
	}
	log.Msg("Set item effect")

	return ref, nil
}
