package items

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mrredcon/ballroom/internal/domain/stats"
	"github.com/mrredcon/ballroom/internal/entities"
	dnderr "github.com/mrredcon/ballroom/internal/errors"
	"github.com/redis/go-redis/v9"
)

// ItemData represents the serialized form of an item in Redis
type ItemData struct {
	ID          string            `json:"id"`
	OwnerID     string            `json:"owner_id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Type        entities.ItemType `json:"type"`
	Slot        *entities.Slot    `json:"slot,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

// EffectData is one value in the item's effects hash, keyed by stat name
type EffectData struct {
	Stat        string `json:"stat"`
	Description string `json:"description"`
	Value       int    `json:"value"`
}

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client       redis.UniversalClient
	timeProvider TimeProvider
}

func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("item:%s", id)
}

func (r *redisRepo) effectsKey(id string) string {
	return fmt.Sprintf("item:%s:effects", id)
}

// effectOrderKey scores each stat name by first write so reads keep
// storage order
func (r *redisRepo) effectOrderKey(id string) string {
	return fmt.Sprintf("item:%s:effect_order", id)
}

// effectSeqKey is the per-item counter effect order scores come from
func (r *redisRepo) effectSeqKey(id string) string {
	return fmt.Sprintf("item:%s:effect_seq", id)
}

func (r *redisRepo) nameKey(name string) string {
	return fmt.Sprintf("item_name:%s", entities.NameKey(name))
}

func (r *redisRepo) ownerItemsKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:items", ownerID)
}

func (r *redisRepo) allItemsKey() string {
	return "items"
}

// Create stores a new item
func (r *redisRepo) Create(ctx context.Context, item *entities.Item) error {
	if err := validateNew(item); err != nil {
		return err
	}

	reserved, err := r.client.SetNX(ctx, r.nameKey(item.Name), item.ID, 0).Result()
	if err != nil {
		return dnderr.Wrap(err, "failed to reserve item name").
			WithMeta("name", item.Name)
	}
	if !reserved {
		return duplicateName(item.Name)
	}

	createdAt := item.CreatedAt
	if createdAt.IsZero() {
		createdAt = r.timeProvider.Now()
	}

	jsonData, err := json.Marshal(ItemData{
		ID:          item.ID,
		OwnerID:     item.OwnerID,
		Name:        item.Name,
		Description: item.Description,
		Type:        item.Type,
		Slot:        item.Slot,
		CreatedAt:   createdAt,
	})
	if err != nil {
		r.client.Del(ctx, r.nameKey(item.Name))
		return dnderr.Wrap(err, "failed to marshal item")
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(item.ID), string(jsonData), 0)
	pipe.RPush(ctx, r.ownerItemsKey(item.OwnerID), item.ID)
	pipe.RPush(ctx, r.allItemsKey(), item.ID)
	for i, effect := range item.Effects {
		effectJSON, err := marshalEffect(effect)
		if err != nil {
			r.client.Del(ctx, r.nameKey(item.Name))
			return err
		}
		pipe.HSet(ctx, r.effectsKey(item.ID), effect.Stat.Key(), effectJSON)
		pipe.ZAddNX(ctx, r.effectOrderKey(item.ID), redis.Z{
			Score:  float64(i + 1),
			Member: effect.Stat.Key(),
		})
	}
	if len(item.Effects) > 0 {
		pipe.Set(ctx, r.effectSeqKey(item.ID), len(item.Effects), 0)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		r.client.Del(ctx, r.nameKey(item.Name))
		return dnderr.Wrap(err, "failed to create item").
			WithMeta("item_id", item.ID)
	}

	item.CreatedAt = createdAt
	return nil
}

// Get retrieves an item by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*entities.Item, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("item ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to get item").
			WithMeta("item_id", id)
	}

	var data ItemData
	if unmarshalErr := json.Unmarshal([]byte(jsonData), &data); unmarshalErr != nil {
		return nil, dnderr.Wrap(unmarshalErr, "failed to unmarshal item").
			WithMeta("item_id", id)
	}

	order, err := r.client.ZRange(ctx, r.effectOrderKey(id), 0, -1).Result()
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to get effect order").
			WithMeta("item_id", id)
	}
	effects, err := r.client.HGetAll(ctx, r.effectsKey(id)).Result()
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to get item effects").
			WithMeta("item_id", id)
	}

	item := &entities.Item{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Description: data.Description,
		Type:        data.Type,
		Slot:        data.Slot,
		Effects:     make([]*entities.StatEffect, 0, len(effects)),
		CreatedAt:   data.CreatedAt,
	}
	for _, statName := range order {
		raw, ok := effects[statName]
		if !ok {
			continue
		}
		effect, err := unmarshalEffect(id, raw)
		if err != nil {
			return nil, err
		}
		item.Effects = append(item.Effects, effect)
	}

	return item, nil
}

// GetByName retrieves an item by case-insensitive name
func (r *redisRepo) GetByName(ctx context.Context, name string) (*entities.Item, error) {
	id, err := r.client.Get(ctx, r.nameKey(name)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, dnderr.NotFoundf("no item named '%s'", name).
			WithMeta("name", name)
	}
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to look up item name").
			WithMeta("name", name)
	}

	return r.Get(ctx, id)
}

// ListByOwner retrieves all items for a specific owner
func (r *redisRepo) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Item, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	ids, err := r.client.LRange(ctx, r.ownerItemsKey(ownerID), 0, -1).Result()
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to list item IDs").
			WithMeta("owner_id", ownerID)
	}

	result := make([]*entities.Item, 0, len(ids))
	for _, id := range ids {
		item, err := r.Get(ctx, id)
		if dnderr.IsNotFound(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, nil
}

// ListNames returns item names, optionally filtered by owner
func (r *redisRepo) ListNames(ctx context.Context, ownerID string) ([]string, error) {
	listKey := r.allItemsKey()
	if ownerID != "" {
		listKey = r.ownerItemsKey(ownerID)
	}

	ids, err := r.client.LRange(ctx, listKey, 0, -1).Result()
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to list item IDs").
			WithMeta("owner_id", ownerID)
	}
	if len(ids) == 0 {
		return []string{}, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, r.key(id))
	}
	docs, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to load items")
	}

	names := make([]string, 0, len(docs))
	for i, doc := range docs {
		raw, ok := doc.(string)
		if !ok {
			continue
		}
		var data ItemData
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			return nil, dnderr.Wrap(err, "failed to unmarshal item").
				WithMeta("item_id", ids[i])
		}
		names = append(names, data.Name)
	}
	return names, nil
}

// SetEffect upserts an effect
func (r *redisRepo) SetEffect(ctx context.Context, effect *entities.StatEffect) error {
	if err := validateEffect(effect); err != nil {
		return err
	}
	if err := r.requireExists(ctx, effect.ItemID); err != nil {
		return err
	}

	effectJSON, err := marshalEffect(effect)
	if err != nil {
		return err
	}

	// ZADD NX ignores the score for a stat already in the order set, so an
	// update keeps its slot and only burns a sequence number
	seq, err := r.client.Incr(ctx, r.effectSeqKey(effect.ItemID)).Result()
	if err != nil {
		return dnderr.Wrap(err, "failed to sequence item effect").
			WithMeta("item_id", effect.ItemID)
	}

	pipe := r.client.Pipeline()
	pipe.HSet(ctx, r.effectsKey(effect.ItemID), effect.Stat.Key(), effectJSON)
	pipe.ZAddNX(ctx, r.effectOrderKey(effect.ItemID), redis.Z{
		Score:  float64(seq),
		Member: effect.Stat.Key(),
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return dnderr.Wrap(err, "failed to set item effect").
			WithMeta("item_id", effect.ItemID).
			WithMeta("stat", effect.Stat.Key())
	}
	return nil
}

// DeleteEffect removes an effect if present
func (r *redisRepo) DeleteEffect(ctx context.Context, itemID string, stat stats.Ref) error {
	if err := validateRef(stat); err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.HDel(ctx, r.effectsKey(itemID), stat.Key())
	pipe.ZRem(ctx, r.effectOrderKey(itemID), stat.Key())
	if _, err := pipe.Exec(ctx); err != nil {
		return dnderr.Wrap(err, "failed to delete item effect").
			WithMeta("item_id", itemID).
			WithMeta("stat", stat.Key())
	}
	return nil
}

// Delete removes an item
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("item ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(id)).Result()
	if errors.Is(err, redis.Nil) {
		return notFound(id)
	}
	if err != nil {
		return dnderr.Wrap(err, "failed to get item for deletion").
			WithMeta("item_id", id)
	}

	var data ItemData
	if unmarshalErr := json.Unmarshal([]byte(jsonData), &data); unmarshalErr != nil {
		return dnderr.Wrap(unmarshalErr, "failed to unmarshal item").
			WithMeta("item_id", id)
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.key(id), r.effectsKey(id), r.effectOrderKey(id), r.effectSeqKey(id), r.nameKey(data.Name))
	pipe.LRem(ctx, r.ownerItemsKey(data.OwnerID), 0, id)
	pipe.LRem(ctx, r.allItemsKey(), 0, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return dnderr.Wrap(err, "failed to delete item").
			WithMeta("item_id", id)
	}
	return nil
}

func (r *redisRepo) requireExists(ctx context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("item ID is required")
	}

	exists, err := r.client.Exists(ctx, r.key(id)).Result()
	if err != nil {
		return dnderr.Wrap(err, "failed to check item existence").
			WithMeta("item_id", id)
	}
	if exists == 0 {
		return notFound(id)
	}
	return nil
}

func marshalEffect(effect *entities.StatEffect) (string, error) {
	data, err := json.Marshal(EffectData{
		Stat:        effect.Stat.Key(),
		Description: effect.Description,
		Value:       effect.Value,
	})
	if err != nil {
		return "", dnderr.Wrap(err, "failed to marshal effect")
	}
	return string(data), nil
}

func unmarshalEffect(itemID, raw string) (*entities.StatEffect, error) {
	var data EffectData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, dnderr.Wrap(err, "failed to unmarshal effect").
			WithMeta("item_id", itemID)
	}
	ref, err := stats.ParseRef(data.Stat)
	if err != nil {
		return nil, dnderr.Internalf("item %s has unknown stat %q", itemID, data.Stat)
	}
	return &entities.StatEffect{
		ItemID:      itemID,
		Stat:        ref,
		Description: data.Description,
		Value:       data.Value,
	}, nil
}
