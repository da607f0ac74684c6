package characters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/mrredcon/ballroom/internal/domain/stats"
	"github.com/mrredcon/ballroom/internal/entities"
	dnderr "github.com/mrredcon/ballroom/internal/errors"
	"github.com/redis/go-redis/v9"
)

// CharacterData represents the serialized form of a character in Redis.
// Stat values live in separate hashes so single writes stay atomic.
type CharacterData struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client       redis.UniversalClient
	timeProvider TimeProvider
}

func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("character:%s", id)
}

func (r *redisRepo) attributesKey(id string) string {
	return fmt.Sprintf("character:%s:attributes", id)
}

func (r *redisRepo) skillsKey(id string) string {
	return fmt.Sprintf("character:%s:skills", id)
}

// nameKey reserves a case-folded name for a single character
func (r *redisRepo) nameKey(name string) string {
	return fmt.Sprintf("character_name:%s", entities.NameKey(name))
}

func (r *redisRepo) ownerCharactersKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:characters", ownerID)
}

func (r *redisRepo) activeKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:active_character", ownerID)
}

// Create stores a new character
func (r *redisRepo) Create(ctx context.Context, char *entities.Character) error {
	if err := validateNew(char); err != nil {
		return err
	}

	reserved, err := r.client.SetNX(ctx, r.nameKey(char.Name), char.ID, 0).Result()
	if err != nil {
		return dnderr.Wrap(err, "failed to reserve character name").
			WithMeta("name", char.Name)
	}
	if !reserved {
		return duplicateName(char.Name)
	}

	createdAt := char.CreatedAt
	if createdAt.IsZero() {
		createdAt = r.timeProvider.Now()
	}

	jsonData, err := json.Marshal(CharacterData{
		ID:          char.ID,
		OwnerID:     char.OwnerID,
		Name:        char.Name,
		Description: char.Description,
		CreatedAt:   createdAt,
	})
	if err != nil {
		r.client.Del(ctx, r.nameKey(char.Name))
		return dnderr.Wrap(err, "failed to marshal character")
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(char.ID), string(jsonData), 0)
	pipe.RPush(ctx, r.ownerCharactersKey(char.OwnerID), char.ID)
	if fields := attributeFields(char.Attributes); len(fields) > 0 {
		pipe.HSet(ctx, r.attributesKey(char.ID), fields...)
	}
	if fields := skillFields(char.Skills); len(fields) > 0 {
		pipe.HSet(ctx, r.skillsKey(char.ID), fields...)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		r.client.Del(ctx, r.nameKey(char.Name))
		return dnderr.Wrap(err, "failed to create character").
			WithMeta("character_id", char.ID)
	}

	char.CreatedAt = createdAt
	return nil
}

// Get retrieves a character by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*entities.Character, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("character ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to get character").
			WithMeta("character_id", id)
	}

	var data CharacterData
	if unmarshalErr := json.Unmarshal([]byte(jsonData), &data); unmarshalErr != nil {
		return nil, dnderr.Wrap(unmarshalErr, "failed to unmarshal character").
			WithMeta("character_id", id)
	}

	char := entities.NewCharacter(data.ID, data.OwnerID, data.Name)
	char.Description = data.Description
	char.CreatedAt = data.CreatedAt

	attributes, err := r.client.HGetAll(ctx, r.attributesKey(id)).Result()
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to get character attributes").
			WithMeta("character_id", id)
	}
	for field, raw := range attributes {
		value, err := parseStat(id, field, raw)
		if err != nil {
			return nil, err
		}
		char.SetAttribute(stats.Attribute(field), value)
	}

	skills, err := r.client.HGetAll(ctx, r.skillsKey(id)).Result()
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to get character skills").
			WithMeta("character_id", id)
	}
	for field, raw := range skills {
		value, err := parseStat(id, field, raw)
		if err != nil {
			return nil, err
		}
		char.SetSkill(stats.Skill(field), value)
	}

	return char, nil
}

// GetByName retrieves a character by case-insensitive name
func (r *redisRepo) GetByName(ctx context.Context, name string) (*entities.Character, error) {
	id, err := r.client.Get(ctx, r.nameKey(name)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, dnderr.NotFoundf("no character named '%s'", name).
			WithMeta("name", name)
	}
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to look up character name").
			WithMeta("name", name)
	}

	return r.Get(ctx, id)
}

// ListByOwner retrieves all characters for a specific owner
func (r *redisRepo) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Character, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	ids, err := r.client.LRange(ctx, r.ownerCharactersKey(ownerID), 0, -1).Result()
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to list character IDs").
			WithMeta("owner_id", ownerID)
	}

	characters := make([]*entities.Character, 0, len(ids))
	for _, id := range ids {
		char, err := r.Get(ctx, id)
		if dnderr.IsNotFound(err) {
			// Deleted between the index read and the load
			continue
		}
		if err != nil {
			return nil, err
		}
		characters = append(characters, char)
	}

	return characters, nil
}

// SetAttribute upserts an attribute value
func (r *redisRepo) SetAttribute(ctx context.Context, characterID string, attribute stats.Attribute, value int) error {
	if err := validateAttribute(attribute); err != nil {
		return err
	}
	if err := r.requireExists(ctx, characterID); err != nil {
		return err
	}

	if err := r.client.HSet(ctx, r.attributesKey(characterID), string(attribute), value).Err(); err != nil {
		return dnderr.Wrap(err, "failed to set attribute").
			WithMeta("character_id", characterID).
			WithMeta("stat", string(attribute))
	}
	return nil
}

// SetSkill upserts a skill value
func (r *redisRepo) SetSkill(ctx context.Context, characterID string, skill stats.Skill, value int) error {
	if err := validateSkill(skill); err != nil {
		return err
	}
	if err := r.requireExists(ctx, characterID); err != nil {
		return err
	}

	if err := r.client.HSet(ctx, r.skillsKey(characterID), string(skill), value).Err(); err != nil {
		return dnderr.Wrap(err, "failed to set skill").
			WithMeta("character_id", characterID).
			WithMeta("stat", string(skill))
	}
	return nil
}

// SetActive upserts the owner's active pointer
func (r *redisRepo) SetActive(ctx context.Context, ownerID, characterID string) error {
	if ownerID == "" {
		return dnderr.InvalidArgument("owner ID is required")
	}
	if err := r.requireExists(ctx, characterID); err != nil {
		return err
	}

	if err := r.client.Set(ctx, r.activeKey(ownerID), characterID, 0).Err(); err != nil {
		return dnderr.Wrap(err, "failed to set active character").
			WithMeta("owner_id", ownerID).
			WithMeta("character_id", characterID)
	}
	return nil
}

// GetActiveID returns the owner's active character ID
func (r *redisRepo) GetActiveID(ctx context.Context, ownerID string) (string, error) {
	id, err := r.client.Get(ctx, r.activeKey(ownerID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", dnderr.NotFoundf("owner '%s' has no active character", ownerID).
			WithMeta("owner_id", ownerID)
	}
	if err != nil {
		return "", dnderr.Wrap(err, "failed to get active character").
			WithMeta("owner_id", ownerID)
	}
	return id, nil
}

// Delete removes a character
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(id)).Result()
	if errors.Is(err, redis.Nil) {
		return notFound(id)
	}
	if err != nil {
		return dnderr.Wrap(err, "failed to get character for deletion").
			WithMeta("character_id", id)
	}

	var data CharacterData
	if unmarshalErr := json.Unmarshal([]byte(jsonData), &data); unmarshalErr != nil {
		return dnderr.Wrap(unmarshalErr, "failed to unmarshal character").
			WithMeta("character_id", id)
	}

	activeID, err := r.client.Get(ctx, r.activeKey(data.OwnerID)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return dnderr.Wrap(err, "failed to get active character").
			WithMeta("owner_id", data.OwnerID)
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.key(id), r.attributesKey(id), r.skillsKey(id), r.nameKey(data.Name))
	pipe.LRem(ctx, r.ownerCharactersKey(data.OwnerID), 0, id)
	if activeID == id {
		pipe.Del(ctx, r.activeKey(data.OwnerID))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return dnderr.Wrap(err, "failed to delete character").
			WithMeta("character_id", id)
	}
	return nil
}

func (r *redisRepo) requireExists(ctx context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	exists, err := r.client.Exists(ctx, r.key(id)).Result()
	if err != nil {
		return dnderr.Wrap(err, "failed to check character existence").
			WithMeta("character_id", id)
	}
	if exists == 0 {
		return notFound(id)
	}
	return nil
}

// attributeFields flattens values into HSET arguments in declaration order
func attributeFields(values map[stats.Attribute]int) []any {
	fields := make([]any, 0, len(values)*2)
	for _, a := range stats.Attributes() {
		if v, ok := values[a]; ok {
			fields = append(fields, string(a), v)
		}
	}
	return fields
}

func skillFields(values map[stats.Skill]int) []any {
	fields := make([]any, 0, len(values)*2)
	for _, s := range stats.Skills() {
		if v, ok := values[s]; ok {
			fields = append(fields, string(s), v)
		}
	}
	return fields
}

func parseStat(characterID, field, raw string) (int, error) {
	if _, err := stats.ParseRef(field); err != nil {
		return 0, dnderr.Internalf("character %s has unknown stat %q", characterID, field)
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, dnderr.Wrapf(err, "character %s has malformed %s value", characterID, field)
	}
	return value, nil
}
