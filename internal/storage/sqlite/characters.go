package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mrredcon/ballroom/internal/domain/stats"
	"github.com/mrredcon/ballroom/internal/entities"
	dnderr "github.com/mrredcon/ballroom/internal/errors"
	"github.com/mrredcon/ballroom/internal/repositories/characters"
)

type characterStore struct {
	store *Store
}

var _ characters.Repository = (*characterStore)(nil)

const characterColumns = `id, owner_id, name, description, created_at`

// querier is satisfied by *sql.DB and *sql.Tx
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (c *characterStore) Create(ctx context.Context, char *entities.Character) error {
	if char == nil {
		return dnderr.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" || char.OwnerID == "" {
		return dnderr.InvalidArgument("character ID and owner ID are required")
	}
	key := entities.NameKey(char.Name)
	if key == "" {
		return dnderr.InvalidArgument("character name is required")
	}

	createdAt := char.CreatedAt
	if createdAt.IsZero() {
		createdAt = c.store.now()
	}

	tx, err := c.store.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return dnderr.Wrap(err, "begin create character")
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO characters (id, owner_id, name, name_key, description, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		char.ID, char.OwnerID, char.Name, key, char.Description, toMillis(createdAt),
	)
	if err != nil {
		if isIDClash(err) {
			return rollback(tx, dnderr.AlreadyExistsf("character with ID '%s' already exists", char.ID).
				WithMeta("character_id", char.ID))
		}
		if isNameClash(err) {
			return rollback(tx, dnderr.AlreadyExistsf("a character named '%s' already exists", char.Name).
				WithMeta("name", char.Name))
		}
		return rollback(tx, dnderr.Wrap(err, "create character"))
	}

	for _, a := range stats.Attributes() {
		if v, ok := char.Attributes[a]; ok {
			if err := upsertStat(ctx, tx, "character_attributes", char.ID, string(a), v); err != nil {
				return rollback(tx, err)
			}
		}
	}
	for _, s := range stats.Skills() {
		if v, ok := char.Skills[s]; ok {
			if err := upsertStat(ctx, tx, "character_skills", char.ID, string(s), v); err != nil {
				return rollback(tx, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return dnderr.Wrap(err, "commit create character")
	}
	char.CreatedAt = createdAt
	return nil
}

func (c *characterStore) Get(ctx context.Context, id string) (*entities.Character, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("character ID is required")
	}
	row := c.store.sqlDB.QueryRowContext(ctx,
		`SELECT `+characterColumns+` FROM characters WHERE id = ?`, id)
	char, err := c.scanWithStats(ctx, row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, dnderr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}
	return char, err
}

func (c *characterStore) GetByName(ctx context.Context, name string) (*entities.Character, error) {
	row := c.store.sqlDB.QueryRowContext(ctx,
		`SELECT `+characterColumns+` FROM characters WHERE name_key = ?`, entities.NameKey(name))
	char, err := c.scanWithStats(ctx, row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, dnderr.NotFoundf("no character named '%s'", name).
			WithMeta("name", name)
	}
	return char, err
}

func (c *characterStore) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Character, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	rows, err := c.store.sqlDB.QueryContext(ctx,
		`SELECT `+characterColumns+` FROM characters WHERE owner_id = ? ORDER BY rowid`, ownerID)
	if err != nil {
		return nil, dnderr.Wrap(err, "list characters").WithMeta("owner_id", ownerID)
	}

	result := make([]*entities.Character, 0)
	for rows.Next() {
		char, err := scanCharacter(rows)
		if err != nil {
			_ = rows.Close()
			return nil, err
		}
		result = append(result, char)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, dnderr.Wrap(err, "list characters")
	}
	_ = rows.Close()

	for _, char := range result {
		if err := c.loadStats(ctx, char); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (c *characterStore) SetAttribute(ctx context.Context, characterID string, attribute stats.Attribute, value int) error {
	if !attribute.Valid() {
		return dnderr.InvalidStatf("unknown attribute %q", string(attribute))
	}
	return upsertStat(ctx, c.store.sqlDB, "character_attributes", characterID, string(attribute), value)
}

func (c *characterStore) SetSkill(ctx context.Context, characterID string, skill stats.Skill, value int) error {
	if !skill.Valid() {
		return dnderr.InvalidStatf("unknown skill %q", string(skill))
	}
	return upsertStat(ctx, c.store.sqlDB, "character_skills", characterID, string(skill), value)
}

func (c *characterStore) SetActive(ctx context.Context, ownerID, characterID string) error {
	if ownerID == "" {
		return dnderr.InvalidArgument("owner ID is required")
	}

	_, err := c.store.sqlDB.ExecContext(ctx,
		`INSERT INTO active_character (owner_id, character_id) VALUES (?, ?)
		 ON CONFLICT (owner_id) DO UPDATE SET character_id = excluded.character_id`,
		ownerID, characterID,
	)
	if isForeignKeyViolation(err) {
		return dnderr.NotFoundf("character with ID '%s' not found", characterID).
			WithMeta("character_id", characterID)
	}
	if err != nil {
		return dnderr.Wrap(err, "set active character").
			WithMeta("owner_id", ownerID).
			WithMeta("character_id", characterID)
	}
	return nil
}

func (c *characterStore) GetActiveID(ctx context.Context, ownerID string) (string, error) {
	var id string
	err := c.store.sqlDB.QueryRowContext(ctx,
		`SELECT character_id FROM active_character WHERE owner_id = ?`, ownerID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", dnderr.NotFoundf("owner '%s' has no active character", ownerID).
			WithMeta("owner_id", ownerID)
	}
	if err != nil {
		return "", dnderr.Wrap(err, "get active character").WithMeta("owner_id", ownerID)
	}
	return id, nil
}

func (c *characterStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	res, err := c.store.sqlDB.ExecContext(ctx, `DELETE FROM characters WHERE id = ?`, id)
	if err != nil {
		return dnderr.Wrap(err, "delete character").WithMeta("character_id", id)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return dnderr.Wrap(err, "delete character").WithMeta("character_id", id)
	}
	if affected == 0 {
		return dnderr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCharacter(row rowScanner) (*entities.Character, error) {
	var (
		id, ownerID, name, description string
		createdAt                      int64
	)
	if err := row.Scan(&id, &ownerID, &name, &description, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, dnderr.Wrap(err, "scan character")
	}

	char := entities.NewCharacter(id, ownerID, name)
	char.Description = description
	char.CreatedAt = fromMillis(createdAt)
	return char, nil
}

func (c *characterStore) scanWithStats(ctx context.Context, row *sql.Row) (*entities.Character, error) {
	char, err := scanCharacter(row)
	if err != nil {
		return nil, err
	}
	if err := c.loadStats(ctx, char); err != nil {
		return nil, err
	}
	return char, nil
}

func (c *characterStore) loadStats(ctx context.Context, char *entities.Character) error {
	load := func(table string, apply func(name string, value int) error) error {
		rows, err := c.store.sqlDB.QueryContext(ctx,
			`SELECT stat_name, value FROM `+table+` WHERE character_id = ?`, char.ID)
		if err != nil {
			return dnderr.Wrap(err, "load "+table).WithMeta("character_id", char.ID)
		}
		defer rows.Close()

		for rows.Next() {
			var name string
			var value int
			if err := rows.Scan(&name, &value); err != nil {
				return dnderr.Wrap(err, "scan "+table)
			}
			if err := apply(name, value); err != nil {
				return err
			}
		}
		if err := rows.Err(); err != nil {
			return dnderr.Wrap(err, "load "+table)
		}
		return nil
	}

	if err := load("character_attributes", func(name string, value int) error {
		a := stats.Attribute(name)
		if !a.Valid() {
			return dnderr.Internalf("character %s has unknown attribute %q", char.ID, name)
		}
		char.SetAttribute(a, value)
		return nil
	}); err != nil {
		return err
	}

	return load("character_skills", func(name string, value int) error {
		s := stats.Skill(name)
		if !s.Valid() {
			return dnderr.Internalf("character %s has unknown skill %q", char.ID, name)
		}
		char.SetSkill(s, value)
		return nil
	})
}

// upsertStat writes one row into character_attributes or character_skills
func upsertStat(ctx context.Context, q querier, table, characterID, statName string, value int) error {
	_, err := q.ExecContext(ctx,
		`INSERT INTO `+table+` (character_id, stat_name, value) VALUES (?, ?, ?)
		 ON CONFLICT (character_id, stat_name) DO UPDATE SET value = excluded.value`,
		characterID, statName, value,
	)
	switch {
	case err == nil:
		return nil
	case isForeignKeyViolation(err):
		return dnderr.NotFoundf("character with ID '%s' not found", characterID).
			WithMeta("character_id", characterID)
	case isCheckViolation(err):
		return dnderr.InvalidValuef("%s must be zero or more, got %d", statName, value).
			WithMeta("character_id", characterID)
	default:
		return dnderr.Wrap(err, "set "+statName).
			WithMeta("character_id", characterID).
			WithMeta("stat", statName)
	}
}
