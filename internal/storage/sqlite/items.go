package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"slices"

	"github.com/mrredcon/ballroom/internal/domain/stats"
	"github.com/mrredcon/ballroom/internal/entities"
	dnderr "github.com/mrredcon/ballroom/internal/errors"
	"github.com/mrredcon/ballroom/internal/repositories/items"
)

type itemStore struct {
	store *Store
}

var _ items.Repository = (*itemStore)(nil)

const itemColumns = `id, owner_id, name, description, item_type, slot, created_at`

func (i *itemStore) Create(ctx context.Context, item *entities.Item) error {
	if item == nil {
		return dnderr.InvalidArgument("item cannot be nil")
	}
	if item.ID == "" || item.OwnerID == "" {
		return dnderr.InvalidArgument("item ID and owner ID are required")
	}
	key := entities.NameKey(item.Name)
	if key == "" {
		return dnderr.InvalidArgument("item name is required")
	}
	if !slices.Contains(entities.ItemTypes, item.Type) {
		return dnderr.InvalidArgumentf("unknown item type %q", string(item.Type))
	}

	var slot sql.NullString
	if item.Slot != nil {
		if !slices.Contains(entities.Slots, *item.Slot) {
			return dnderr.InvalidArgumentf("unknown equip slot %q", string(*item.Slot))
		}
		slot = sql.NullString{String: string(*item.Slot), Valid: true}
	}

	createdAt := item.CreatedAt
	if createdAt.IsZero() {
		createdAt = i.store.now()
	}

	tx, err := i.store.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return dnderr.Wrap(err, "begin create item")
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO items (id, owner_id, name, name_key, description, item_type, slot, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.OwnerID, item.Name, key, item.Description, string(item.Type), slot, toMillis(createdAt),
	)
	if err != nil {
		if isIDClash(err) {
			return rollback(tx, dnderr.AlreadyExistsf("item with ID '%s' already exists", item.ID).
				WithMeta("item_id", item.ID))
		}
		if isNameClash(err) {
			return rollback(tx, dnderr.AlreadyExistsf("an item named '%s' already exists", item.Name).
				WithMeta("name", item.Name))
		}
		return rollback(tx, dnderr.Wrap(err, "create item"))
	}

	for _, effect := range item.Effects {
		effect := *effect
		effect.ItemID = item.ID
		if err := upsertEffect(ctx, tx, &effect); err != nil {
			return rollback(tx, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return dnderr.Wrap(err, "commit create item")
	}
	item.CreatedAt = createdAt
	return nil
}

func (i *itemStore) Get(ctx context.Context, id string) (*entities.Item, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("item ID is required")
	}
	row := i.store.sqlDB.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM items WHERE id = ?`, id)
	item, err := i.scanWithEffects(ctx, row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, dnderr.NotFoundf("item with ID '%s' not found", id).
			WithMeta("item_id", id)
	}
	return item, err
}

func (i *itemStore) GetByName(ctx context.Context, name string) (*entities.Item, error) {
	row := i.store.sqlDB.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE name_key = ?`, entities.NameKey(name))
	item, err := i.scanWithEffects(ctx, row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, dnderr.NotFoundf("no item named '%s'", name).
			WithMeta("name", name)
	}
	return item, err
}

func (i *itemStore) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Item, error) {
	if ownerID == "" {
		return nil, dnderr.InvalidArgument("owner ID is required")
	}

	rows, err := i.store.sqlDB.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE owner_id = ? ORDER BY rowid`, ownerID)
	if err != nil {
		return nil, dnderr.Wrap(err, "list items").WithMeta("owner_id", ownerID)
	}

	result := make([]*entities.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			_ = rows.Close()
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, dnderr.Wrap(err, "list items")
	}
	_ = rows.Close()

	for _, item := range result {
		if err := i.loadEffects(ctx, item); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (i *itemStore) ListNames(ctx context.Context, ownerID string) ([]string, error) {
	query := `SELECT name FROM items ORDER BY rowid`
	args := []any{}
	if ownerID != "" {
		query = `SELECT name FROM items WHERE owner_id = ? ORDER BY rowid`
		args = append(args, ownerID)
	}

	rows, err := i.store.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dnderr.Wrap(err, "list item names")
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, dnderr.Wrap(err, "scan item name")
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, dnderr.Wrap(err, "list item names")
	}
	return names, nil
}

func (i *itemStore) SetEffect(ctx context.Context, effect *entities.StatEffect) error {
	return upsertEffect(ctx, i.store.sqlDB, effect)
}

func (i *itemStore) DeleteEffect(ctx context.Context, itemID string, stat stats.Ref) error {
	if !stat.Valid() {
		return dnderr.InvalidStatf("unknown stat %q", stat.Key())
	}

	_, err := i.store.sqlDB.ExecContext(ctx,
		`DELETE FROM item_stats WHERE item_id = ? AND stat_name = ?`, itemID, stat.Key())
	if err != nil {
		return dnderr.Wrap(err, "delete item effect").
			WithMeta("item_id", itemID).
			WithMeta("stat", stat.Key())
	}
	return nil
}

func (i *itemStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("item ID is required")
	}

	res, err := i.store.sqlDB.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return dnderr.Wrap(err, "delete item").WithMeta("item_id", id)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return dnderr.Wrap(err, "delete item").WithMeta("item_id", id)
	}
	if affected == 0 {
		return dnderr.NotFoundf("item with ID '%s' not found", id).
			WithMeta("item_id", id)
	}
	return nil
}

func scanItem(row rowScanner) (*entities.Item, error) {
	var (
		id, ownerID, name, description, itemType string
		slot                                     sql.NullString
		createdAt                                int64
	)
	if err := row.Scan(&id, &ownerID, &name, &description, &itemType, &slot, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, dnderr.Wrap(err, "scan item")
	}

	item := &entities.Item{
		ID:          id,
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
		Type:        entities.ItemType(itemType),
		Effects:     []*entities.StatEffect{},
		CreatedAt:   fromMillis(createdAt),
	}
	if slot.Valid {
		s := entities.Slot(slot.String)
		item.Slot = &s
	}
	return item, nil
}

func (i *itemStore) scanWithEffects(ctx context.Context, row *sql.Row) (*entities.Item, error) {
	item, err := scanItem(row)
	if err != nil {
		return nil, err
	}
	if err := i.loadEffects(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (i *itemStore) loadEffects(ctx context.Context, item *entities.Item) error {
	rows, err := i.store.sqlDB.QueryContext(ctx,
		`SELECT stat_name, stat_desc, value FROM item_stats WHERE item_id = ? ORDER BY rowid`, item.ID)
	if err != nil {
		return dnderr.Wrap(err, "load item effects").WithMeta("item_id", item.ID)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			statName, desc string
			value          int
		)
		if err := rows.Scan(&statName, &desc, &value); err != nil {
			return dnderr.Wrap(err, "scan item effect")
		}
		ref, err := stats.ParseRef(statName)
		if err != nil {
			return dnderr.Internalf("item %s has unknown stat %q", item.ID, statName)
		}
		item.Effects = append(item.Effects, &entities.StatEffect{
			ItemID:      item.ID,
			Stat:        ref,
			Description: desc,
			Value:       value,
		})
	}
	if err := rows.Err(); err != nil {
		return dnderr.Wrap(err, "load item effects")
	}
	return nil
}

// upsertEffect writes (item, stat); ON CONFLICT DO UPDATE keeps the rowid,
// so an updated effect keeps its position
func upsertEffect(ctx context.Context, q querier, effect *entities.StatEffect) error {
	if effect == nil {
		return dnderr.InvalidArgument("effect cannot be nil")
	}
	if !effect.Stat.Valid() {
		return dnderr.InvalidStatf("unknown stat %q", effect.Stat.Key())
	}
	if effect.Value == 0 {
		return dnderr.InvalidValuef("effect on %s must be non-zero", effect.Stat.Key())
	}

	_, err := q.ExecContext(ctx,
		`INSERT INTO item_stats (item_id, stat_name, stat_desc, value) VALUES (?, ?, ?, ?)
		 ON CONFLICT (item_id, stat_name) DO UPDATE SET stat_desc = excluded.stat_desc, value = excluded.value`,
		effect.ItemID, effect.Stat.Key(), effect.Description, effect.Value,
	)
	switch {
	case err == nil:
		return nil
	case isForeignKeyViolation(err):
		return dnderr.NotFoundf("item with ID '%s' not found", effect.ItemID).
			WithMeta("item_id", effect.ItemID)
	default:
		return dnderr.Wrap(err, "set item effect").
			WithMeta("item_id", effect.ItemID).
			WithMeta("stat", effect.Stat.Key())
	}
}
