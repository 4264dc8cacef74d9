package catalog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetItem(ctx context.Context, itemID int) (*Item, error) {
	query := `
		SELECT id, code, name, unit_price::text, status
		FROM items WHERE id = $1
	`
	row := r.db.QueryRow(ctx, query, itemID)

	item := &Item{}
	var price string
	if err := row.Scan(&item.ID, &item.Code, &item.Name, &price, &item.Status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	unitPrice, err := decimal.NewFromString(price)
	if err != nil {
		// corrupt price rows price as zero, never break the screen
		unitPrice = decimal.Zero
	}
	item.UnitPrice = unitPrice

	return item, nil
}

// --------------------------------------------------
// Option groups for one menu item
// --------------------------------------------------
func (r *PostgresRepository) GroupsForItem(
	ctx context.Context,
	itemID int,
) ([]OptionGroup, error) {

	groupQuery := `
		SELECT g.id, g.name, g.kind, g.min_pick, g.max_pick, g.required
		FROM option_groups g
		JOIN item_option_groups ig ON ig.group_id = g.id
		WHERE ig.item_id = $1
		ORDER BY ig.position
	`
	rows, err := r.db.Query(ctx, groupQuery, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []OptionGroup
	for rows.Next() {
		var g OptionGroup
		var kind string
		if err := rows.Scan(&g.ID, &g.Name, &kind, &g.Min, &g.Max, &g.Required); err != nil {
			return nil, err
		}
		g.Kind = GroupKind(kind)
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range groups {
		items, err := r.groupItems(ctx, groups[i].ID)
		if err != nil {
			return nil, err
		}
		groups[i].Items = items
	}

	return groups, nil
}

func (r *PostgresRepository) groupItems(ctx context.Context, groupID int) ([]Item, error) {
	query := `
		SELECT i.id, i.code, i.name, i.unit_price::text, i.status
		FROM items i
		JOIN option_group_items gi ON gi.item_id = i.id
		WHERE gi.group_id = $1 AND i.status = $2
		ORDER BY gi.position
	`
	rows, err := r.db.Query(ctx, query, groupID, StatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var item Item
		var price string
		if err := rows.Scan(&item.ID, &item.Code, &item.Name, &price, &item.Status); err != nil {
			return nil, err
		}
		unitPrice, err := decimal.NewFromString(price)
		if err != nil {
			unitPrice = decimal.Zero
		}
		item.UnitPrice = unitPrice
		items = append(items, item)
	}
	return items, rows.Err()
}
