package repository

import (
	"context"
	"errors"
	"fmt"

	"shareit/internal/data/entity"
	"shareit/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	FindByID(ctx context.Context, id int64) (*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	FindByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]*entity.Item, error)
	// Search matches available items by name or description, case-insensitively.
	Search(ctx context.Context, text string, limit, offset int) ([]*entity.Item, error)
	FindByRequestIDs(ctx context.Context, requestIDs []int64) ([]*entity.Item, error)
}

type itemRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewItemRepository(db database.DBTX, log *zap.Logger) ItemRepository {
	return &itemRepository{
		db:  db,
		log: log.With(zap.String("repository", "item")),
	}
}

const itemColumns = `id, name, description, available, owner_id, request_id`

func scanItem(row pgx.Row) (*entity.Item, error) {
	var item entity.Item
	err := row.Scan(&item.ID, &item.Name, &item.Description, &item.Available, &item.OwnerID, &item.RequestID)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) Create(ctx context.Context, item *entity.Item) error {
	query := `
		INSERT INTO items (name, description, available, owner_id, request_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		item.Name,
		item.Description,
		item.Available,
		item.OwnerID,
		item.RequestID,
	).Scan(&item.ID)

	if err != nil {
		r.log.Error("Failed to create item", zap.Error(err), zap.Int64("owner_id", item.OwnerID))
		return fmt.Errorf("create item for owner %d: %w", item.OwnerID, err)
	}

	return nil
}

func (r *itemRepository) FindByID(ctx context.Context, id int64) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`

	item, err := scanItem(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find item by ID", zap.Error(err), zap.Int64("item_id", id))
		return nil, fmt.Errorf("find item by ID %d: %w", id, err)
	}

	return item, nil
}

func (r *itemRepository) Update(ctx context.Context, item *entity.Item) error {
	query := `UPDATE items SET name = $2, description = $3, available = $4 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, item.ID, item.Name, item.Description, item.Available)
	if err != nil {
		r.log.Error("Failed to update item", zap.Error(err), zap.Int64("item_id", item.ID))
		return fmt.Errorf("update item %d: %w", item.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("item %d not found", item.ID)
	}

	return nil
}

func (r *itemRepository) FindByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + `
		FROM items
		WHERE owner_id = $1
		ORDER BY id
		LIMIT $2 OFFSET $3
	`
	return r.list(ctx, "find items by owner", query, ownerID, limit, offset)
}

func (r *itemRepository) Search(ctx context.Context, text string, limit, offset int) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + `
		FROM items
		WHERE available = TRUE
		  AND (name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
		ORDER BY id
		LIMIT $2 OFFSET $3
	`
	return r.list(ctx, "search items", query, text, limit, offset)
}

func (r *itemRepository) FindByRequestIDs(ctx context.Context, requestIDs []int64) ([]*entity.Item, error) {
	if len(requestIDs) == 0 {
		return []*entity.Item{}, nil
	}

	query := `SELECT ` + itemColumns + `
		FROM items
		WHERE request_id = ANY($1)
		ORDER BY id
	`
	return r.list(ctx, "find items by requests", query, requestIDs)
}

func (r *itemRepository) list(ctx context.Context, op, query string, args ...any) ([]*entity.Item, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to "+op, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items := make([]*entity.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			r.log.Error("Failed to scan item row", zap.Error(err))
			return nil, fmt.Errorf("scan item row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate item rows: %w", err)
	}

	return items, nil
}
