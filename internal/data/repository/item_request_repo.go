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

type ItemRequestRepository interface {
	Create(ctx context.Context, req *entity.ItemRequest) error
	FindByID(ctx context.Context, id int64) (*entity.ItemRequest, error)
	FindByRequester(ctx context.Context, requesterID int64) ([]*entity.ItemRequest, error)
	FindOthers(ctx context.Context, userID int64, limit, offset int) ([]*entity.ItemRequest, error)
}

type itemRequestRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewItemRequestRepository(db database.DBTX, log *zap.Logger) ItemRequestRepository {
	return &itemRequestRepository{
		db:  db,
		log: log.With(zap.String("repository", "item_request")),
	}
}

func (r *itemRequestRepository) Create(ctx context.Context, req *entity.ItemRequest) error {
	query := `
		INSERT INTO item_requests (description, requester_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, req.Description, req.RequesterID).Scan(&req.ID, &req.CreatedAt)
	if err != nil {
		r.log.Error("Failed to create item request", zap.Error(err), zap.Int64("requester_id", req.RequesterID))
		return fmt.Errorf("create item request for %d: %w", req.RequesterID, err)
	}

	return nil
}

func (r *itemRequestRepository) FindByID(ctx context.Context, id int64) (*entity.ItemRequest, error) {
	query := `SELECT id, description, requester_id, created_at FROM item_requests WHERE id = $1`

	var req entity.ItemRequest
	err := r.db.QueryRow(ctx, query, id).Scan(&req.ID, &req.Description, &req.RequesterID, &req.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find item request by ID", zap.Error(err), zap.Int64("request_id", id))
		return nil, fmt.Errorf("find item request by ID %d: %w", id, err)
	}

	return &req, nil
}

func (r *itemRequestRepository) FindByRequester(ctx context.Context, requesterID int64) ([]*entity.ItemRequest, error) {
	query := `
		SELECT id, description, requester_id, created_at
		FROM item_requests
		WHERE requester_id = $1
		ORDER BY created_at, id
	`
	return r.list(ctx, query, requesterID)
}

func (r *itemRequestRepository) FindOthers(ctx context.Context, userID int64, limit, offset int) ([]*entity.ItemRequest, error) {
	query := `
		SELECT id, description, requester_id, created_at
		FROM item_requests
		WHERE requester_id <> $1
		ORDER BY created_at, id
		LIMIT $2 OFFSET $3
	`
	return r.list(ctx, query, userID, limit, offset)
}

func (r *itemRequestRepository) list(ctx context.Context, query string, args ...any) ([]*entity.ItemRequest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list item requests", zap.Error(err))
		return nil, fmt.Errorf("list item requests: %w", err)
	}
	defer rows.Close()

	requests := make([]*entity.ItemRequest, 0)
	for rows.Next() {
		var req entity.ItemRequest
		if err := rows.Scan(&req.ID, &req.Description, &req.RequesterID, &req.CreatedAt); err != nil {
			r.log.Error("Failed to scan item request row", zap.Error(err))
			return nil, fmt.Errorf("scan item request row: %w", err)
		}
		requests = append(requests, &req)
	}

	return requests, rows.Err()
}
