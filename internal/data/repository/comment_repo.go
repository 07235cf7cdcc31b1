package repository

import (
	"context"
	"fmt"

	"shareit/internal/data/entity"
	"shareit/pkg/database"

	"go.uber.org/zap"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	FindByItemIDs(ctx context.Context, itemIDs []int64) ([]*entity.Comment, error)
}

type commentRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewCommentRepository(db database.DBTX, log *zap.Logger) CommentRepository {
	return &commentRepository{
		db:  db,
		log: log.With(zap.String("repository", "comment")),
	}
}

func (r *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	query := `
		INSERT INTO comments (text, item_id, author_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, comment.Text, comment.ItemID, comment.AuthorID).
		Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		r.log.Error("Failed to create comment",
			zap.Error(err),
			zap.Int64("item_id", comment.ItemID),
			zap.Int64("author_id", comment.AuthorID),
		)
		return fmt.Errorf("create comment on item %d: %w", comment.ItemID, err)
	}

	return nil
}

// FindByItemIDs loads comments for every item in one round trip, oldest first.
func (r *commentRepository) FindByItemIDs(ctx context.Context, itemIDs []int64) ([]*entity.Comment, error) {
	if len(itemIDs) == 0 {
		return []*entity.Comment{}, nil
	}

	query := `
		SELECT c.id, c.text, c.item_id, c.author_id, u.name, c.created_at
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.item_id = ANY($1)
		ORDER BY c.created_at, c.id
	`

	rows, err := r.db.Query(ctx, query, itemIDs)
	if err != nil {
		r.log.Error("Failed to find comments", zap.Error(err), zap.Int64s("item_ids", itemIDs))
		return nil, fmt.Errorf("find comments: %w", err)
	}
	defer rows.Close()

	comments := make([]*entity.Comment, 0)
	for rows.Next() {
		var c entity.Comment
		if err := rows.Scan(&c.ID, &c.Text, &c.ItemID, &c.AuthorID, &c.AuthorName, &c.CreatedAt); err != nil {
			r.log.Error("Failed to scan comment row", zap.Error(err))
			return nil, fmt.Errorf("scan comment row: %w", err)
		}
		comments = append(comments, &c)
	}

	return comments, rows.Err()
}
