package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shareit/internal/data/entity"
	"shareit/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id int64) (*entity.BookingDetail, error)
	// FindByIDForUpdate locks the booking row until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id int64) (*entity.BookingDetail, error)
	FindByBooker(ctx context.Context, bookerID int64, state entity.BookingState, now time.Time, limit, offset int) ([]*entity.BookingDetail, error)
	FindByOwner(ctx context.Context, ownerID int64, state entity.BookingState, now time.Time, limit, offset int) ([]*entity.BookingDetail, error)
	// UpdateStatus moves a WAITING booking to status. It reports false when
	// the booking was no longer WAITING.
	UpdateStatus(ctx context.Context, id int64, status entity.BookingStatus) (bool, error)

	// Availability queries
	FindLastApproved(ctx context.Context, itemID int64, now time.Time) (*entity.Booking, error)
	FindNextApproved(ctx context.Context, itemID int64, now time.Time) (*entity.Booking, error)
	FindApprovedByOwner(ctx context.Context, ownerID int64, itemIDs []int64) ([]*entity.Booking, error)

	// Comment eligibility
	HasCompletedApproved(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error)
}

type bookingRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewBookingRepository(db database.DBTX, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `b.id, b.start_date, b.end_date, b.item_id, b.booker_id, b.status, b.created_at`

const bookingDetailSelect = `
	SELECT b.id, b.start_date, b.end_date, b.item_id, b.booker_id, b.status, b.created_at,
	       i.name, i.owner_id, u.name
	FROM bookings b
	JOIN items i ON i.id = b.item_id
	JOIN users u ON u.id = b.booker_id`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var b entity.Booking
	err := row.Scan(&b.ID, &b.Start, &b.End, &b.ItemID, &b.BookerID, &b.Status, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func scanBookingDetail(row pgx.Row) (*entity.BookingDetail, error) {
	var d entity.BookingDetail
	err := row.Scan(
		&d.ID, &d.Start, &d.End, &d.ItemID, &d.BookerID, &d.Status, &d.CreatedAt,
		&d.ItemName, &d.ItemOwnerID, &d.BookerName,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (start_date, end_date, item_id, booker_id, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		booking.Start,
		booking.End,
		booking.ItemID,
		booking.BookerID,
		booking.Status,
	).Scan(&booking.ID, &booking.CreatedAt)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.Int64("item_id", booking.ItemID),
			zap.Int64("booker_id", booking.BookerID),
		)
		return fmt.Errorf("create booking for item %d: %w", booking.ItemID, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id int64) (*entity.BookingDetail, error) {
	return r.findDetail(ctx, bookingDetailSelect+` WHERE b.id = $1`, id)
}

func (r *bookingRepository) FindByIDForUpdate(ctx context.Context, id int64) (*entity.BookingDetail, error) {
	return r.findDetail(ctx, bookingDetailSelect+` WHERE b.id = $1 FOR UPDATE OF b`, id)
}

func (r *bookingRepository) findDetail(ctx context.Context, query string, id int64) (*entity.BookingDetail, error) {
	booking, err := scanBookingDetail(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.Int64("booking_id", id),
		)
		return nil, fmt.Errorf("find booking by ID %d: %w", id, err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByBooker(ctx context.Context, bookerID int64, state entity.BookingState, now time.Time, limit, offset int) ([]*entity.BookingDetail, error) {
	return r.findDetailsBy(ctx, "b.booker_id", bookerID, state, now, limit, offset)
}

func (r *bookingRepository) FindByOwner(ctx context.Context, ownerID int64, state entity.BookingState, now time.Time, limit, offset int) ([]*entity.BookingDetail, error) {
	return r.findDetailsBy(ctx, "i.owner_id", ownerID, state, now, limit, offset)
}

func (r *bookingRepository) findDetailsBy(ctx context.Context, column string, userID int64, state entity.BookingState, now time.Time, limit, offset int) ([]*entity.BookingDetail, error) {
	filter, args, err := stateFilter(state, now, []any{userID})
	if err != nil {
		return nil, err
	}
	args = append(args, limit, offset)

	query := fmt.Sprintf(`%s
	WHERE %s = $1%s
	ORDER BY b.start_date DESC, b.id DESC
	LIMIT $%d OFFSET $%d`, bookingDetailSelect, column, filter, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list bookings",
			zap.Error(err),
			zap.String("by", column),
			zap.Int64("user_id", userID),
			zap.String("state", string(state)),
		)
		return nil, fmt.Errorf("list bookings by %s %d: %w", column, userID, err)
	}
	defer rows.Close()

	bookings := make([]*entity.BookingDetail, 0)
	for rows.Next() {
		booking, err := scanBookingDetail(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return bookings, nil
}

// stateFilter renders the WHERE fragment for state, appending its
// parameters to args.
func stateFilter(state entity.BookingState, now time.Time, args []any) (string, []any, error) {
	param := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	switch state {
	case entity.BookingStateAll:
		return "", args, nil
	case entity.BookingStatePast:
		return " AND b.end_date < " + param(now), args, nil
	case entity.BookingStateFuture:
		return " AND b.start_date > " + param(now), args, nil
	case entity.BookingStateCurrent:
		p := param(now)
		return " AND b.start_date <= " + p + " AND b.end_date >= " + p, args, nil
	case entity.BookingStateWaiting:
		return " AND b.status = " + param(entity.BookingStatusWaiting), args, nil
	case entity.BookingStateRejected:
		return " AND b.status = " + param(entity.BookingStatusRejected), args, nil
	}
	return "", nil, fmt.Errorf("unsupported booking state %q", state)
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id int64, status entity.BookingStatus) (bool, error) {
	query := `UPDATE bookings SET status = $2 WHERE id = $1 AND status = $3`

	result, err := r.db.Exec(ctx, query, id, status, entity.BookingStatusWaiting)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.Int64("booking_id", id),
			zap.String("status", string(status)),
		)
		return false, fmt.Errorf("update booking %d status to %s: %w", id, status, err)
	}

	return result.RowsAffected() == 1, nil
}

func (r *bookingRepository) FindLastApproved(ctx context.Context, itemID int64, now time.Time) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings b
		WHERE b.item_id = $1 AND b.status = $2 AND b.start_date < $3
		ORDER BY b.end_date DESC
		LIMIT 1
	`
	return r.findOne(ctx, "last", query, itemID, entity.BookingStatusApproved, now)
}

func (r *bookingRepository) FindNextApproved(ctx context.Context, itemID int64, now time.Time) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings b
		WHERE b.item_id = $1 AND b.status = $2 AND b.start_date > $3
		ORDER BY b.start_date ASC
		LIMIT 1
	`
	return r.findOne(ctx, "next", query, itemID, entity.BookingStatusApproved, now)
}

func (r *bookingRepository) findOne(ctx context.Context, which, query string, itemID int64, args ...any) (*entity.Booking, error) {
	booking, err := scanBooking(r.db.QueryRow(ctx, query, append([]any{itemID}, args...)...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find "+which+" booking",
			zap.Error(err),
			zap.Int64("item_id", itemID),
		)
		return nil, fmt.Errorf("find %s booking for item %d: %w", which, itemID, err)
	}
	return booking, nil
}

func (r *bookingRepository) FindApprovedByOwner(ctx context.Context, ownerID int64, itemIDs []int64) ([]*entity.Booking, error) {
	if len(itemIDs) == 0 {
		return []*entity.Booking{}, nil
	}

	query := `SELECT ` + bookingColumns + `
		FROM bookings b
		JOIN items i ON i.id = b.item_id
		WHERE i.owner_id = $1 AND b.status = $2 AND b.item_id = ANY($3)
		ORDER BY b.item_id, b.start_date
	`

	rows, err := r.db.Query(ctx, query, ownerID, entity.BookingStatusApproved, itemIDs)
	if err != nil {
		r.log.Error("Failed to find approved bookings by owner",
			zap.Error(err),
			zap.Int64("owner_id", ownerID),
		)
		return nil, fmt.Errorf("find approved bookings by owner %d: %w", ownerID, err)
	}
	defer rows.Close()

	bookings := make([]*entity.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return bookings, nil
}

func (r *bookingRepository) HasCompletedApproved(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE booker_id = $1 AND item_id = $2 AND status = $3 AND end_date < $4
		)
	`

	var exists bool
	err := r.db.QueryRow(ctx, query, bookerID, itemID, entity.BookingStatusApproved, now).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check completed booking",
			zap.Error(err),
			zap.Int64("booker_id", bookerID),
			zap.Int64("item_id", itemID),
		)
		return false, fmt.Errorf("check completed booking of item %d by %d: %w", itemID, bookerID, err)
	}

	return exists, nil
}
