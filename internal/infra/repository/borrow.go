package repository

import (
	"context"
	"errors"
	"time"

	"library-clean-service/internal/domain/borrowing"
	"library-clean-service/internal/infra"
	"library-clean-service/internal/usecase/commands"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BorrowRecordRepository struct {
	db *pgxpool.Pool
}

func NewBorrowRecordRepository(db *pgxpool.Pool) *BorrowRecordRepository {
	return &BorrowRecordRepository{db: db}
}

func (r *BorrowRecordRepository) Create(ctx context.Context, rec *borrowing.Record) (int64, error) {
	const query = `
		INSERT INTO borrow_records (patron_id, book_id, borrowed_at, due_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query,
		rec.PatronID().String(), rec.BookID(), rec.BorrowedAt(), rec.DueAt(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to insert borrow record", err)
	}
	return id, nil
}

func (r *BorrowRecordRepository) OutstandingByPatron(ctx context.Context, patronID string) ([]*commands.RecordSnapshot, error) {
	const query = `
		SELECT id, patron_id, book_id, borrowed_at, due_at, returned_at
		FROM borrow_records
		WHERE patron_id = $1 AND returned_at IS NULL
		ORDER BY borrowed_at`

	rows, err := r.db.Query(ctx, query, patronID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list outstanding records", err)
	}
	defer rows.Close()

	var snaps []*commands.RecordSnapshot
	for rows.Next() {
		snap, err := scanRecord(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan borrow record", err)
		}
		snaps = append(snaps, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate borrow records", err)
	}
	return snaps, nil
}

func (r *BorrowRecordRepository) LatestByPatronAndBook(ctx context.Context, patronID string, bookID int64) (*commands.RecordSnapshot, error) {
	const query = `
		SELECT id, patron_id, book_id, borrowed_at, due_at, returned_at
		FROM borrow_records
		WHERE patron_id = $1 AND book_id = $2
		ORDER BY borrowed_at DESC
		LIMIT 1`

	snap, err := scanRecord(r.db.QueryRow(ctx, query, patronID, bookID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("borrow record not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find latest borrow record", err)
	}
	return snap, nil
}

// SetReturnedAt stamps the outstanding record for the pair; at most one such
// record exists at a time.
func (r *BorrowRecordRepository) SetReturnedAt(ctx context.Context, patronID string, bookID int64, returnedAt time.Time) error {
	const query = `
		UPDATE borrow_records
		SET returned_at = $3
		WHERE patron_id = $1 AND book_id = $2 AND returned_at IS NULL`

	tag, err := r.db.Exec(ctx, query, patronID, bookID, returnedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to set return date", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("no outstanding record to return", nil, infra.KindNotFound)
	}
	return nil
}

func scanRecord(row pgx.Row) (*commands.RecordSnapshot, error) {
	var (
		snap       commands.RecordSnapshot
		returnedAt pgtype.Timestamptz
	)
	if err := row.Scan(&snap.ID, &snap.PatronID, &snap.BookID, &snap.BorrowedAt, &snap.DueAt, &returnedAt); err != nil {
		return nil, err
	}
	if returnedAt.Valid {
		t := returnedAt.Time
		snap.ReturnedAt = &t
	}
	return &snap, nil
}
