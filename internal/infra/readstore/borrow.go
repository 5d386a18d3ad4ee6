package readstore

import (
	"context"
	"errors"

	"library-clean-service/internal/infra"
	"library-clean-service/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BorrowReadStore struct {
	db *pgxpool.Pool
}

func NewBorrowReadStore(db *pgxpool.Pool) *BorrowReadStore {
	return &BorrowReadStore{db: db}
}

func (s *BorrowReadStore) OutstandingByPatron(ctx context.Context, patronID string) ([]*queries.LoanView, error) {
	const query = `
		SELECT br.id, br.book_id, b.title, br.borrowed_at, br.due_at, br.returned_at
		FROM borrow_records br
		JOIN books b ON b.id = br.book_id
		WHERE br.patron_id = $1 AND br.returned_at IS NULL
		ORDER BY br.borrowed_at`

	rows, err := s.db.Query(ctx, query, patronID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list outstanding loans", err)
	}
	defer rows.Close()

	var views []*queries.LoanView
	for rows.Next() {
		v, err := scanLoan(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan loan row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate loan rows", err)
	}
	return views, nil
}

func (s *BorrowReadStore) LatestByPatronAndBook(ctx context.Context, patronID string, bookID int64) (*queries.LoanView, error) {
	const query = `
		SELECT br.id, br.book_id, b.title, br.borrowed_at, br.due_at, br.returned_at
		FROM borrow_records br
		JOIN books b ON b.id = br.book_id
		WHERE br.patron_id = $1 AND br.book_id = $2
		ORDER BY br.borrowed_at DESC
		LIMIT 1`

	v, err := scanLoan(s.db.QueryRow(ctx, query, patronID, bookID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("loan not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find latest loan", err)
	}
	return v, nil
}

func scanLoan(row pgx.Row) (*queries.LoanView, error) {
	var (
		v          queries.LoanView
		returnedAt pgtype.Timestamptz
	)
	if err := row.Scan(&v.RecordID, &v.BookID, &v.BookTitle, &v.BorrowedAt, &v.DueAt, &returnedAt); err != nil {
		return nil, err
	}
	if returnedAt.Valid {
		t := returnedAt.Time
		v.ReturnedAt = &t
	}
	return &v, nil
}
