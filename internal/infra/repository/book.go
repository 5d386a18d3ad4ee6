package repository

import (
	"context"
	"errors"

	"library-clean-service/internal/domain/book"
	"library-clean-service/internal/infra"
	"library-clean-service/internal/usecase/commands"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgUniqueViolation = "23505"

type BookRepository struct {
	db *pgxpool.Pool
}

func NewBookRepository(db *pgxpool.Pool) *BookRepository {
	return &BookRepository{db: db}
}

func (r *BookRepository) Create(ctx context.Context, b *book.Book) (int64, error) {
	const query = `
		INSERT INTO books (title, author, isbn, total_copies, available_copies)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query,
		b.Title().String(), b.Author().String(), b.ISBN().String(),
		b.TotalCopies(), b.AvailableCopies(),
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return 0, infra.WrapRepoErr("duplicate isbn", err, infra.KindDuplicateKey)
		}
		return 0, infra.WrapRepoErr("failed to insert book", err)
	}
	return id, nil
}

func (r *BookRepository) FindByID(ctx context.Context, id int64) (*commands.BookSnapshot, error) {
	const query = `
		SELECT id, title, author, isbn, total_copies, available_copies
		FROM books
		WHERE id = $1`

	return r.scanSnapshot(r.db.QueryRow(ctx, query, id), "failed to find book by id")
}

func (r *BookRepository) FindByISBN(ctx context.Context, isbn string) (*commands.BookSnapshot, error) {
	const query = `
		SELECT id, title, author, isbn, total_copies, available_copies
		FROM books
		WHERE isbn = $1`

	return r.scanSnapshot(r.db.QueryRow(ctx, query, isbn), "failed to find book by isbn")
}

// AdjustAvailableCopies applies a signed delta and lets the database enforce
// the 0..total_copies envelope; an out-of-range adjustment matches no row.
func (r *BookRepository) AdjustAvailableCopies(ctx context.Context, id int64, delta int32) error {
	const query = `
		UPDATE books
		SET available_copies = available_copies + $2
		WHERE id = $1
		  AND available_copies + $2 BETWEEN 0 AND total_copies`

	tag, err := r.db.Exec(ctx, query, id, delta)
	if err != nil {
		return infra.WrapRepoErr("failed to adjust available copies", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("availability adjustment out of range", nil, infra.KindConflict)
	}
	return nil
}

func (r *BookRepository) scanSnapshot(row pgx.Row, msg string) (*commands.BookSnapshot, error) {
	var snap commands.BookSnapshot
	err := row.Scan(&snap.ID, &snap.Title, &snap.Author, &snap.ISBN, &snap.TotalCopies, &snap.AvailableCopies)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("book not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr(msg, err)
	}
	return &snap, nil
}
