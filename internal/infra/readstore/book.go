package readstore

import (
	"context"

	"library-clean-service/internal/infra"
	"library-clean-service/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type BookReadStore struct {
	db *pgxpool.Pool
}

func NewBookReadStore(db *pgxpool.Pool) *BookReadStore {
	return &BookReadStore{db: db}
}

func (s *BookReadStore) FindAll(ctx context.Context) ([]*queries.BookView, error) {
	const query = `
		SELECT id, title, author, isbn, total_copies, available_copies, created_at
		FROM books
		ORDER BY id`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list books", err)
	}
	defer rows.Close()

	var views []*queries.BookView
	for rows.Next() {
		var v queries.BookView
		if err := rows.Scan(&v.ID, &v.Title, &v.Author, &v.ISBN, &v.TotalCopies, &v.AvailableCopies, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan book row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate book rows", err)
	}
	return views, nil
}
