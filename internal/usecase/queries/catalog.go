package queries

import (
	"context"
	"strings"

	"library-clean-service/internal/pkg/errs"
)

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/queries/catalog_mock.go -package=queriesmock

var ErrDatabaseOperationFailed = errs.New("database operation failed")

// Search fields the catalog understands. Anything else yields no results
// rather than an error.
const (
	SearchFieldTitle  = "title"
	SearchFieldAuthor = "author"
	SearchFieldISBN   = "isbn"
)

type CatalogQueries interface {
	ListBooks(ctx context.Context) ([]*BookView, error)
	// SearchBooks matches case-insensitive substrings on title and author
	// and exact strings on ISBN. An empty term or unknown field returns an
	// empty result.
	SearchBooks(ctx context.Context, term, field string) ([]*BookView, error)
}

type catalogQueriesImpl struct {
	books BookReadStore
}

func NewCatalogQueries(books BookReadStore) CatalogQueries {
	return &catalogQueriesImpl{books: books}
}

func (q *catalogQueriesImpl) ListBooks(ctx context.Context) ([]*BookView, error) {
	views, err := q.books.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *catalogQueriesImpl) SearchBooks(ctx context.Context, term, field string) ([]*BookView, error) {
	if term == "" {
		return []*BookView{}, nil
	}

	var match func(*BookView) bool
	lowered := strings.ToLower(term)
	switch field {
	case SearchFieldTitle:
		match = func(b *BookView) bool { return strings.Contains(strings.ToLower(b.Title), lowered) }
	case SearchFieldAuthor:
		match = func(b *BookView) bool { return strings.Contains(strings.ToLower(b.Author), lowered) }
	case SearchFieldISBN:
		match = func(b *BookView) bool { return b.ISBN == term }
	default:
		return []*BookView{}, nil
	}

	views, err := q.books.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	results := make([]*BookView, 0, len(views))
	for _, b := range views {
		if match(b) {
			results = append(results, b)
		}
	}
	return results, nil
}
