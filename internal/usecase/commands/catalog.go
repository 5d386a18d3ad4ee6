package commands

import (
	"context"
	"fmt"

	"library-clean-service/internal/domain/book"
	"library-clean-service/internal/infra"
	"library-clean-service/internal/pkg/errs"
)

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/commands/catalog_mock.go -package=commandsmock

var (
	ErrDuplicateISBN           = errs.New("a book with this isbn already exists")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type AddBookResult struct {
	BookID  int64
	Message string
}

type CatalogCommands interface {
	AddBook(ctx context.Context, title, author, isbn string, totalCopies int32) (*AddBookResult, error)
}

type catalogUseCaseImpl struct {
	bookRepo BookRepository
}

func NewCatalogCommands(bookRepo BookRepository) CatalogCommands {
	return &catalogUseCaseImpl{bookRepo: bookRepo}
}

func (uc *catalogUseCaseImpl) AddBook(ctx context.Context, title, author, isbn string, totalCopies int32) (*AddBookResult, error) {
	entity, err := book.NewBook(title, author, isbn, totalCopies)
	if err != nil {
		return nil, err
	}

	existing, err := uc.bookRepo.FindByISBN(ctx, entity.ISBN().String())
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if existing != nil {
		return nil, ErrDuplicateISBN
	}

	id, err := uc.bookRepo.Create(ctx, entity)
	if err != nil {
		// A concurrent insert can still trip the unique index between the
		// lookup and the write.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateISBN
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &AddBookResult{
		BookID:  id,
		Message: fmt.Sprintf("Book %q has been successfully added to the catalog.", entity.Title().String()),
	}, nil
}
