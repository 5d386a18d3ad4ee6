package components

import (
	"library-clean-service/internal/infra/readstore"
	repo_impl "library-clean-service/internal/infra/repository"
	"library-clean-service/internal/usecase/commands"
	"library-clean-service/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewBookRepository,
			fx.As(new(commands.BookRepository)),
		),
		fx.Annotate(
			repo_impl.NewBorrowRecordRepository,
			fx.As(new(commands.BorrowRecordRepository)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewBookReadStore,
			fx.As(new(queries.BookReadStore)),
		),
		fx.Annotate(
			readstore.NewBorrowReadStore,
			fx.As(new(queries.BorrowReadStore)),
		),
	),
)
