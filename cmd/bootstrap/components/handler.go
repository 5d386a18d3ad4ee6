package components

import (
	"library-clean-service/internal/handler"
	"library-clean-service/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCatalogHandler,
		api.NewBorrowingHandler,
		api.NewPaymentHandler,
		api.NewReportHandler,
	),
	fx.Invoke(handler.NewRouter),
)
