package bootstrap

import (
	"library-clean-service/internal/infra/gateway"
	"library-clean-service/internal/pkg/config"
	"library-clean-service/internal/usecase/commands"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewGateway,
			fx.As(new(commands.PaymentGateway)),
		),
	),
)

func NewGateway(cfg config.Config) *gateway.HTTPGateway {
	return gateway.NewHTTPGateway(cfg.Gateway)
}
