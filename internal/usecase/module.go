package usecase

import (
	"go.uber.org/fx"

	"courierpay/internal/config"
	"courierpay/internal/domain/repository"
	pkgAuth "courierpay/internal/pkg/auth"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewAuthUseCase,
	newOrderUseCase,
	NewBalanceUseCase,
)

func newOrderUseCase(
	orders repository.OrderRepository,
	participants repository.ParticipantRepository,
	authz pkgAuth.Authorizer,
	events EventPublisher,
	cfg *config.Config,
) *OrderUseCase {
	return NewOrderUseCase(orders, participants, authz, events, cfg.DriverClaimWait)
}
