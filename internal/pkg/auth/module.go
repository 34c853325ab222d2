package auth

import (
	"courierpay/internal/config"

	"go.uber.org/fx"
)

// Module provides authentication and authorization primitives via fx.
var Module = fx.Options(
	fx.Provide(newPasswordHasher),
	fx.Provide(newTokenStrategy),
	fx.Provide(func(admin *Administrator) Authorizer { return NewStaticAuthorizer(admin) }),
)

func newPasswordHasher() PasswordHasher {
	return NewBcryptHasher(0)
}

type strategyParams struct {
	fx.In

	Config *config.Config
}

func newTokenStrategy(p strategyParams) Strategy {
	return NewHMACStrategy(p.Config.TokenSecret, Options{})
}
