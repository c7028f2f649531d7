package auth

import (
	"go.uber.org/fx"

	"github.com/polkiloo/foodstall/internal/config"
)

// Module provides authentication primitives via fx.
var Module = fx.Options(
	fx.Provide(newPasswordHasher),
	fx.Provide(newTokenStrategy),
	fx.Provide(newPasswordGate),
)

func newPasswordHasher() PasswordHasher {
	return NewBcryptHasher(0)
}

type strategyParams struct {
	fx.In

	Config *config.Config
}

func newTokenStrategy(p strategyParams) Strategy {
	return NewHMACStrategy(p.Config.TokenSecret, Options{TTL: p.Config.TokenTTL})
}

type gateParams struct {
	fx.In

	Config *config.Config
	Hasher PasswordHasher
}

func newPasswordGate(p gateParams) (*PasswordGate, error) {
	return NewPasswordGate(p.Hasher, p.Config.StaffPassword)
}
