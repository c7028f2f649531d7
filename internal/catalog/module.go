package catalog

import (
	"go.uber.org/fx"

	"github.com/polkiloo/foodstall/internal/config"
)

// Module provides the menu catalog.
var Module = fx.Provide(func(cfg *config.Config) (*Catalog, error) {
	return Load(cfg.MenuFile)
})
