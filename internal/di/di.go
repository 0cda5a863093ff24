package di

import (
	"io"

	"github.com/samber/do"
	"github.com/zhulik/ccpadmin/internal/config"
	"github.com/zhulik/ccpadmin/internal/logging"
	"github.com/zhulik/ccpadmin/internal/registry"
)

// New returns the root registry of the process with config and logger provided.
func New(cfg config.Config, logOutput io.Writer) *registry.Registry {
	injector := do.New()

	config.Register(injector, cfg)
	logging.Register(injector, logOutput)

	return registry.FromInjector(injector)
}
