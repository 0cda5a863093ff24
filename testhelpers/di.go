package testhelpers

import (
	"github.com/samber/do"
	"github.com/sirupsen/logrus"
	"github.com/zhulik/ccpadmin/internal/config"
	"github.com/zhulik/ccpadmin/internal/core"
	"github.com/zhulik/ccpadmin/internal/logging"
)

// NewInjector returns an injector holding cfg and a silent logger.
func NewInjector(cfg config.Config) *do.Injector {
	injector := do.New()

	do.ProvideValue[core.Config](injector, cfg)
	do.ProvideValue[logrus.FieldLogger](injector, logging.Discard())

	return injector
}
