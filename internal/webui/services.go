package webui

import (
	"github.com/samber/do"
	"github.com/zhulik/ccpadmin/internal/core"
)

var _ core.ServiceDependency = (*Server)(nil)

func Register(injector *do.Injector) {
	do.Provide(injector, NewServer)
}
