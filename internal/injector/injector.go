//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/collide/internal/core/observability/log"
	"github.com/zeusync/collide/internal/debugview"
	"github.com/zeusync/collide/internal/scene"
)

var loggerSet = wire.NewSet(
	log.Provide,
	wire.Bind(new(log.Log), new(*log.Logger)),
)

func ProvideLogger() *log.Logger {
	wire.Build(log.Provide)
	return nil
}

func InitializeRunner(workers int) *scene.Runner {
	wire.Build(loggerSet, scene.NewRunner)
	return nil
}

func InitializeDebugView(config debugview.Config) *debugview.Server {
	wire.Build(loggerSet, debugview.NewServer)
	return nil
}
