// Package injector wires a runnable sandbox from its configuration.
package injector

import (
	"github.com/google/wire"

	"github.com/clowdy/clowdy/internal/config"
	"github.com/clowdy/clowdy/internal/core/ecs"
	"github.com/clowdy/clowdy/internal/core/ecs/component"
	"github.com/clowdy/clowdy/internal/core/ecs/entity"
	"github.com/clowdy/clowdy/internal/core/events/bus"
	"github.com/clowdy/clowdy/internal/core/observability/log"
	"github.com/clowdy/clowdy/internal/core/systems"
)

// Sandbox is everything a run loop needs.
type Sandbox struct {
	Config    *config.Config
	Logger    *log.Logger
	World     *ecs.World
	Scheduler *systems.Scheduler
}

var ProviderSet = wire.NewSet(
	ProvideLogger,
	wire.Bind(new(log.Log), new(*log.Logger)),
	bus.New,
	entity.NewManager,
	ecs.NewWorld,
	ProvideScheduler,
	wire.Struct(new(Sandbox), "*"),
)

func ProvideLogger(cfg *config.Config) (*log.Logger, error) {
	return log.NewWithConfig(cfg.Logger())
}

// ProvideScheduler registers the built-in systems.
func ProvideScheduler(manager *entity.Manager, logger log.Log, cfg *config.Config) (*systems.Scheduler, error) {
	scheduler := systems.NewScheduler(manager, logger)
	if err := scheduler.Register(systems.NewMovement()); err != nil {
		return nil, err
	}
	if cfg.Census {
		for _, poolType := range component.PoolTypes {
			if err := scheduler.Register(systems.NewCensus(poolType, logger)); err != nil {
				return nil, err
			}
		}
	}
	return scheduler, nil
}
