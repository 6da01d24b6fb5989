package systems

import (
	"context"
	"sync"
	"time"

	"github.com/clowdy/clowdy/internal/core/ecs/component"
	"github.com/clowdy/clowdy/internal/core/ecs/entity"
	"github.com/clowdy/clowdy/internal/core/observability/log"
)

// Census counts the pools and components of one pool type every tick.
type Census struct {
	poolType component.PoolType
	logger   log.Log

	mu   sync.RWMutex
	last entity.Stats
}

func NewCensus(poolType component.PoolType, logger log.Log) *Census {
	if logger == nil {
		logger = log.Nop()
	}
	return &Census{
		poolType: poolType,
		logger:   logger.With(log.String("system", "census"), log.Stringer("pool_type", poolType)),
		last:     entity.Stats{PoolType: poolType},
	}
}

func (c *Census) Name() string                 { return "census." + c.poolType.String() }
func (c *Census) PoolType() component.PoolType { return c.poolType }
func (c *Census) Priority() Priority           { return PriorityLowest }

func (c *Census) Update(_ context.Context, _ time.Duration, view entity.View) error {
	stats := entity.Stats{PoolType: c.poolType, Pools: view.Len()}
	for _, pool := range view.Pools() {
		stats.Components += pool.Size()
	}

	c.mu.Lock()
	changed := stats != c.last
	c.last = stats
	c.mu.Unlock()

	if changed {
		c.logger.Debug("census changed", log.Int("pools", stats.Pools), log.Int("components", stats.Components))
	}
	return nil
}

// Last returns the counts taken by the most recent Update.
func (c *Census) Last() entity.Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.last
}
