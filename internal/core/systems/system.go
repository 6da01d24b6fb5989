package systems

import (
	"context"
	"errors"
	"time"

	"github.com/clowdy/clowdy/internal/core/ecs/component"
	"github.com/clowdy/clowdy/internal/core/ecs/entity"
)

var (
	ErrNilSystem       = errors.New("nil system")
	ErrDuplicateSystem = errors.New("system already registered")
)

// System processes the pools of one pool type once per tick.
type System interface {
	Name() string
	PoolType() component.PoolType
	Priority() Priority
	// Update receives a snapshot of the pools of PoolType taken at the start
	// of the stage the system runs in.
	Update(ctx context.Context, dt time.Duration, view entity.View) error
}

// Priority defines execution order. Higher priorities run first; systems of
// equal priority run concurrently.
type Priority uint16

const (
	PriorityLowest  Priority = 100
	PriorityLow     Priority = 500
	PriorityNormal  Priority = 600
	PriorityHigh    Priority = 1000
	PriorityHighest Priority = 1300
)

// UpdateFunc is the signature of a system body.
type UpdateFunc func(ctx context.Context, dt time.Duration, view entity.View) error

// Func adapts a plain function into a System.
type Func struct {
	name     string
	poolType component.PoolType
	priority Priority
	update   UpdateFunc
}

func NewFunc(name string, poolType component.PoolType, priority Priority, update UpdateFunc) *Func {
	return &Func{name: name, poolType: poolType, priority: priority, update: update}
}

func (f *Func) Name() string                 { return f.name }
func (f *Func) PoolType() component.PoolType { return f.poolType }
func (f *Func) Priority() Priority           { return f.priority }

func (f *Func) Update(ctx context.Context, dt time.Duration, view entity.View) error {
	if f.update == nil {
		return nil
	}
	return f.update(ctx, dt, view)
}

// Metrics provides runtime metrics for a system
type Metrics struct {
	ExecutionCount     uint64
	TotalExecutionTime time.Duration
	MaxExecutionTime   time.Duration
	LastExecutionTime  time.Duration
	ErrorCount         uint64
	LastError          error
	PoolsProcessed     uint64
}

// AverageExecutionTime is zero before the first run.
func (m Metrics) AverageExecutionTime() time.Duration {
	if m.ExecutionCount == 0 {
		return 0
	}
	return m.TotalExecutionTime / time.Duration(m.ExecutionCount)
}

func (m *Metrics) record(elapsed time.Duration, pools int, err error) {
	m.ExecutionCount++
	m.TotalExecutionTime += elapsed
	m.LastExecutionTime = elapsed
	m.MaxExecutionTime = max(m.MaxExecutionTime, elapsed)
	m.PoolsProcessed += uint64(pools)
	if err != nil {
		m.ErrorCount++
		m.LastError = err
	}
}
