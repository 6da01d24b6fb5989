package systems

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/clowdy/clowdy/internal/core/ecs/entity"
	"github.com/clowdy/clowdy/internal/core/observability/log"
	"github.com/clowdy/clowdy/pkg/concurrent"
	"github.com/clowdy/clowdy/pkg/sequence"
)

// Scheduler runs registered systems against a registry once per tick.
//
// Systems are grouped into stages by priority, highest first. The stages run
// one after another; the systems inside a stage run concurrently, each with its
// own snapshot view. A failing system does not stop the tick: every error is
// collected and returned joined.
type Scheduler struct {
	mu      sync.RWMutex
	manager *entity.Manager
	logger  log.Log
	systems map[string]System
	metrics map[string]*Metrics
	ticks   uint64
}

func NewScheduler(manager *entity.Manager, logger log.Log) *Scheduler {
	if logger == nil {
		logger = log.Nop()
	}
	return &Scheduler{
		manager: manager,
		logger:  logger.With(log.String("module", "systems.scheduler")),
		systems: make(map[string]System),
		metrics: make(map[string]*Metrics),
	}
}

func (s *Scheduler) Register(system System) error {
	if system == nil {
		return ErrNilSystem
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	name := system.Name()
	if _, exists := s.systems[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateSystem, name)
	}
	s.systems[name] = system
	s.metrics[name] = &Metrics{}

	s.logger.Debug("system registered",
		log.String("system", name),
		log.Stringer("pool_type", system.PoolType()),
		log.Int("priority", int(system.Priority())),
	)
	return nil
}

// Unregister reports whether a system with that name was registered.
func (s *Scheduler) Unregister(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.systems[name]; !exists {
		return false
	}
	delete(s.systems, name)
	delete(s.metrics, name)
	s.logger.Debug("system unregistered", log.String("system", name))
	return true
}

func (s *Scheduler) System(name string) (System, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	system, ok := s.systems[name]
	return system, ok
}

// Systems returns the registered systems in execution order.
func (s *Scheduler) Systems() []System {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ordered()
}

// Stages returns the execution order grouped by priority.
func (s *Scheduler) Stages() [][]System {
	return sequence.Chunk(sequence.From(s.Systems()), System.Priority)
}

func (s *Scheduler) Metrics(name string) (Metrics, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.metrics[name]
	if !ok {
		return Metrics{}, false
	}
	return *m, true
}

// Ticks returns the number of completed ticks.
func (s *Scheduler) Ticks() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ticks
}

// Tick runs every stage once. The registry must not be mutated by other
// goroutines while a tick is in progress.
func (s *Scheduler) Tick(ctx context.Context, dt time.Duration) error {
	var (
		errsMu sync.Mutex
		errs   []error
	)
	for _, stage := range s.Stages() {
		if err := ctx.Err(); err != nil {
			return errors.Join(append(errs, err)...)
		}
		err := concurrent.Concurrent(ctx, sequence.From(stage), func(ctx context.Context, system System) error {
			if err := s.run(ctx, dt, system); err != nil {
				errsMu.Lock()
				errs = append(errs, err)
				errsMu.Unlock()
			}
			return nil
		})
		if err != nil {
			errs = append(errs, err)
		}
	}

	s.mu.Lock()
	s.ticks++
	s.mu.Unlock()

	return errors.Join(errs...)
}

func (s *Scheduler) run(ctx context.Context, dt time.Duration, system System) (err error) {
	view := s.manager.View(system.PoolType())
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("system %s panicked: %v", system.Name(), r)
		}
		elapsed := time.Since(start)

		s.mu.Lock()
		if m, ok := s.metrics[system.Name()]; ok {
			m.record(elapsed, view.Len(), err)
		}
		s.mu.Unlock()

		if err != nil {
			s.logger.Error("system failed", log.String("system", system.Name()), log.Error(err))
		}
	}()

	if err = system.Update(ctx, dt, view); err != nil {
		err = fmt.Errorf("system %s: %w", system.Name(), err)
	}
	return err
}

func (s *Scheduler) ordered() []System {
	out := make([]System, 0, len(s.systems))
	for _, system := range s.systems {
		out = append(out, system)
	}
	slices.SortFunc(out, func(a, b System) int {
		if c := cmp.Compare(b.Priority(), a.Priority()); c != 0 {
			return c
		}
		return cmp.Compare(a.Name(), b.Name())
	})
	return out
}
