// Package sandbox runs a wired world at a fixed tick rate.
package sandbox

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/clowdy/clowdy/internal/core/ecs"
	"github.com/clowdy/clowdy/internal/core/ecs/entity"
	"github.com/clowdy/clowdy/internal/core/events/bus"
	"github.com/clowdy/clowdy/internal/core/observability/log"
	"github.com/clowdy/clowdy/internal/injector"
	"github.com/clowdy/clowdy/internal/scene"
)

// Runner drives the scheduler of a sandbox. The world is only mutated from
// the run loop, under World.Mutate.
type Runner struct {
	sandbox *injector.Sandbox
	logger  log.Log

	published atomic.Int64
	retracted atomic.Int64
	subs      []bus.Subscription
}

func NewRunner(sandbox *injector.Sandbox) *Runner {
	return &Runner{
		sandbox: sandbox,
		logger:  sandbox.Logger.With(log.String("module", "sandbox")),
	}
}

// Published and Retracted count pool lifecycle events seen since Run started.
func (r *Runner) Published() int64 { return r.published.Load() }
func (r *Runner) Retracted() int64 { return r.retracted.Load() }

// LoadScene replaces the world's entities with the configured scene. The scene
// is first built into a scratch world; if that fails the live world is left
// untouched. Without a scene the world is left empty.
func (r *Runner) LoadScene() error {
	path := r.sandbox.Config.Scene
	if path == "" {
		return nil
	}
	s, err := scene.LoadFile(path)
	if err != nil {
		return err
	}
	if _, err := s.Build(ecs.NewWorld(nil, nil)); err != nil {
		return err
	}

	var result *scene.Result
	r.sandbox.World.Mutate(func(w *ecs.World) {
		w.Reset()
		result, err = s.Build(w)
	})
	if err != nil {
		return err
	}
	r.logger.Info("scene loaded", log.String("scene", s.Name), log.Int("entities", result.Len()))
	return nil
}

// Run ticks until ctx is done or the configured number of ticks has run. With
// watch set, the scene file is rebuilt whenever it changes on disk; a scene
// that fails to load is logged and the previous one keeps running.
func (r *Runner) Run(ctx context.Context, watch bool) error {
	if err := r.subscribe(); err != nil {
		return err
	}
	defer r.unsubscribe()

	if err := r.LoadScene(); err != nil {
		return err
	}

	var (
		events <-chan string
		errs   <-chan error
	)
	if watch && r.sandbox.Config.Scene != "" {
		watcher, err := scene.NewWatcher(r.sandbox.Config.Scene)
		if err != nil {
			return err
		}
		defer watcher.Close()
		events, errs = watcher.Events, watcher.Errors
	}

	cfg := r.sandbox.Config
	dt := cfg.TickInterval()
	ticker := time.NewTicker(dt)
	defer ticker.Stop()

	r.logger.Info("sandbox started", log.Int("tick_rate", cfg.TickRate), log.Int("ticks", cfg.Ticks), log.Bool("watch", events != nil))
	defer r.report()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := r.tick(ctx, dt); err != nil {
				if errors.Is(err, context.Canceled) {
					return nil
				}
				r.logger.Warn("tick failed", log.Error(err))
			}
			if cfg.Ticks > 0 && r.sandbox.Scheduler.Ticks() >= uint64(cfg.Ticks) {
				return nil
			}
		case name, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			r.logger.Info("scene changed", log.String("file", name))
			if err := r.LoadScene(); err != nil {
				r.logger.Error("scene reload failed", log.Error(err))
			}
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			r.logger.Warn("watch failed", log.Error(err))
		}
	}
}

func (r *Runner) tick(ctx context.Context, dt time.Duration) (err error) {
	r.sandbox.World.Mutate(func(*ecs.World) {
		err = r.sandbox.Scheduler.Tick(ctx, dt)
	})
	return err
}

func (r *Runner) subscribe() error {
	events := r.sandbox.World.Events()
	if events == nil {
		return nil
	}
	for eventType, counter := range map[string]*atomic.Int64{
		entity.EventPoolPublished: &r.published,
		entity.EventPoolRetracted: &r.retracted,
	} {
		sub, err := events.Subscribe(eventType, func(bus.Event) error {
			counter.Add(1)
			return nil
		})
		if err != nil {
			return err
		}
		r.subs = append(r.subs, sub)
	}
	return nil
}

func (r *Runner) unsubscribe() {
	for _, sub := range r.subs {
		_ = r.sandbox.World.Events().Unsubscribe(sub)
	}
	r.subs = nil
}

func (r *Runner) report() {
	r.logger.Info("sandbox stopped",
		log.Uint64("ticks", r.sandbox.Scheduler.Ticks()),
		log.Int("entities", r.sandbox.World.Len()),
		log.Int64("pools_published", r.published.Load()),
		log.Int64("pools_retracted", r.retracted.Load()),
	)
	for _, s := range r.sandbox.World.Manager().Stats() {
		r.logger.Info("pool census",
			log.Stringer("pool_type", s.PoolType),
			log.Int("pools", s.Pools),
			log.Int("components", s.Components),
		)
	}
}
