// Command sandbox loads a scene into a world and runs the built-in systems at
// a fixed tick rate.
//
// Profiling:
//
//	sandbox -config sandbox.yaml -ticks 600 -profile cpu
//	go tool pprof -http=":8000" ./sandbox cpu.pprof
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/profile"

	"github.com/clowdy/clowdy/internal/config"
	"github.com/clowdy/clowdy/internal/injector"
	"github.com/clowdy/clowdy/internal/sandbox"
)

func main() {
	configPath := flag.String("config", "", "path to the sandbox config file")
	ticks := flag.Int("ticks", -1, "number of ticks to run, 0 runs until interrupted (overrides config)")
	watch := flag.Bool("watch", false, "rebuild the scene when its file changes")
	profileMode := flag.String("profile", "", "write a cpu or mem profile to the working directory")
	flag.Parse()

	if err := run(*configPath, *ticks, *watch, *profileMode); err != nil {
		fmt.Fprintln(os.Stderr, "sandbox:", err)
		os.Exit(1)
	}
}

func run(configPath string, ticks int, watch bool, profileMode string) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.LoadFile(configPath); err != nil {
			return err
		}
	}
	if ticks >= 0 {
		cfg.Ticks = ticks
	}

	switch profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		return fmt.Errorf("unknown profile mode %q", profileMode)
	}

	sb, err := injector.InitializeSandbox(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = sb.Logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return sandbox.NewRunner(sb).Run(ctx, watch)
}
