package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"runtime/debug"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/martians/config"
	"github.com/lixenwraith/martians/engine"
	"github.com/lixenwraith/martians/input"
	"github.com/lixenwraith/martians/render"
	"github.com/lixenwraith/martians/systems"
	"github.com/lixenwraith/martians/telemetry"
)

var (
	configFlag = flag.String("config", "", "Path to a martians config file (toml, yaml or json)")
	debugFlag  = flag.Bool("debug", false, "Write a debug log to the configured log directory")
	seedFlag   = flag.Int64("seed", 0, "Random seed, 0 picks one from the clock")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

// handleCrash must be deferred directly so recover sees the panic
// It sets the exit code instead of exiting, so the remaining deferred cleanup still runs
func handleCrash(code *int, fini func(), logger zerolog.Logger, w io.Writer) {
	r := recover()
	if r == nil {
		return
	}
	fini()
	logger.Error().Interface("panic", r).Msg("game crashed")
	fmt.Fprintf(w, "\n\x1b[31mMARTIANS CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(w, "Stack Trace:\n%s\n", debug.Stack())
	*code = 1
}

func run() (code int) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "martians: %v\n", err)
		return 2
	}

	logger, logFile, err := setupLogging(*debugFlag, cfg.Log.Dir, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "martians: %v\n", err)
		return 2
	}
	if logFile != nil {
		defer logFile.Close()
	}

	metrics, err := telemetry.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "martians: %v\n", err)
		return 1
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	var finiOnce sync.Once
	fini := func() { finiOnce.Do(screen.Fini) }
	defer fini()

	// Panic Recovery: restore the terminal before printing the crash
	defer handleCrash(&code, fini, logger, os.Stderr)

	grid, err := cfg.ResolveGrid(screen.Size())
	if err != nil {
		fini()
		fmt.Fprintf(os.Stderr, "martians: %v\n", err)
		return 2
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info().Int64("seed", seed).Msg("starting")

	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx := engine.NewGameContext(cfg, grid, engine.NewMonotonicTimeProvider(), rand.New(rand.NewSource(seed)), logger, metrics)
	systems.Register(ctx)
	ctx.SpawnTank()

	poller := input.NewPoller(screen, input.DefaultKeyTable(), cfg.Input.QueueSize, logger)
	poller.Start()

	frame := render.NewFrame(render.NewTerminalRenderer(screen, grid))
	result := engine.NewGame(ctx, poller, frame).Run(sigCtx)

	fini()
	<-poller.Done()

	if err := poller.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "martians: %v\n", err)
		return 1
	}

	fmt.Printf("%s: score %d, %d martians destroyed in %d ticks\n",
		result.Phase, result.Score, result.Kills, result.Ticks)
	return 0
}
