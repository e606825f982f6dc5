package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/COMOCO0102/Game-plan/audio"
	"github.com/COMOCO0102/Game-plan/config"
	"github.com/COMOCO0102/Game-plan/core"
	"github.com/COMOCO0102/Game-plan/engine"
	"github.com/COMOCO0102/Game-plan/input"
	"github.com/COMOCO0102/Game-plan/logs"
	"github.com/COMOCO0102/Game-plan/terminal"
)

const appName = "game-plan"

var (
	configFlag     = flag.String("config", "", "config file (default: configs/game-plan.yaml searched upward)")
	difficultyFlag = flag.Int("difficulty", -1, "fixed difficulty 1-4; 0 asks every restart")
	seedFlag       = flag.Uint64("seed", 0, "board seed; 0 uses the config value or the clock")
	muteFlag       = flag.Bool("mute", false, "disable sound cues")
)

func main() {
	// Panic Recovery: restore the terminal before printing the stack
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}

// applyFlags layers command-line overrides on top of a loaded config
func applyFlags(cfg *config.Config) {
	if *difficultyFlag >= 0 {
		cfg.Difficulty.Level = *difficultyFlag
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
}

func run() error {
	loader, err := config.NewLoader(*configFlag)
	if err != nil {
		return err
	}
	cfg, err := loader.Load()
	if err != nil {
		return err
	}
	applyFlags(&cfg)
	if err := loader.Validate(cfg); err != nil {
		return err
	}

	if err := logs.Init(appName, cfg.Log); err != nil {
		return fmt.Errorf("init logs: %w", err)
	}
	defer logs.Sync()
	logs.Info("starting", zap.String("config", loader.Path()), zap.Int("level", cfg.Difficulty.Level))

	store := config.NewStore(cfg)

	bindings, err := cfg.Bindings()
	if err != nil {
		return err
	}
	keys, err := input.NewKeyTable(bindings)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	ui, err := terminal.New(screen, keys, logs.Logger().Named("terminal"))
	if err != nil {
		return err
	}
	defer ui.Close()

	sound := audio.NewSoundManager(logs.Logger().Named("audio"))
	if err := sound.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		logs.Warn("audio unavailable", zap.Error(err))
	}
	defer sound.Cleanup()
	sound.SetMuted(!cfg.Audio.Enabled)

	loader.Watch(func(next config.Config, err error) {
		if err != nil {
			logs.Warn("config reload rejected", zap.Error(err))
			return
		}
		applyFlags(&next)
		store.Set(next)
		sound.SetMuted(!next.Audio.Enabled)
		if err := logs.SetLevel(next.Log.Level); err != nil {
			logs.Warn("log level unchanged", zap.Error(err))
		}
		logs.Info("config reloaded, applies from the next episode")
	})

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logs.Info("random seed", zap.Uint64("seed", seed))

	session := engine.NewSession(ui, store.Settings,
		engine.WithLogger(logs.Logger().Named("session")),
		engine.WithRand(rand.New(rand.NewPCG(seed, seed>>1|1))),
		engine.WithEventHandler(sound),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	core.Go(func() {
		select {
		case <-ui.Done():
			cancel()
		case <-ctx.Done():
		}
	})

	ui.Start()
	err = session.Run(ctx, ui.Intents())

	switch {
	case err == nil, errors.Is(err, context.Canceled), errors.Is(err, terminal.ErrClosed):
		logs.Info("game exited", zap.Int("episodes", session.Episode()))
		return nil
	default:
		logs.Error("game failed", zap.Error(err))
		return err
	}
}
