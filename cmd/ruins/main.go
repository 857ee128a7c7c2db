// Package main runs the ruins game in a terminal. Commands are read one per
// line from stdin and every frame is redrawn to stdout.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/ruins/internal/config"
	"github.com/cory-johannsen/ruins/internal/frontend/text"
	"github.com/cory-johannsen/ruins/internal/frontend/window"
	"github.com/cory-johannsen/ruins/internal/game/ai"
	"github.com/cory-johannsen/ruins/internal/game/character"
	"github.com/cory-johannsen/ruins/internal/game/command"
	"github.com/cory-johannsen/ruins/internal/game/content"
	"github.com/cory-johannsen/ruins/internal/game/dice"
	"github.com/cory-johannsen/ruins/internal/game/engine"
	"github.com/cory-johannsen/ruins/internal/game/gamelog"
	"github.com/cory-johannsen/ruins/internal/game/power"
	"github.com/cory-johannsen/ruins/internal/game/world"
	"github.com/cory-johannsen/ruins/internal/observability"
	"github.com/cory-johannsen/ruins/internal/scripting"
	"github.com/cory-johannsen/ruins/internal/server"
)

const (
	logLines   = 6
	frameDelay = 60 * time.Millisecond
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "config.yaml", "path to configuration file")
	contentDir := flag.String("content", "", "content directory; overrides content.dir")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *contentDir != "" {
		cfg.Content.Dir = *contentDir
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	var src dice.Source = dice.NewCryptoSource()
	if cfg.Game.Seed != 0 {
		src = dice.NewSeededSource(cfg.Game.Seed)
	}

	// Load content
	loadStart := time.Now()
	repo, err := content.LoadDirectory(cfg.Content.Dir)
	if err != nil {
		logger.Fatal("loading content", zap.Error(err))
	}
	catalog, err := gamelog.LoadCatalog(cfg.Content.Locales(), cfg.Game.Locale)
	if err != nil {
		logger.Fatal("loading message catalog", zap.Error(err))
	}
	floors, err := world.LoadFloorsFromDir(filepath.Join(cfg.Content.Dir, "floors"))
	if err != nil {
		logger.Fatal("loading floors", zap.Error(err))
	}
	templates, err := character.LoadTemplates(filepath.Join(cfg.Content.Dir, "characters"))
	if err != nil {
		logger.Fatal("loading character templates", zap.Error(err))
	}
	domains, err := ai.LoadDomains(filepath.Join(cfg.Content.Dir, "ai"))
	if err != nil {
		logger.Fatal("loading behaviour domains", zap.Error(err))
	}
	logger.Info("content loaded",
		zap.Int("skills", len(repo.Skills())),
		zap.Int("floors", len(floors)),
		zap.Int("templates", len(templates)),
		zap.Int("domains", len(domains)),
		zap.Duration("elapsed", time.Since(loadStart)),
	)

	// Scripting
	scripts := scripting.NewManager(dice.NewLoggedRoller(src, logger), logger)
	defer scripts.Close()
	var hooks power.HookSet
	if cfg.Scripting.PowerDir != "" {
		if err := scripts.Load(scripting.PowerVM, cfg.Scripting.PowerDir, cfg.Scripting.InstructionLimit); err != nil {
			logger.Fatal("loading power scripts", zap.Error(err))
		}
		hooks = scripts.PowerHooks()
	}
	if cfg.Scripting.AIDir != "" {
		if err := scripts.Load(scripting.AIVM, cfg.Scripting.AIDir, cfg.Scripting.InstructionLimit); err != nil {
			logger.Fatal("loading behaviour scripts", zap.Error(err))
		}
	}
	behaviours := ai.NewRegistry()
	for _, d := range domains {
		if err := behaviours.Register(d, scripts, scripting.AIVM); err != nil {
			logger.Fatal("registering behaviour domain", zap.String("domain", d.ID), zap.Error(err))
		}
		for _, hook := range d.Preconditions() {
			if !scripts.HasHook(scripting.AIVM, hook) {
				logger.Warn("undefined behaviour precondition",
					zap.String("domain", d.ID),
					zap.String("precondition", hook),
				)
			}
		}
	}

	game, err := engine.New(engine.Options{
		Config:     cfg.Game,
		Content:    repo,
		Floors:     floors,
		Templates:  templates,
		Hooks:      hooks,
		Behaviours: behaviours,
		Source:     src,
		Cues:       text.NewLoggingCues(logger),
		Logger:     logger,
	})
	if err != nil {
		logger.Fatal("creating game", zap.Error(err))
	}
	scripts.GetChara = func(id string) *scripting.CharaInfo {
		c, ok := game.Chara(id)
		if !ok {
			return nil
		}
		return scripting.Info(c)
	}

	// Frontend
	registry := command.DefaultRegistry()
	router := window.NewRouter(
		window.NewDefaultHandler(registry, logger),
		text.NewLinePrompt(os.Stdout, "Text input:"),
		logger,
	)
	mgr := window.NewManager(game, router,
		text.NewCanvas(os.Stdout, cfg.Frontend.Color),
		text.NewRenderer(catalog, logLines),
		cfg.Frontend.FramesPerTick,
		logger,
	)
	input := window.NewLineSource(os.Stdin, command.NewDecoder(registry))

	var stopping atomic.Bool
	lc := server.NewLifecycle(logger)
	lc.Add("game-loop", &server.FuncService{
		StartFn: func() error { return run(mgr, input, &stopping) },
		StopFn:  func() { stopping.Store(true) },
	})

	logger.Info("game ready",
		zap.String("player", game.Player().Name),
		zap.Duration("startup", time.Since(start)),
	)
	if err := lc.Run(context.Background()); err != nil {
		logger.Error("game loop ended with error", zap.Error(err))
		os.Exit(1)
	}
}

// run drives the manager until the player quits, the input ends, or stop is set.
func run(mgr *window.Manager, input window.CommandSource, stop *atomic.Bool) error {
	if err := mgr.Redraw(); err != nil {
		return err
	}
	for !stop.Load() {
		if !mgr.AnimationNow() && !mgr.AdvanceTurn(input) {
			return nil
		}
		if err := mgr.Redraw(); err != nil {
			return err
		}
		if mgr.AnimationNow() {
			time.Sleep(frameDelay)
		}
	}
	return nil
}
