package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/daedelecs/daedel/internal/config"
	"github.com/daedelecs/daedel/internal/core/ecs"
	"github.com/daedelecs/daedel/internal/data"
	"github.com/daedelecs/daedel/internal/system"
	"github.com/daedelecs/daedel/internal/world"
	"github.com/pkg/profile"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Startup display helpers ────────────────────────────────────────

func printSection(title string) {
	lineLen := 46 - len(title) - 1
	if lineLen < 3 {
		lineLen = 3
	}
	fmt.Fprintf(os.Stderr, "  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label string, count int) {
	numStr := fmt.Sprintf("%d", count)
	dotsLen := 42 - len(label) - len(numStr)
	if dotsLen < 3 {
		dotsLen = 3
	}
	fmt.Fprintf(os.Stderr, "  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), numStr)
}

// ── Main logic ─────────────────────────────────────────────────────

func run() error {
	// 1. Load config
	cfgPath := "config/daedel.toml"
	if p := os.Getenv("DAEDEL_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	if stop := startProfile(cfg.Profile); stop != nil {
		defer stop()
	}

	// 3. Resolve systems before touching the world so a typo fails fast
	systems := make([]ecs.System[*world.State], 0, len(cfg.Run.Systems))
	for _, name := range cfg.Run.Systems {
		s, err := system.Lookup(name)
		if err != nil {
			return fmt.Errorf("run.systems: %w", err)
		}
		systems = append(systems, s)
	}

	// 4. Build world from scene
	printSection("Scene")
	scene, err := data.LoadScene(cfg.Scene.Path)
	if err != nil {
		return fmt.Errorf("load scene: %w", err)
	}
	printStat("Entity templates", scene.Count())

	w := ecs.NewWorld(world.NewState(os.Stdout, cfg.Language()), log)
	ids, err := scene.Spawn(w)
	if err != nil {
		return fmt.Errorf("spawn scene: %w", err)
	}
	printStat("Entities spawned", len(ids))
	printStat("Rounds", cfg.Run.Rounds)
	fmt.Fprintln(os.Stderr)

	// 5. Dispatch
	for round := 0; round < cfg.Run.Rounds; round++ {
		w.State.Advance()
		for i, s := range systems {
			log.Debug("dispatch",
				zap.Int("round", w.State.Round),
				zap.String("system", cfg.Run.Systems[i]),
			)
			w.Run(s)
		}
	}

	log.Info("done",
		zap.Int("rounds", cfg.Run.Rounds),
		zap.Int("entities", w.Len()),
		zap.Int("systems", len(w.Systems())),
	)
	return nil
}

// startProfile starts the profiler named by cfg.Mode and returns its stop
// function, or nil when profiling is off.
func startProfile(cfg config.ProfileConfig) func() {
	var mode func(*profile.Profile)
	switch cfg.Mode {
	case "cpu":
		mode = profile.CPUProfile
	case "mem":
		mode = profile.MemProfile
	case "allocs":
		mode = profile.MemProfileAllocs
	default:
		return nil
	}
	p := profile.Start(mode, profile.ProfilePath(cfg.Path), profile.NoShutdownHook, profile.Quiet)
	return p.Stop
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
