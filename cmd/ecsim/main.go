package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/l1jgo/ecs"
	"github.com/l1jgo/ecs/internal/config"
	"github.com/l1jgo/ecs/internal/data"
	"github.com/l1jgo/ecs/internal/scripting"
	"github.com/l1jgo/ecs/internal/sim"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load config
	cfgPath := "config/sim.toml"
	if p := os.Getenv("ECSIM_CONFIG"); p != "" {
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

	// 3. Load scenario data
	actors, err := data.LoadScenario(cfg.Data.ScenarioPath)
	if err != nil {
		return fmt.Errorf("scenario: %w", err)
	}

	// 4. Init scripting
	luaEngine, err := scripting.NewEngine(cfg.Data.ScriptsDir, log)
	if err != nil {
		return fmt.Errorf("scripting: %w", err)
	}
	defer luaEngine.Close()

	// 5. Spawn actors
	mgr := ecs.NewManager(ecs.WithLogger(log))
	env := &sim.Env{Log: log, Script: luaEngine}
	ids := sim.Spawn(mgr, env, actors)
	log.Info("scenario spawned",
		zap.Int("actors", len(ids)),
		zap.Int("steps", cfg.Sim.Steps),
		zap.Duration("tick", cfg.Sim.TickRate))

	// 6. Run simulation loop
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.Sim.TickRate)
	defer ticker.Stop()

	for step := 1; cfg.Sim.Steps == 0 || step <= cfg.Sim.Steps; step++ {
		select {
		case <-ticker.C:
			env.Step = step
			if report(mgr, ids, log) == 0 {
				log.Info("all actors dead, stopping early", zap.Int("step", step))
				return nil
			}
			mgr.Step()
			sim.Recover(mgr, cfg.Sim.Recovery)
		case sig := <-shutdownCh:
			log.Info("received shutdown signal", zap.String("signal", sig.String()))
			return nil
		}
	}
	report(mgr, ids, log)
	return nil
}

// report logs each actor's health and returns how many are still alive.
func report(mgr *ecs.Manager, ids []ecs.EntityID, log *zap.Logger) int {
	alive := 0
	for _, id := range ids {
		e := mgr.GetByID(id)
		if e == nil {
			log.Debug("actor gone", zap.Uint64("entity", uint64(id)))
			continue
		}
		alive++
		h := ecs.Get[sim.Health](e)
		if h == nil {
			continue
		}
		name := "?"
		if n := ecs.Get[sim.Name](e); n != nil {
			name = n.Value
		}
		log.Info("actor status",
			zap.String("name", name),
			zap.Uint64("entity", uint64(id)),
			zap.Int("health", h.HP))
	}
	return alive
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
