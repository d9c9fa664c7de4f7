package cli

import (
	"toolctl/internal/config"
	"toolctl/internal/detect"
	"toolctl/internal/execx"
	"toolctl/internal/system"
)

// session bundles the per-invocation collaborators, built once from config.
// The CLI process is one application session, so the detection cache lives
// exactly as long as the process.
type session struct {
	cfg    config.Config
	runner execx.Runner
	engine *detect.Engine
}

func newSession() *session {
	cfg, err := config.Load()
	if err != nil {
		system.Logger.Warn("config load failed, using defaults", "err", err)
	}
	runner := execx.NewShell(cfg.CommandTimeout)
	cache := detect.NewCache(cfg.CacheTTL)
	engine := detect.New(runner, cache, detect.WithConcurrency(cfg.Concurrency))
	return &session{cfg: cfg, runner: runner, engine: engine}
}
