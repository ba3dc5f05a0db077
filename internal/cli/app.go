package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/dshills/commentary/internal/comment/registry"
	"github.com/dshills/commentary/internal/comment/resolve"
	"github.com/dshills/commentary/internal/comment/toggle"
	"github.com/dshills/commentary/internal/config"
	"github.com/dshills/commentary/internal/engine"
	"github.com/dshills/commentary/internal/log"
)

// app wires configuration, the registry and the toggle engine for one
// command invocation.
type app struct {
	logger    *slog.Logger
	config    *config.Manager
	mu        sync.RWMutex
	registry  *registry.Registry
	resolver  *resolve.Resolver
	workspace *engine.Workspace
	engine    *toggle.Engine
}

func newApp(opts *globalOptions, stderr io.Writer) (*app, error) {
	logCfg := log.FromEnv()
	logCfg.Output = stderr
	if opts.logLevel != "" {
		logCfg.Level = opts.logLevel
	}
	if opts.logFormat != "" {
		logCfg.Format = log.Format(opts.logFormat)
	}
	logger := log.New(logCfg)

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}
	mgr := config.NewManager(config.WithLogger(logger))
	for _, l := range config.DefaultLayers(opts.configPath, cwd) {
		mgr.AddLayer(l.Name, l.Path)
	}
	cfg, err := mgr.Load()
	if err != nil {
		return nil, err
	}

	reg, err := registry.Default().WithPatterns(cfg.Filetypes)
	if err != nil {
		return nil, err
	}
	res := resolve.New(reg, resolve.WithLogger(logger))
	config.BindResolver(mgr, res)

	ws := engine.NewWorkspace()
	eng := toggle.New(ws,
		toggle.WithResolver(res),
		toggle.WithLogger(logger),
		toggle.WithDefaultKind(cfg.Comment.DefaultStyle),
		toggle.WithPadding(cfg.Comment.Padding),
	)

	a := &app{
		logger:    logger,
		config:    mgr,
		registry:  reg,
		resolver:  res,
		workspace: ws,
		engine:    eng,
	}
	mgr.Subscribe(a.reloadFiletypes)
	return a, nil
}

// reloadFiletypes rebuilds detection from cfg's [filetypes]. Buffers
// already open keep their language. An invalid glob keeps the previous
// registry.
func (a *app) reloadFiletypes(cfg *config.Config) {
	reg, err := registry.Default().WithPatterns(cfg.Filetypes)
	if err != nil {
		a.logger.Warn("filetype patterns not applied", log.Error(err))
		return
	}
	a.mu.Lock()
	a.registry = reg
	a.mu.Unlock()
}

func (a *app) detection() *registry.Registry {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.registry
}

// open loads path into the workspace. An empty lang detects the language
// from the file name.
func (a *app) open(path, lang string) (int, *engine.Document, error) {
	opts := []engine.Option{
		engine.WithRegistry(a.detection()),
		engine.WithLogger(a.logger),
	}
	if lang != "" {
		opts = append(opts, engine.WithLanguage(lang))
	}
	n, doc, err := a.workspace.OpenFile(path, opts...)
	if err != nil {
		return 0, nil, err
	}
	a.logger.Debug("opened buffer", log.BufferKey, n, log.PathKey, path, log.LanguageKey, doc.Language())
	return n, doc, nil
}
