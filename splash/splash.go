// CLAUDE:SUMMARY Resolver entry point: looks up a UI's splash directive and resolves it into a Configuration.
// Package splash resolves the splash screen of a web UI.
//
// A UI is registered together with the directive naming its splash resource.
// Resolution dispatches on the resource's file name:
//   - .html, .htm        — parsed; the children of <head> then <body> become the contents
//   - .png, .jpg, .jpeg  — a single <img src="..."> element
//
// Usage:
//
//	reg := splash.NewRegistry()
//	reg.Register(splash.UI{Name: "main", Resources: assets, Dir: "ui/main"},
//		&splash.Directive{Value: "splash.html", Width: "400px", Height: "300px", Autohide: true})
//	res := splash.New(splash.Config{}, reg)
//	cfg, ok, err := res.Resolve(ctx, "main")
package splash

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/net/html"
)

// Resolver resolves registered UIs into splash configurations.
type Resolver struct {
	cfg      Config
	logger   *slog.Logger
	registry *Registry
	loader   *Loader
	renderer *Renderer
	fallback Configurator
}

// New creates a Resolver over reg. A nil reg is replaced by an empty Registry.
func New(cfg Config, reg *Registry) *Resolver {
	cfg.defaults()
	if reg == nil {
		reg = NewRegistry()
	}
	loader := NewLoader(cfg)
	return &Resolver{
		cfg:      cfg,
		logger:   cfg.Logger,
		registry: reg,
		loader:   loader,
		renderer: NewRenderer(cfg),
		fallback: DefaultConfigurator{Loader: loader},
	}
}

// Registry returns the registry the resolver reads from.
func (r *Resolver) Registry() *Registry { return r.registry }

// Loader returns the content loader.
func (r *Resolver) Loader() *Loader { return r.loader }

// Renderer returns the renderer configured for this resolver.
func (r *Resolver) Renderer() *Renderer { return r.renderer }

// Resolve returns the splash configuration of the named UI. ok is false when
// the UI is unknown or has no directive.
func (r *Resolver) Resolve(ctx context.Context, uiName string) (*Configuration, bool, error) {
	env, custom, found := r.registry.Lookup(uiName)
	if !found {
		r.logger.Debug("splash: ui not registered", "ui", uiName)
		return nil, false, nil
	}
	return r.configure(ctx, env, custom)
}

// ResolveEnvironment resolves env with the default configurator, for callers
// that hold the directive themselves.
func (r *Resolver) ResolveEnvironment(ctx context.Context, env Environment) (*Configuration, bool, error) {
	return r.configure(ctx, env, nil)
}

func (r *Resolver) configure(ctx context.Context, env Environment, custom Configurator) (*Configuration, bool, error) {
	c := r.fallback
	if custom != nil {
		c = custom
	}
	cfg, ok, err := c.Configuration(ctx, env)
	if err != nil {
		return nil, false, fmt.Errorf("resolve %s: %w", env.UI.Name, err)
	}
	if !ok || cfg == nil {
		r.logger.Debug("splash: no splash screen", "ui", env.UI.Name)
		return nil, false, nil
	}
	if cfg.Contents == nil {
		cfg.Contents = []*html.Node{}
	}
	return cfg, true, nil
}

// Contents resolves fileName against a registered UI, regardless of its
// directive.
func (r *Resolver) Contents(uiName, fileName string) ([]*html.Node, error) {
	env, _, found := r.registry.Lookup(uiName)
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrUnknownUI, uiName)
	}
	return r.loader.Contents(env.UI, fileName)
}
