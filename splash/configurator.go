// CLAUDE:SUMMARY Configurator interface and the default directive-driven configurator.
package splash

import (
	"context"
)

// Configurator produces the splash screen configuration of a UI. ok is false
// when the UI has no splash screen; that is not an error.
type Configurator interface {
	Configuration(ctx context.Context, env Environment) (cfg *Configuration, ok bool, err error)
}

// ConfiguratorFunc adapts a function to Configurator.
type ConfiguratorFunc func(ctx context.Context, env Environment) (*Configuration, bool, error)

func (f ConfiguratorFunc) Configuration(ctx context.Context, env Environment) (*Configuration, bool, error) {
	return f(ctx, env)
}

// DefaultConfigurator builds the configuration from the directive attached to
// the environment. It is used for every UI without a custom configurator.
type DefaultConfigurator struct {
	Loader *Loader
}

// Configuration implements Configurator.
func (d DefaultConfigurator) Configuration(ctx context.Context, env Environment) (*Configuration, bool, error) {
	if env.Directive == nil {
		return nil, false, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	dir := *env.Directive
	contents, err := d.Loader.Contents(env.UI, dir.Value)
	if err != nil {
		return nil, false, err
	}
	return &Configuration{
		Contents: contents,
		Width:    dir.Width,
		Height:   dir.Height,
		Autohide: dir.Autohide,
	}, true, nil
}
