// Package bundles provides BundleResolver implementations: an in-process
// registry for pages compiled into the binary, a filesystem resolver for
// pages shipped as data, and a chain combining resolvers.
package bundles

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jask/workbench/shell"
)

// Bundle defines one page's artifacts. Markup is produced fresh per
// navigation; Styles are applied once by the shell; Behavior is resolved
// fresh per navigation so its registration side effects re-run against the
// current registries.
type Bundle struct {
	Markup   func(ctx context.Context) (string, error)
	Styles   shell.StyleSheet
	Behavior func() shell.BehaviorModule
}

// Registry is the static-map resolver: every page registered up front,
// nothing resolved from the outside world.
type Registry struct {
	log     *slog.Logger
	bundles map[string]Bundle
}

func NewRegistry(log *slog.Logger) *Registry {
	if log == nil {
		log = slog.Default()
	}
	return &Registry{log: log, bundles: map[string]Bundle{}}
}

// Register adds a page bundle. Later registrations replace earlier ones.
func (r *Registry) Register(page string, b Bundle) {
	if page == "" {
		r.log.Warn("ignoring bundle with empty page identifier")
		return
	}
	if _, exists := r.bundles[page]; exists {
		r.log.Warn("replacing bundle", "page", page)
	}
	r.bundles[page] = b
}

// Pages lists registered page identifiers.
func (r *Registry) Pages() []string {
	out := make([]string, 0, len(r.bundles))
	for page := range r.bundles {
		out = append(out, page)
	}
	return out
}

func (r *Registry) Markup(ctx context.Context, page string) (string, error) {
	b, ok := r.bundles[page]
	if !ok {
		return "", fmt.Errorf("%w: %q", shell.ErrNoSuchPage, page)
	}
	if b.Markup == nil {
		return "", fmt.Errorf("%w: %q", shell.ErrMarkupUnavailable, page)
	}
	return b.Markup(ctx)
}

func (r *Registry) Style(_ context.Context, page string) (shell.StyleSheet, error) {
	b, ok := r.bundles[page]
	if !ok {
		return nil, fmt.Errorf("%w: %q", shell.ErrNoSuchPage, page)
	}
	if b.Styles == nil {
		return nil, fmt.Errorf("%w: %q", shell.ErrStyleUnavailable, page)
	}
	return b.Styles, nil
}

func (r *Registry) Behavior(_ context.Context, page string) (shell.BehaviorModule, error) {
	b, ok := r.bundles[page]
	if !ok {
		return shell.BehaviorModule{}, fmt.Errorf("%w: %q", shell.ErrNoSuchPage, page)
	}
	if b.Behavior == nil {
		return shell.BehaviorModule{}, fmt.Errorf("%w: %q", shell.ErrBehaviorUnavailable, page)
	}
	return b.Behavior(), nil
}
