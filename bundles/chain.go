package bundles

import (
	"context"
	"errors"

	"github.com/jask/workbench/shell"
)

// Chain tries resolvers in order, moving on only when a resolver does not
// know the page at all. Artifact-level failures from a resolver that does
// know the page are surfaced, not papered over by a later resolver.
type Chain []shell.BundleResolver

func (c Chain) Markup(ctx context.Context, page string) (string, error) {
	var lastErr error = shell.ErrNoSuchPage
	for _, r := range c {
		text, err := r.Markup(ctx, page)
		if errors.Is(err, shell.ErrNoSuchPage) {
			lastErr = err
			continue
		}
		return text, err
	}
	return "", lastErr
}

func (c Chain) Style(ctx context.Context, page string) (shell.StyleSheet, error) {
	var lastErr error = shell.ErrNoSuchPage
	for _, r := range c {
		sheet, err := r.Style(ctx, page)
		if errors.Is(err, shell.ErrNoSuchPage) {
			lastErr = err
			continue
		}
		return sheet, err
	}
	return nil, lastErr
}

func (c Chain) Behavior(ctx context.Context, page string) (shell.BehaviorModule, error) {
	var lastErr error = shell.ErrNoSuchPage
	for _, r := range c {
		module, err := r.Behavior(ctx, page)
		if errors.Is(err, shell.ErrNoSuchPage) {
			lastErr = err
			continue
		}
		return module, err
	}
	return shell.BehaviorModule{}, lastErr
}
