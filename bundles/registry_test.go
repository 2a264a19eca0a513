package bundles

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/workbench/shell"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRegistryResolvesArtifacts(t *testing.T) {
	reg := NewRegistry(testLogger())
	reg.Register("home", Bundle{
		Markup: func(context.Context) (string, error) { return "hello", nil },
		Styles: shell.StyleSheet{"home.title": lipgloss.NewStyle().Bold(true)},
		Behavior: func() shell.BehaviorModule {
			return shell.Behavior(func(g *shell.GlyphRegistry) { g.Register("dot", "•") })
		},
	})

	ctx := context.Background()
	text, err := reg.Markup(ctx, "home")
	if err != nil || text != "hello" {
		t.Fatalf("markup = %q, %v", text, err)
	}
	sheet, err := reg.Style(ctx, "home")
	if err != nil || len(sheet) != 1 {
		t.Fatalf("sheet = %v, %v", sheet, err)
	}
	if _, err := reg.Behavior(ctx, "home"); err != nil {
		t.Fatalf("behavior: %v", err)
	}
}

func TestRegistryUnknownPage(t *testing.T) {
	reg := NewRegistry(testLogger())
	if _, err := reg.Markup(context.Background(), "ghost"); !errors.Is(err, shell.ErrNoSuchPage) {
		t.Fatalf("err = %v, want ErrNoSuchPage", err)
	}
}

func TestRegistryPartialBundle(t *testing.T) {
	reg := NewRegistry(testLogger())
	reg.Register("bare", Bundle{
		Markup: func(context.Context) (string, error) { return "bare", nil },
	})

	ctx := context.Background()
	if _, err := reg.Style(ctx, "bare"); !errors.Is(err, shell.ErrStyleUnavailable) {
		t.Fatalf("style err = %v", err)
	}
	if _, err := reg.Behavior(ctx, "bare"); !errors.Is(err, shell.ErrBehaviorUnavailable) {
		t.Fatalf("behavior err = %v", err)
	}
	if _, err := reg.Markup(ctx, "bare"); err != nil {
		t.Fatalf("markup err = %v", err)
	}
}

func TestChainFallsThroughOnlyForUnknownPages(t *testing.T) {
	first := NewRegistry(testLogger())
	first.Register("styled", Bundle{
		Markup: func(context.Context) (string, error) { return "first", nil },
	})
	second := NewRegistry(testLogger())
	second.Register("styled", Bundle{
		Markup: func(context.Context) (string, error) { return "second", nil },
		Styles: shell.StyleSheet{"x": lipgloss.NewStyle()},
	})
	second.Register("extra", Bundle{
		Markup: func(context.Context) (string, error) { return "extra", nil },
	})

	chain := Chain{first, second}
	ctx := context.Background()

	text, err := chain.Markup(ctx, "styled")
	if err != nil || text != "first" {
		t.Fatalf("markup = %q, %v; first resolver should win", text, err)
	}
	// first knows the page but has no styles: artifact failure surfaces,
	// the chain must not fall through to second's styles
	if _, err := chain.Style(ctx, "styled"); !errors.Is(err, shell.ErrStyleUnavailable) {
		t.Fatalf("style err = %v", err)
	}
	text, err = chain.Markup(ctx, "extra")
	if err != nil || text != "extra" {
		t.Fatalf("markup = %q, %v", text, err)
	}
	if _, err := chain.Markup(ctx, "nowhere"); !errors.Is(err, shell.ErrNoSuchPage) {
		t.Fatalf("err = %v", err)
	}
}
