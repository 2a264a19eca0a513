// Package fsbundle resolves page bundles from a directory tree. Each page
// lives in dir/<page>/ with a bundle.toml manifest naming its markup file
// and declaring styles and glyph registrations. Data bundles carry no init
// entry point; their behavior is registration only.
package fsbundle

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/workbench/shell"
)

const manifestName = "bundle.toml"

type manifest struct {
	Markup string              `toml:"markup"`
	Glyphs []glyphDef          `toml:"glyph"`
	Styles map[string]styleDef `toml:"style"`
}

type glyphDef struct {
	Name  string `toml:"name"`
	Glyph string `toml:"glyph"`
}

type styleDef struct {
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
	Bold       bool   `toml:"bold"`
	Italic     bool   `toml:"italic"`
	Underline  bool   `toml:"underline"`
	Faint      bool   `toml:"faint"`
}

// Resolver reads bundles beneath a root directory. Manifests are re-read
// per resolution so edited pages show up on the next navigation.
type Resolver struct {
	dir string
	log *slog.Logger
}

func New(dir string, log *slog.Logger) *Resolver {
	if log == nil {
		log = slog.Default()
	}
	return &Resolver{dir: dir, log: log}
}

func (r *Resolver) load(page string) (manifest, string, error) {
	pageDir := filepath.Join(r.dir, page)
	path := filepath.Join(pageDir, manifestName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return manifest{}, "", fmt.Errorf("%w: %q", shell.ErrNoSuchPage, page)
		}
		return manifest{}, "", fmt.Errorf("read manifest for %q: %w", page, err)
	}
	var m manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return manifest{}, "", fmt.Errorf("parse manifest for %q: %w", page, err)
	}
	return m, pageDir, nil
}

func (r *Resolver) Markup(_ context.Context, page string) (string, error) {
	m, pageDir, err := r.load(page)
	if err != nil {
		return "", err
	}
	if m.Markup == "" {
		return "", fmt.Errorf("%w: %q", shell.ErrMarkupUnavailable, page)
	}
	data, err := os.ReadFile(filepath.Join(pageDir, m.Markup))
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", shell.ErrMarkupUnavailable, page, err)
	}
	return string(data), nil
}

func (r *Resolver) Style(_ context.Context, page string) (shell.StyleSheet, error) {
	m, _, err := r.load(page)
	if err != nil {
		return nil, err
	}
	if len(m.Styles) == 0 {
		return nil, fmt.Errorf("%w: %q", shell.ErrStyleUnavailable, page)
	}
	sheet := shell.StyleSheet{}
	for name, def := range m.Styles {
		sheet[name] = def.build()
	}
	return sheet, nil
}

func (r *Resolver) Behavior(_ context.Context, page string) (shell.BehaviorModule, error) {
	m, _, err := r.load(page)
	if err != nil {
		return shell.BehaviorModule{}, err
	}
	if len(m.Glyphs) == 0 {
		return shell.BehaviorModule{}, fmt.Errorf("%w: %q", shell.ErrBehaviorUnavailable, page)
	}
	glyphs := m.Glyphs
	return shell.Behavior(func(reg *shell.GlyphRegistry) {
		for _, g := range glyphs {
			if g.Name == "" {
				continue
			}
			reg.Register(g.Name, g.Glyph)
		}
	}), nil
}

func (d styleDef) build() lipgloss.Style {
	s := lipgloss.NewStyle()
	if d.Foreground != "" {
		s = s.Foreground(lipgloss.Color(d.Foreground))
	}
	if d.Background != "" {
		s = s.Background(lipgloss.Color(d.Background))
	}
	if d.Bold {
		s = s.Bold(true)
	}
	if d.Italic {
		s = s.Italic(true)
	}
	if d.Underline {
		s = s.Underline(true)
	}
	if d.Faint {
		s = s.Faint(true)
	}
	return s
}
