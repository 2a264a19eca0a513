// Package pages holds the bundles compiled into the workbench binary: a
// home page, a data-query chat, a KPI dashboard and a CSV import page.
// The shell core never imports this package; everything here reaches the
// shell only through the bundle contract.
package pages

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/workbench/bundles"
	"github.com/jask/workbench/internal/store"
)

// pageWidth is the render width pages lay themselves out against. The
// shell clamps wider output to the terminal.
const pageWidth = 92

// KPISource answers the aggregate queries the dashboard and chat agent
// render from.
type KPISource interface {
	Summary(ctx context.Context) (store.Summary, error)
	Delivery(ctx context.Context) (store.Delivery, error)
	ValueByPlant(ctx context.Context) ([]store.PlantValue, error)
	ValueTrend(ctx context.Context) ([]store.TrendPoint, error)
}

// Deps carries the data backend into the bundles that need one. Nil
// fields degrade the affected pages instead of failing registration.
type Deps struct {
	KPIs       KPISource
	Ingester   *store.Ingester
	ImportPath string
	Log        *slog.Logger
}

// Register adds every built-in page bundle to reg.
func Register(reg *bundles.Registry, deps Deps) {
	if deps.Log == nil {
		deps.Log = slog.Default()
	}
	reg.Register("home", homeBundle())
	reg.Register("chat", chatBundle(deps))
	reg.Register("dashboard", dashboardBundle(deps))
	reg.Register("import", importBundle(deps))
}

// consume is returned by page key handlers for keys they swallowed without
// producing follow-up work, so the shell's fallback bindings stay quiet.
func consume() tea.Msg { return nil }

func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	whole := cents / 100
	frac := cents % 100

	digits := fmt.Sprintf("%d", whole)
	var parts []string
	for len(digits) > 3 {
		parts = append([]string{digits[len(digits)-3:]}, parts...)
		digits = digits[:len(digits)-3]
	}
	parts = append([]string{digits}, parts...)
	return fmt.Sprintf("%s%s.%02d", sign, strings.Join(parts, ","), frac)
}
