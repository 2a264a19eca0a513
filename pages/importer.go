package pages

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/workbench/bundles"
	"github.com/jask/workbench/internal/store"
	"github.com/jask/workbench/shell"
)

// importErrorsShown caps how many row errors the summary lists.
const importErrorsShown = 5

var (
	importTitleStyle = lipgloss.NewStyle().Foreground(pageColorAccent).Bold(true)
	importHintStyle  = lipgloss.NewStyle().Foreground(pageColorMuted)
	importGoodStyle  = lipgloss.NewStyle().Foreground(pageColorGood)
	importBadStyle   = lipgloss.NewStyle().Foreground(pageColorBad)
)

func importBundle(deps Deps) bundles.Bundle {
	return bundles.Bundle{
		Markup: func(ctx context.Context) (string, error) {
			return renderImport(ctx, deps, nil, nil), nil
		},
		Styles: shell.StyleSheet{
			"import-ok":  importGoodStyle,
			"import-err": importBadStyle,
		},
		Behavior: func() shell.BehaviorModule {
			return shell.Behavior(nil).WithDefault(func(pc *shell.PageContext) error {
				pc.Container.Bind(func(msg tea.KeyMsg) tea.Cmd {
					if msg.String() != "i" {
						return nil
					}
					res, err := runImport(pc.Ctx, deps)
					pc.Container.SetContent(renderImport(pc.Ctx, deps, res, err))
					if err != nil {
						return shell.ErrorCmd(err)
					}
					return shell.StatusCmd(fmt.Sprintf("Imported %d documents, skipped %d",
						res.Imported, res.Skipped))
				})
				return nil
			})
		},
	}
}

func runImport(ctx context.Context, deps Deps) (*store.IngestResult, error) {
	if deps.Ingester == nil {
		return nil, fmt.Errorf("no data store configured")
	}
	if deps.ImportPath == "" {
		return nil, fmt.Errorf("no import file configured")
	}
	f, err := os.Open(deps.ImportPath)
	if err != nil {
		return nil, fmt.Errorf("open import file: %w", err)
	}
	defer f.Close()

	res, err := deps.Ingester.ImportCSV(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", deps.ImportPath, err)
	}
	return &res, nil
}

func renderImport(ctx context.Context, deps Deps, res *store.IngestResult, err error) string {
	var b strings.Builder
	b.WriteString(importTitleStyle.Render("Import purchase documents"))
	b.WriteString("\n\n")

	path := deps.ImportPath
	if path == "" {
		path = "(not configured)"
	}
	fmt.Fprintf(&b, "Source file: %s\n", path)
	b.WriteString(importHintStyle.Render("Columns: document, material, plant, order_date, scheduled_date, delivered_date, net_value, status"))
	b.WriteString("\n\n")

	if deps.Ingester != nil && deps.Ingester.Documents != nil {
		if count, cerr := deps.Ingester.Documents.Count(ctx); cerr == nil {
			fmt.Fprintf(&b, "Documents in store: %d\n\n", count)
		}
	}

	switch {
	case err != nil:
		b.WriteString(importBadStyle.Render("Import failed: " + err.Error()))
		b.WriteString("\n")
	case res != nil:
		fmt.Fprintf(&b, "%s  %s\n",
			importGoodStyle.Render(fmt.Sprintf("%d imported", res.Imported)),
			importHintStyle.Render(fmt.Sprintf("%d skipped as duplicates", res.Skipped)))
		if n := len(res.Errors); n > 0 {
			fmt.Fprintf(&b, "\n%s\n", importBadStyle.Render(fmt.Sprintf("%d rows rejected:", n)))
			for i, rowErr := range res.Errors {
				if i == importErrorsShown {
					fmt.Fprintf(&b, "  %s\n", importHintStyle.Render(fmt.Sprintf("... and %d more", n-importErrorsShown)))
					break
				}
				fmt.Fprintf(&b, "  %s\n", rowErr.Error())
			}
		}
	}

	if recent := recentDocuments(ctx, deps); recent != "" {
		b.WriteString("\n")
		b.WriteString(importHintStyle.Render("Most recent documents"))
		b.WriteString("\n")
		b.WriteString(recent)
	}

	b.WriteString("\n")
	b.WriteString(importHintStyle.Render("i runs the import"))
	return b.String()
}

func recentDocuments(ctx context.Context, deps Deps) string {
	if deps.Ingester == nil || deps.Ingester.Documents == nil {
		return ""
	}
	docs, err := deps.Ingester.Documents.List(ctx, 5)
	if err != nil || len(docs) == 0 {
		return ""
	}
	var b strings.Builder
	for _, d := range docs {
		fmt.Fprintf(&b, "  %s  %-10s %-6s %s  %s\n",
			d.OrderDate.Format("2006-01-02"), d.Material, d.Plant,
			formatCents(d.NetValueCents), d.Status)
	}
	return b.String()
}
