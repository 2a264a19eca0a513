package pages

import (
	"context"
	"fmt"
	"strings"

	tslc "github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/workbench/bundles"
	"github.com/jask/workbench/internal/store"
	"github.com/jask/workbench/shell"
)

const (
	trendChartHeight = 10
	plantBarWidth    = 30
)

var (
	dashTitleStyle = lipgloss.NewStyle().Foreground(pageColorAccent).Bold(true)
	dashLabelStyle = lipgloss.NewStyle().Foreground(pageColorMuted)
	dashValueStyle = lipgloss.NewStyle().Foreground(pageColorPeach)
	dashGoodStyle  = lipgloss.NewStyle().Foreground(pageColorGood)
	dashBadStyle   = lipgloss.NewStyle().Foreground(pageColorBad)
	dashAxisStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#585b70"))
	dashBarStyle   = lipgloss.NewStyle().Foreground(pageColorAccent)
)

func dashboardBundle(deps Deps) bundles.Bundle {
	return bundles.Bundle{
		Markup: func(ctx context.Context) (string, error) {
			return renderDashboard(ctx, deps.KPIs)
		},
		Styles: shell.StyleSheet{
			"kpi-label": dashLabelStyle,
			"kpi-value": dashValueStyle,
		},
		Behavior: func() shell.BehaviorModule {
			return shell.Behavior(nil).WithNamed(func(pc *shell.PageContext) error {
				pc.Container.Bind(func(msg tea.KeyMsg) tea.Cmd {
					if msg.String() != "r" {
						return nil
					}
					out, err := renderDashboard(pc.Ctx, deps.KPIs)
					if err != nil {
						return shell.ErrorCmd(err)
					}
					pc.Container.SetContent(out)
					return shell.StatusCmd("Dashboard refreshed")
				})
				return nil
			})
		},
	}
}

func renderDashboard(ctx context.Context, kpis KPISource) (string, error) {
	if kpis == nil {
		return dashLabelStyle.Render("No data store is connected."), nil
	}
	sum, err := kpis.Summary(ctx)
	if err != nil {
		return "", fmt.Errorf("dashboard summary: %w", err)
	}

	var b strings.Builder
	b.WriteString(dashTitleStyle.Render("Procurement KPIs"))
	b.WriteString("\n\n")

	if sum.Documents == 0 {
		b.WriteString(dashLabelStyle.Render("No documents imported yet. Open the import page to load data."))
		return b.String(), nil
	}

	del, err := kpis.Delivery(ctx)
	if err != nil {
		return "", fmt.Errorf("dashboard delivery: %w", err)
	}

	b.WriteString(renderKPITiles(sum, del))
	b.WriteString("\n")

	plants, err := kpis.ValueByPlant(ctx)
	if err != nil {
		return "", fmt.Errorf("dashboard plants: %w", err)
	}
	if len(plants) > 0 {
		b.WriteString(dashLabelStyle.Render("Order value by plant"))
		b.WriteString("\n")
		b.WriteString(renderPlantBars(plants))
		b.WriteString("\n")
	}

	trend, err := kpis.ValueTrend(ctx)
	if err != nil {
		return "", fmt.Errorf("dashboard trend: %w", err)
	}
	if len(trend) > 1 {
		b.WriteString(dashLabelStyle.Render("Daily order value"))
		b.WriteString("\n")
		b.WriteString(renderTrendChart(trend))
		b.WriteString("\n")
	}

	b.WriteString(dashLabelStyle.Render("r refreshes"))
	return b.String(), nil
}

func renderKPITiles(sum store.Summary, del store.Delivery) string {
	rateStyle := dashGoodStyle
	if del.Rate() < 0.8 {
		rateStyle = dashBadStyle
	}
	rate := "n/a"
	if del.Delivered > 0 {
		rate = fmt.Sprintf("%.0f%%", del.Rate()*100)
	}

	col := func(label, value string, style lipgloss.Style) string {
		cell := dashLabelStyle.Render(label) + "\n" + style.Render(value)
		return lipgloss.NewStyle().Width(pageWidth / 4).Render(cell)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		col("Documents", fmt.Sprintf("%d", sum.Documents), dashValueStyle),
		col("Net value", formatCents(sum.NetValueCents), dashValueStyle),
		col("Plants / Materials", fmt.Sprintf("%d / %d", sum.Plants, sum.Materials), dashValueStyle),
		col("On-time delivery", rate, rateStyle),
	) + "\n"
}

func renderPlantBars(plants []store.PlantValue) string {
	max := plants[0].NetValueCents
	if max <= 0 {
		max = 1
	}
	var b strings.Builder
	for _, p := range plants {
		n := int(p.NetValueCents * plantBarWidth / max)
		if n < 1 && p.NetValueCents > 0 {
			n = 1
		}
		fmt.Fprintf(&b, "  %-8s %s %s\n",
			p.Plant,
			dashBarStyle.Render(strings.Repeat("█", n)),
			dashValueStyle.Render(formatCents(p.NetValueCents)))
	}
	return b.String()
}

func renderTrendChart(trend []store.TrendPoint) string {
	start, end := trend[0].Date, trend[len(trend)-1].Date
	maxVal := 0.0
	for _, p := range trend {
		if v := float64(p.NetValueCents) / 100; v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	chart := tslc.New(pageWidth, trendChartHeight)
	chart.SetStyle(dashBarStyle)
	chart.AxisStyle = dashAxisStyle
	chart.LabelStyle = dashLabelStyle
	chart.SetTimeRange(start, end)
	chart.SetViewTimeRange(start, end)
	chart.SetYRange(0, maxVal)
	chart.SetViewYRange(0, maxVal)
	for _, p := range trend {
		chart.Push(tslc.TimePoint{Time: p.Date, Value: float64(p.NetValueCents) / 100})
	}
	chart.DrawBraille()
	return chart.View()
}
