package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/workbench/bundles"
	"github.com/jask/workbench/bundles/fsbundle"
	"github.com/jask/workbench/internal/config"
	"github.com/jask/workbench/internal/logging"
	"github.com/jask/workbench/internal/store"
	"github.com/jask/workbench/pages"
	"github.com/jask/workbench/shell"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Path)

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}
	if err := store.RunMigrations(cfg.Database.Path, "internal/store/migrations"); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	db, err := store.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	reg := bundles.NewRegistry(logger)
	pages.Register(reg, pages.Deps{
		KPIs:       store.NewKPIRepo(db),
		Ingester:   &store.Ingester{Documents: store.NewDocumentRepo(db)},
		ImportPath: cfg.Database.ImportFile,
		Log:        logger,
	})

	var resolver shell.BundleResolver = reg
	if cfg.Shell.PagesDir != "" {
		resolver = bundles.Chain{reg, fsbundle.New(cfg.Shell.PagesDir, logger)}
	}

	table := shell.NewTable(logger)
	table.Register(cfg.Shell.DefaultPage, routeEntries(cfg.Shell), cfg.Shell.Aliases)

	if cfg.Shell.Accent != "" {
		shell.SetAccent(cfg.Shell.Accent)
	}

	sh, err := shell.New(shell.Options{
		Table:           table,
		Resolver:        resolver,
		NavItems:        navItems(cfg.Shell.Nav),
		ContainerRegion: cfg.Shell.Container,
		DefaultPage:     cfg.Shell.DefaultPage,
		SettleDelay:     time.Duration(cfg.Shell.SettleMS) * time.Millisecond,
		Logger:          logger,
		Context:         ctx,
		Title:           cfg.Shell.Title,
	})
	if err != nil {
		// the shell still runs with its chrome so the misconfiguration
		// is visible, but say so on the way in
		logger.Error("shell configuration", "err", err)
	}

	sh.OnPageChanged(func(ev shell.PageChanged) {
		logger.Info("page changed", "page", ev.Page, "container", ev.Container.Name())
	})

	if _, err := tea.NewProgram(sh, tea.WithAltScreen()).Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}

func routeEntries(sc config.ShellConfig) []shell.RouteEntry {
	entries := make([]shell.RouteEntry, 0, len(sc.Pages)+len(sc.Routes))
	for _, p := range sc.Pages {
		entries = append(entries, shell.PageRoute(p))
	}
	for _, r := range sc.Routes {
		entries = append(entries, shell.RouteEntry{Path: r.Path, Page: r.Page})
	}
	return entries
}

func navItems(specs []config.NavSpec) []shell.NavItem {
	items := make([]shell.NavItem, 0, len(specs))
	for _, n := range specs {
		items = append(items, shell.NavItem{Label: n.Label, TargetRef: n.Target})
	}
	return items
}
