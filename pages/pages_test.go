package pages

import (
	"database/sql"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/workbench/bundles"
	"github.com/jask/workbench/internal/store"
	"github.com/jask/workbench/shell"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestWorkbench wires the real bundles into a shell the way main does.
func newTestWorkbench(t *testing.T, deps Deps) *shell.Shell {
	t.Helper()
	deps.Log = testLogger()

	reg := bundles.NewRegistry(testLogger())
	Register(reg, deps)

	table := shell.NewTable(testLogger())
	table.Register("home", []shell.RouteEntry{
		shell.PageRoute("chat"),
		shell.PageRoute("dashboard"),
		shell.PageRoute("import"),
	}, nil)

	sh, err := shell.New(shell.Options{
		Table:    table,
		Resolver: reg,
		NavItems: []shell.NavItem{
			{Label: "Home", TargetRef: "#home"},
			{Label: "Chat", TargetRef: "/chat"},
			{Label: "Dashboard", TargetRef: "/dashboard"},
			{Label: "Import", TargetRef: "/import"},
		},
		DefaultPage: "home",
		SettleDelay: time.Millisecond,
		Logger:      testLogger(),
	})
	if err != nil {
		t.Fatalf("shell.New: %v", err)
	}
	return sh
}

func drive(t *testing.T, sh *shell.Shell, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	msg := cmd()
	if msg == nil {
		return
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			drive(t, sh, c)
		}
		return
	}
	_, next := sh.Update(msg)
	drive(t, sh, next)
}

func navigate(t *testing.T, sh *shell.Shell, path string) {
	t.Helper()
	_, cmd := sh.Update(shell.NavigateMsg{Path: path})
	drive(t, sh, cmd)
}

func sendKeys(t *testing.T, sh *shell.Shell, text string) {
	t.Helper()
	_, cmd := sh.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	drive(t, sh, cmd)
}

func pressEnter(t *testing.T, sh *shell.Shell) {
	t.Helper()
	_, cmd := sh.Update(tea.KeyMsg{Type: tea.KeyEnter})
	drive(t, sh, cmd)
}

func TestHomePageRendersWithGlyphs(t *testing.T) {
	sh := newTestWorkbench(t, Deps{})
	drive(t, sh, sh.Init())

	if sh.CurrentPage() != "home" {
		t.Fatalf("current = %q", sh.CurrentPage())
	}
	view := sh.View()
	if !strings.Contains(view, "Procurement Workbench") {
		t.Fatalf("home view missing title:\n%s", view)
	}
	if strings.Contains(view, "▢") {
		t.Fatalf("home view has unexpanded glyphs:\n%s", view)
	}
	if strings.Contains(view, "{{") {
		t.Fatalf("home view has raw tokens:\n%s", view)
	}
}

func TestChatPageAnswersThroughTheShell(t *testing.T) {
	sh := newTestWorkbench(t, Deps{KPIs: populatedKPIs()})
	drive(t, sh, sh.Init())
	navigate(t, sh, "/chat")

	sendKeys(t, sh, "how many documents")
	pressEnter(t, sh)

	view := sh.View()
	if !strings.Contains(view, "12 documents across 2 plants and 5 materials") {
		t.Fatalf("chat view missing answer:\n%s", view)
	}
}

func TestChatPageEscClearsInput(t *testing.T) {
	sh := newTestWorkbench(t, Deps{KPIs: populatedKPIs()})
	drive(t, sh, sh.Init())
	navigate(t, sh, "/chat")

	sendKeys(t, sh, "half a quest")
	_, cmd := sh.Update(tea.KeyMsg{Type: tea.KeyEsc})
	drive(t, sh, cmd)
	pressEnter(t, sh)

	if strings.Contains(sh.View(), "half a quest") {
		t.Fatalf("input not cleared:\n%s", sh.View())
	}
}

func TestTypingQDoesNotQuitOnChatPage(t *testing.T) {
	sh := newTestWorkbench(t, Deps{KPIs: populatedKPIs()})
	drive(t, sh, sh.Init())
	navigate(t, sh, "/chat")

	var quit bool
	_, cmd := sh.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd != nil {
		if _, ok := cmd().(tea.QuitMsg); ok {
			quit = true
		}
	}
	if quit {
		t.Fatal("q inside the chat input quit the program")
	}
}

func TestImportPageIngestsConfiguredFile(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "documents.csv")
	data := strings.Join([]string{
		"document,material,plant,order_date,scheduled_date,delivered_date,net_value,status",
		"4500001001,MAT-100,P100,2026-01-05,2026-01-20,2026-01-18,100.50,delivered",
		"4500001002,MAT-200,P200,2026-01-06,,,200,open",
		"bad row with,too,few",
	}, "\n")
	if err := os.WriteFile(csvPath, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	db := openTestStore(t, dir)
	repo := store.NewDocumentRepo(db)
	deps := Deps{
		KPIs:       store.NewKPIRepo(db),
		Ingester:   &store.Ingester{Documents: repo},
		ImportPath: csvPath,
	}

	sh := newTestWorkbench(t, deps)
	drive(t, sh, sh.Init())
	navigate(t, sh, "/import")

	sendKeys(t, sh, "i")
	view := sh.View()
	if !strings.Contains(view, "2 imported") {
		t.Fatalf("import view missing result:\n%s", view)
	}
	if !strings.Contains(view, "1 rows rejected") {
		t.Fatalf("import view missing row errors:\n%s", view)
	}
	if !strings.Contains(view, "Documents in store: 2") {
		t.Fatalf("import view missing store count:\n%s", view)
	}

	navigate(t, sh, "/dashboard")
	dash := sh.View()
	if !strings.Contains(dash, "P100") || !strings.Contains(dash, "P200") {
		t.Fatalf("dashboard missing imported plants:\n%s", dash)
	}
}

func TestImportPageWithoutStore(t *testing.T) {
	sh := newTestWorkbench(t, Deps{})
	drive(t, sh, sh.Init())
	navigate(t, sh, "/import")

	sendKeys(t, sh, "i")
	if !strings.Contains(sh.View(), "no data store configured") {
		t.Fatalf("import view = %q", sh.View())
	}
}

func openTestStore(t *testing.T, dir string) *sql.DB {
	t.Helper()
	dbPath := filepath.Join(dir, "test.db")
	migrations, err := filepath.Abs(filepath.Join("..", "internal", "store", "migrations"))
	if err != nil {
		t.Fatal(err)
	}
	if err := store.RunMigrations(dbPath, migrations); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	db, err := store.Open(dbPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}
