package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	migrations, err := filepath.Abs("migrations")
	require.NoError(t, err)
	require.NoError(t, RunMigrations(dbPath, migrations))

	db, err := Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestImportCSV(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	db := openTestDB(t)
	repo := NewDocumentRepo(db)
	ing := &Ingester{Documents: repo}

	data := strings.Join([]string{
		"document,material,plant,order_date,scheduled_date,delivered_date,net_value,status",
		"4500001001,MAT-100,P100,2026-01-05,2026-01-20,2026-01-18,1250.50,delivered",
		"4500001002,MAT-200,P200,2026-01-06,2026-02-01,,890,open",
	}, "\n")

	res, err := ing.ImportCSV(ctx, strings.NewReader(data))
	require.NoError(t, err)
	require.Empty(t, res.Errors)
	require.Equal(t, 2, res.Imported)
	require.Equal(t, 0, res.Skipped)

	docs, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	require.Equal(t, "4500001002", docs[0].Document) // newest order first
	require.Equal(t, int64(125050), docs[1].NetValueCents)
	require.NotNil(t, docs[1].DeliveredDate)
	require.Nil(t, docs[0].DeliveredDate)
}

func TestImportCSVSkipsDuplicates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := openTestDB(t)
	ing := &Ingester{Documents: NewDocumentRepo(db)}

	data := "4500001001,MAT-100,P100,2026-01-05,2026-01-20,2026-01-18,1250.50,delivered\n"

	res, err := ing.ImportCSV(ctx, strings.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 1, res.Imported)

	res, err = ing.ImportCSV(ctx, strings.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 0, res.Imported)
	require.Equal(t, 1, res.Skipped)
}

func TestImportCSVCollectsRowErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := openTestDB(t)
	ing := &Ingester{Documents: NewDocumentRepo(db)}

	data := strings.Join([]string{
		"4500001001,MAT-100,P100,not-a-date,2026-01-20,,100,open",
		"4500001002,MAT-200,P200,2026-01-06,,,bad-value,open",
		",MAT-300,P300,2026-01-07,,,50,open",
		"4500001004,MAT-400,P400,2026-01-08,,,50,open",
	}, "\n")

	res, err := ing.ImportCSV(ctx, strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, res.Errors, 3)
	require.Equal(t, 1, res.Imported)
}

func TestValueToCents(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want int64
	}{
		{"1250.50", 125050},
		{"890", 89000},
		{"1,234.56", 123456},
		{"-10.05", -1005},
	}
	for _, c := range cases {
		got, err := valueToCents(c.in)
		require.NoError(t, err, c.in)
		require.Equal(t, c.want, got, c.in)
	}
	_, err := valueToCents("")
	require.Error(t, err)
}
