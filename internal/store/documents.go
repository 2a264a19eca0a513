package store

import (
	"context"
	"database/sql"
	"time"
)

// Document represents a purchase document row.
type Document struct {
	ID            string
	Document      string
	Material      string
	Plant         string
	OrderDate     time.Time
	ScheduledDate *time.Time
	DeliveredDate *time.Time
	NetValueCents int64
	Status        string
	SourceHash    string
}

// DocumentRepo handles purchase documents.
type DocumentRepo struct {
	db *sql.DB
}

func NewDocumentRepo(db *sql.DB) *DocumentRepo { return &DocumentRepo{db: db} }

func (r *DocumentRepo) Insert(ctx context.Context, d Document) error {
	ts := now()
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO purchase_documents(
	 id, document, material, plant, order_date, scheduled_date, delivered_date,
	 net_value_cents, status, source_hash, created_at, updated_at)
	VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`,
		d.ID, d.Document, d.Material, d.Plant, d.OrderDate, d.ScheduledDate,
		d.DeliveredDate, d.NetValueCents, d.Status, d.SourceHash, ts, ts)
	return err
}

// ExistsByHash reports whether a row with the given source hash exists,
// used to skip duplicate CSV lines on re-import.
func (r *DocumentRepo) ExistsByHash(ctx context.Context, hash string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM purchase_documents WHERE source_hash = ?`, hash).Scan(&n)
	return n > 0, err
}

func (r *DocumentRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM purchase_documents`).Scan(&n)
	return n, err
}

// List returns documents ordered by order date descending.
func (r *DocumentRepo) List(ctx context.Context, limit int) ([]Document, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, document, material, plant, order_date, scheduled_date,
	       delivered_date, net_value_cents, status, source_hash
	FROM purchase_documents
	ORDER BY order_date DESC, document
	LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		var d Document
		if err := rows.Scan(&d.ID, &d.Document, &d.Material, &d.Plant, &d.OrderDate,
			&d.ScheduledDate, &d.DeliveredDate, &d.NetValueCents, &d.Status, &d.SourceHash); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
