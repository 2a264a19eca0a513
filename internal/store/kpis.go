package store

import (
	"context"
	"database/sql"
	"time"
)

// Summary holds the headline figures for the dashboard page.
type Summary struct {
	Documents     int
	Plants        int
	Materials     int
	NetValueCents int64
}

// Delivery holds on-time delivery performance.
type Delivery struct {
	Delivered int
	OnTime    int
}

// Rate returns the on-time share of delivered documents.
func (d Delivery) Rate() float64 {
	if d.Delivered == 0 {
		return 0
	}
	return float64(d.OnTime) / float64(d.Delivered)
}

// PlantValue is net order value aggregated per plant.
type PlantValue struct {
	Plant         string
	NetValueCents int64
}

// TrendPoint is net order value aggregated per order date.
type TrendPoint struct {
	Date          time.Time
	NetValueCents int64
}

// KPIRepo answers the dashboard and chat agent queries.
type KPIRepo struct {
	db *sql.DB
}

func NewKPIRepo(db *sql.DB) *KPIRepo { return &KPIRepo{db: db} }

func (r *KPIRepo) Summary(ctx context.Context) (Summary, error) {
	var s Summary
	err := r.db.QueryRowContext(ctx, `
	SELECT COUNT(DISTINCT document), COUNT(DISTINCT plant),
	       COUNT(DISTINCT material), COALESCE(SUM(net_value_cents), 0)
	FROM purchase_documents`).Scan(&s.Documents, &s.Plants, &s.Materials, &s.NetValueCents)
	return s, err
}

func (r *KPIRepo) Delivery(ctx context.Context) (Delivery, error) {
	var d Delivery
	err := r.db.QueryRowContext(ctx, `
	SELECT COUNT(*),
	       COALESCE(SUM(CASE WHEN delivered_date <= scheduled_date THEN 1 ELSE 0 END), 0)
	FROM purchase_documents
	WHERE delivered_date IS NOT NULL AND scheduled_date IS NOT NULL`).Scan(&d.Delivered, &d.OnTime)
	return d, err
}

func (r *KPIRepo) ValueByPlant(ctx context.Context) ([]PlantValue, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT plant, SUM(net_value_cents)
	FROM purchase_documents
	GROUP BY plant
	ORDER BY SUM(net_value_cents) DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PlantValue
	for rows.Next() {
		var pv PlantValue
		if err := rows.Scan(&pv.Plant, &pv.NetValueCents); err != nil {
			return nil, err
		}
		out = append(out, pv)
	}
	return out, rows.Err()
}

// ValueTrend returns daily order value, oldest first, for the trend chart.
func (r *KPIRepo) ValueTrend(ctx context.Context) ([]TrendPoint, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT order_date, SUM(net_value_cents)
	FROM purchase_documents
	GROUP BY order_date
	ORDER BY order_date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TrendPoint
	for rows.Next() {
		var tp TrendPoint
		if err := rows.Scan(&tp.Date, &tp.NetValueCents); err != nil {
			return nil, err
		}
		out = append(out, tp)
	}
	return out, rows.Err()
}
