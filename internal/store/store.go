// Package store holds the procurement data the demo pages render: purchase
// documents ingested from CSV, with KPI queries for the dashboard and chat
// agent. The shell core has no dependency on this package.
package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Open opens the sqlite database at path. A single connection keeps writer
// serialization out of the application's hands.
func Open(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	return db, nil
}

// now returns UTC time truncated to seconds, matching sqlite's own
// timestamp resolution so round-tripped rows compare equal.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
