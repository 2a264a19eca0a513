package store

import (
	"bufio"
	"context"
	"crypto/sha256"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Ingester imports purchase document CSV exports.
type Ingester struct {
	Documents *DocumentRepo
}

// IngestResult summarises one import run.
type IngestResult struct {
	Imported int
	Skipped  int
	Errors   []error
}

// CSV columns: document, material, plant, order_date, scheduled_date,
// delivered_date, net_value, status. Dates are 2006-01-02; scheduled and
// delivered may be empty; net_value is in currency units and converted to
// cents. Duplicate lines (by content hash) are skipped, so re-importing
// the same export is harmless.
func (s *Ingester) ImportCSV(ctx context.Context, r io.Reader) (IngestResult, error) {
	res := IngestResult{}
	csvr := csv.NewReader(bufio.NewReader(r))
	csvr.TrimLeadingSpace = true
	csvr.FieldsPerRecord = -1
	line := 0
	for {
		line++
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		if line == 1 && looksLikeHeader(rec) {
			continue
		}
		if len(rec) < 8 {
			res.Errors = append(res.Errors, fmt.Errorf("line %d: expected 8 columns", line))
			continue
		}
		docNum, material, plant := rec[0], rec[1], rec[2]
		if strings.TrimSpace(docNum) == "" {
			res.Errors = append(res.Errors, fmt.Errorf("line %d: empty document number", line))
			continue
		}
		orderDate, err := parseDate(rec[3])
		if err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("line %d order_date: %w", line, err))
			continue
		}
		scheduled, err := parseOptionalDate(rec[4])
		if err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("line %d scheduled_date: %w", line, err))
			continue
		}
		delivered, err := parseOptionalDate(rec[5])
		if err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("line %d delivered_date: %w", line, err))
			continue
		}
		netCents, err := valueToCents(rec[6])
		if err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("line %d net_value: %w", line, err))
			continue
		}
		status := strings.TrimSpace(rec[7])
		if status == "" {
			status = "open"
		}

		hash := lineHash(rec)
		exists, err := s.Documents.ExistsByHash(ctx, hash)
		if err != nil {
			return res, fmt.Errorf("line %d dedupe check: %w", line, err)
		}
		if exists {
			res.Skipped++
			continue
		}

		doc := Document{
			ID:            uuid.NewString(),
			Document:      strings.TrimSpace(docNum),
			Material:      strings.TrimSpace(material),
			Plant:         strings.TrimSpace(plant),
			OrderDate:     orderDate,
			ScheduledDate: scheduled,
			DeliveredDate: delivered,
			NetValueCents: netCents,
			Status:        status,
			SourceHash:    hash,
		}
		if err := s.Documents.Insert(ctx, doc); err != nil {
			return res, fmt.Errorf("line %d insert: %w", line, err)
		}
		res.Imported++
	}
	return res, nil
}

func looksLikeHeader(rec []string) bool {
	if len(rec) == 0 {
		return false
	}
	first := strings.ToLower(strings.TrimSpace(rec[0]))
	return first == "document" || first == "purchasing_document"
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", strings.TrimSpace(s))
}

func parseOptionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := parseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func valueToCents(s string) (int64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, errors.New("empty value")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int64(math.Round(f * 100)), nil
}

func lineHash(rec []string) string {
	h := sha256.Sum256([]byte(strings.Join(rec, "\x1f")))
	return fmt.Sprintf("%x", h[:])
}
