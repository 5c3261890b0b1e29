// Package ledger implements the durable, append-mostly table of emission
// records shared by every user of a carbontrack installation.
//
// The authoritative state is the on-disk CSV table. The in-memory copy is a
// cache loaded once at construction and kept in sync by rewriting the whole
// file after every mutation. Ledgers are small (one row per recorded
// estimate), so whole-file write-through is deliberately simple rather than
// an append-only log.
package ledger

import (
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/tiro27cbs/carbontrack/internal/logging"
)

// The three ledger columns. Order is fixed; the header names match the
// historical data files so existing ledgers keep loading.
const (
	colCategory = "Category"
	colEmission = "Emission (kg)"
	colUserID   = "User ID"
)

// Record is one persisted emission entry. Records are never mutated in
// place: they are appended, or removed in bulk by user.
type Record struct {
	// Category is the ledger label of the estimate category,
	// e.g. "Electricity".
	Category string `json:"category"`

	// CarbonKg is the emission value in kilograms CO2e.
	CarbonKg float64 `json:"carbon_kg"`

	// UserID attributes the emission to a user. Never empty for a
	// stored record.
	UserID string `json:"user_id"`
}

// Store owns the ledger. It is not safe for concurrent use: the CLI runs a
// single synchronous session, and every mutation rewrites the full table.
type Store struct {
	path    string
	records []Record
	total   float64
}

// Open loads the ledger at path, creating an empty one in memory when no
// file exists yet. A missing file is not an error: it is logged as a fresh
// start. Missing columns in an existing file are back-filled with zero
// values rather than rejected.
func Open(ctx context.Context, path string) (*Store, error) {
	log := logging.FromContext(ctx)
	s := &Store{path: path}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		log.Info().
			Str("component", "ledger").
			Str("path", path).
			Msg("no existing ledger found, starting fresh")
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening ledger %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading ledger %s: %w", path, err)
	}
	if len(rows) == 0 {
		return s, nil
	}

	// Map header names to positions. A column absent from the header is
	// back-filled with its zero value for every row.
	colIdx := map[string]int{colCategory: -1, colEmission: -1, colUserID: -1}
	for i, name := range rows[0] {
		if _, known := colIdx[name]; known {
			colIdx[name] = i
		}
	}
	for name, idx := range colIdx {
		if idx == -1 {
			log.Warn().
				Str("component", "ledger").
				Str("column", name).
				Msg("ledger file is missing a column, back-filling")
		}
	}

	for rowNum, row := range rows[1:] {
		rec := Record{
			Category: cell(row, colIdx[colCategory]),
			UserID:   cell(row, colIdx[colUserID]),
		}
		if raw := cell(row, colIdx[colEmission]); raw != "" {
			kg, parseErr := strconv.ParseFloat(raw, 64)
			if parseErr != nil {
				log.Warn().
					Str("component", "ledger").
					Int("row", rowNum+1).
					Str("value", raw).
					Msg("unparseable emission value, treating as zero")
			} else {
				rec.CarbonKg = kg
			}
		}
		s.records = append(s.records, rec)
		s.total += rec.CarbonKg
	}

	log.Debug().
		Str("component", "ledger").
		Str("path", path).
		Int("records", len(s.records)).
		Msg("ledger loaded")

	return s, nil
}

// cell returns row[idx], or empty string when the column is absent or the
// row is short.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// Append validates and stores one emission record, then persists the full
// table.
//
// Invalid records (empty user id, negative or non-finite emission value) are
// silently rejected with a diagnostic: the session continues and nil is
// returned. A persistence failure is returned to the caller, but the
// in-memory ledger keeps the record; a restart after such a failure shows
// the stale on-disk ledger. That inconsistency is inherited behavior,
// documented rather than fixed.
func (s *Store) Append(ctx context.Context, rec Record) error {
	log := logging.FromContext(ctx)

	if rec.UserID == "" {
		log.Warn().
			Str("component", "ledger").
			Str("category", rec.Category).
			Msg("rejecting record with empty user id")
		return nil
	}
	if rec.CarbonKg < 0 || math.IsNaN(rec.CarbonKg) || math.IsInf(rec.CarbonKg, 0) {
		log.Warn().
			Str("component", "ledger").
			Str("user_id", rec.UserID).
			Float64("carbon_kg", rec.CarbonKg).
			Msg("rejecting record with invalid emission value")
		return nil
	}

	s.records = append(s.records, rec)
	s.total += rec.CarbonKg

	if err := s.persist(); err != nil {
		return err
	}

	log.Info().
		Str("component", "ledger").
		Str("operation", "append").
		Str("category", rec.Category).
		Str("user_id", rec.UserID).
		Float64("carbon_kg", rec.CarbonKg).
		Msg("emission recorded")
	return nil
}

// Remove deletes all records for userID, or the entire ledger when userID is
// empty, and persists the result.
func (s *Store) Remove(ctx context.Context, userID string) error {
	log := logging.FromContext(ctx)

	if userID == "" {
		s.records = nil
		s.total = 0
	} else {
		kept := s.records[:0]
		for _, rec := range s.records {
			if rec.UserID != userID {
				kept = append(kept, rec)
			}
		}
		s.records = kept
		s.total = 0
		for _, rec := range s.records {
			s.total += rec.CarbonKg
		}
	}

	if err := s.persist(); err != nil {
		return err
	}

	log.Info().
		Str("component", "ledger").
		Str("operation", "remove").
		Str("user_id", userID).
		Int("remaining", len(s.records)).
		Msg("ledger records removed")
	return nil
}

// Total returns the sum of emissions for userID, or across the whole ledger
// when userID is empty. An empty ledger totals zero.
func (s *Store) Total(userID string) float64 {
	if userID == "" {
		return s.total
	}
	var sum float64
	for _, rec := range s.records {
		if rec.UserID == userID {
			sum += rec.CarbonKg
		}
	}
	return sum
}

// Records returns a copy of the ledger in insertion order, optionally
// filtered to one user.
func (s *Store) Records(userID string) []Record {
	out := make([]Record, 0, len(s.records))
	for _, rec := range s.records {
		if userID == "" || rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out
}

// Len returns the number of stored records.
func (s *Store) Len() int { return len(s.records) }

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// persist rewrites the whole table. The write goes to a temp file in the
// same directory followed by a rename, so readers never observe a partially
// written ledger.
func (s *Store) persist() error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating ledger directory %s: %w", dir, err)
		}
	}

	tmp, err := os.CreateTemp(dir, ".ledger-*.csv")
	if err != nil {
		return fmt.Errorf("creating temp ledger file: %w", err)
	}
	tmpName := tmp.Name()

	writer := csv.NewWriter(tmp)
	writeErr := writer.Write([]string{colCategory, colEmission, colUserID})
	for _, rec := range s.records {
		if writeErr != nil {
			break
		}
		writeErr = writer.Write([]string{
			rec.Category,
			strconv.FormatFloat(rec.CarbonKg, 'f', -1, 64),
			rec.UserID,
		})
	}
	writer.Flush()
	if writeErr == nil {
		writeErr = writer.Error()
	}
	if closeErr := tmp.Close(); writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing ledger %s: %w", s.path, writeErr)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replacing ledger %s: %w", s.path, err)
	}
	return nil
}
