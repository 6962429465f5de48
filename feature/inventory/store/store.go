package store

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"inventory-reconciler/core/backup"
	"inventory-reconciler/feature/inventory/models"

	"github.com/spf13/afero"
)

// zeroPadding is the fixed suffix some scanners append to inventory numbers.
const zeroPadding = "00"

// Store holds the inventory records of one file, in file order.
type Store struct {
	layout  models.Layout
	records []*models.Record
	dropped int
}

// New creates an empty store for the given layout.
func New(layout models.Layout) *Store {
	return &Store{layout: layout.WithDefaults()}
}

// Load reads and parses an inventory file.
func Load(fs afero.Fs, path string, layout models.Layout) (*Store, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open inventory %s: %w", path, err)
	}
	defer f.Close()

	s, err := Parse(f, layout)
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory %s: %w", path, err)
	}
	return s, nil
}

// Parse reads inventory lines from r.
//
// A line already carrying the tracking columns (integer counter first, date at
// layout.Date) is kept as is. A raw export line (date first) is promoted with a
// zero counter and no annotations. Any other line is dropped.
func Parse(r io.Reader, layout models.Layout) (*Store, error) {
	s := New(layout)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		cols := splitLine(scanner.Text(), s.layout.Separator)

		if rec, ok := s.decodeTracked(cols); ok {
			s.records = append(s.records, rec)
			continue
		}
		if raw := s.layout.RawDate(); len(cols) > raw && models.IsDate(cols[raw]) {
			s.records = append(s.records, models.Promote(s.layout, cols))
			continue
		}
		s.dropped++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) decodeTracked(cols []string) (*models.Record, bool) {
	if len(cols) <= s.layout.Date || !models.IsDate(cols[s.layout.Date]) {
		return nil, false
	}
	if _, err := strconv.Atoi(cols[0]); err != nil {
		return nil, false
	}
	rec, err := models.Decode(s.layout, cols)
	if err != nil {
		return nil, false
	}
	return rec, true
}

func splitLine(line, sep string) []string {
	line = strings.TrimRight(line, "\r\n")
	cols := strings.Split(line, sep)
	for i := range cols {
		cols[i] = strings.TrimSpace(cols[i])
	}
	return cols
}

// Layout returns the column layout of the store.
func (s *Store) Layout() models.Layout {
	return s.layout
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// Dropped returns how many lines were discarded while parsing.
func (s *Store) Dropped() int {
	return s.dropped
}

// Record returns the record at index i.
func (s *Store) Record(i int) *models.Record {
	return s.records[i]
}

// Records returns all records in store order. The slice is shared.
func (s *Store) Records() []*models.Record {
	return s.records
}

// Append adds a record at the end and returns its index.
func (s *Store) Append(r *models.Record) int {
	s.records = append(s.records, r)
	return len(s.records) - 1
}

// Lookup returns the index of the first record whose inventory number equals
// code, tolerating two trailing padding zeros on either side.
func (s *Store) Lookup(code string) (int, bool) {
	for i, r := range s.records {
		n := r.InventoryNumber
		if n == code || n+zeroPadding == code || n == code+zeroPadding {
			return i, true
		}
	}
	return -1, false
}

// WriteTo writes every record, one per line, in store order.
func (s *Store) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var total int64
	for _, r := range s.records {
		n, err := bw.WriteString(r.Line(s.layout) + "\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, bw.Flush()
}

// Bytes returns the serialized store.
func (s *Store) Bytes() []byte {
	var buf bytes.Buffer
	_, _ = s.WriteTo(&buf)
	return buf.Bytes()
}

// Persist backs up path and rewrites it with the current records.
// It returns the backup path, empty when path did not exist before.
func (s *Store) Persist(fs afero.Fs, path string) (string, error) {
	backupPath, err := backup.Overwrite(fs, path, s.Bytes())
	if err != nil {
		return backupPath, fmt.Errorf("failed to persist inventory: %w", err)
	}
	return backupPath, nil
}
