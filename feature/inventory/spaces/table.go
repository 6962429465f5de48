package spaces

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/spf13/afero"
)

// Entry maps one canonical space name to its alias.
type Entry struct {
	Canonical string
	Alias     string
}

// Table is the space equivalence table. The zero value is an empty table.
type Table struct {
	entries []Entry
	index   map[string]int
}

// New builds a table from entries. Later entries replace earlier ones with the
// same canonical name.
func New(entries ...Entry) *Table {
	t := &Table{}
	for _, e := range entries {
		t.Add(e.Canonical, e.Alias)
	}
	return t
}

// Load reads a two-column file of canonical space names and aliases.
// A missing file yields an empty table and ErrNotExist-wrapping error, so
// callers can decide whether to warn.
func Load(fsys afero.Fs, path, separator string) (*Table, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return New(), fmt.Errorf("failed to open space equivalences %s: %w", path, err)
	}
	defer f.Close()

	t, err := Parse(f, separator)
	if err != nil {
		return New(), fmt.Errorf("failed to read space equivalences %s: %w", path, err)
	}
	return t, nil
}

// IsMissing reports whether a Load error only means the file does not exist.
func IsMissing(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// Parse reads equivalences from r, one "canonical<sep>alias" pair per line.
// Lines without a canonical name are skipped.
func Parse(r io.Reader, separator string) (*Table, error) {
	t := New()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		cols := strings.Split(strings.TrimSpace(scanner.Text()), separator)
		canonical := strings.TrimSpace(cols[0])
		if canonical == "" {
			continue
		}
		alias := ""
		if len(cols) > 1 {
			alias = strings.TrimSpace(cols[1])
		}
		t.Add(canonical, alias)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

// Add registers or replaces the alias of a canonical space.
func (t *Table) Add(canonical, alias string) {
	if t.index == nil {
		t.index = make(map[string]int)
	}
	key := strings.ToLower(canonical)
	if i, ok := t.index[key]; ok {
		t.entries[i] = Entry{Canonical: canonical, Alias: alias}
		return
	}
	t.index[key] = len(t.entries)
	t.entries = append(t.entries, Entry{Canonical: canonical, Alias: alias})
}

// Len returns the number of canonical spaces.
func (t *Table) Len() int {
	return len(t.entries)
}

// Alias returns the alias registered for a canonical space, ignoring case.
func (t *Table) Alias(space string) (string, bool) {
	i, ok := t.index[strings.ToLower(space)]
	if !ok {
		return "", false
	}
	return t.entries[i].Alias, true
}

// IsKnownSpace reports whether token, ignoring case, is part of some canonical
// space name or alias.
func (t *Table) IsKnownSpace(token string) bool {
	token = strings.ToLower(token)
	if token == "" {
		return false
	}
	for _, e := range t.entries {
		if strings.Contains(strings.ToLower(e.Canonical), token) {
			return true
		}
		if strings.Contains(strings.ToLower(e.Alias), token) {
			return true
		}
	}
	return false
}
