package models

import (
	"regexp"
	"strconv"
	"strings"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

// IsDate reports whether a column starts with a YYYY-MM-DD date.
// It is the discriminator between records and header or noise lines.
func IsDate(s string) bool {
	return datePattern.MatchString(s)
}

// Record is one line of the expected inventory plus the two tracking columns.
type Record struct {
	// FoundCount is 0 when not found yet, 1 when found, >1 when found more
	// than once and negative when the item does not belong to the inventory.
	FoundCount int

	// FoundInSpaces annotates every space, other than the expected one, where
	// the item was scanned. Entries look like "space" or "space=label".
	FoundInSpaces []string

	Date            string
	InventoryNumber string
	ExpectedSpace   string

	// Label is the operator description of a foreign item.
	Label string

	// Passthrough keeps every unmodeled column, in file order.
	Passthrough []string

	// columns is the number of columns the record is written with.
	columns int
}

// IsForeign reports whether the record was created for an unmatched scan.
func (r *Record) IsForeign() bool {
	return r.FoundCount < 0
}

// Annotate appends a found-in-space annotation.
func (r *Record) Annotate(space, label string) {
	r.FoundInSpaces = append(r.FoundInSpaces, Annotation(space, label))
}

// Annotation formats a found-in-space entry.
func Annotation(space, label string) string {
	if label == "" {
		return space
	}
	return space + "=" + label
}

// NewForeign builds the record of an item that is not in the inventory.
func NewForeign(layout Layout, code, space, label, date string) *Record {
	return &Record{
		FoundCount:      -1,
		Date:            date,
		InventoryNumber: code,
		ExpectedSpace:   space,
		Label:           label,
		Passthrough:     make([]string, max(0, layout.Columns-Synthetic-4)),
		columns:         layout.Columns,
	}
}

// Decode builds a record from already trimmed columns of a tracked line.
// The caller guarantees len(cols) > layout.Date and a parseable counter.
func Decode(layout Layout, cols []string) (*Record, error) {
	count, err := strconv.Atoi(cols[0])
	if err != nil {
		return nil, err
	}

	r := &Record{
		FoundCount:    count,
		FoundInSpaces: splitAnnotations(cols[1], layout.AnnotationSeparator),
		columns:       len(cols),
	}

	for i := Synthetic; i < len(cols); i++ {
		switch i {
		case layout.Date:
			r.Date = cols[i]
		case layout.Number:
			r.InventoryNumber = cols[i]
		case layout.Space:
			r.ExpectedSpace = cols[i]
		case layout.Label:
			r.Label = cols[i]
		default:
			r.Passthrough = append(r.Passthrough, cols[i])
		}
	}
	return r, nil
}

// Promote builds an untracked record from the columns of a raw export line.
func Promote(layout Layout, cols []string) *Record {
	tracked := make([]string, 0, len(cols)+Synthetic)
	tracked = append(tracked, "0", "")
	tracked = append(tracked, cols...)
	r, _ := Decode(layout, tracked)
	return r
}

// Encode returns the columns of the record, the inverse of Decode.
func (r *Record) Encode(layout Layout) []string {
	n := r.columns
	for _, named := range []struct {
		pos int
		val string
	}{
		{layout.Date, r.Date},
		{layout.Number, r.InventoryNumber},
		{layout.Space, r.ExpectedSpace},
		{layout.Label, r.Label},
	} {
		if named.val != "" && named.pos >= n {
			n = named.pos + 1
		}
	}
	if n < Synthetic+len(r.Passthrough) {
		n = Synthetic + len(r.Passthrough)
	}

	cols := make([]string, n)
	cols[0] = strconv.Itoa(r.FoundCount)
	cols[1] = strings.Join(r.FoundInSpaces, layout.AnnotationSeparator)

	pass := 0
	for i := Synthetic; i < n; i++ {
		switch i {
		case layout.Date:
			cols[i] = r.Date
		case layout.Number:
			cols[i] = r.InventoryNumber
		case layout.Space:
			cols[i] = r.ExpectedSpace
		case layout.Label:
			cols[i] = r.Label
		default:
			if pass < len(r.Passthrough) {
				cols[i] = r.Passthrough[pass]
				pass++
			}
		}
	}
	return cols
}

// Line joins the encoded columns with the layout separator.
func (r *Record) Line(layout Layout) string {
	return strings.Join(r.Encode(layout), layout.Separator)
}

func splitAnnotations(s, sep string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, sep)
}
