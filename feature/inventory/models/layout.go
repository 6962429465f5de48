package models

import "strconv"

// Synthetic is the number of tracking columns (found counter, found-in-spaces)
// prepended to every line of the inventory system export.
const Synthetic = 2

// Layout describes where each modeled column lives in a tracked inventory line.
// Positions are absolute, i.e. they count the two synthetic leading columns.
type Layout struct {
	// Separator splits a line into columns. Escapes such as \t are honored.
	Separator string `mapstructure:"separator" default:"\\t"`
	// Date is the position of the record date (YYYY-MM-DD).
	Date int `mapstructure:"date_column" default:"2"`
	// Number is the position of the inventory number.
	Number int `mapstructure:"number_column" default:"3"`
	// Space is the position of the space where the item is expected.
	Space int `mapstructure:"space_column" default:"6"`
	// Label is the position of the operator label of foreign items.
	Label int `mapstructure:"label_column" default:"7"`
	// Columns is the column count of records synthesized during a session.
	Columns int `mapstructure:"columns" default:"9"`
	// AnnotationSeparator joins the entries of the found-in-spaces column.
	AnnotationSeparator string `mapstructure:"annotation_separator" default:"; "`
}

// DefaultLayout returns the layout of the inventory system export.
func DefaultLayout() Layout {
	return Layout{
		Separator:           "\t",
		Date:                2,
		Number:              3,
		Space:               6,
		Label:               7,
		Columns:             9,
		AnnotationSeparator: "; ",
	}
}

// WithDefaults fills zero values and resolves escaped separators, so a
// partially configured layout stays usable.
func (l Layout) WithDefaults() Layout {
	d := DefaultLayout()

	l.Separator = unescape(l.Separator)
	if l.Separator == "" {
		l.Separator = d.Separator
	}
	if l.AnnotationSeparator == "" {
		l.AnnotationSeparator = d.AnnotationSeparator
	}
	if l.Date < Synthetic || l.Number < Synthetic || l.Space < Synthetic || l.Label < Synthetic {
		l.Date, l.Number, l.Space, l.Label = d.Date, d.Number, d.Space, d.Label
	}
	if l.Columns <= l.last() {
		l.Columns = max(d.Columns, l.last()+1)
	}
	return l
}

// RawDate is the position of the date in an export line without synthetic columns.
func (l Layout) RawDate() int {
	return l.Date - Synthetic
}

func (l Layout) last() int {
	return max(l.Date, l.Number, l.Space, l.Label)
}

func unescape(s string) string {
	if s == "" {
		return s
	}
	if u, err := strconv.Unquote(`"` + s + `"`); err == nil {
		return u
	}
	return s
}
