package report

import (
	"fmt"
	"io"

	"inventory-reconciler/feature/inventory/models"

	"go.uber.org/zap"
)

// Category is one section of the final report.
type Category string

const (
	// CategoryForeign holds items found but not part of the inventory.
	CategoryForeign Category = "foreign"
	// CategoryNotFound holds inventory items nobody scanned.
	CategoryNotFound Category = "not_found"
	// CategoryFound holds inventory items scanned at least once.
	CategoryFound Category = "found"
)

// Categories lists the report sections in print order.
var Categories = []Category{CategoryForeign, CategoryNotFound, CategoryFound}

var titles = map[Category]string{
	CategoryForeign:  "ITEMS NOT IN YOUR INVENTORY, BUT FOUND IN THE PHYSICAL SPACES:",
	CategoryNotFound: "ITEMS NOT FOUND IN THE PHYSICAL SPACES:",
	CategoryFound:    "ITEMS FOUND IN THE PHYSICAL SPACES:",
}

// Title returns the heading printed above a category.
func (c Category) Title() string {
	return titles[c]
}

// Report partitions the final records by found counter.
type Report struct {
	NotFound []*models.Record
	Foreign  []*models.Record
	Found    []*models.Record
}

// Summary holds the size of each category.
type Summary struct {
	Total    int `json:"total"`
	NotFound int `json:"not_found"`
	Foreign  int `json:"foreign"`
	Found    int `json:"found"`
	// Duplicated counts found items scanned more than once.
	Duplicated int `json:"duplicated"`
	// Misplaced counts found items carrying space annotations.
	Misplaced int `json:"misplaced"`
}

// Build places every record in exactly one category, keeping store order.
func Build(records []*models.Record) Report {
	var r Report
	for _, rec := range records {
		switch {
		case rec.FoundCount == 0:
			r.NotFound = append(r.NotFound, rec)
		case rec.FoundCount < 0:
			r.Foreign = append(r.Foreign, rec)
		default:
			r.Found = append(r.Found, rec)
		}
	}
	return r
}

// Records returns the records of one category.
func (r Report) Records(c Category) []*models.Record {
	switch c {
	case CategoryForeign:
		return r.Foreign
	case CategoryNotFound:
		return r.NotFound
	case CategoryFound:
		return r.Found
	default:
		return nil
	}
}

// Summary computes the category sizes.
func (r Report) Summary() Summary {
	s := Summary{
		NotFound: len(r.NotFound),
		Foreign:  len(r.Foreign),
		Found:    len(r.Found),
	}
	s.Total = s.NotFound + s.Foreign + s.Found
	for _, rec := range r.Found {
		if rec.FoundCount > 1 {
			s.Duplicated++
		}
		if len(rec.FoundInSpaces) > 0 {
			s.Misplaced++
		}
	}
	return s
}

// Write prints every non-empty category as a titled, separator-joined listing.
func Write(w io.Writer, r Report, layout models.Layout) error {
	for _, c := range Categories {
		recs := r.Records(c)
		if _, err := fmt.Fprintln(w, "\n===================================================================================="); err != nil {
			return err
		}
		if len(recs) == 0 {
			continue
		}
		if _, err := fmt.Fprintln(w, c.Title()); err != nil {
			return err
		}
		for _, rec := range recs {
			if _, err := fmt.Fprintln(w, rec.Line(layout)); err != nil {
				return err
			}
		}
	}
	return nil
}

// Log emits the report summary through the structured logger.
func Log(l *zap.Logger, r Report) {
	s := r.Summary()
	l.Info("Reconciliation report",
		zap.Int("total_items", s.Total),
		zap.Int("found", s.Found),
		zap.Int("not_found", s.NotFound),
		zap.Int("foreign", s.Foreign),
		zap.Int("duplicated", s.Duplicated),
		zap.Int("misplaced", s.Misplaced),
	)
}
