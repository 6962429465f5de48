// Package inventory implements the physical inventory count.
//
// An operator walks through the physical spaces with a barcode scanner (or a
// keyboard), and every scanned tag is compared with the expected inventory
// exported by the inventory system. The export is a tab-separated file that
// gains two tracking columns and is rewritten after every run, so the count
// can be resumed as many times as needed.
//
// # Components
//
//   - models: the inventory record and the column layout.
//   - store: load, look up and persist the records of one file.
//   - spaces: the space equivalence table.
//   - matcher: code resolution and the space equivalence heuristic.
//   - reconcile: the counting session state machine.
//   - report: the final categorized report.
//
// # Service
//
// Service ties them together: for each file it loads the records, runs a
// session against the operator input, backs the file up and rewrites it,
// emits the report and optionally archives everything to object storage.
// A file that cannot be read or written is skipped; the others still run.
package inventory
