// Package report derives the final reconciliation report from the records of
// a session.
//
// Records fall in exactly one of three categories by found counter: not found
// (zero), foreign (negative) and found (positive). The report can be printed
// as titled tab-separated listings, logged as a summary, or exported as an
// xlsx workbook with one sheet per category.
package report
