package inventory

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"inventory-reconciler/core/logger"
	"inventory-reconciler/core/metrics"
	"inventory-reconciler/feature/inventory/matcher"
	"inventory-reconciler/feature/inventory/reconcile"
	"inventory-reconciler/feature/inventory/report"
	"inventory-reconciler/feature/inventory/spaces"
	"inventory-reconciler/feature/inventory/store"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Presenter is the operator console of a run.
type Presenter interface {
	reconcile.Console
	// Intro announces the file about to be counted.
	Intro(path string)
	// Error reports a failure that stops the current file.
	Error(path string, err error)
}

type nopPresenter struct {
	reconcile.NopConsole
}

func (nopPresenter) Intro(string)        {}
func (nopPresenter) Error(string, error) {}

// Result describes one processed inventory file.
type Result struct {
	SessionID  string
	Path       string
	BackupPath string
	ReportPath string
	Dropped    int
	Session    reconcile.Summary
	Report     report.Summary
}

// Service runs one counting session per inventory file.
type Service struct {
	fs        afero.Fs
	cfg       Config
	table     *spaces.Table
	logger    *zap.Logger
	input     reconcile.InputReader
	presenter Presenter
	reportOut io.Writer
	archiver  *Archiver
	metrics   *metrics.Metrics
	now       func() time.Time
	newID     func() string
}

// Option configures a Service.
type Option func(*Service)

// WithPresenter sets the operator console.
func WithPresenter(p Presenter) Option {
	return func(s *Service) { s.presenter = p }
}

// WithReportOutput sets where the verbose report is printed.
func WithReportOutput(w io.Writer) Option {
	return func(s *Service) { s.reportOut = w }
}

// WithArchiver archives every processed file to object storage.
func WithArchiver(a *Archiver) Option {
	return func(s *Service) { s.archiver = a }
}

// WithMetrics records session outcomes and report sizes on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithClock sets the clock used to date foreign records.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithSessionIDs sets the generator of session ids.
func WithSessionIDs(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

// NewService creates a service reading operator tokens from input.
func NewService(fs afero.Fs, cfg Config, table *spaces.Table, input reconcile.InputReader, l *zap.Logger, opts ...Option) *Service {
	cfg.Layout = cfg.Layout.WithDefaults()
	if table == nil {
		table = spaces.New()
	}
	s := &Service{
		fs:        fs,
		cfg:       cfg,
		table:     table,
		logger:    l,
		input:     input,
		presenter: nopPresenter{},
		reportOut: io.Discard,
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ProcessAll processes every file in order. A failing file is reported and
// skipped; the returned error joins all failures.
func (s *Service) ProcessAll(ctx context.Context, paths []string) ([]*Result, error) {
	var (
		results []*Result
		errs    []error
	)
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		res, err := s.Process(ctx, path)
		s.countFile(err)
		if err != nil {
			s.presenter.Error(path, err)
			s.logger.Error("Inventory file failed", zap.String("path", path), zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		results = append(results, res)
	}
	return results, errors.Join(errs...)
}

// Process runs load, counting session, persist and report for one file.
func (s *Service) Process(ctx context.Context, path string) (*Result, error) {
	res := &Result{SessionID: s.newID(), Path: path}
	l := logger.WithSession(s.logger, res.SessionID, path)

	records, err := store.Load(s.fs, path, s.cfg.Layout)
	if err != nil {
		return nil, err
	}
	res.Dropped = records.Dropped()
	l.Info("Inventory loaded", zap.Int("records", records.Len()), zap.Int("dropped_lines", records.Dropped()))

	s.presenter.Intro(path)
	session := reconcile.NewSession(records, matcher.New(records, s.table), s.input,
		reconcile.WithConsole(s.presenter),
		reconcile.WithLogger(l),
		reconcile.WithClock(s.now),
	)
	summary, runErr := session.Run(ctx)
	res.Session = summary
	if runErr != nil {
		// Keep what was counted before input failed.
		l.Warn("Session interrupted; saving progress", zap.Error(runErr))
	}
	l.Info("Session finished",
		zap.Int("scans", summary.Scans()),
		zap.Int("found", summary.Found),
		zap.Int("duplicates", summary.Duplicates),
		zap.Int("foreign_added", summary.ForeignAdded),
		zap.Int("foreign_repeats", summary.ForeignRepeats),
		zap.Int("discarded", summary.Discarded),
		zap.Int("annotated", summary.Annotated),
	)

	res.BackupPath, err = records.Persist(s.fs, path)
	if err != nil {
		return nil, errors.Join(err, runErr)
	}
	l.Info("Inventory saved", zap.String("backup", res.BackupPath))

	rep := report.Build(records.Records())
	res.Report = rep.Summary()
	report.Log(l, rep)
	s.observe(res, rep)
	if s.cfg.Verbose {
		if err := report.Write(s.reportOut, rep, s.cfg.Layout); err != nil {
			return res, errors.Join(fmt.Errorf("failed to print report: %w", err), runErr)
		}
	}

	if s.cfg.XLSX {
		var buf bytes.Buffer
		if err := report.WriteXLSX(&buf, rep, s.cfg.Layout); err != nil {
			return res, errors.Join(err, runErr)
		}
		res.ReportPath = ReportPath(path)
		if err := afero.WriteFile(s.fs, res.ReportPath, buf.Bytes(), 0o644); err != nil {
			return res, errors.Join(fmt.Errorf("failed to save report: %w", err), runErr)
		}
		l.Info("Report workbook saved", zap.String("path", res.ReportPath))
	}

	if s.archiver != nil {
		if err := s.archiver.Archive(ctx, s.fs, res.SessionID, path, res.BackupPath, res.ReportPath); err != nil {
			l.Warn("Archiving failed; local files are intact", zap.Error(err))
		} else {
			l.Info("Session archived")
		}
	}

	return res, runErr
}

func (s *Service) countFile(err error) {
	if s.metrics == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "failed"
	}
	s.metrics.FilesTotal.WithLabelValues(status).Inc()
}

func (s *Service) observe(res *Result, rep report.Report) {
	if s.metrics == nil {
		return
	}
	s.metrics.DroppedLines.Add(float64(res.Dropped))
	for outcome, n := range res.Session.Counts() {
		s.metrics.ScansTotal.WithLabelValues(string(outcome)).Add(float64(n))
	}
	file := filepath.Base(res.Path)
	for _, c := range report.Categories {
		s.metrics.ReportItems.WithLabelValues(file, string(c)).Set(float64(len(rep.Records(c))))
	}
}
