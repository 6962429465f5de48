package reconcile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"inventory-reconciler/feature/inventory/matcher"
	"inventory-reconciler/feature/inventory/models"
	"inventory-reconciler/feature/inventory/store"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// Session is the counting state machine for one inventory file.
type Session struct {
	records *store.Store
	matcher *matcher.Matcher
	input   InputReader
	console Console
	logger  *zap.Logger
	now     func() time.Time

	space   string
	summary Summary
}

// Option configures a Session.
type Option func(*Session)

// WithConsole sets the presentation of session events.
func WithConsole(c Console) Option {
	return func(s *Session) { s.console = c }
}

// WithLogger sets the session logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithClock sets the clock used to date foreign records.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// NewSession creates a session over records, resolving tokens with m and
// reading them from input.
func NewSession(records *store.Store, m *matcher.Matcher, input InputReader, opts ...Option) *Session {
	s := &Session{
		records: records,
		matcher: m,
		input:   input,
		console: NopConsole{},
		logger:  zap.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CurrentSpace returns the space being counted, empty before the first one.
func (s *Session) CurrentSpace() string {
	return s.space
}

// Summary returns the outcome counters so far.
func (s *Session) Summary() Summary {
	return s.summary
}

// Run reads tokens until an empty line or the end of input. The context is
// checked between tokens; a blocked read is not interrupted.
func (s *Session) Run(ctx context.Context) (Summary, error) {
	for {
		if err := ctx.Err(); err != nil {
			return s.summary, err
		}

		s.console.Prompt()
		token, err := s.input.ReadLine()
		if errors.Is(err, io.EOF) {
			return s.summary, nil
		}
		if err != nil {
			return s.summary, fmt.Errorf("failed to read token: %w", err)
		}

		outcome, err := s.Handle(token)
		if err != nil {
			return s.summary, err
		}
		if outcome == OutcomeStop {
			return s.summary, nil
		}
	}
}

// Handle applies one operator token to the session.
func (s *Session) Handle(token string) (Outcome, error) {
	token = strings.TrimSpace(token)

	switch {
	case token == "":
		return OutcomeStop, nil
	case s.matcher.IsSpace(token):
		s.space = token
		s.console.SpaceChanged(token)
		s.logger.Debug("Space selected", zap.String("space", token))
		return s.done(OutcomeSpace), nil
	case s.space == "":
		s.console.Ignored(token)
		s.logger.Debug("Token ignored before any space", zap.String("token", token))
		return s.done(OutcomeIgnored), nil
	}

	idx, ok := s.matcher.Lookup(token)
	if !ok {
		return s.foreignAdded(token)
	}
	if s.records.Record(idx).IsForeign() {
		return s.foreignRepeat(token, idx)
	}
	return s.found(token, idx)
}

func (s *Session) foreignAdded(code string) (Outcome, error) {
	label, err := s.askLabel(code, ReasonUnknown)
	if err != nil {
		return "", err
	}
	if label == "" {
		return s.discard(code), nil
	}

	rec := models.NewForeign(s.records.Layout(), code, s.space, label, s.now().Format(dateLayout))
	s.records.Append(rec)
	s.console.Recorded(code, rec.FoundCount)
	s.logger.Info("Foreign item recorded",
		zap.String("code", code),
		zap.String("space", s.space),
		zap.String("label", label),
	)
	return s.done(OutcomeForeignAdded), nil
}

func (s *Session) foreignRepeat(code string, idx int) (Outcome, error) {
	label, err := s.askLabel(code, ReasonForeignRepeat)
	if err != nil {
		return "", err
	}
	if label == "" {
		return s.discard(code), nil
	}

	rec := s.records.Record(idx)
	rec.FoundCount--
	s.annotate(rec, label)
	s.console.Recorded(code, rec.FoundCount)
	s.logger.Info("Foreign item seen again",
		zap.String("code", code),
		zap.Int("found_count", rec.FoundCount),
	)
	return s.done(OutcomeForeignRepeat), nil
}

func (s *Session) found(code string, idx int) (Outcome, error) {
	rec := s.records.Record(idx)
	rec.FoundCount++

	if rec.FoundCount == 1 {
		s.console.Found(code)
		s.annotate(rec, "")
		return s.done(OutcomeFound), nil
	}

	label, err := s.askLabel(code, ReasonDuplicate)
	if err != nil {
		rec.FoundCount--
		return "", err
	}
	if label == "" {
		rec.FoundCount--
		return s.discard(code), nil
	}

	s.annotate(rec, label)
	s.console.Recorded(code, rec.FoundCount)
	s.logger.Info("Inventory item scanned again",
		zap.String("code", code),
		zap.String("inventory_number", rec.InventoryNumber),
		zap.Int("found_count", rec.FoundCount),
	)
	return s.done(OutcomeDuplicate), nil
}

// annotate records the current space on rec unless it matches the expected one.
func (s *Session) annotate(rec *models.Record, label string) {
	if s.matcher.Equivalent(s.space, rec.ExpectedSpace) {
		return
	}
	rec.Annotate(s.space, label)
	s.summary.Annotated++
	s.logger.Debug("Item found outside its space",
		zap.String("inventory_number", rec.InventoryNumber),
		zap.String("expected_space", rec.ExpectedSpace),
		zap.String("space", s.space),
	)
}

// askLabel reads a label; end of input counts as an empty answer.
func (s *Session) askLabel(code string, reason LabelReason) (string, error) {
	s.console.AskLabel(code, reason)
	label, err := s.input.ReadLine()
	if errors.Is(err, io.EOF) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read label for %s: %w", code, err)
	}
	return strings.TrimSpace(label), nil
}

func (s *Session) discard(code string) Outcome {
	s.console.Discarded(code)
	s.logger.Debug("Scan discarded", zap.String("code", code))
	return s.done(OutcomeDiscarded)
}

func (s *Session) done(o Outcome) Outcome {
	s.summary.add(o)
	return o
}
