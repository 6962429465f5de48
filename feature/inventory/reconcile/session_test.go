package reconcile_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"inventory-reconciler/feature/inventory/matcher"
	"inventory-reconciler/feature/inventory/models"
	"inventory-reconciler/feature/inventory/reconcile"
	"inventory-reconciler/feature/inventory/spaces"
	"inventory-reconciler/feature/inventory/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scripted feeds a fixed list of lines, then io.EOF.
type scripted struct {
	lines []string
	err   error
}

func (s *scripted) ReadLine() (string, error) {
	if len(s.lines) == 0 {
		if s.err != nil {
			return "", s.err
		}
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

// recordingConsole keeps the label requests it was asked to show.
type recordingConsole struct {
	reconcile.NopConsole
	asked   []reconcile.LabelReason
	ignored []string
	spaces  []string
}

func (c *recordingConsole) AskLabel(_ string, reason reconcile.LabelReason) {
	c.asked = append(c.asked, reason)
}

func (c *recordingConsole) Ignored(token string) {
	c.ignored = append(c.ignored, token)
}

func (c *recordingConsole) SpaceChanged(space string) {
	c.spaces = append(c.spaces, space)
}

const inventory = "2016-06-23\t12345\tSilla\tRimax\tA1-Lab\n" +
	"2016-06-23\t777\tMesa\tRimax\tB2\n"

var fixedNow = func() time.Time { return time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC) }

func setup(t *testing.T, lines ...string) (*reconcile.Session, *store.Store, *recordingConsole) {
	t.Helper()
	s, err := store.Parse(strings.NewReader(inventory), models.DefaultLayout())
	require.NoError(t, err)

	table := spaces.New(
		spaces.Entry{Canonical: "A1-Lab", Alias: "Laboratorio A1"},
		spaces.Entry{Canonical: "B2", Alias: "Bodega"},
	)
	console := &recordingConsole{}
	session := reconcile.NewSession(s, matcher.New(s, table), &scripted{lines: lines},
		reconcile.WithConsole(console),
		reconcile.WithClock(fixedNow),
	)
	return session, s, console
}

func TestRun_EmptySessionLeavesStoreUntouched(t *testing.T) {
	session, s, _ := setup(t, "")
	before := string(s.Bytes())

	summary, err := session.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, reconcile.Summary{}, summary)
	assert.Equal(t, before, string(s.Bytes()))
}

func TestRun_StopsAtEmptyToken(t *testing.T) {
	session, s, _ := setup(t, "A1-Lab", "12345", "", "777")

	summary, err := session.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Found)
	assert.Equal(t, 0, s.Record(1).FoundCount)
}

func TestRun_EndOfInputStops(t *testing.T) {
	session, s, _ := setup(t, "A1-Lab", "12345")

	_, err := session.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, s.Record(0).FoundCount)
}

func TestRun_ReadError(t *testing.T) {
	s, err := store.Parse(strings.NewReader(inventory), models.DefaultLayout())
	require.NoError(t, err)
	input := &scripted{err: errors.New("tty gone")}
	session := reconcile.NewSession(s, matcher.New(s, nil), input)

	_, err = session.Run(context.Background())
	assert.ErrorContains(t, err, "tty gone")
}

func TestRun_CancelledContext(t *testing.T) {
	session, _, _ := setup(t, "A1-Lab")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := session.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHandle_IgnoredBeforeSpace(t *testing.T) {
	session, s, console := setup(t)

	out, err := session.Handle("12345")
	require.NoError(t, err)

	assert.Equal(t, reconcile.OutcomeIgnored, out)
	assert.Equal(t, []string{"12345"}, console.ignored)
	assert.Equal(t, 0, s.Record(0).FoundCount)
}

func TestHandle_SpaceSelection(t *testing.T) {
	session, _, console := setup(t)

	out, err := session.Handle("  bodega ")
	require.NoError(t, err)

	assert.Equal(t, reconcile.OutcomeSpace, out)
	assert.Equal(t, "bodega", session.CurrentSpace())
	assert.Equal(t, []string{"bodega"}, console.spaces)
}

func TestHandle_FoundInExpectedSpace(t *testing.T) {
	session, s, console := setup(t)
	_, _ = session.Handle("a1-lab")

	out, err := session.Handle("1234500")
	require.NoError(t, err)

	assert.Equal(t, reconcile.OutcomeFound, out)
	assert.Equal(t, 1, s.Record(0).FoundCount)
	assert.Empty(t, s.Record(0).FoundInSpaces)
	assert.Empty(t, console.asked)
}

func TestHandle_FoundElsewhereIsAnnotated(t *testing.T) {
	session, s, _ := setup(t)
	_, _ = session.Handle("B2")

	_, err := session.Handle("12345")
	require.NoError(t, err)

	assert.Equal(t, 1, s.Record(0).FoundCount)
	assert.Equal(t, []string{"B2"}, s.Record(0).FoundInSpaces)
	assert.Equal(t, 1, session.Summary().Annotated)
}

func TestHandle_DuplicateWithLabel(t *testing.T) {
	session, s, console := setup(t, "segunda etiqueta")
	_, _ = session.Handle("A1-Lab")
	_, _ = session.Handle("12345")

	out, err := session.Handle("12345")
	require.NoError(t, err)

	assert.Equal(t, reconcile.OutcomeDuplicate, out)
	assert.Equal(t, 2, s.Record(0).FoundCount)
	assert.Equal(t, []reconcile.LabelReason{reconcile.ReasonDuplicate}, console.asked)
	// same space: no annotation
	assert.Empty(t, s.Record(0).FoundInSpaces)
}

func TestHandle_DuplicateElsewhereCarriesLabel(t *testing.T) {
	session, s, _ := setup(t, "otra silla")
	_, _ = session.Handle("A1-Lab")
	_, _ = session.Handle("12345")
	_, _ = session.Handle("B2")

	_, err := session.Handle("12345")
	require.NoError(t, err)

	assert.Equal(t, []string{"B2=otra silla"}, s.Record(0).FoundInSpaces)
}

func TestHandle_DuplicateWithoutLabelIsRolledBack(t *testing.T) {
	session, s, _ := setup(t, "")
	_, _ = session.Handle("B2")
	_, _ = session.Handle("12345")
	before := string(s.Bytes())

	out, err := session.Handle("12345")
	require.NoError(t, err)

	assert.Equal(t, reconcile.OutcomeDiscarded, out)
	assert.Equal(t, 1, s.Record(0).FoundCount)
	assert.Equal(t, before, string(s.Bytes()))
}

func TestHandle_ForeignAccumulation(t *testing.T) {
	session, s, console := setup(t, "mystery", "again")
	_, _ = session.Handle("A1")

	out, err := session.Handle("99999")
	require.NoError(t, err)
	assert.Equal(t, reconcile.OutcomeForeignAdded, out)

	require.Equal(t, 3, s.Len())
	foreign := s.Record(2)
	assert.Equal(t, -1, foreign.FoundCount)
	assert.Equal(t, "99999", foreign.InventoryNumber)
	assert.Equal(t, "A1", foreign.ExpectedSpace)
	assert.Equal(t, "mystery", foreign.Label)
	assert.Equal(t, "2026-10-16", foreign.Date)

	out, err = session.Handle("99999")
	require.NoError(t, err)
	assert.Equal(t, reconcile.OutcomeForeignRepeat, out)
	assert.Equal(t, -2, foreign.FoundCount)
	assert.Equal(t, 3, s.Len())
	// still in the space where it was first found
	assert.Empty(t, foreign.FoundInSpaces)

	assert.Equal(t, []reconcile.LabelReason{reconcile.ReasonUnknown, reconcile.ReasonForeignRepeat}, console.asked)
}

func TestHandle_ForeignRepeatElsewhere(t *testing.T) {
	session, s, _ := setup(t, "mystery", "other box")
	_, _ = session.Handle("A1")
	_, _ = session.Handle("99999")
	_, _ = session.Handle("Bodega")

	_, err := session.Handle("99999")
	require.NoError(t, err)

	assert.Equal(t, []string{"Bodega=other box"}, s.Record(2).FoundInSpaces)
}

func TestHandle_ForeignWithoutLabelIsDiscarded(t *testing.T) {
	session, s, _ := setup(t, "")
	_, _ = session.Handle("A1")

	out, err := session.Handle("99999")
	require.NoError(t, err)

	assert.Equal(t, reconcile.OutcomeDiscarded, out)
	assert.Equal(t, 2, s.Len())
}

func TestHandle_ForeignRepeatWithoutLabelIsDiscarded(t *testing.T) {
	session, s, _ := setup(t, "mystery", "")
	_, _ = session.Handle("A1")
	_, _ = session.Handle("99999")

	out, err := session.Handle("99999")
	require.NoError(t, err)

	assert.Equal(t, reconcile.OutcomeDiscarded, out)
	assert.Equal(t, -1, s.Record(2).FoundCount)
}

func TestHandle_LabelAtEndOfInputDiscards(t *testing.T) {
	session, s, _ := setup(t)
	_, _ = session.Handle("A1")

	out, err := session.Handle("99999")
	require.NoError(t, err)

	assert.Equal(t, reconcile.OutcomeDiscarded, out)
	assert.Equal(t, 2, s.Len())
}

func TestRun_Summary(t *testing.T) {
	session, _, _ := setup(t,
		"123", // ignored, no space yet
		"A1-Lab",
		"12345", // found
		"12345", "dup", // duplicate
		"55", "", // unknown, discarded
		"55", "cable", // foreign added
		"b2",
		"777", // found
		"",
	)

	summary, err := session.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, reconcile.Summary{
		Spaces:       2,
		Ignored:      1,
		Found:        2,
		Duplicates:   1,
		ForeignAdded: 1,
		Discarded:    1,
	}, summary)
	assert.Equal(t, 5, summary.Scans())
}
