package terminal

import (
	"fmt"
	"io"
	"strings"

	"inventory-reconciler/core/console"
	"inventory-reconciler/feature/inventory/reconcile"
)

// Intro is printed once at the start of each session.
const Intro = "Enter (keyboard or barcode scanner) the space you are working in and the items you find. " +
	"You can change space at any time. Press ENTER on an empty line to finish."

// Console renders session events on a writer.
type Console struct {
	out    io.Writer
	styles console.Styles
}

var _ reconcile.Console = (*Console)(nil)

// New creates a console on out. Colors are used only when out is a terminal.
func New(out io.Writer) *Console {
	styles := console.PlainStyles()
	if console.IsTerminal(out) {
		styles = console.ColorStyles()
	}
	return &Console{out: out, styles: styles}
}

// NewWithStyles creates a console with explicit styles.
func NewWithStyles(out io.Writer, styles console.Styles) *Console {
	return &Console{out: out, styles: styles}
}

// Intro prints the session instructions and the file being counted.
func (c *Console) Intro(path string) {
	fmt.Fprintln(c.out, c.styles.Muted.Render(path))
	fmt.Fprintln(c.out, Intro)
}

func (c *Console) Prompt() {
	fmt.Fprint(c.out, "\n"+c.styles.Prompt.Render(">")+"     ")
}

func (c *Console) SpaceChanged(space string) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, c.styles.Space.Render("SPACE: "+space))
}

func (c *Console) Ignored(token string) {
	fmt.Fprintln(c.out, c.styles.Warning.Render(
		fmt.Sprintf("Input %q ignored. Please type the physical SPACE where you will scan items first.", token)))
}

func (c *Console) Found(code string) {
	fmt.Fprintln(c.out, "ITEM: "+code+"  "+c.styles.Success.Render("FOUND"))
}

func (c *Console) AskLabel(code string, reason reconcile.LabelReason) {
	var question string
	switch reason {
	case reconcile.ReasonUnknown:
		question = "NOT in your inventory. What is it?"
	case reconcile.ReasonForeignRepeat:
		question = "NOT in your inventory, and already scanned before. What is it?"
	case reconcile.ReasonDuplicate:
		question = "FOUND, but already scanned before. What is it?"
	}
	fmt.Fprint(c.out, "ITEM: "+code+"  "+c.styles.Question.Render(question)+
		c.styles.Muted.Render(" (press ENTER to ignore it if it was a mistake): "))
}

func (c *Console) Recorded(code string, count int) {
	fmt.Fprintln(c.out, c.styles.Success.Render(fmt.Sprintf("Recorded %s (count %d)", code, count)))
}

func (c *Console) Discarded(code string) {
	fmt.Fprintln(c.out, c.styles.Muted.Render("Ignored "+code))
}

// Error prints a failure that stops the current file.
func (c *Console) Error(path string, err error) {
	fmt.Fprintln(c.out, c.styles.Error.Render(strings.TrimSpace(fmt.Sprintf("%s: %v", path, err))))
}
