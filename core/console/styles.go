package console

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Palette
var (
	ColorSpace   = lipgloss.Color("#2CD7C7")
	ColorSuccess = lipgloss.Color("#20B9B4")
	ColorWarning = lipgloss.Color("#F4D03F")
	ColorError   = lipgloss.Color("#E74C3C")
	ColorMuted   = lipgloss.Color("#2C4A54")
)

// Styles groups the lipgloss styles used by the console.
type Styles struct {
	Space    lipgloss.Style
	Prompt   lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Muted    lipgloss.Style
	Question lipgloss.Style
}

// ColorStyles returns the styles used on a terminal.
func ColorStyles() Styles {
	return Styles{
		Space: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSpace).
			Border(lipgloss.DoubleBorder(), true, false).
			BorderForeground(ColorSpace),
		Prompt:   lipgloss.NewStyle().Bold(true),
		Success:  lipgloss.NewStyle().Foreground(ColorSuccess),
		Warning:  lipgloss.NewStyle().Foreground(ColorWarning),
		Error:    lipgloss.NewStyle().Foreground(ColorError),
		Muted:    lipgloss.NewStyle().Foreground(ColorMuted),
		Question: lipgloss.NewStyle().Foreground(ColorWarning).Bold(true),
	}
}

// PlainStyles returns styles that render text unchanged.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Space:    plain,
		Prompt:   plain,
		Success:  plain,
		Warning:  plain,
		Error:    plain,
		Muted:    plain,
		Question: plain,
	}
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
