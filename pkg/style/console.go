// Package style holds the terminal styling of user-facing messages. Data
// output (tables and records) never goes through here.
package style

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
)

// Console writes status messages and headings to a writer, styled when
// color is enabled and as plain text otherwise.
type Console struct {
	w     io.Writer
	color bool
}

// NewConsole creates a console writing to w.
func NewConsole(w io.Writer, color bool) *Console {
	return &Console{w: w, color: color}
}

// Writer returns the underlying writer
func (c *Console) Writer() io.Writer { return c.w }

// Color reports whether styling is enabled
func (c *Console) Color() bool { return c.color }

// Success prints a confirmation message
func (c *Console) Success(format string, a ...interface{}) {
	c.prefixed(pterm.Success, "", format, a...)
}

// Error prints an error message
func (c *Console) Error(format string, a ...interface{}) {
	c.prefixed(pterm.Error, "Error: ", format, a...)
}

// Warning prints a warning
func (c *Console) Warning(format string, a ...interface{}) {
	c.prefixed(pterm.Warning, "Aviso: ", format, a...)
}

// Info prints an informational message
func (c *Console) Info(format string, a ...interface{}) {
	c.prefixed(pterm.Info, "", format, a...)
}

// Println prints an unstyled line
func (c *Console) Println(a ...interface{}) {
	_, _ = fmt.Fprintln(c.w, a...)
}

// Printf prints unstyled formatted text
func (c *Console) Printf(format string, a ...interface{}) {
	_, _ = fmt.Fprintf(c.w, format, a...)
}

// Title prints a menu or section heading preceded by a blank line
func (c *Console) Title(s string) {
	_, _ = fmt.Fprintln(c.w)
	_, _ = fmt.Fprintln(c.w, c.render(TitleStyle, s))
}

// Subtitle prints a secondary heading
func (c *Console) Subtitle(s string) {
	_, _ = fmt.Fprintln(c.w, c.render(SubtitleStyle, s))
}

// Option prints one numbered menu entry
func (c *Console) Option(key, label string) {
	_, _ = fmt.Fprintf(c.w, "%s. %s\n", c.render(KeyStyle, key), label)
}

// Prompt prints a prompt without a trailing newline
func (c *Console) Prompt(s string) {
	_, _ = fmt.Fprint(c.w, c.render(PromptStyle, s))
}

// Muted returns s in the muted style
func (c *Console) Muted(s string) string {
	return c.render(MutedStyle, s)
}

func (c *Console) render(st lipgloss.Style, s string) string {
	if !c.color {
		return s
	}
	return st.Render(s)
}

func (c *Console) prefixed(p pterm.PrefixPrinter, plain, format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	if !c.color {
		_, _ = fmt.Fprintln(c.w, plain+msg)
		return
	}
	p.WithWriter(c.w).Println(msg)
}
