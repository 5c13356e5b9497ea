package render

import (
	"io"
	"strings"

	"github.com/darthunder/bases/pkg/errors"
	"github.com/darthunder/bases/pkg/types"
	"github.com/mattn/go-runewidth"
)

// Box-drawing glyphs
const (
	Horizontal = "═"
	Vertical   = "║"
)

// EmptyText fills every cell of a table without rows
const EmptyText = "NO DATA"

// border holds the three glyphs used by one horizontal rule
type border struct {
	left, mid, right string
}

var (
	topBorder    = border{"╔", "╦", "╗"}
	midBorder    = border{"╠", "╬", "╣"}
	bottomBorder = border{"╚", "╩", "╝"}
)

// RecordOptions controls the record box layout
type RecordOptions struct {
	// KeyWidth and ValueWidth are the fixed field widths used when Fit is false
	KeyWidth   int
	ValueWidth int
	// Fit sizes both fields to the widest key and value of the record
	Fit bool
}

// DefaultRecordOptions returns the classic 15/10 fixed layout
func DefaultRecordOptions() RecordOptions {
	return RecordOptions{KeyWidth: 15, ValueWidth: 10}
}

// Renderer writes tables and records to a sink. It holds no state between
// calls and is safe for concurrent use.
type Renderer struct {
	record RecordOptions
}

// NewRenderer creates a renderer using the given record layout
func NewRenderer(opts RecordOptions) *Renderer {
	if !opts.Fit {
		if opts.KeyWidth <= 0 {
			opts.KeyWidth = DefaultRecordOptions().KeyWidth
		}
		if opts.ValueWidth <= 0 {
			opts.ValueWidth = DefaultRecordOptions().ValueWidth
		}
	}
	return &Renderer{record: opts}
}

// RenderTable writes t to w
func (r *Renderer) RenderTable(w io.Writer, t *types.Table) error {
	if err := t.Validate(); err != nil {
		return errors.Wrap(err, errors.ErrRender, "cannot render table")
	}

	widths := ColumnWidths(t)

	var b strings.Builder
	writeRule(&b, widths, topBorder)
	writeCells(&b, widths, func(i int) string { return t.Columns[i].Name })
	writeRule(&b, widths, midBorder)

	if len(t.Rows) == 0 {
		writeCells(&b, widths, func(int) string { return EmptyText })
	}
	for n, row := range t.Rows {
		if n > 0 {
			writeRule(&b, widths, midBorder)
		}
		writeCells(&b, widths, func(i int) string { return cellText(row[i]) })
	}
	writeRule(&b, widths, bottomBorder)

	return flush(w, b.String())
}

// RenderRecord writes rec to w as a key/value box
func (r *Renderer) RenderRecord(w io.Writer, rec *types.Record) error {
	keyWidth, valueWidth := r.record.KeyWidth, r.record.ValueWidth
	if r.record.Fit {
		keyWidth, valueWidth = 0, 0
		rec.Each(func(key string, value types.Value) {
			keyWidth = max(keyWidth, textWidth(key))
			valueWidth = max(valueWidth, textWidth(cellText(value)))
		})
	}

	// "║ " + key + ": " + value + " ║"
	rule := strings.Repeat(Horizontal, keyWidth+valueWidth+4)

	var b strings.Builder
	b.WriteString(topBorder.left + rule + topBorder.right + "\n")
	rec.Each(func(key string, value types.Value) {
		b.WriteString(Vertical + " ")
		b.WriteString(fit(sanitize(key), keyWidth))
		b.WriteString(": ")
		b.WriteString(fit(cellText(value), valueWidth))
		b.WriteString(" " + Vertical + "\n")
	})
	b.WriteString(bottomBorder.left + rule + bottomBorder.right + "\n")

	return flush(w, b.String())
}

// ColumnWidths computes the display width of every column of t: the largest
// of the width hint, the label and each rendered cell. Tables without rows
// also account for EmptyText.
func ColumnWidths(t *types.Table) []int {
	widths := make([]int, len(t.Columns))
	for i, col := range t.Columns {
		widths[i] = max(col.WidthHint, textWidth(col.Name))
		if len(t.Rows) == 0 {
			widths[i] = max(widths[i], textWidth(EmptyText))
		}
	}
	for _, row := range t.Rows {
		for i := range widths {
			widths[i] = max(widths[i], textWidth(cellText(row[i])))
		}
	}
	return widths
}

func writeRule(b *strings.Builder, widths []int, br border) {
	b.WriteString(br.left)
	for i, w := range widths {
		if i > 0 {
			b.WriteString(br.mid)
		}
		b.WriteString(strings.Repeat(Horizontal, w+2))
	}
	b.WriteString(br.right)
	b.WriteString("\n")
}

func writeCells(b *strings.Builder, widths []int, text func(i int) string) {
	b.WriteString(Vertical)
	for i, w := range widths {
		b.WriteString(" ")
		b.WriteString(runewidth.FillRight(sanitize(text(i)), w))
		b.WriteString(" ")
		b.WriteString(Vertical)
	}
	b.WriteString("\n")
}

func cellText(v types.Value) string {
	return sanitize(v.String())
}

var sanitizer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

// sanitize keeps a cell on a single line
func sanitize(s string) string {
	return sanitizer.Replace(s)
}

func textWidth(s string) int {
	return runewidth.StringWidth(sanitize(s))
}

// fit pads s to exactly width columns, truncating with an ellipsis when longer
func fit(s string, width int) string {
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "…")
	}
	return runewidth.FillRight(s, width)
}

func flush(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return errors.Wrap(err, errors.ErrRender, "cannot write output")
	}
	return nil
}
