package output

import (
	"io"

	"github.com/darthunder/bases/pkg/errors"
	"github.com/darthunder/bases/pkg/logging"
	"github.com/darthunder/bases/pkg/render"
	"github.com/darthunder/bases/pkg/types"
	"github.com/rs/zerolog"
)

// Printer writes tables and records to w in a fixed format.
type Printer struct {
	w        io.Writer
	format   Format
	renderer *render.Renderer
	log      zerolog.Logger
}

// NewPrinter creates a Printer. recordOpts only affects the box format.
func NewPrinter(w io.Writer, format Format, recordOpts render.RecordOptions) *Printer {
	if format == "" {
		format = FormatBox
	}
	return &Printer{
		w:        w,
		format:   format,
		renderer: render.NewRenderer(recordOpts),
		log:      logging.GetLogger("output.Printer"),
	}
}

// Format returns the printer's format
func (p *Printer) Format() Format { return p.format }

// Writer returns the destination writer
func (p *Printer) Writer() io.Writer { return p.w }

// PrintTable prints a whole table.
func (p *Printer) PrintTable(t *types.Table) error {
	if t == nil {
		return errors.New(errors.ErrRender, "nil table")
	}
	p.log.Trace().
		Str("format", p.format.String()).
		Int("columns", len(t.Columns)).
		Int("rows", t.Len()).
		Msg("Printing table")

	switch p.format {
	case FormatBox:
		return p.renderer.RenderTable(p.w, t)
	case FormatJSON:
		if err := t.Validate(); err != nil {
			return errors.Wrap(err, errors.ErrRender, "cannot encode table")
		}
		return writeJSON(p.w, tableJSON(t))
	case FormatYAML:
		if err := t.Validate(); err != nil {
			return errors.Wrap(err, errors.ErrRender, "cannot encode table")
		}
		return writeYAML(p.w, tableYAML(t))
	case FormatXML:
		if err := t.Validate(); err != nil {
			return errors.Wrap(err, errors.ErrRender, "cannot encode table")
		}
		return writeXML(p.w, tableXML(t))
	default:
		return unknownFormat(p.format)
	}
}

// PrintRecord prints a single record.
func (p *Printer) PrintRecord(rec *types.Record) error {
	if rec == nil {
		return errors.New(errors.ErrRender, "nil record")
	}

	switch p.format {
	case FormatBox:
		return p.renderer.RenderRecord(p.w, rec)
	case FormatJSON:
		return writeJSON(p.w, recordJSON(rec))
	case FormatYAML:
		return writeYAML(p.w, recordYAML(rec))
	case FormatXML:
		return writeXML(p.w, recordXML(rec))
	default:
		return unknownFormat(p.format)
	}
}

// PrintRecords prints a list of records. The box format draws one box per
// record and prints nothing for an empty list; the other formats emit a
// single (possibly empty) list.
func (p *Printer) PrintRecords(recs []*types.Record) error {
	switch p.format {
	case FormatBox:
		for _, rec := range recs {
			if err := p.PrintRecord(rec); err != nil {
				return err
			}
		}
		return nil
	case FormatJSON:
		return writeJSON(p.w, recordsJSON(recs))
	case FormatYAML:
		return writeYAML(p.w, recordsYAML(recs))
	case FormatXML:
		return writeXML(p.w, recordsXML(recs))
	default:
		return unknownFormat(p.format)
	}
}

func unknownFormat(f Format) error {
	return errors.Newf(errors.ErrRender, "unknown format: %s", f).WithDetail("format", string(f))
}
