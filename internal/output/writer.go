package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// ReportWriter is the interface for writing game reports to output.
// Different implementations handle different formats (text, JSON, PGN).
type ReportWriter interface {
	// WriteReport writes a single report to the output.
	WriteReport(r game.Report) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// Format names an output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatPGN  Format = "pgn"
)

// ParseFormat converts a format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatPGN:
		return f, nil
	case "":
		return FormatText, nil
	}
	return "", fmt.Errorf("output format %q: %w", s, errors.ErrInvalidConfig)
}

// Options collects the settings shared by all writers.
type Options struct {
	Board BoardOptions
	PGN   PGNOptions
}

// NewWriter returns the writer for a format.
func NewWriter(format Format, w io.Writer, opts Options) ReportWriter {
	switch format {
	case FormatJSON:
		return NewJSONWriterSingle(w)
	case FormatPGN:
		return NewPGNWriter(w, opts.PGN)
	default:
		return NewTextWriter(w, opts.Board)
	}
}

// TextWriter writes a board diagram and status summary.
type TextWriter struct {
	w    io.Writer
	opts BoardOptions
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, opts BoardOptions) *TextWriter {
	return &TextWriter{w: w, opts: opts}
}

// WriteReport writes the board followed by status lines.
func (tw *TextWriter) WriteReport(r game.Report) error {
	_, err := io.WriteString(tw.w, Summary(r, tw.opts))
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// Summary renders a report as a board diagram plus status lines.
func Summary(r game.Report, opts BoardOptions) string {
	var sb strings.Builder
	sb.WriteString(RenderBoard(&r.Board, opts))
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "Status:   %s\n", StatusText(r))
	fmt.Fprintf(&sb, "To move:  %s\n", r.ToMove)
	fmt.Fprintf(&sb, "History:  %s\n", HistoryText(r.History))
	if n := len(r.History); n > 0 {
		fmt.Fprintf(&sb, "Last move: %s\n", MoveDescription(r.History[n-1]))
	}
	fmt.Fprintf(&sb, "Captured: White %s, Black %s\n", CapturedText(r.CapturedByWhite), CapturedText(r.CapturedByBlack))
	fmt.Fprintf(&sb, "Material: %s\n", AdvantageText(r.MaterialAdvantage))
	fmt.Fprintf(&sb, "FEN:      %s\n", r.FEN)
	return sb.String()
}

// StatusText describes the status for people, e.g. "Checkmate! Black wins".
func StatusText(r game.Report) string {
	switch r.Status {
	case game.Check:
		return fmt.Sprintf("%s is in check", r.ToMove)
	case game.Checkmate:
		return fmt.Sprintf("Checkmate! %s wins", r.ToMove.Opposite())
	case game.Stalemate:
		return "Stalemate (draw)"
	case game.Draw:
		return fmt.Sprintf("Draw by %s", strings.ReplaceAll(r.DrawReason.String(), "_", " "))
	default:
		return "In progress"
	}
}

// PGNWriter writes reports in PGN format.
type PGNWriter struct {
	w    io.Writer
	opts PGNOptions
}

// NewPGNWriter creates a new PGN writer.
func NewPGNWriter(w io.Writer, opts PGNOptions) *PGNWriter {
	return &PGNWriter{w: w, opts: opts}
}

// WriteReport writes a report as a PGN game.
func (pw *PGNWriter) WriteReport(r game.Report) error {
	return WritePGN(pw.w, r, pw.opts)
}

// Flush flushes the PGN writer (no-op for PGN as it writes immediately).
func (pw *PGNWriter) Flush() error {
	return nil
}

// Close closes the PGN writer.
func (pw *PGNWriter) Close() error {
	return nil
}

// JSONWriter writes reports in JSON format.
// It buffers reports and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	reports []game.Report
	single  bool // If true, write each report immediately instead of batching
}

// JSONOutput holds multiple reports for array output.
type JSONOutput struct {
	Games []*JSONReport `json:"games"`
}

// NewJSONWriter creates a JSON writer that batches reports into an array.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// NewJSONWriterSingle creates a JSON writer that writes each report immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, single: true}
}

// WriteReport buffers a report for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteReport(r game.Report) error {
	if jw.single {
		return WriteJSON(jw.w, r)
	}
	jw.reports = append(jw.reports, r)
	return nil
}

// Flush writes all buffered reports as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.reports) == 0 {
		return nil
	}

	out := &JSONOutput{Games: make([]*JSONReport, 0, len(jw.reports))}
	for _, r := range jw.reports {
		out.Games = append(out.Games, ReportJSON(r))
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(out)

	jw.reports = jw.reports[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
