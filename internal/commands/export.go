package commands

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"checklist/internal/board"
	"checklist/internal/config"
	"checklist/internal/exitcode"
)

func init() {
	Register(&ExportCmd{})
}

// ExportCmd implements the export command: a snapshot of both sections and
// the notes as json, csv, or pdf.
type ExportCmd struct {
	format string
	out    string
}

// SetFormat sets the export format (for testing).
func (c *ExportCmd) SetFormat(format string) {
	c.format = format
}

// SetOut sets the output file path (for testing).
func (c *ExportCmd) SetOut(path string) {
	c.out = path
}

func (c *ExportCmd) Name() string      { return "export" }
func (c *ExportCmd) Aliases() []string { return nil }
func (c *ExportCmd) Synopsis() string  { return "Export the board" }
func (c *ExportCmd) Usage() string     { return "checklist export [--format json|csv|pdf] [--out <file>]" }
func (c *ExportCmd) NeedsBoard() bool  { return true }

func (c *ExportCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.format, "format", "json", "")
	fs.StringVar(&c.out, "out", "", "")
}

// snapshot is the export shape: both sections plus the notes.
type snapshot struct {
	Priority []board.Task `json:"priority"`
	Other    []board.Task `json:"other"`
	Notes    string       `json:"notes"`
}

func (c *ExportCmd) Run(ctx context.Context, cfg *config.Config, b *board.Board, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	pri, _ := b.Section(board.Priority)
	oth, _ := b.Section(board.Other)
	snap := snapshot{
		Priority: pri.Tasks,
		Other:    oth.Tasks,
		Notes:    b.Notes(),
	}
	if snap.Priority == nil {
		snap.Priority = []board.Task{}
	}
	if snap.Other == nil {
		snap.Other = []board.Task{}
	}

	data, err := render(snap, c.format)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}

	if c.out != "" {
		if err := os.WriteFile(c.out, data, 0644); err != nil {
			fmt.Fprintf(errOut, "error: storage error: %s\n", err)
			return exitcode.StorageError
		}
		if !cfg.Quiet {
			fmt.Fprintln(out, "ok")
		}
		return exitcode.Success
	}

	if _, err := out.Write(data); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.StorageError
	}
	return exitcode.Success
}

// render serializes the snapshot in the requested format.
func render(snap snapshot, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "json":
		raw, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(raw, '\n'), nil
	case "csv":
		var b strings.Builder
		w := csv.NewWriter(&b)
		_ = w.Write([]string{"section", "id", "text", "done"})
		for _, t := range snap.Priority {
			_ = w.Write([]string{string(board.Priority), t.ID, t.Text, strconv.FormatBool(t.Done)})
		}
		for _, t := range snap.Other {
			_ = w.Write([]string{string(board.Other), t.ID, t.Text, strconv.FormatBool(t.Done)})
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, err
		}
		return []byte(b.String()), nil
	case "pdf":
		pdf := gofpdf.New("P", "mm", "A4", "")
		pdf.AddPage()
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(40, 10, "Checklist")
		pdf.Ln(12)
		for _, sec := range []struct {
			name  board.SectionName
			tasks []board.Task
		}{
			{board.Priority, snap.Priority},
			{board.Other, snap.Other},
		} {
			pdf.SetFont("Arial", "B", 11)
			pdf.Cell(40, 8, string(sec.name))
			pdf.Ln(10)
			pdf.SetFont("Arial", "", 10)
			for _, t := range sec.tasks {
				mark := "[ ]"
				if t.Done {
					mark = "[x]"
				}
				pdf.MultiCell(0, 6, fmt.Sprintf("%s %s", mark, t.Text), "0", "L", false)
			}
		}
		if snap.Notes != "" {
			pdf.SetFont("Arial", "B", 11)
			pdf.Cell(40, 8, "notes")
			pdf.Ln(10)
			pdf.SetFont("Arial", "", 10)
			pdf.MultiCell(0, 6, snap.Notes, "0", "L", false)
		}
		var buf bytes.Buffer
		if err := pdf.Output(&buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}
