package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"checklist/internal/board"
	"checklist/internal/config"
	"checklist/internal/exitcode"
)

func init() {
	Register(&NotesCmd{})
}

// NotesCmd implements the notes command. With no arguments it prints the
// notes; with arguments it replaces them; --clear empties them.
type NotesCmd struct {
	clear bool
}

// SetClear sets the clear flag (for testing).
func (c *NotesCmd) SetClear(v bool) {
	c.clear = v
}

func (c *NotesCmd) Name() string      { return "notes" }
func (c *NotesCmd) Aliases() []string { return nil }
func (c *NotesCmd) Synopsis() string  { return "Show or replace the notes" }
func (c *NotesCmd) Usage() string     { return "checklist notes [--clear] [text...]" }
func (c *NotesCmd) NeedsBoard() bool  { return true }

func (c *NotesCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.clear, "clear", false, "")
}

func (c *NotesCmd) Run(ctx context.Context, cfg *config.Config, b *board.Board, args []string, out, errOut io.Writer) int {
	if c.clear {
		if len(args) > 0 {
			fmt.Fprintln(errOut, "error: cannot use both --clear and text")
			return exitcode.UserError
		}
		b.SetNotes("")
		if !cfg.Quiet {
			fmt.Fprintln(out, "ok")
		}
		return exitcode.Success
	}

	if len(args) == 0 {
		if notes := b.Notes(); notes != "" {
			fmt.Fprintln(out, notes)
		}
		return exitcode.Success
	}

	b.SetNotes(strings.Join(args, " "))
	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
