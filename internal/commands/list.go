package commands

import (
	"context"
	"flag"
	"io"

	"checklist/internal/board"
	"checklist/internal/config"
	"checklist/internal/exitcode"
	"checklist/internal/output"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `checklist` (no args) and `checklist list`.
type ListCmd struct{}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return nil }
func (c *ListCmd) Synopsis() string  { return "Show the board" }
func (c *ListCmd) Usage() string     { return "checklist list" }
func (c *ListCmd) NeedsBoard() bool  { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, b *board.Board, args []string, out, errOut io.Writer) int {
	for _, name := range []board.SectionName{board.Priority, board.Other} {
		sec, _ := b.Section(name)
		output.FormatSectionHeader(out, sec)
		for i, t := range sec.Tasks {
			output.FormatTask(out, name, i+1, t)
		}
	}
	output.FormatNotes(out, b.Notes())
	return exitcode.Success
}
