package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"checklist/internal/board"
	"checklist/internal/config"
	"checklist/internal/exitcode"
)

func init() {
	Register(&ClearCmd{})
}

// ClearCmd implements the clear command: remove every done task from both
// sections.
type ClearCmd struct{}

func (c *ClearCmd) Name() string      { return "clear" }
func (c *ClearCmd) Aliases() []string { return nil }
func (c *ClearCmd) Synopsis() string  { return "Remove all completed tasks" }
func (c *ClearCmd) Usage() string     { return "checklist clear" }
func (c *ClearCmd) NeedsBoard() bool  { return true }

func (c *ClearCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ClearCmd) Run(ctx context.Context, cfg *config.Config, b *board.Board, args []string, out, errOut io.Writer) int {
	b.ClearCompleted()

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
