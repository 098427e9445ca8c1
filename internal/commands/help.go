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
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "checklist help" }
func (c *HelpCmd) NeedsBoard() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, b *board.Board, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  checklist                                        Show the board
  checklist list [common flags]                    Show the board
  checklist add [common flags] [--section <p|o>] <text...>
  checklist toggle [common flags] <ref>            Flip done/pending (alias: done)
  checklist edit [common flags] <ref> <text...>    Replace a task's text
  checklist rm [common flags] <ref>                Delete a task
  checklist clear [common flags]                   Remove all completed tasks
  checklist notes [common flags] [--clear] [text...]
  checklist export [common flags] [--format json|csv|pdf] [--out <file>]
  checklist help
  checklist version

Refs name a task by section letter and position: p1 is the first priority
task, o3 the third task in other. A bare number means the other section.

Sections are bounded: priority holds 3 tasks, other holds 10.
Editing a task to empty text deletes it.

Common flags:
  --config <dir>   Override data directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
