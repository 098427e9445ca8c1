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
	Register(&EditCmd{})
}

// EditCmd implements the edit command: begin an edit on the referenced task,
// draft the new text, save. Saving whitespace-only text deletes the task.
type EditCmd struct{}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Replace a task's text (empty text deletes it)" }
func (c *EditCmd) Usage() string     { return "checklist edit <ref> <text...>" }
func (c *EditCmd) NeedsBoard() bool  { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, b *board.Board, args []string, out, errOut io.Writer) int {
	ref, rest, err := ParseRef(args)
	if err != nil {
		if err == ErrRefRequired {
			fmt.Fprintln(errOut, "error: task reference required")
		} else {
			fmt.Fprintf(errOut, "error: %v\n", err)
		}
		return exitcode.UserError
	}

	if len(rest) == 0 {
		fmt.Fprintln(errOut, "error: text required")
		return exitcode.UserError
	}

	task, ok := resolveRef(b, ref)
	if !ok {
		fmt.Fprintf(errOut, "error: task number out of range: %d\n", ref.Num)
		return exitcode.UserError
	}

	b.BeginEdit(ref.Section, task.ID)
	b.SetDraft(strings.Join(rest, " "))
	b.SaveEdit()

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
