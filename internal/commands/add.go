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
	Register(&AddCmd{})
}

// AddCmd implements the add command. It runs the full event sequence a UI
// would: add an empty task, draft the text, save the edit.
type AddCmd struct {
	section string
}

// SetSection sets the target section (for testing).
func (c *AddCmd) SetSection(name string) {
	c.section = name
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return nil }
func (c *AddCmd) Synopsis() string  { return "Add a task" }
func (c *AddCmd) Usage() string     { return "checklist add [--section <p|o>] <text...>" }
func (c *AddCmd) NeedsBoard() bool  { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.section, "section", "", "")
	fs.StringVar(&c.section, "s", "", "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, b *board.Board, args []string, out, errOut io.Writer) int {
	// Check for text
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: text required")
		return exitcode.UserError
	}
	text := strings.Join(args, " ")
	if strings.TrimSpace(text) == "" {
		fmt.Fprintln(errOut, "error: text required")
		return exitcode.UserError
	}

	name, err := board.ParseSectionName(c.section)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}

	if !b.Add(name) {
		sec, _ := b.Section(name)
		fmt.Fprintf(errOut, "error: section full: %s [%d/%d]\n", name, len(sec.Tasks), sec.Capacity)
		return exitcode.UserError
	}
	b.SetDraft(text)
	b.SaveEdit()

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
