// Package commands provides the command interface and implementations.
// Each command is one event of the UI surface: add, toggle, edit, rm,
// clear, notes, list, export.
package commands

import (
	"context"
	"flag"
	"io"

	"checklist/internal/board"
	"checklist/internal/config"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsBoard returns true if the command operates on checklist state.
	// Commands like help and version return false.
	NeedsBoard() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// cfg is always provided; b is nil if NeedsBoard() returns false.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, b *board.Board, args []string, out, errOut io.Writer) int
}
