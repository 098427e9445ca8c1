package cli_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"checklist/internal/board"
	"checklist/internal/cli"
	"checklist/internal/commands"
	"checklist/internal/config"
	"checklist/internal/exitcode"
	"checklist/internal/testutil"
)

// testFactory creates a board factory backed by the given in-memory store.
func testFactory(kv *testutil.MemKV) cli.BoardFactory {
	return func(ctx context.Context, cfg *config.Config) (*board.Board, error) {
		return board.New(kv), nil
	}
}

// newDispatcher isolates the dispatcher from the real user environment.
func newDispatcher(t *testing.T, kv *testutil.MemKV) *cli.Dispatcher {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(config.DirEnv, "")
	return cli.NewDispatcher(commands.DefaultRegistry, testFactory(kv))
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	dispatcher := newDispatcher(t, testutil.NewMemKV())

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"unknowncmd"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: unknowncmd\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_FlagBeforeCommand(t *testing.T) {
	dispatcher := newDispatcher(t, testutil.NewMemKV())

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"--quiet"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: --quiet\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_HelpCommand(t *testing.T) {
	dispatcher := newDispatcher(t, testutil.NewMemKV())

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"help"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr.String() != "" {
		t.Errorf("expected no stderr, got %q", stderr.String())
	}
	if !bytes.Contains(stdout.Bytes(), []byte("Usage:")) {
		t.Error("expected help output to contain 'Usage:'")
	}
}

func TestDispatcher_VersionCommand(t *testing.T) {
	dispatcher := newDispatcher(t, testutil.NewMemKV())

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"version"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout.String() != "checklist 0.1.0\n" {
		t.Errorf("expected 'checklist 0.1.0\\n', got %q", stdout.String())
	}
}

func TestDispatcher_UnknownFlag(t *testing.T) {
	dispatcher := newDispatcher(t, testutil.NewMemKV())

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"help", "--unknown"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown flag: -unknown\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_BareInvocationShowsBoard(t *testing.T) {
	dispatcher := newDispatcher(t, testutil.NewMemKV())

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), nil, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "priority [0/3]") {
		t.Errorf("bare invocation should render the board, got %q", stdout.String())
	}
}

func TestDispatcher_AddThenListFlow(t *testing.T) {
	kv := testutil.NewMemKV()
	dispatcher := newDispatcher(t, kv)

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"add", "--section", "p", "Ship", "release"}, &stdout, &stderr)
	if code != exitcode.Success {
		t.Fatalf("add failed: %d %q", code, stderr.String())
	}
	if stdout.String() != "ok\n" {
		t.Errorf("expected 'ok', got %q", stdout.String())
	}

	stdout.Reset()
	stderr.Reset()
	code = dispatcher.Run(context.Background(), []string{"list"}, &stdout, &stderr)
	if code != exitcode.Success {
		t.Fatalf("list failed: %d %q", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "priority [1/3]") ||
		!strings.Contains(stdout.String(), "Ship release") {
		t.Errorf("expected the added task in the board, got %q", stdout.String())
	}
}

func TestDispatcher_QuietFlag(t *testing.T) {
	dispatcher := newDispatcher(t, testutil.NewMemKV())

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"add", "--quiet", "Buy", "milk"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Fatalf("add failed: %d %q", code, stderr.String())
	}
	if stdout.String() != "" {
		t.Errorf("quiet add should print nothing, got %q", stdout.String())
	}
}

func TestDispatcher_DoneAlias(t *testing.T) {
	kv := testutil.NewMemKV()
	dispatcher := newDispatcher(t, kv)

	var stdout, stderr bytes.Buffer
	if code := dispatcher.Run(context.Background(), []string{"add", "Buy", "milk"}, &stdout, &stderr); code != exitcode.Success {
		t.Fatalf("add failed: %q", stderr.String())
	}

	stdout.Reset()
	stderr.Reset()
	code := dispatcher.Run(context.Background(), []string{"done", "o1"}, &stdout, &stderr)
	if code != exitcode.Success {
		t.Fatalf("done failed: %d %q", code, stderr.String())
	}

	b := board.New(kv)
	sec, _ := b.Section(board.Other)
	if len(sec.Tasks) != 1 || !sec.Tasks[0].Done {
		t.Errorf("done alias should toggle the task, got %+v", sec.Tasks)
	}
}
