// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"checklist/internal/board"
)

const (
	// Separator is the separator line for board sections.
	Separator = "------------"
)

// RefLetters maps each section to its one-letter ref prefix.
var RefLetters = map[board.SectionName]string{
	board.Priority: "p",
	board.Other:    "o",
}

// FormatSectionHeader formats a section header with its fill state.
// Format: separator, "{name} [{used}/{capacity}]", separator.
func FormatSectionHeader(w io.Writer, sec board.Section) {
	fmt.Fprintln(w, Separator)
	fmt.Fprintf(w, "%s [%d/%d]\n", sec.Name, len(sec.Tasks), sec.Capacity)
	fmt.Fprintln(w, Separator)
}

// FormatTask formats one task line.
// Format: "  {REF:<4} [{x| }] {TEXT}\n", e.g. "  p1   [x] Buy milk".
func FormatTask(w io.Writer, sec board.SectionName, num int, t board.Task) {
	mark := " "
	if t.Done {
		mark = "x"
	}
	ref := fmt.Sprintf("%s%d", RefLetters[sec], num)
	fmt.Fprintf(w, "  %-4s [%s] %s\n", ref, mark, normalizeText(t.Text))
}

// FormatNotes formats the notes block. Nothing is printed when the notes
// are empty.
func FormatNotes(w io.Writer, notes string) {
	if notes == "" {
		return
	}
	fmt.Fprintln(w, Separator)
	fmt.Fprintln(w, "notes")
	fmt.Fprintln(w, Separator)
	fmt.Fprintln(w, notes)
}

// normalizeText normalizes task text for display.
// - Empty or whitespace-only text becomes "(untitled)"
// - Newlines are replaced with spaces
func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r", " ")
	text = strings.ReplaceAll(text, "\n", " ")
	if strings.TrimSpace(text) == "" {
		return "(untitled)"
	}
	return text
}
