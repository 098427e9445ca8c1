package commands

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"

	"checklist/internal/board"
)

// Ref is a parsed task reference: a section plus a 1-based position.
type Ref struct {
	Section board.SectionName
	Num     int
}

// ErrRefRequired indicates no task reference was provided.
var ErrRefRequired = errors.New("task reference required")

// ParseRef parses a task reference from args and returns the remaining
// (unconsumed) args.
//
// Parsing rules:
//  1. All digits (e.g. "2") -> other section
//  2. <letter><digits> (e.g. "p1", "o12") -> section by letter
//  3. Single letter followed by all-digits arg (e.g. "p 1") -> section by letter
//  4. Single letter with no following arg -> error: task reference required
//  5. Anything else -> error: invalid task reference
//
// Section letters: p (priority), o (other).
func ParseRef(args []string) (Ref, []string, error) {
	if len(args) == 0 {
		return Ref{}, nil, ErrRefRequired
	}

	firstArg := args[0]

	// Case 1: all digits -> other section
	if isAllDigits(firstArg) {
		num, err := strconv.Atoi(firstArg)
		if err != nil {
			return Ref{}, nil, fmt.Errorf("invalid task reference: %s", firstArg)
		}
		return Ref{Section: board.Other, Num: num}, args[1:], nil
	}

	if firstArg == "" {
		return Ref{}, nil, ErrRefRequired
	}

	section, ok := sectionByLetter(rune(firstArg[0]))
	if ok {
		// Case 2: <letter><digits>
		if len(firstArg) > 1 && isAllDigits(firstArg[1:]) {
			num, err := strconv.Atoi(firstArg[1:])
			if err != nil {
				return Ref{}, nil, fmt.Errorf("invalid task reference: %s", firstArg)
			}
			return Ref{Section: section, Num: num}, args[1:], nil
		}

		// Case 3: single letter, number in the next arg
		if len(firstArg) == 1 {
			if len(args) < 2 {
				// Case 4: single letter with nothing after it
				return Ref{}, nil, ErrRefRequired
			}
			secondArg := args[1]
			if isAllDigits(secondArg) {
				num, err := strconv.Atoi(secondArg)
				if err != nil {
					return Ref{}, nil, fmt.Errorf("invalid task reference: %s", secondArg)
				}
				return Ref{Section: section, Num: num}, args[2:], nil
			}
			return Ref{}, nil, fmt.Errorf("invalid task reference: %s", firstArg)
		}
	}

	// Case 5: invalid reference
	return Ref{}, nil, fmt.Errorf("invalid task reference: %s", firstArg)
}

// resolveRef maps a parsed ref to the task it names.
func resolveRef(b *board.Board, ref Ref) (board.Task, bool) {
	sec, ok := b.Section(ref.Section)
	if !ok || ref.Num < 1 || ref.Num > len(sec.Tasks) {
		return board.Task{}, false
	}
	return sec.Tasks[ref.Num-1], true
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// sectionByLetter maps a ref letter to its section.
func sectionByLetter(r rune) (board.SectionName, bool) {
	switch r {
	case 'p':
		return board.Priority, true
	case 'o':
		return board.Other, true
	}
	return "", false
}
