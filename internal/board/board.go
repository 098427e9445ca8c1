package board

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"checklist/internal/storage"
)

// Board owns the checklist state. Operations mutate in memory and flush the
// affected keys synchronously; none of them return errors — invalid targets
// are no-ops and capacity violations are silently rejected, matching the
// single-user, never-visibly-broken design.
type Board struct {
	kv       storage.KV
	priority Section
	other    Section
	notes    string
	cursor   *EditCursor

	// Logf, when set, receives storage write failures. Writes are
	// best-effort; a failed flush never aborts an operation.
	Logf func(format string, args ...any)
}

// New hydrates a board from the store. Malformed or missing entries degrade
// to empty state; New never fails.
func New(kv storage.KV) *Board {
	b := &Board{
		kv:       kv,
		priority: Section{Name: Priority, Capacity: PriorityCapacity},
		other:    Section{Name: Other, Capacity: OtherCapacity},
	}
	b.priority.Tasks = loadTasks(kv, PriorityKey, PriorityCapacity)
	b.other.Tasks = loadTasks(kv, OtherKey, OtherCapacity)
	b.notes = loadNotes(kv)
	return b
}

// ParseSectionName resolves a user-supplied section name. Accepts the full
// name or its first letter. Empty input defaults to the other section.
func ParseSectionName(s string) (SectionName, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return Other, nil
	case "p", "pri", "priority":
		return Priority, nil
	case "o", "other":
		return Other, nil
	}
	return "", fmt.Errorf("unknown section: %s", s)
}

// Section returns a copy of the named section.
func (b *Board) Section(name SectionName) (Section, bool) {
	sec := b.section(name)
	if sec == nil {
		return Section{}, false
	}
	out := *sec
	out.Tasks = slices.Clone(sec.Tasks)
	return out, true
}

// Notes returns the notes string.
func (b *Board) Notes() string {
	return b.notes
}

// Editing returns the current edit cursor, if any.
func (b *Board) Editing() (EditCursor, bool) {
	if b.cursor == nil {
		return EditCursor{}, false
	}
	return *b.cursor, true
}

// Add appends a new empty-text task to the section and points the edit
// cursor at it. Returns false without touching anything when the section is
// at capacity or unknown.
func (b *Board) Add(name SectionName) bool {
	sec := b.section(name)
	if sec == nil || len(sec.Tasks) >= sec.Capacity {
		return false
	}
	t := Task{ID: uuid.NewString()}
	sec.Tasks = append(sec.Tasks, t)
	b.cursor = &EditCursor{Section: name, ID: t.ID}
	b.flush(name)
	return true
}

// Toggle flips the done state of the task with the given id. Unknown ids are
// a no-op.
func (b *Board) Toggle(name SectionName, id string) {
	sec := b.section(name)
	if sec == nil {
		return
	}
	t := sec.find(id)
	if t == nil {
		return
	}
	t.Done = !t.Done
	b.flush(name)
}

// BeginEdit points the shared edit cursor at the task, prefilled with its
// current text. Returns false on an unknown target.
func (b *Board) BeginEdit(name SectionName, id string) bool {
	sec := b.section(name)
	if sec == nil {
		return false
	}
	t := sec.find(id)
	if t == nil {
		return false
	}
	b.cursor = &EditCursor{Section: name, ID: id, Text: t.Text}
	return true
}

// SetDraft replaces the cursor's working text. No-op without a cursor.
func (b *Board) SetDraft(text string) {
	if b.cursor != nil {
		b.cursor.Text = text
	}
}

// SaveEdit commits the cursor. Whitespace-only text deletes the task
// (delete-on-empty); anything else becomes the task's trimmed text. The
// cursor is cleared either way.
func (b *Board) SaveEdit() {
	cur := b.cursor
	if cur == nil {
		return
	}
	b.cursor = nil
	sec := b.section(cur.Section)
	if sec == nil {
		return
	}
	text := strings.TrimSpace(cur.Text)
	if text == "" {
		if sec.remove(cur.ID) {
			b.flush(cur.Section)
		}
		return
	}
	if t := sec.find(cur.ID); t != nil {
		t.Text = text
		b.flush(cur.Section)
	}
}

// CancelEdit clears the cursor without mutating any task.
func (b *Board) CancelEdit() {
	b.cursor = nil
}

// Delete removes the task with the given id. Unknown ids are a no-op.
func (b *Board) Delete(name SectionName, id string) {
	sec := b.section(name)
	if sec == nil {
		return
	}
	if sec.remove(id) {
		b.flush(name)
	}
}

// ClearCompleted removes every done task from both sections.
func (b *Board) ClearCompleted() {
	for _, sec := range []*Section{&b.priority, &b.other} {
		kept := sec.Tasks[:0]
		for _, t := range sec.Tasks {
			if !t.Done {
				kept = append(kept, t)
			}
		}
		sec.Tasks = kept
		b.flush(sec.Name)
	}
}

// SetNotes replaces the notes string.
func (b *Board) SetNotes(text string) {
	b.notes = text
	if err := saveNotes(b.kv, text); err != nil {
		b.logf("write %s: %v", NotesKey, err)
	}
}

func (b *Board) section(name SectionName) *Section {
	switch name {
	case Priority:
		return &b.priority
	case Other:
		return &b.other
	}
	return nil
}

func (b *Board) flush(name SectionName) {
	sec := b.section(name)
	if sec == nil {
		return
	}
	if err := saveTasks(b.kv, keyFor(name), sec.Tasks); err != nil {
		b.logf("write %s: %v", keyFor(name), err)
	}
}

func (b *Board) logf(format string, args ...any) {
	if b.Logf != nil {
		b.Logf(format, args...)
	}
}
