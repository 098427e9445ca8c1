// Package board holds the checklist state: two bounded task sections, a
// free-form notes string, and the single shared edit cursor. Commands never
// touch storage directly; every mutation here flushes through the key-value
// store the board was opened with.
package board

// SectionName identifies one of the two fixed sections.
type SectionName string

const (
	// Priority is the scarce section: three slots for what matters today.
	Priority SectionName = "priority"

	// Other is the general-purpose section.
	Other SectionName = "other"
)

// Section capacities. Invariant: len(Tasks) <= Capacity after every operation.
const (
	PriorityCapacity = 3
	OtherCapacity    = 10
)

// Task is a single checklist item. ID is an opaque unique string; Text is
// trimmed and non-empty for every durable task (a freshly added task has
// empty text until its first edit is saved).
type Task struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// Section is one bounded task list.
type Section struct {
	Name     SectionName
	Capacity int
	Tasks    []Task
}

// EditCursor references the task currently being text-edited. There is at
// most one across both sections.
type EditCursor struct {
	Section SectionName
	ID      string
	Text    string
}

func (s *Section) find(id string) *Task {
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			return &s.Tasks[i]
		}
	}
	return nil
}

func (s *Section) remove(id string) bool {
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			s.Tasks = append(s.Tasks[:i], s.Tasks[i+1:]...)
			return true
		}
	}
	return false
}
