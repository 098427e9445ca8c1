package board

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"checklist/internal/storage"
)

// Persisted state layout: three independent key-value entries.
const (
	PriorityKey = "priority-tasks"
	OtherKey    = "other-tasks"
	NotesKey    = "notes"
)

func keyFor(name SectionName) string {
	if name == Priority {
		return PriorityKey
	}
	return OtherKey
}

// loadTasks reads and normalizes a persisted task list. It never fails:
// read errors, bad JSON, and wrong shapes all degrade to an empty list.
// Element normalization: missing/invalid id is regenerated (as is a
// duplicate of an earlier id), missing/invalid text becomes empty and the
// task is then dropped (empty-text tasks are transient, never durable),
// missing/invalid done becomes false. The result is capped at capacity.
func loadTasks(kv storage.KV, key string, capacity int) []Task {
	raw, err := kv.Get(key)
	if err != nil || len(raw) == 0 {
		return nil
	}
	var items []map[string]any
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	seen := make(map[string]bool, len(items))
	tasks := make([]Task, 0, len(items))
	for _, item := range items {
		text, _ := item["text"].(string)
		if strings.TrimSpace(text) == "" {
			continue
		}
		id, _ := item["id"].(string)
		if id == "" || seen[id] {
			id = uuid.NewString()
		}
		done, _ := item["done"].(bool)
		seen[id] = true
		tasks = append(tasks, Task{ID: id, Text: text, Done: done})
		if len(tasks) == capacity {
			break
		}
	}
	return tasks
}

// saveTasks serializes the list verbatim, transient empty-text tasks
// included. The filter lives on the load side.
func saveTasks(kv storage.KV, key string, tasks []Task) error {
	if tasks == nil {
		tasks = []Task{}
	}
	raw, err := json.Marshal(tasks)
	if err != nil {
		return err
	}
	return kv.Set(key, raw)
}

// loadNotes reads the raw notes string; missing entries and read errors
// yield an empty string.
func loadNotes(kv storage.KV) string {
	raw, err := kv.Get(NotesKey)
	if err != nil {
		return ""
	}
	return string(raw)
}

func saveNotes(kv storage.KV, text string) error {
	return kv.Set(NotesKey, []byte(text))
}
