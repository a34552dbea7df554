package history

import (
	"encoding/json"
	"os"
	"time"

	"github.com/uvmole/uvmole/internal/monitor"
)

// maxEntries caps the log so it never grows without bound.
const maxEntries = 100

// Entry is one recorded cleanup or monitor run.
type Entry struct {
	Timestamp    time.Time      `json:"timestamp"`
	Kind         string         `json:"kind"` // "cache", "venv", or "monitor"
	Path         string         `json:"path,omitempty"`
	SizeFreed    int64          `json:"size_freed,omitempty"`
	FilesRemoved int            `json:"files_removed,omitempty"`
	Command      string         `json:"command,omitempty"`
	ExitCode     int            `json:"exit_code,omitempty"`
	Delta        *monitor.Delta `json:"delta,omitempty"`
}

// Load reads the history file. A missing or corrupt file is an empty
// history — the log is best-effort display data, never load-bearing.
func Load(path string) []Entry {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil
	}
	return entries
}

// Append adds an entry and rewrites the file, keeping only the most recent
// maxEntries records.
func Append(path string, e Entry) error {
	entries := append(Load(path), e)
	if len(entries) > maxEntries {
		entries = entries[len(entries)-maxEntries:]
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
