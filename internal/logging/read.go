package logging

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// LogEntry is one parsed line of the JSON log file.
type LogEntry struct {
	Timestamp time.Time      `json:"time"`
	Level     string         `json:"level"`
	Message   string         `json:"msg"`
	Plant     string         `json:"plant,omitempty"`
	State     string         `json:"state,omitempty"`
	Attrs     map[string]any `json:"attrs,omitempty"`
}

// LogFilter defines criteria for filtering log entries.
// Zero fields do not filter; set fields are combined with AND logic.
type LogFilter struct {
	// Level keeps entries at or above this level (DEBUG < INFO < WARN < ERROR)
	Level string

	// Since keeps entries at or after this time
	Since time.Time

	// Plant keeps entries tagged with this plant
	Plant string

	// MessageContains keeps entries whose message contains this substring
	MessageContains string
}

var levelOrder = map[string]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

// ReadLogFile parses every entry of the log file at path in file order.
func ReadLogFile(path string) ([]LogEntry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return ReadLogs(file)
}

// ReadLogs parses JSON log lines from r. Blank and malformed lines are skipped.
func ReadLogs(r io.Reader) ([]LogEntry, error) {
	var entries []LogEntry
	scanner := bufio.NewScanner(r)

	// Increase buffer size for potentially long log lines
	const maxScanTokenSize = 1024 * 1024
	scanner.Buffer(make([]byte, 0, 64*1024), maxScanTokenSize)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		entry, err := parseLogEntry(line)
		if err != nil {
			continue
		}
		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading log file: %w", err)
	}
	return entries, nil
}

func parseLogEntry(line string) (LogEntry, error) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return LogEntry{}, fmt.Errorf("invalid JSON: %w", err)
	}

	entry := LogEntry{Attrs: make(map[string]any)}
	for k, v := range raw {
		s, _ := v.(string)
		switch k {
		case "time":
			if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
				entry.Timestamp = t
			}
		case "level":
			entry.Level = s
		case "msg":
			entry.Message = s
		case "plant":
			entry.Plant = s
		case "state":
			entry.State = s
		default:
			entry.Attrs[k] = v
		}
	}
	return entry, nil
}

// FilterLogs returns the entries matching filter.
func FilterLogs(entries []LogEntry, filter LogFilter) []LogEntry {
	var filtered []LogEntry
	for _, entry := range entries {
		if filter.matches(entry) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

func (f LogFilter) matches(entry LogEntry) bool {
	if f.Level != "" {
		want, wantOk := levelOrder[strings.ToUpper(f.Level)]
		got, gotOk := levelOrder[strings.ToUpper(entry.Level)]
		if wantOk && gotOk && got < want {
			return false
		}
	}
	if !f.Since.IsZero() && entry.Timestamp.Before(f.Since) {
		return false
	}
	if f.Plant != "" && entry.Plant != f.Plant {
		return false
	}
	if f.MessageContains != "" && !strings.Contains(entry.Message, f.MessageContains) {
		return false
	}
	return true
}

// TailLogs returns the last n entries. n <= 0 returns all of them.
func TailLogs(entries []LogEntry, n int) []LogEntry {
	if n <= 0 || n >= len(entries) {
		return entries
	}
	return entries[len(entries)-n:]
}
