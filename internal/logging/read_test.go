package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeSampleLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	l := NewWriterLogger(&buf, LevelDebug)
	l.Debug("tick")
	l.WithPlant("🥕 Cenoura").Info("planting started", "total_days", 10)
	l.Warn("planting rejected", "reason", "invalid area")
	l.WithPlant("🥕 Cenoura").WithState("harvested").Info("harvested")
	l.Error("boom")
	return &buf
}

func TestReadLogs(t *testing.T) {
	buf := writeSampleLogs(t)
	buf.WriteString("\nnot json\n\n")

	entries, err := ReadLogs(buf)
	if err != nil {
		t.Fatalf("ReadLogs() error: %v", err)
	}
	if len(entries) != 5 {
		t.Fatalf("got %d entries, want 5", len(entries))
	}

	started := entries[1]
	if started.Level != LevelInfo || started.Message != "planting started" || started.Plant != "🥕 Cenoura" {
		t.Errorf("entry = %+v", started)
	}
	if started.Timestamp.IsZero() {
		t.Error("timestamp not parsed")
	}
	if got, ok := started.Attrs["total_days"].(float64); !ok || got != 10 {
		t.Errorf("total_days attr = %v", started.Attrs["total_days"])
	}
	if entries[3].State != "harvested" {
		t.Errorf("state = %q, want harvested", entries[3].State)
	}
}

func TestReadLogFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, LogFileName)
	if err := os.WriteFile(path, writeSampleLogs(t).Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	entries, err := ReadLogFile(path)
	if err != nil {
		t.Fatalf("ReadLogFile() error: %v", err)
	}
	if len(entries) != 5 {
		t.Errorf("got %d entries, want 5", len(entries))
	}

	if _, err := ReadLogFile(filepath.Join(dir, "missing.log")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFilterLogs(t *testing.T) {
	entries, err := ReadLogs(writeSampleLogs(t))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		filter LogFilter
		want   []string
	}{
		{"empty filter", LogFilter{}, []string{"tick", "planting started", "planting rejected", "harvested", "boom"}},
		{"level warn", LogFilter{Level: "warn"}, []string{"planting rejected", "boom"}},
		{"plant", LogFilter{Plant: "🥕 Cenoura"}, []string{"planting started", "harvested"}},
		{"message", LogFilter{MessageContains: "planting"}, []string{"planting started", "planting rejected"}},
		{"combined", LogFilter{Level: "info", MessageContains: "planting"}, []string{"planting started", "planting rejected"}},
		{"future", LogFilter{Since: time.Now().Add(time.Hour)}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterLogs(entries, tt.filter)
			var msgs []string
			for _, e := range got {
				msgs = append(msgs, e.Message)
			}
			if strings.Join(msgs, ",") != strings.Join(tt.want, ",") {
				t.Errorf("FilterLogs() = %v, want %v", msgs, tt.want)
			}
		})
	}
}

func TestTailLogs(t *testing.T) {
	entries := []LogEntry{{Message: "a"}, {Message: "b"}, {Message: "c"}}

	tests := []struct {
		n    int
		want int
	}{
		{0, 3},
		{-1, 3},
		{2, 2},
		{5, 3},
	}
	for _, tt := range tests {
		got := TailLogs(entries, tt.n)
		if len(got) != tt.want {
			t.Errorf("TailLogs(%d) len = %d, want %d", tt.n, len(got), tt.want)
		}
	}
	if got := TailLogs(entries, 1); got[0].Message != "c" {
		t.Errorf("TailLogs(1) = %v, want last entry", got)
	}
}
