package model

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// snapshotDir is the directory for screen snapshot files.
const snapshotDir = "/tmp"

// snapshotPrefix is the filename prefix for screen snapshot files.
const snapshotPrefix = "sapgui-cli-screen-"

func snapshotPath(container string, ts int64) string {
	safe := strings.NewReplacer("/", "_", "[", "", "]", "").Replace(container)
	return filepath.Join(snapshotDir, fmt.Sprintf("%s%s-%d.json", snapshotPrefix, safe, ts))
}

// SaveSnapshot writes a screen inventory to a snapshot file for later diffing.
func SaveSnapshot(container string, ts int64, elements []ElementInfo) error {
	data, err := json.Marshal(elements)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	return os.WriteFile(snapshotPath(container, ts), data, 0644)
}

// LoadSnapshot reads a previously saved screen inventory from disk.
func LoadSnapshot(container string, ts int64) ([]ElementInfo, error) {
	data, err := os.ReadFile(snapshotPath(container, ts))
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	var elements []ElementInfo
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return elements, nil
}

// LatestSnapshot returns the timestamp of the most recent snapshot saved for
// the given container, or 0 when none exists.
func LatestSnapshot(container string) int64 {
	safe := strings.NewReplacer("/", "_", "[", "", "]", "").Replace(container)
	prefix := snapshotPrefix + safe + "-"

	entries, err := os.ReadDir(snapshotDir)
	if err != nil {
		return 0
	}
	var latest int64
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ".json") {
			continue
		}
		var ts int64
		if _, err := fmt.Sscanf(name[len(prefix):], "%d.json", &ts); err != nil {
			continue
		}
		if ts > latest {
			latest = ts
		}
	}
	return latest
}

// CleanSnapshots removes snapshot files for the given container older than maxAge.
func CleanSnapshots(container string, maxAge time.Duration) {
	safe := strings.NewReplacer("/", "_", "[", "", "]", "").Replace(container)
	prefix := snapshotPrefix + safe + "-"

	entries, err := os.ReadDir(snapshotDir)
	if err != nil {
		return
	}
	cutoff := time.Now().Add(-maxAge)
	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			os.Remove(filepath.Join(snapshotDir, entry.Name()))
		}
	}
}
