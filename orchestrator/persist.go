package orchestrator

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Bundle is the on-disk record of one analysis run.
type Bundle struct {
	SessionID   string    `json:"session_id"`
	Kind        string    `json:"kind"` // "voice" or "text"
	Source      string    `json:"source,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
	Analysis    any       `json:"analysis"`
}

func mkSessionDir(outputsRoot string, now time.Time) (string, string, error) {
	sid := "session_" + now.Format("20060102-150405") + "_" + uuid.NewString()[:8]
	dir := filepath.Join(outputsRoot, sid)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", err
	}
	return sid, dir, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Persist writes analysis as analysis.json in a fresh session directory
// under outputsRoot and returns the file path.
func Persist(outputsRoot, kind, source string, analysis any) (string, error) {
	now := time.Now()
	sid, dir, err := mkSessionDir(outputsRoot, now)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, "analysis.json")
	bundle := Bundle{
		SessionID:   sid,
		Kind:        kind,
		Source:      source,
		GeneratedAt: now.UTC(),
		Analysis:    analysis,
	}
	if err := writeJSON(path, bundle); err != nil {
		return "", err
	}
	return path, nil
}
