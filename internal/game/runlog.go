package game

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
)

// RunLog records statistics gathered during one run.
type RunLog struct {
	ID            string
	Timestamp     time.Time
	Victory       bool
	Players       []string
	AreasVisited  []string
	Deaths        int
	EnemiesKilled int
	Orbs          int
	Frames        uint64
}

// runLogFile is the file runs are appended to.
const runLogFile = "runs.jsonl"

// stamp gives the log its id and end time.
func (l *RunLog) stamp(now time.Time) {
	l.ID = ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String()
	l.Timestamp = now
}

// saveRunLog appends the completed run as a single JSON line to runs.jsonl
// in dir, or in the XDG data dir when dir is empty. Errors are silently
// discarded so a disk problem never crashes the game.
func saveRunLog(dir string, log RunLog) {
	if dir == "" {
		var err error
		if dir, err = runLogDir(); err != nil {
			return
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, runLogFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(log)
	if err != nil {
		return
	}
	f.Write(append(data, '\n')) //nolint:errcheck // best-effort write
}

// runLogDir returns the directory where run logs are stored: following the
// XDG Base Directory layout, $XDG_DATA_HOME/icoop, defaulting to
// ~/.local/share/icoop.
func runLogDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "icoop"), nil
}
