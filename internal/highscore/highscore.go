// Package highscore persists the single best score in a flat text file.
// The file holds one ASCII decimal integer and nothing else.
package highscore

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// DefaultPath is where the high score lives unless configured otherwise.
const DefaultPath = "~/.bounce/highscore.txt"

// Load reads the high score from path.
// A missing, unreadable or malformed file counts as 0; loading never fails.
func Load(path string) int {
	path, err := expandHome(path)
	if err != nil {
		return 0
	}

	data, err := os.ReadFile(path) //#nosec G304 -- path comes from the user's own flags
	if err != nil {
		return 0
	}

	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Save overwrites path with n, creating parent directories if needed.
func Save(path string, n int) error {
	path, err := expandHome(path)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("highscore: cannot create directory %s: %w", dir, err)
	}

	if err := os.WriteFile(path, []byte(strconv.Itoa(n)), 0o644); err != nil { //#nosec G306 -- not a secret
		return fmt.Errorf("highscore: cannot write %s: %w", path, err)
	}
	return nil
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("highscore: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// Keeper is a file-backed high score shared by every game in the process.
// It is safe for concurrent use.
type Keeper struct {
	path string

	mu   sync.Mutex
	best int
}

// Open loads the high score at path once. Later reads come from memory.
func Open(path string) *Keeper {
	return &Keeper{path: path, best: Load(path)}
}

// Path returns the file the keeper writes to.
func (k *Keeper) Path() string {
	return k.path
}

// Best returns the best score seen so far.
func (k *Keeper) Best() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.best
}

// Record keeps score if it beats the best and writes it to disk.
// The in-memory best moves up even when the write fails, so the session
// keeps showing the right value; the error is returned for logging.
func (k *Keeper) Record(score int) (bool, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if score <= k.best {
		return false, nil
	}
	k.best = score
	return true, Save(k.path, score)
}
