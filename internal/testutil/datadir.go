package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// StorePaths returns file paths for the users document, orders document and
// backup log inside a per-test temp dir. The files do not exist yet; the
// stores create them lazily, same as production.
func StorePaths(t *testing.T) (usersPath, ordersPath, backupPath string) {
	t.Helper()
	dir := t.TempDir()
	return filepath.Join(dir, "users.json"),
		filepath.Join(dir, "orders.json"),
		filepath.Join(dir, "orders.txt")
}

// ReadLines reads the backup log and splits it into non-empty lines. A
// missing file reads as no lines.
func ReadLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		t.Fatalf("reading %s: %v", path, err)
	}

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
