package testutil

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
)

// WriteFile writes content to path on fs, creating parent directories
func WriteFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()

	if err := afero.WriteFile(fs, path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

// CSV joins rows into CSV text with a trailing newline. Cells must not need quoting.
func CSV(rows ...string) string {
	return strings.Join(rows, "\n") + "\n"
}
