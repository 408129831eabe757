// Package batch reads and writes applicant batch files.
//
// Batches live in a single directory as batch_01.csv, batch_02.csv and so on.
// Every expected batch must exist before any of them is read.
package batch

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/underwrite/internal/constants"
)

// Path returns the file path of batch n (1-based) inside dir
func Path(dir string, n int) string {
	return filepath.Join(dir, fmt.Sprintf(constants.BatchFilePattern, n))
}

// Paths returns the paths of batches 1..total in order
func Paths(dir string, total int) []string {
	paths := make([]string, 0, total)
	for n := 1; n <= total; n++ {
		paths = append(paths, Path(dir, n))
	}
	return paths
}

// CheckPresent verifies that all total batches exist in dir.
// The first absent batch is reported as a *MissingInputError.
func CheckPresent(fs afero.Fs, dir string, total int) error {
	for _, path := range Paths(dir, total) {
		info, err := fs.Stat(path)
		if errors.Is(err, iofs.ErrNotExist) {
			return &MissingInputError{Path: path}
		}
		if err != nil {
			return fmt.Errorf("failed to stat batch %s: %w", path, err)
		}
		if info.IsDir() {
			return &MissingInputError{Path: path}
		}
	}
	return nil
}
