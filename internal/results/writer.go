package results

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/underwrite/internal/constants"
	"github.com/wizzomafizzo/underwrite/internal/underwriting"
)

// ErrUnsorted is returned when results are not ordered by application id
var ErrUnsorted = errors.New("results are not sorted by application_id")

// Write writes the header and one row per result to w
func Write(w io.Writer, results []underwriting.Result) error {
	if !IsSorted(results) {
		return ErrUnsorted
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(constants.ResultHeader()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, r := range results {
		row := []string{
			strconv.Itoa(r.ApplicationID),
			r.Decision.String(),
			r.ReasonCode.String(),
			r.ReasonText,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write result %d: %w", r.ApplicationID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush results: %w", err)
	}
	return nil
}

// WriteFile replaces the file at path with results. The rows go to a temporary
// file next to path which is renamed over path once complete, so a failed write
// leaves any previous output in place.
func WriteFile(fs afero.Fs, path string, results []underwriting.Result) (err error) {
	if !IsSorted(results) {
		return ErrUnsorted
	}

	tmp := path + constants.TempSuffix
	f, err := fs.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", tmp, err)
	}
	defer func() {
		if err != nil {
			_ = fs.Remove(tmp)
		}
	}()

	if err = Write(f, results); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmp, err)
	}
	if err = fs.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
