// Package pipeline runs a full evaluation: it checks that every batch is present,
// evaluates every applicant, sorts the combined results and writes them once.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/underwrite/internal/batch"
	"github.com/wizzomafizzo/underwrite/internal/logging"
	"github.com/wizzomafizzo/underwrite/internal/results"
	"github.com/wizzomafizzo/underwrite/internal/underwriting"
)

// Options locate the inputs and output of a run
type Options struct {
	DataDir    string
	OutputPath string
	Batches    int
}

// Report describes a completed run
type Report struct {
	OutputPath string
	Summary    results.Summary
	Batches    int
	Duration   time.Duration
}

// Pipeline evaluates batches from a data directory into a results file
type Pipeline struct {
	fs   afero.Fs
	opts Options
	now  func() time.Time
}

// New creates a pipeline over fs
func New(fs afero.Fs, opts Options) *Pipeline {
	return &Pipeline{fs: fs, opts: opts, now: time.Now}
}

// Run evaluates every batch and replaces the results file.
// Nothing is written unless every batch was read and evaluated.
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	log := logging.Get(ctx)
	start := p.now()

	log.Info().
		Str("data_dir", p.opts.DataDir).
		Int("batches", p.opts.Batches).
		Msg("Starting evaluation")

	if err := batch.CheckPresent(p.fs, p.opts.DataDir, p.opts.Batches); err != nil {
		log.Error().Err(err).Msg("Batch check failed")
		return nil, err
	}

	combined, err := p.evaluateAll(ctx)
	if err != nil {
		return nil, err
	}

	log.Debug().Int("results", len(combined)).Msg("Sorting combined results by application_id")
	results.Sort(combined)

	if err := p.fs.MkdirAll(filepath.Dir(p.opts.OutputPath), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	log.Info().Str("path", p.opts.OutputPath).Msg("Writing combined results")
	if err := results.WriteFile(p.fs, p.opts.OutputPath, combined); err != nil {
		return nil, fmt.Errorf("failed to write results: %w", err)
	}

	report := &Report{
		OutputPath: p.opts.OutputPath,
		Summary:    results.Summarize(combined),
		Batches:    p.opts.Batches,
		Duration:   p.now().Sub(start),
	}

	log.Info().
		Int("total", report.Summary.Total).
		Int("approved", report.Summary.Approved).
		Int("declined", report.Summary.Declined).
		Dur("duration", report.Duration).
		Msg("Evaluation complete")

	return report, nil
}

func (p *Pipeline) evaluateAll(ctx context.Context) ([]underwriting.Result, error) {
	log := logging.Get(ctx)

	var combined []underwriting.Result
	for n, path := range batch.Paths(p.opts.DataDir, p.opts.Batches) {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("evaluation cancelled before batch %d: %w", n+1, err)
		}

		log.Debug().Int("batch", n+1).Int("total", p.opts.Batches).Msg("Processing batch")

		applicants, err := batch.ReadFile(p.fs, path)
		if err != nil {
			log.Error().Err(err).Str("path", path).Msg("Batch read failed")
			return nil, err
		}

		combined = slices.Grow(combined, len(applicants))
		for _, a := range applicants {
			combined = append(combined, underwriting.Evaluate(a))
		}

		log.Info().Int("batch", n+1).Int("records", len(applicants)).Msg("Batch processed")
	}

	return combined, nil
}
