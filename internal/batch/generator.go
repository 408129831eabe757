package batch

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"encoding/csv"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/underwrite/internal/constants"
	"github.com/wizzomafizzo/underwrite/internal/logging"
	"github.com/wizzomafizzo/underwrite/internal/underwriting"
)

// Value ranges for synthetic applicants, inclusive unless noted
const (
	minCreditScore = 300
	maxCreditScore = 850
	minIncome      = 20000
	maxIncome      = 200000
	minDTI         = 0.1
	dtiSpan        = 0.5 // dti is drawn from [0.1, 0.6)
	minAge         = 21
	maxAge         = 65
	minLoanAmount  = 5000
	maxLoanAmount  = 500000
)

var employmentStatuses = []string{
	underwriting.Employed,
	underwriting.SelfEmployed,
	underwriting.Unemployed,
}

// Generator writes synthetic applicant batches
type Generator struct {
	fs        afero.Fs
	rng       *rand.Rand
	dir       string
	batches   int
	batchSize int
}

// NewGenerator creates a generator that writes batches into dir.
// The same seed always produces the same batches.
func NewGenerator(fs afero.Fs, dir string, batches, batchSize int, seed int64) *Generator {
	return &Generator{
		fs:        fs,
		rng:       rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)), //nolint:gosec // synthetic data
		dir:       dir,
		batches:   batches,
		batchSize: batchSize,
	}
}

// NewSeed generates a random seed using crypto/rand
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("failed to read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Generate writes every batch, overwriting existing files, and returns their paths.
// Application ids run from 1 across all batches.
func (g *Generator) Generate(ctx context.Context) ([]string, error) {
	log := logging.Get(ctx)

	if err := g.fs.MkdirAll(g.dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", g.dir, err)
	}

	paths := make([]string, 0, g.batches)
	nextID := 1
	for n := 1; n <= g.batches; n++ {
		if err := ctx.Err(); err != nil {
			return paths, fmt.Errorf("generation cancelled before batch %d: %w", n, err)
		}

		path := Path(g.dir, n)
		log.Debug().Int("batch", n).Int("total", g.batches).Str("path", path).Msg("Generating batch")

		if err := g.writeBatch(path, nextID); err != nil {
			return paths, err
		}
		nextID += g.batchSize
		paths = append(paths, path)

		log.Info().Int("batch", n).Int("rows", g.batchSize).Msg("Batch generated")
	}

	return paths, nil
}

func (g *Generator) writeBatch(path string, firstID int) (err error) {
	f, err := g.fs.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create batch %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close batch %s: %w", path, closeErr)
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(constants.ApplicantHeader()); err != nil {
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	for id := firstID; id < firstID+g.batchSize; id++ {
		if err := w.Write(Format(g.Applicant(id))); err != nil {
			return fmt.Errorf("failed to write row %d to %s: %w", id, path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush batch %s: %w", path, err)
	}
	return nil
}

// Applicant draws one synthetic applicant with the given id
func (g *Generator) Applicant(id int) underwriting.Applicant {
	dti := minDTI + g.rng.Float64()*dtiSpan
	return underwriting.Applicant{
		ApplicationID:    id,
		CreditScore:      g.between(minCreditScore, maxCreditScore),
		Income:           g.between(minIncome, maxIncome),
		DTI:              math.Round(dti*100) / 100,
		EmploymentStatus: employmentStatuses[g.rng.IntN(len(employmentStatuses))],
		Age:              g.between(minAge, maxAge),
		LoanAmount:       g.between(minLoanAmount, maxLoanAmount),
	}
}

func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}
