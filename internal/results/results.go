// Package results orders decision results and writes them to the results file.
package results

import (
	"cmp"
	"slices"

	"github.com/wizzomafizzo/underwrite/internal/underwriting"
)

// Sort orders results by application id, keeping input order for equal ids
func Sort(results []underwriting.Result) {
	slices.SortStableFunc(results, func(a, b underwriting.Result) int {
		return cmp.Compare(a.ApplicationID, b.ApplicationID)
	})
}

// IsSorted reports whether results are in non-decreasing application id order
func IsSorted(results []underwriting.Result) bool {
	return slices.IsSortedFunc(results, func(a, b underwriting.Result) int {
		return cmp.Compare(a.ApplicationID, b.ApplicationID)
	})
}

// Summary counts decisions across a run
type Summary struct {
	ByReason map[underwriting.ReasonCode]int
	Total    int
	Approved int
	Declined int
}

// Summarize tallies results. Every known reason code is present in ByReason.
func Summarize(results []underwriting.Result) Summary {
	s := Summary{ByReason: make(map[underwriting.ReasonCode]int)}
	for _, code := range underwriting.ReasonCodes() {
		s.ByReason[code] = 0
	}

	for _, r := range results {
		s.Total++
		s.ByReason[r.ReasonCode]++
		if r.Approved() {
			s.Approved++
		} else {
			s.Declined++
		}
	}
	return s
}

// ApprovalRate is the approved share of the total, 0 for an empty run
func (s Summary) ApprovalRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Approved) / float64(s.Total)
}
