// Package report renders run summaries and single decisions for the terminal.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/wizzomafizzo/underwrite/internal/pipeline"
	"github.com/wizzomafizzo/underwrite/internal/underwriting"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	approveColor = color.New(color.FgGreen, color.Bold)
	declineColor = color.New(color.FgRed, color.Bold)
	headingColor = color.New(color.FgCyan, color.Bold)
	dimColor     = color.New(color.Faint)
)

// Printer writes human-readable output with grouped thousands
type Printer struct {
	out io.Writer
	p   *message.Printer
}

// New creates a Printer writing to out
func New(out io.Writer) *Printer {
	return &Printer{out: out, p: message.NewPrinter(language.English)}
}

// Run prints the outcome of an evaluation run
func (pr *Printer) Run(r *pipeline.Report) {
	s := r.Summary

	pr.line(headingColor.Sprint("Evaluation complete"))
	pr.printf("  Batches:   %d\n", r.Batches)
	pr.printf("  Evaluated: %d\n", s.Total)
	pr.printf("  Approved:  %s (%.1f%%)\n", approveColor.Sprint(pr.p.Sprintf("%d", s.Approved)), s.ApprovalRate()*100)
	pr.printf("  Declined:  %s\n", declineColor.Sprint(pr.p.Sprintf("%d", s.Declined)))

	if s.Declined > 0 {
		pr.line(headingColor.Sprint("Decline reasons"))
		for _, code := range underwriting.ReasonCodes() {
			if code == underwriting.Approved || s.ByReason[code] == 0 {
				continue
			}
			pr.printf("  %-20s %d\n", code, s.ByReason[code])
		}
	}

	pr.printf("Results written to %s %s\n", r.OutputPath, dimColor.Sprintf("in %s", r.Duration.Round(time.Millisecond)))
}

// Decision prints a single evaluation result
func (pr *Printer) Decision(r underwriting.Result) {
	decision := declineColor.Sprint(r.Decision)
	if r.Approved() {
		decision = approveColor.Sprint(r.Decision)
	}
	_, _ = fmt.Fprintf(pr.out, "Application %d: %s %s\n", r.ApplicationID, decision, r.ReasonCode)
	pr.line("  " + r.ReasonText)
}

// Rules prints the underwriting rules in evaluation order
func (pr *Printer) Rules(rules []underwriting.Rule) {
	for i, r := range rules {
		pr.printf("%d. %s  %s\n", i+1, headingColor.Sprint(r.Code), r.Text)
	}
	pr.printf("   %s  %s\n", approveColor.Sprint(underwriting.Approved), underwriting.ReasonText(underwriting.Approved))
}

// Generated prints where generated batches were written
func (pr *Printer) Generated(paths []string, batchSize int) {
	pr.printf("Generated %d applicants in %d batches\n", len(paths)*batchSize, len(paths))
	for _, path := range paths {
		pr.line(dimColor.Sprint("  " + path))
	}
}

func (pr *Printer) printf(format string, args ...any) {
	_, _ = pr.p.Fprintf(pr.out, format, args...)
}

func (pr *Printer) line(s string) {
	_, _ = io.WriteString(pr.out, s+"\n")
}
