package batch

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/underwrite/internal/constants"
	"github.com/wizzomafizzo/underwrite/internal/underwriting"
)

var (
	errEmptyFile     = errors.New("file has no header row")
	errMissingColumn = errors.New("column missing from header")
	errNotFinite     = errors.New("value is not a finite number")
)

// ReadFile reads every applicant in the batch file at path
func ReadFile(fs afero.Fs, path string) ([]underwriting.Applicant, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open batch %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	return Read(f, path)
}

// Read parses a batch from r. Columns are located by header name, so extra
// columns and any column order are accepted. source names r in errors.
func Read(r io.Reader, source string) ([]underwriting.Applicant, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &MalformedRecordError{Path: source, Err: errEmptyFile}
	}
	if err != nil {
		return nil, &MalformedRecordError{Path: source, Line: 1, Err: err}
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, field := range constants.ApplicantHeader() {
		if _, ok := columns[field]; !ok {
			return nil, &MalformedRecordError{Path: source, Line: 1, Field: field, Err: errMissingColumn}
		}
	}

	var applicants []underwriting.Applicant
	values := make(map[string]string, len(columns))
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			line := 0
			if errors.As(err, &parseErr) {
				line = parseErr.Line
			}
			return nil, &MalformedRecordError{Path: source, Line: line, Err: err}
		}

		line, _ := cr.FieldPos(0)
		for _, field := range constants.ApplicantHeader() {
			values[field] = record[columns[field]]
		}

		applicant, err := ParseApplicant(values)
		if err != nil {
			var malformed *MalformedRecordError
			if errors.As(err, &malformed) {
				malformed.Path = source
				malformed.Line = line
			}
			return nil, err
		}
		applicants = append(applicants, applicant)
	}

	return applicants, nil
}

// ParseApplicant converts raw field values keyed by column name into an applicant.
// The first value that fails to parse is returned as a *MalformedRecordError.
func ParseApplicant(values map[string]string) (underwriting.Applicant, error) {
	var a underwriting.Applicant
	p := fieldParser{values: values}

	a.ApplicationID = p.intField(constants.FieldApplicationID)
	a.CreditScore = p.intField(constants.FieldCreditScore)
	a.Income = p.intField(constants.FieldIncome)
	a.DTI = p.floatField(constants.FieldDTI)
	a.EmploymentStatus = p.stringField(constants.FieldEmploymentStatus)
	a.Age = p.intField(constants.FieldAge)
	a.LoanAmount = p.intField(constants.FieldLoanAmount)

	if p.err != nil {
		return underwriting.Applicant{}, p.err
	}
	return a, nil
}

// fieldParser keeps the first parse failure so ParseApplicant reads straight through
type fieldParser struct {
	values map[string]string
	err    *MalformedRecordError
}

func (p *fieldParser) raw(field string) (string, bool) {
	if p.err != nil {
		return "", false
	}
	v, ok := p.values[field]
	if !ok {
		p.err = &MalformedRecordError{Field: field, Err: errMissingColumn}
		return "", false
	}
	return v, true
}

func (p *fieldParser) intField(field string) int {
	v, ok := p.raw(field)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		p.err = &MalformedRecordError{Field: field, Value: v, Err: err}
		return 0
	}
	return n
}

func (p *fieldParser) floatField(field string) float64 {
	v, ok := p.raw(field)
	if !ok {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		p.err = &MalformedRecordError{Field: field, Value: v, Err: err}
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		p.err = &MalformedRecordError{Field: field, Value: v, Err: errNotFinite}
		return 0
	}
	return f
}

func (p *fieldParser) stringField(field string) string {
	v, _ := p.raw(field)
	return v
}

// Format renders an applicant as a batch CSV row in header order.
// Numbers are formatted so they parse back to the same values.
func Format(a underwriting.Applicant) []string {
	return []string{
		strconv.Itoa(a.ApplicationID),
		strconv.Itoa(a.CreditScore),
		strconv.Itoa(a.Income),
		strconv.FormatFloat(a.DTI, 'f', -1, 64),
		a.EmploymentStatus,
		strconv.Itoa(a.Age),
		strconv.Itoa(a.LoanAmount),
	}
}
