package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nish-b/found-call-explorer/model"
)

// Column names the aggregator reads.
const (
	ColumnDisposition = "Disposition"
	ColumnNote        = "Note"
)

const utf8BOM = "\ufeff"

// ParseCSV reads a header row followed by call records. Blank lines are
// skipped and short rows read their missing cells as empty.
func ParseCSV(r io.Reader) ([]model.CallRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, err
	}
	header = normalizeHeader(header)

	dispIdx, noteIdx := -1, -1
	for i, h := range header {
		switch {
		case h == ColumnDisposition && dispIdx < 0:
			dispIdx = i
		case h == ColumnNote && noteIdx < 0:
			noteIdx = i
		}
	}
	if dispIdx < 0 {
		return nil, fmt.Errorf("%w %q", ErrMissingColumn, ColumnDisposition)
	}

	var records []model.CallRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		records = append(records, model.CallRecord{
			Disposition: cell(row, dispIdx),
			Note:        cell(row, noteIdx),
		})
	}
	return records, nil
}

func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, utf8BOM)
		}
		out[i] = strings.TrimSpace(h)
	}
	return out
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// parseLine extracts the line number from a csv.ParseError, if any.
func parseLine(err error) int {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return pe.Line
	}
	return 0
}
