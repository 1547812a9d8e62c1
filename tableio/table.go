// SPDX-License-Identifier: MIT
// Package: tableio
//
// Purpose:
//   - Read numeric CSV tables (header optional) into *matrix.Dense.
//   - Read and write the persisted matrix format: one row per line,
//     comma-separated numbers, no header, "\n"-terminated, no trailing comma.
//
// Numbers are written with strconv.FormatFloat(v, 'g', -1, 64), the shortest
// text that parses back to the same float64, so write→read is exact.

package tableio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/powerpca/matrix"
)

// Table is a rectangular numeric table with optional column names.
type Table struct {
	Header []string      // nil when the input had no header row
	Data   *matrix.Dense // Rows() data rows × Cols() variables
}

// ReadTable parses a CSV table. The first record is a header when any of its
// fields is not a number; every other record must be all numeric and as
// wide as the first record.
//
// Errors:
//   - ErrEmptyTable, ErrRaggedRow, ErrBadNumber, or the csv reader's error.
func ReadTable(r io.Reader) (*Table, error) {
	records, err := readRecords(r)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrEmptyTable
	}

	t := &Table{}
	if !isNumericRecord(records[0]) {
		t.Header = records[0]
		records = records[1:]
	}
	if t.Data, err = parseRecords(records, t.Header != nil); err != nil {
		return nil, err
	}

	return t, nil
}

// ReadMatrix parses the persisted matrix format (no header allowed).
func ReadMatrix(r io.Reader) (*matrix.Dense, error) {
	records, err := readRecords(r)
	if err != nil {
		return nil, err
	}

	return parseRecords(records, false)
}

// WriteMatrix writes m in the persisted matrix format.
func WriteMatrix(w io.Writer, m matrix.Matrix) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	record := make([]string, m.Cols())
	var v float64
	var err error
	for i := 0; i < m.Rows(); i++ {
		for j := range record {
			if v, err = m.At(i, j); err != nil {
				return err
			}
			record[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err = cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

func readRecords(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		var perr *csv.ParseError
		if errors.As(err, &perr) && errors.Is(perr.Err, csv.ErrFieldCount) {
			return nil, fmt.Errorf("line %d: %w", perr.Line, ErrRaggedRow)
		}

		return nil, err
	}

	return records, nil
}

func isNumericRecord(record []string) bool {
	for _, field := range record {
		if _, err := parseField(field); err != nil {
			return false
		}
	}

	return true
}

func parseField(field string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(field), 64)
}

// parseRecords converts records into a Dense; headerSkipped shifts reported
// line numbers by one.
func parseRecords(records [][]string, headerSkipped bool) (*matrix.Dense, error) {
	if len(records) == 0 {
		return nil, ErrEmptyTable
	}
	offset := 1
	if headerSkipped {
		offset = 2
	}

	rows := make([][]float64, len(records))
	var err error
	for i, record := range records {
		rows[i] = make([]float64, len(record))
		for j, field := range record {
			if rows[i][j], err = parseField(field); err != nil {
				return nil, fmt.Errorf("line %d field %d (%q): %w", i+offset, j+1, field, ErrBadNumber)
			}
		}
	}

	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		if errors.Is(err, matrix.ErrBadShape) {
			return nil, fmt.Errorf("%w: %w", ErrRaggedRow, err)
		}
		if errors.Is(err, matrix.ErrNaNInf) {
			return nil, fmt.Errorf("%w: %w", ErrBadNumber, err)
		}

		return nil, fmt.Errorf("%w: %w", ErrEmptyTable, err)
	}

	return m, nil
}
