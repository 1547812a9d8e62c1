// SPDX-License-Identifier: MIT

package tableio

import "errors"

var (
	// ErrEmptyTable is returned when a table has no data rows.
	ErrEmptyTable = errors.New("tableio: table has no data rows")

	// ErrRaggedRow is returned when a record's field count differs from the first record.
	ErrRaggedRow = errors.New("tableio: rows have different lengths")

	// ErrBadNumber is returned when a data field does not parse as a float64.
	ErrBadNumber = errors.New("tableio: field is not a number")
)
