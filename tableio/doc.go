// Package tableio moves numeric tables between files and *matrix.Dense.
//
// Two formats are handled:
//
//   - Input tables: CSV with an optional header row (detected when the first
//     record is not entirely numeric).
//   - Persisted matrices (bases, projected datasets): one row per line,
//     comma-separated float64 values, no header, "\n"-terminated. Values are
//     written in shortest round-trip form so write→read reproduces every bit.
//
// File helpers choose a compression codec from the extension (.zst, .gz,
// .lz4, otherwise plain text) and Fingerprint gives an xxhash of a matrix for
// integrity checks in logs.
package tableio
