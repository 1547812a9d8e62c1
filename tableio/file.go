// SPDX-License-Identifier: MIT

package tableio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/powerpca/matrix"
)

// ReadTableFile opens path (decompressing by extension) and parses it with ReadTable.
func ReadTableFile(path string) (*Table, error) {
	var t *Table
	err := withReader(path, func(r io.Reader) error {
		var err error
		t, err = ReadTable(r)

		return err
	})
	if err != nil {
		return nil, fmt.Errorf("read table %s: %w", path, err)
	}

	return t, nil
}

// ReadMatrixFile opens path (decompressing by extension) and parses it with ReadMatrix.
func ReadMatrixFile(path string) (*matrix.Dense, error) {
	var m *matrix.Dense
	err := withReader(path, func(r io.Reader) error {
		var err error
		m, err = ReadMatrix(r)

		return err
	})
	if err != nil {
		return nil, fmt.Errorf("read matrix %s: %w", path, err)
	}

	return m, nil
}

// WriteMatrixFile writes m to path in the persisted format, compressing by extension.
// The file is created or truncated.
func WriteMatrixFile(path string, m matrix.Matrix) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write matrix %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("write matrix %s: %w", path, cerr)
		}
	}()

	codec := CodecFor(path)
	cw, err := codec.NewWriter(f)
	if err != nil {
		return fmt.Errorf("write matrix %s: %s: %w", path, codec.Name(), err)
	}
	if err = WriteMatrix(cw, m); err != nil {
		_ = cw.Close()
		return fmt.Errorf("write matrix %s: %w", path, err)
	}
	if err = cw.Close(); err != nil {
		return fmt.Errorf("write matrix %s: %s: %w", path, codec.Name(), err)
	}

	return nil
}

func withReader(path string, fn func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	codec := CodecFor(path)
	cr, err := codec.NewReader(f)
	if err != nil {
		return fmt.Errorf("%s: %w", codec.Name(), err)
	}

	return errors.Join(fn(cr), cr.Close())
}
