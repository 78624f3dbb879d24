package ondiskmatrix

import "fmt"

// GenerateTranspose creates a new on-disk matrix at destPath with shape
// Cols()×Rows(), such that element (j, i) of the destination equals
// element (i, j) of the receiver, for all valid (i, j).
//
// It walks the receiver one source row at a time (the access pattern the
// disk store is built for) and writes each element of that row into the
// corresponding destination column, mirroring the original reference's
// write_col-per-source-row strategy so that independently generated
// transposes of the same matrix are byte-identical. The destination file
// is flushed on completion.
func (m *Matrix[T]) GenerateTranspose(destPath string) (*Matrix[T], error) {
	rows, cols := int(m.hdr.rows), int(m.hdr.cols)
	dst, err := Create[T](destPath, cols, rows)
	if err != nil {
		return nil, fmt.Errorf("Matrix.GenerateTranspose(%q): %w", destPath, err)
	}

	for i := 0; i < rows; i++ {
		row, err := m.ReadRow(i)
		if err != nil {
			dst.Close()
			return nil, fmt.Errorf("Matrix.GenerateTranspose(%q): read source row %d: %w", destPath, i, err)
		}
		for j := 0; j < cols; j++ {
			if err := dst.SetElement(row[j], j, i); err != nil {
				dst.Close()
				return nil, fmt.Errorf("Matrix.GenerateTranspose(%q): write (%d,%d): %w", destPath, j, i, err)
			}
		}
	}

	if err := dst.Flush(); err != nil {
		dst.Close()
		return nil, fmt.Errorf("Matrix.GenerateTranspose(%q): %w", destPath, err)
	}
	return dst, nil
}
