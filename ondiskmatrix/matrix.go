package ondiskmatrix

import (
	"fmt"
	"os"

	"github.com/vlarion/disklp/typeinfo"
)

// element is a local name for the type constraint every Matrix element
// must satisfy; kept distinct from typeinfo.Element only so this package's
// generic signatures read shorter.
type element = typeinfo.Element

// Matrix is a fixed-header, row-major dense matrix backed by a single file
// handle. It is not safe for concurrent use: each Matrix owns exactly one
// *os.File, every read and write goes to it through positional
// ReadAt/WriteAt calls, and no locking orders calls from multiple
// goroutines against each other.
type Matrix[T element] struct {
	file *os.File
	hdr  header
	desc typeinfo.Descriptor
}

// Create truncates (or creates) the file at path, writes a fresh header for
// rows×cols elements of T, and zero-fills the payload. rows and cols must
// both be > 0.
func Create[T element](path string, rows, cols int) (*Matrix[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("ondiskmatrix.Create(%q, %d, %d): %w", path, rows, cols, ErrInvalidDimensions)
	}
	desc, err := typeinfo.Of[T]()
	if err != nil {
		return nil, fmt.Errorf("ondiskmatrix.Create(%q): %w", path, err)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("ondiskmatrix.Create(%q): %w", path, err)
	}

	h := header{rows: int32(rows), cols: int32(cols), elementSize: desc.Size, tag: desc.Tag}
	if _, err := f.WriteAt(h.encode(), 0); err != nil {
		f.Close()
		return nil, fmt.Errorf("ondiskmatrix.Create(%q): write header: %w", path, err)
	}

	m := &Matrix[T]{file: f, hdr: h, desc: desc}
	var zero T
	if err := m.Fill(zero); err != nil {
		f.Close()
		return nil, fmt.Errorf("ondiskmatrix.Create(%q): %w", path, err)
	}
	return m, nil
}

// Open opens an existing file at path for read+write, verifying that its
// header matches the descriptor of T. ErrHeaderMismatch is returned if the
// file was created for a different element type.
func Open[T element](path string) (*Matrix[T], error) {
	desc, err := typeinfo.Of[T]()
	if err != nil {
		return nil, fmt.Errorf("ondiskmatrix.Open(%q): %w", path, err)
	}

	f, err := os.OpenFile(path, os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("ondiskmatrix.Open(%q): %w", path, err)
	}

	buf := make([]byte, headerSize)
	if _, err := f.ReadAt(buf, 0); err != nil {
		f.Close()
		return nil, fmt.Errorf("ondiskmatrix.Open(%q): read header: %w", path, err)
	}
	h, err := decodeHeader(buf)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("ondiskmatrix.Open(%q): %w", path, err)
	}
	if !typeinfo.Equal(h.descriptor(), desc) {
		f.Close()
		return nil, fmt.Errorf("ondiskmatrix.Open(%q): on-disk type %s, requested %s: %w", path, h.descriptor(), desc, ErrHeaderMismatch)
	}

	return &Matrix[T]{file: f, hdr: h, desc: desc}, nil
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return int(m.hdr.rows) }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return int(m.hdr.cols) }

// Descriptor returns the element type descriptor this matrix was opened or
// created with.
func (m *Matrix[T]) Descriptor() typeinfo.Descriptor { return m.desc }

// checkRow validates a row index against Rows().
func (m *Matrix[T]) checkRow(i int) error {
	if i < 0 || i >= int(m.hdr.rows) {
		return fmt.Errorf("row %d: %w", i, ErrIndexOutOfRange)
	}
	return nil
}

// checkCol validates a column index against Cols().
func (m *Matrix[T]) checkCol(j int) error {
	if j < 0 || j >= int(m.hdr.cols) {
		return fmt.Errorf("col %d: %w", j, ErrIndexOutOfRange)
	}
	return nil
}

// ReadRow reads row i (0-indexed) and returns a freshly allocated slice of
// Cols() elements.
func (m *Matrix[T]) ReadRow(i int) ([]T, error) {
	if err := m.checkRow(i); err != nil {
		return nil, fmt.Errorf("Matrix.ReadRow: %w", err)
	}
	n := int(m.hdr.cols)
	buf := make([]byte, n*int(m.hdr.elementSize))
	off := m.hdr.elementOffset(i, 0)
	if _, err := m.file.ReadAt(buf, off); err != nil {
		return nil, fmt.Errorf("Matrix.ReadRow(%d): %w", i, err)
	}
	return decodeRow[T](buf, n), nil
}

// WriteRow writes row into row index i, flushing to disk before returning.
// len(row) must equal Cols().
func (m *Matrix[T]) WriteRow(row []T, i int) error {
	if err := m.checkRow(i); err != nil {
		return fmt.Errorf("Matrix.WriteRow: %w", err)
	}
	if len(row) != int(m.hdr.cols) {
		return fmt.Errorf("Matrix.WriteRow(%d): got %d elements, want %d: %w", i, len(row), m.hdr.cols, ErrRowLength)
	}
	buf := make([]byte, len(row)*int(m.hdr.elementSize))
	encodeRow(row, buf, m.hdr.elementSize)
	off := m.hdr.elementOffset(i, 0)
	if _, err := m.file.WriteAt(buf, off); err != nil {
		return fmt.Errorf("Matrix.WriteRow(%d): %w", i, err)
	}
	return m.Flush()
}

// GetElement reads the single element at (i, j). Intended for diagnostics;
// ReadRow amortizes the seek cost far better for bulk access.
func (m *Matrix[T]) GetElement(i, j int) (T, error) {
	var zero T
	if err := m.checkRow(i); err != nil {
		return zero, fmt.Errorf("Matrix.GetElement: %w", err)
	}
	if err := m.checkCol(j); err != nil {
		return zero, fmt.Errorf("Matrix.GetElement: %w", err)
	}
	buf := make([]byte, m.hdr.elementSize)
	off := m.hdr.elementOffset(i, j)
	if _, err := m.file.ReadAt(buf, off); err != nil {
		return zero, fmt.Errorf("Matrix.GetElement(%d,%d): %w", i, j, err)
	}
	return decodeElement[T](buf), nil
}

// SetElement writes a single element at (i, j). Intended for diagnostics.
func (m *Matrix[T]) SetElement(v T, i, j int) error {
	if err := m.checkRow(i); err != nil {
		return fmt.Errorf("Matrix.SetElement: %w", err)
	}
	if err := m.checkCol(j); err != nil {
		return fmt.Errorf("Matrix.SetElement: %w", err)
	}
	buf := make([]byte, m.hdr.elementSize)
	encodeElement(v, buf)
	off := m.hdr.elementOffset(i, j)
	if _, err := m.file.WriteAt(buf, off); err != nil {
		return fmt.Errorf("Matrix.SetElement(%d,%d): %w", i, j, err)
	}
	return m.Flush()
}

// Fill sets every element of the matrix to v, one row at a time.
func (m *Matrix[T]) Fill(v T) error {
	row := make([]T, m.hdr.cols)
	for i := range row {
		row[i] = v
	}
	for i := 0; i < int(m.hdr.rows); i++ {
		if err := m.WriteRow(row, i); err != nil {
			return fmt.Errorf("Matrix.Fill: %w", err)
		}
	}
	return nil
}

// Flush forces any buffered writes to stable storage so a subsequent read
// (including from this same process) observes them.
func (m *Matrix[T]) Flush() error {
	if err := m.file.Sync(); err != nil {
		return fmt.Errorf("Matrix.Flush: %w", err)
	}
	return nil
}

// Close releases the underlying file handle.
func (m *Matrix[T]) Close() error {
	return m.file.Close()
}
