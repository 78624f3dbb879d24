package ondiskmatrix

import "errors"

// Sentinel errors for ondiskmatrix operations. Callers should compare
// against these with errors.Is; context is added at call sites via
// fmt.Errorf("%w", ...) wrapping, never by constructing new error values.
var (
	// ErrHeaderMismatch indicates an opened file's header does not match
	// the descriptor of the requested element type.
	ErrHeaderMismatch = errors.New("ondiskmatrix: header does not match requested element type")

	// ErrTruncated indicates a file is shorter than its declared
	// dimensions imply. Open does not compare the file length with the
	// header, so no function in this package returns it; Create always
	// produces a non-truncated file.
	ErrTruncated = errors.New("ondiskmatrix: file shorter than declared dimensions")

	// ErrInvalidDimensions indicates rows or cols <= 0 at Create.
	ErrInvalidDimensions = errors.New("ondiskmatrix: rows and cols must be > 0")

	// ErrIndexOutOfRange indicates a row or column index outside
	// [0, rows) / [0, cols).
	ErrIndexOutOfRange = errors.New("ondiskmatrix: index out of range")

	// ErrRowLength indicates a row passed to WriteRow does not have
	// exactly Cols() elements.
	ErrRowLength = errors.New("ondiskmatrix: row length does not match Cols()")
)
