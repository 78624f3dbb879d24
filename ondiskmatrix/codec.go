package ondiskmatrix

import "math"

// encodeRow serializes row into dst, which must be len(row)*elemSize bytes.
// elemSize is 4 for float32, 8 for float64; the generic element type T is
// resolved at each call via a type switch rather than unsafe casts, since T
// is constrained to exactly those two kinds.
func encodeRow[T element](row []T, dst []byte, elemSize int32) {
	switch any(row).(type) {
	case []float64:
		r := any(row).([]float64)
		for i, v := range r {
			byteOrder.PutUint64(dst[i*8:i*8+8], math.Float64bits(v))
		}
	case []float32:
		r := any(row).([]float32)
		for i, v := range r {
			byteOrder.PutUint32(dst[i*4:i*4+4], math.Float32bits(v))
		}
	}
	_ = elemSize
}

// decodeRow deserializes src into a freshly allocated row of n elements.
func decodeRow[T element](src []byte, n int) []T {
	row := make([]T, n)
	switch any(row).(type) {
	case []float64:
		r := any(row).([]float64)
		for i := range r {
			r[i] = math.Float64frombits(byteOrder.Uint64(src[i*8 : i*8+8]))
		}
	case []float32:
		r := any(row).([]float32)
		for i := range r {
			r[i] = math.Float32frombits(byteOrder.Uint32(src[i*4 : i*4+4]))
		}
	}
	return row
}

// encodeElement serializes a single scalar into dst (len(dst) == elemSize).
func encodeElement[T element](v T, dst []byte) {
	switch x := any(v).(type) {
	case float64:
		byteOrder.PutUint64(dst, math.Float64bits(x))
	case float32:
		byteOrder.PutUint32(dst, math.Float32bits(x))
	}
}

// decodeElement deserializes a single scalar from src.
func decodeElement[T element](src []byte) T {
	var zero T
	switch any(zero).(type) {
	case float64:
		return any(math.Float64frombits(byteOrder.Uint64(src))).(T)
	case float32:
		return any(math.Float32frombits(byteOrder.Uint32(src))).(T)
	}
	return zero
}
