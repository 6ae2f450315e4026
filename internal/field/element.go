package field

// Element is the capability a scalar type must offer to be integrated
// over. The type parameter is the implementing type itself, so arithmetic
// stays closed: Real works on Real, Dual on Dual.
type Element[T any] interface {
	Add(o T) T
	Subtract(o T) T
	Multiply(o T) T
	Divide(o T) T

	// Scale multiplies by a real constant.
	Scale(a float64) T

	// NewInstance returns the field's zero plus a, carrying over any
	// extra structure (precision, derivative slots) of the receiver.
	NewInstance(a float64) T

	// Real projects the element onto the real line. Used for ordering
	// and for real-valued heuristics; not a norm.
	Real() float64

	// Norm is an absolute-value-like magnitude. For totally ordered
	// fields it equals |Real()|; for composite fields it may not.
	Norm() float64
}

// Span builds a slice of n zero elements in the same field as like.
func Span[T Element[T]](like T, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = like.NewInstance(0)
	}
	return out
}
