package dims

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Index is the constraint for dimension index types: any signed or
// unsigned integer. Booleans are excluded at the type level.
type Index interface {
	constraints.Integer
}

// MaxOf returns the largest value representable by T.
func MaxOf[T Index]() uint64 {
	var zero T
	bits := uint(unsafe.Sizeof(zero)) * 8
	if isSigned[T]() {
		return 1<<(bits-1) - 1
	}
	if bits >= 64 {
		return ^uint64(0)
	}
	return 1<<bits - 1
}

// Fits reports whether v is non-negative and representable in T.
func Fits[T Index, V Index](v V) bool {
	if v < 0 {
		return false
	}
	return uint64(v) <= MaxOf[T]()
}

func isSigned[T Index]() bool {
	var zero T
	return ^zero < zero
}
