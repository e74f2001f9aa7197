package openaddr

import "math"

// ProbingStrategy computes the displacement from the base slot for probe
// attempt x. Implementations must return 0 for x == 0, be defined for
// every non-negative x, and be deterministic in x.
type ProbingStrategy interface {
	Probe(x int) int
}

// CapacityPolicy decides the table sizes a ProbingStrategy relies on.
// Normalize adjusts a requested (positive) capacity and Grow returns the
// capacity to use on the next resize, which must exceed current.
type CapacityPolicy interface {
	Normalize(requested int) int
	Grow(current int) int
}

// QuadraticProbing probes using triangular numbers
type QuadraticProbing struct{}

// Probe returns the x-th triangular number, (x*x + x) / 2
func (QuadraticProbing) Probe(x int) int {
	return (x*x + x) / 2
}

// PowerOfTwo keeps every capacity a power of two, which the triangular
// probe sequence needs in order to cycle through all the slots.
type PowerOfTwo struct{}

// Normalize rounds requested up to the nearest power of two
func (PowerOfTwo) Normalize(requested int) int {
	return alignPowerOfTwo(requested)
}

// Grow returns the next power of two strictly greater than current, or
// 0 if there is none
func (PowerOfTwo) Grow(current int) int {
	aligned := alignPowerOfTwo(current)
	if aligned == 0 || aligned == maxCapacity {
		return 0
	}
	return aligned * 2
}

// maxCapacity is the largest power of two an int can hold
const maxCapacity = math.MaxInt/2 + 1

// alignPowerOfTwo returns the smallest power of two >= size, or 0 if
// that does not fit in an int
func alignPowerOfTwo(size int) int {
	if size > maxCapacity {
		return 0
	}
	count := 1
	for count < size {
		count *= 2
	}
	return count
}

// isPowerOfTwo reports whether n is a positive power of two
func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
