// Package inline provides small collections that keep their elements
// directly in the value until a capacity threshold is crossed, and only
// then promote themselves to a heap-backed representation. Promotion is
// one-way: once a collection lives on the heap it never moves back.
package inline

// VecCap is the number of elements a [Vec] holds without allocating.
const VecCap = 2

// Vec is a vector that stores up to [VecCap] elements in a fixed buffer
// inside the value itself. Pushing past the capacity moves every element
// into a regular slice.
//
// The zero value is an empty inline vector, ready to use.
//
// Order is part of the contract: elements keep their insertion order in
// both representations, and [Vec.Remove] shifts later elements down.
type Vec[T any] struct {
	n      int
	buf    [VecCap]T
	heap   []T
	onHeap bool
}

// Len returns the number of elements.
func (v *Vec[T]) Len() int {
	if v.onHeap {
		return len(v.heap)
	}
	return v.n
}

// IsHeapAllocated reports whether the vector has been promoted to the heap.
// This is the only observable difference between the two representations.
func (v *Vec[T]) IsHeapAllocated() bool {
	return v.onHeap
}

// Push appends value. If the inline buffer is full, all elements move to a
// freshly allocated slice first.
func (v *Vec[T]) Push(value T) {
	if v.onHeap {
		v.heap = append(v.heap, value)
		return
	}

	if v.n < VecCap {
		v.buf[v.n] = value
		v.n++
		return
	}

	v.promote()
	v.heap = append(v.heap, value)
}

// Get returns the element at index i, bounds-checked against the current
// length regardless of representation.
func (v *Vec[T]) Get(i int) (T, bool) {
	var zero T
	if i < 0 || i >= v.Len() {
		return zero, false
	}
	return v.Slice()[i], true
}

// Remove deletes the element at index i and returns it, shifting every
// later element down by one. It returns false if i is out of bounds.
func (v *Vec[T]) Remove(i int) (T, bool) {
	var zero T
	if i < 0 || i >= v.Len() {
		return zero, false
	}

	if v.onHeap {
		removed := v.heap[i]
		v.heap = append(v.heap[:i], v.heap[i+1:]...)
		return removed, true
	}

	removed := v.buf[i]
	copy(v.buf[i:v.n-1], v.buf[i+1:v.n])
	v.n--
	// clear the vacated slot so the collector does not keep the old value alive
	v.buf[v.n] = zero
	return removed, true
}

// Slice returns a view of the elements. The view stays valid until the next
// Push or Remove. Mutating elements through it is allowed.
func (v *Vec[T]) Slice() []T {
	if v.onHeap {
		return v.heap
	}
	return v.buf[:v.n]
}

func (v *Vec[T]) promote() {
	heap := make([]T, 0, VecCap*2)
	heap = append(heap, v.buf[:v.n]...)

	// release the inline copies; the heap slice owns the elements now
	var zero T
	for i := range v.buf {
		v.buf[i] = zero
	}

	v.n = 0
	v.heap = heap
	v.onHeap = true
}
