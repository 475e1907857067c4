package inline

// MapCap is the number of entries a [Map] holds without allocating.
const MapCap = 2

type entry[K comparable, V any] struct {
	key   K
	value V
}

// Map is a key-value map that stores up to [MapCap] entries in a fixed
// buffer inside the value itself. Lookups are a linear scan while inline,
// which beats hashing for the tiny sizes this is used for, and a real map
// lookup once promoted.
//
// The zero value is an empty inline map, ready to use.
//
// Unlike [Vec], iteration order is not part of the contract: removing an
// inline entry swaps the last entry into its place.
type Map[K comparable, V any] struct {
	n      int
	buf    [MapCap]entry[K, V]
	heap   map[K]V
	onHeap bool
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	if m.onHeap {
		return len(m.heap)
	}
	return m.n
}

// IsHeapAllocated reports whether the map has been promoted to the heap.
func (m *Map[K, V]) IsHeapAllocated() bool {
	return m.onHeap
}

// Get returns the value stored under key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if m.onHeap {
		value, ok := m.heap[key]
		return value, ok
	}

	for i := 0; i < m.n; i++ {
		if m.buf[i].key == key {
			return m.buf[i].value, true
		}
	}

	var zero V
	return zero, false
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Set stores value under key, replacing any previous value. Inserting past
// the inline capacity moves every entry into a freshly allocated map.
func (m *Map[K, V]) Set(key K, value V) {
	if m.onHeap {
		m.heap[key] = value
		return
	}

	for i := 0; i < m.n; i++ {
		if m.buf[i].key == key {
			m.buf[i].value = value
			return
		}
	}

	if m.n < MapCap {
		m.buf[m.n] = entry[K, V]{key, value}
		m.n++
		return
	}

	m.promote()
	m.heap[key] = value
}

// Delete removes key and returns its value. While inline, the last entry is
// swapped into the vacated slot.
func (m *Map[K, V]) Delete(key K) (V, bool) {
	if m.onHeap {
		value, ok := m.heap[key]
		if ok {
			delete(m.heap, key)
		}
		return value, ok
	}

	for i := 0; i < m.n; i++ {
		if m.buf[i].key == key {
			removed := m.buf[i].value
			m.n--
			m.buf[i] = m.buf[m.n]
			// clear the vacated slot, same discipline as Vec.Remove
			m.buf[m.n] = entry[K, V]{}
			return removed, true
		}
	}

	var zero V
	return zero, false
}

// Range calls f for every entry until f returns false. Iteration order is
// unspecified.
func (m *Map[K, V]) Range(f func(key K, value V) bool) {
	if m.onHeap {
		for key, value := range m.heap {
			if !f(key, value) {
				return
			}
		}
		return
	}

	for i := 0; i < m.n; i++ {
		if !f(m.buf[i].key, m.buf[i].value) {
			return
		}
	}
}

func (m *Map[K, V]) promote() {
	heap := make(map[K]V, MapCap*2)
	for i := 0; i < m.n; i++ {
		heap[m.buf[i].key] = m.buf[i].value
		m.buf[i] = entry[K, V]{}
	}

	m.n = 0
	m.heap = heap
	m.onHeap = true
}
