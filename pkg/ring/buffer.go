package ring

// Buffer is a fixed-capacity FIFO. Pushing onto a full buffer evicts the oldest element.
type Buffer[T any] struct {
	items []T
	start int
	size  int
}

func New[T any](capacity int) *Buffer[T] {
	if capacity <= 0 {
		panic("ring: capacity must be positive")
	}
	return &Buffer[T]{items: make([]T, capacity)}
}

// Filled returns a full buffer where every slot holds v.
func Filled[T any](capacity int, v T) *Buffer[T] {
	b := New[T](capacity)
	for i := range b.items {
		b.items[i] = v
	}
	b.size = capacity
	return b
}

// Push appends v as the newest element and reports the evicted element, if any.
func (b *Buffer[T]) Push(v T) (evicted T, ok bool) {
	if b.size < len(b.items) {
		b.items[(b.start+b.size)%len(b.items)] = v
		b.size++
		return evicted, false
	}

	evicted = b.items[b.start]
	b.items[b.start] = v
	b.start = (b.start + 1) % len(b.items)
	return evicted, true
}

func (b *Buffer[T]) Len() int { return b.size }
func (b *Buffer[T]) Cap() int { return len(b.items) }

// Snapshot copies the contents, oldest first.
func (b *Buffer[T]) Snapshot() []T {
	out := make([]T, b.size)
	for i := 0; i < b.size; i++ {
		out[i] = b.items[(b.start+i)%len(b.items)]
	}
	return out
}
