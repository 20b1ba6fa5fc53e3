package deque

// minCapacity is the smallest backing array allocated by a Deque.
const minCapacity = 8

// Deque is a double-ended queue backed by a ring buffer.
// The zero value is an empty deque ready to use.
type Deque[T any] struct {
	buf   []T
	head  int // index of the first element in buf
	count int
}

// New creates a deque with room for at least capacity elements.
func New[T any](capacity int) *Deque[T] {
	d := &Deque[T]{}
	if capacity > 0 {
		d.buf = make([]T, roundUp(capacity))
	}
	return d
}

// Len returns the number of elements in the deque.
func (d *Deque[T]) Len() int {
	return d.count
}

// PushBack appends v at the end of the deque.
func (d *Deque[T]) PushBack(v T) {
	d.grow()
	d.buf[d.wrap(d.head+d.count)] = v
	d.count++
}

// PushFront inserts v before the first element of the deque.
func (d *Deque[T]) PushFront(v T) {
	d.grow()
	d.head = d.wrap(d.head - 1 + len(d.buf))
	d.buf[d.head] = v
	d.count++
}

// At returns the element at index i, where 0 is the front.
// At panics if i is out of range, like a slice index.
func (d *Deque[T]) At(i int) T {
	if i < 0 || i >= d.count {
		panic("deque: index out of range")
	}
	return d.buf[d.wrap(d.head+i)]
}

// Slice returns the elements in order as a newly allocated slice.
func (d *Deque[T]) Slice() []T {
	out := make([]T, d.count)
	d.copyTo(out)
	return out
}

// Clone returns an independent copy of the deque.
func (d *Deque[T]) Clone() *Deque[T] {
	c := New[T](d.count)
	d.copyTo(c.buf)
	c.count = d.count
	return c
}

// copyTo copies the elements in order into dst, which must hold Len elements.
func (d *Deque[T]) copyTo(dst []T) {
	if d.count == 0 {
		return
	}
	end := d.head + d.count
	if end <= len(d.buf) {
		copy(dst, d.buf[d.head:end])
		return
	}
	n := copy(dst, d.buf[d.head:])
	copy(dst[n:], d.buf[:end-len(d.buf)])
}

// grow doubles the backing array when it is full.
// Elements are unwrapped so the front lands at index 0.
func (d *Deque[T]) grow() {
	if d.count < len(d.buf) {
		return
	}
	size := len(d.buf) * 2
	if size < minCapacity {
		size = minCapacity
	}
	buf := make([]T, size)
	d.copyTo(buf)
	d.buf = buf
	d.head = 0
}

// wrap maps i into the backing array. len(d.buf) is always a power of two.
func (d *Deque[T]) wrap(i int) int {
	return i & (len(d.buf) - 1)
}

// roundUp returns the smallest power of two >= n, at least minCapacity.
func roundUp(n int) int {
	size := minCapacity
	for size < n {
		size <<= 1
	}
	return size
}
