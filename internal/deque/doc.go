// Package deque provides a generic array-backed double-ended queue.
//
// Deque[T] stores its elements in a power-of-two ring buffer, giving
// amortized O(1) PushFront and PushBack and O(1) indexed access:
//
//	d := deque.New[int](4)
//	d.PushBack(2)
//	d.PushFront(1)
//	first := d.At(0) // 1
//
// # Thread Safety
//
// Deque is not safe for concurrent use. Callers that share a Deque between
// goroutines must synchronize access themselves.
package deque
