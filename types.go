// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cirq

// Queue is the combined producer-consumer interface for a blocking
// bounded FIFO queue.
//
// All four concrete types (MPMC, MPSC, SPMC, SPSC) satisfy Queue.
// Operations block instead of failing: Enqueue waits for a free slot,
// Dequeue waits for a value. The only non-blocking exits are the
// exhausted outcomes after Drain.
//
// Example:
//
//	q := cirq.NewMPMC[int](32)
//
//	// Producer
//	v := 42
//	q.Enqueue(&v) // returns once published
//
//	// Consumer
//	v, err := q.Dequeue()
//	if cirq.IsNoMoreData(err) {
//	    // queue drained
//	}
type Queue[T any] interface {
	Producer[T]
	Consumer[T]
	Drainer
	// Len returns the signed advisory difference between reserved
	// producer and consumer positions. See the concrete types for the
	// exact caveats.
	Len() int
	Cap() int
}

// Producer is the interface for publishing elements.
//
// The element is passed by pointer to avoid copying large structs at
// the call site; the queue stores a copy of the pointed-to value, so
// the original may be reused after Enqueue returns.
type Producer[T any] interface {
	// Enqueue publishes an element, blocking until its slot is free.
	// Enqueue has no failure mode; calling it after Drain is a
	// contract violation.
	//
	// Thread safety depends on queue type:
	//   - MPMC/MPSC: multiple producers safe
	//   - SPMC/SPSC: single producer only
	Enqueue(elem *T)
}

// Consumer is the interface for taking elements.
//
// Both forms share one mechanism: a consumer first reserves a position,
// then waits for the paired producer. The value-returning form reports
// exhaustion as ErrNoMoreData, the out-parameter form as false.
type Consumer[T any] interface {
	// Dequeue removes and returns the value for the caller's reserved
	// position, blocking until it is published. Returns ErrNoMoreData
	// only after Drain, when no value will arrive for that position.
	//
	// Thread safety depends on queue type:
	//   - MPMC/SPMC: multiple consumers safe
	//   - MPSC/SPSC: single consumer only
	Dequeue() (T, error)

	// DequeueInto is Dequeue with an out parameter: on success *elem
	// holds the value and the result is true; after Drain, when no
	// value will arrive, *elem is untouched and the result is false.
	DequeueInto(elem *T) bool
}

// Drainer signals that no more values will be enqueued.
//
// Call Drain strictly after every Enqueue has returned. Blocked
// consumers observe the signal and return exhausted; producers never
// check it. A consumer position reserved before or after Drain is
// consumed from the stream either way, so the number of dequeues that
// should still succeed equals the number of values in the queue at
// Drain time — anything beyond that drains out exhausted.
//
// Example:
//
//	prodWg.Wait() // all producers finished
//	q.Drain()
//	// consumers now exit via ErrNoMoreData / false
type Drainer interface {
	// Drain marks the queue as closed for publishing. Idempotent,
	// non-blocking, one-way.
	Drain()
}
