// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cirq

import "code.hybscloud.com/atomix"

// SPSC is a blocking single-producer single-consumer circular queue.
//
// With one thread on each side no tickets are needed at all: the slot
// handshake reduces to the hasData flag, and both position counters
// advance with plain increments. This is the lightest variant of the
// protocol, for pipeline stages.
//
// Memory: n slots (flag + payload per slot)
type SPSC[T any] struct {
	_        pad
	writePos atomix.Uint32 // Producer position (single producer writes, Len reads)
	_        pad
	readPos  atomix.Uint32 // Consumer position (single consumer writes, Len reads)
	_        pad
	draining atomix.Bool
	_        pad
	slots    []spscSlot[T]
	mask     uint32
	wait     waitConfig
}

type spscSlot[T any] struct {
	hasData atomix.Bool
	data    T
	_       padShort // Pad to cache line
}

// NewSPSC creates a new blocking SPSC queue.
// Capacity rounds up to the next power of 2, at most MaxCapacity.
func NewSPSC[T any](capacity int) *SPSC[T] {
	n := capSlots(capacity)
	return &SPSC[T]{
		slots: make([]spscSlot[T], n),
		mask:  n - 1,
	}
}

// Enqueue publishes an element (single producer only). It blocks while
// the slot's previous value is unconsumed (queue full).
//
// Calling Enqueue after Drain is a contract violation.
func (q *SPSC[T]) Enqueue(elem *T) {
	if checkEnabled && q.draining.LoadAcquire() {
		panic("cirq: enqueue after drain")
	}

	pos := q.writePos.LoadRelaxed()
	q.writePos.StoreRelaxed(pos + 1)
	slot := &q.slots[pos&q.mask]

	w := newWaiter(q.wait)
	// Queue full: the previous round's value is still unconsumed.
	for slot.hasData.LoadAcquire() {
		w.wait()
	}

	slot.data = *elem
	slot.hasData.StoreRelease(true)
}

// DequeueInto removes the next value into *elem (single consumer
// only), blocking until it is published. Returns false only after
// Drain, when no value will arrive for the reserved position.
func (q *SPSC[T]) DequeueInto(elem *T) bool {
	pos := q.readPos.LoadRelaxed()
	q.readPos.StoreRelaxed(pos + 1)
	slot := &q.slots[pos&q.mask]

	w := newWaiter(q.wait)
	// Queue empty: wait for the producer to publish.
	for !slot.hasData.LoadAcquire() {
		if q.draining.LoadAcquire() {
			return false
		}
		w.wait()
	}

	*elem = slot.data
	var zero T
	slot.data = zero
	slot.hasData.StoreRelease(false)
	return true
}

// Dequeue removes and returns the next value (single consumer only),
// blocking until it is published. Returns ErrNoMoreData only after
// Drain, when no value will arrive for the reserved position.
func (q *SPSC[T]) Dequeue() (T, error) {
	var elem T
	if !q.DequeueInto(&elem) {
		return elem, ErrNoMoreData
	}
	return elem, nil
}

// Drain signals that no more values will be enqueued. Idempotent and
// one-way; call strictly after every Enqueue has returned.
func (q *SPSC[T]) Drain() {
	q.draining.StoreRelease(true)
}

// Len returns the signed difference between reserved producer and
// consumer positions. Between operations of the two threads this is
// the exact occupancy.
func (q *SPSC[T]) Len() int {
	return int(int32(q.writePos.LoadRelaxed() - q.readPos.LoadRelaxed()))
}

// Cap returns the queue capacity.
func (q *SPSC[T]) Cap() int {
	return int(q.mask) + 1
}
