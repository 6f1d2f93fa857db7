// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cirq

import "code.hybscloud.com/atomix"

// SPMC is a blocking single-producer multi-consumer circular queue.
//
// The sole producer advances its position with a plain increment and
// needs no tickets; consumers run the full ticketed protocol. Useful
// for fanning tasks out from one dispatcher to many workers.
//
// Memory: n slots (flag + consumer ticket pair + payload per slot)
type SPMC[T any] struct {
	_        pad
	writePos atomix.Uint32 // Producer position (single producer writes, Len reads)
	_        pad
	readPos  atomix.Uint32 // Consumer position (FAA)
	_        pad
	draining atomix.Bool
	_        pad
	slots    []spmcSlot[T]
	mask     uint32
	wait     waitConfig
}

type spmcSlot[T any] struct {
	hasData    atomix.Bool
	popServing atomix.Uint32
	popNext    atomix.Uint32
	data       T
	_          padShort // Pad to cache line
}

// NewSPMC creates a new blocking SPMC queue.
// Capacity rounds up to the next power of 2, at most MaxCapacity.
func NewSPMC[T any](capacity int) *SPMC[T] {
	n := capSlots(capacity)
	return &SPMC[T]{
		slots: make([]spmcSlot[T], n),
		mask:  n - 1,
	}
}

// Enqueue publishes an element (single producer only). It blocks while
// the slot's previous value is unconsumed (queue full).
//
// Calling Enqueue after Drain is a contract violation.
func (q *SPMC[T]) Enqueue(elem *T) {
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

// DequeueInto removes the value for the caller's reserved position
// into *elem (multiple consumers safe), blocking until it is
// published. Returns false only after Drain, when no value will arrive
// for that position; the ticket is not released, since the position is
// consumed from the stream either way.
func (q *SPMC[T]) DequeueInto(elem *T) bool {
	pos := q.readPos.AddAcqRel(1) - 1
	slot := &q.slots[pos&q.mask]
	ticket := slot.popNext.AddAcqRel(1) - 1

	w := newWaiter(q.wait)
	// Consumers wrapped a full ring onto this slot.
	for slot.popServing.LoadAcquire() != ticket {
		if q.draining.LoadAcquire() {
			return false
		}
		w.wait()
	}
	w.reset()
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
	slot.popServing.StoreRelease(ticket + 1)
	return true
}

// Dequeue removes and returns the value for the caller's reserved
// position (multiple consumers safe), blocking until it is published.
// Returns ErrNoMoreData only after Drain, when no value will arrive
// for that position.
func (q *SPMC[T]) Dequeue() (T, error) {
	var elem T
	if !q.DequeueInto(&elem) {
		return elem, ErrNoMoreData
	}
	return elem, nil
}

// Drain signals that no more values will be enqueued. Idempotent and
// one-way; call strictly after every Enqueue has returned.
func (q *SPMC[T]) Drain() {
	q.draining.StoreRelease(true)
}

// Len returns the signed difference between reserved producer and
// consumer positions. Advisory; see MPMC.Len.
func (q *SPMC[T]) Len() int {
	return int(int32(q.writePos.LoadRelaxed() - q.readPos.LoadRelaxed()))
}

// Cap returns the queue capacity.
func (q *SPMC[T]) Cap() int {
	return int(q.mask) + 1
}
