// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cirq

import "code.hybscloud.com/atomix"

// MPMC is a blocking multi-producer multi-consumer circular queue.
//
// Producers reserve positions by Fetch-And-Add on a 32-bit write
// counter; consumers do the same on a read counter. Position mod
// capacity selects the slot. Threads that wrap a full ring onto a slot
// still in use are serialized by a per-slot ticket pair, FIFO among
// the colliders. A single hasData flag per slot hands the cell from
// producer to consumer and back.
//
// Enqueue blocks while the slot still holds the previous round's value
// (queue full); Dequeue blocks until the paired producer publishes
// (queue empty). Neither side ever touches an OS lock.
//
// Position counters wrap at 2^32; capacity is a power of two, so the
// position-to-slot mapping stays uniform across the wrap.
//
// Memory: n slots (flag + two ticket pairs + payload per slot)
type MPMC[T any] struct {
	_        pad
	writePos atomix.Uint32 // Producer position (FAA)
	_        pad
	readPos  atomix.Uint32 // Consumer position (FAA)
	_        pad
	draining atomix.Bool // No more enqueues; blocked consumers drain
	_        pad
	slots    []mpmcSlot[T]
	mask     uint32
	wait     waitConfig
}

type mpmcSlot[T any] struct {
	hasData     atomix.Bool   // Producer→consumer handshake over data
	pushServing atomix.Uint32 // Producer ticket currently served
	pushNext    atomix.Uint32 // Next producer ticket (FAA)
	popServing  atomix.Uint32 // Consumer ticket currently served
	popNext     atomix.Uint32 // Next consumer ticket (FAA)
	data        T
	_           padShort // Pad to cache line
}

// NewMPMC creates a new blocking MPMC queue.
// Capacity rounds up to the next power of 2, at most MaxCapacity.
func NewMPMC[T any](capacity int) *MPMC[T] {
	n := capSlots(capacity)
	return &MPMC[T]{
		slots: make([]mpmcSlot[T], n),
		mask:  n - 1,
	}
}

// Enqueue publishes an element (multiple producers safe). It blocks
// until publication: first behind any earlier producer ticketed on the
// same slot, then while the slot's previous value is unconsumed.
//
// Calling Enqueue after Drain is a contract violation.
func (q *MPMC[T]) Enqueue(elem *T) {
	if checkEnabled && q.draining.LoadAcquire() {
		panic("cirq: enqueue after drain")
	}

	pos := q.writePos.AddAcqRel(1) - 1
	slot := &q.slots[pos&q.mask]
	ticket := slot.pushNext.AddAcqRel(1) - 1

	w := newWaiter(q.wait)
	// Producers wrapped a full ring onto this slot. Rare; prefer a
	// larger capacity when this wait shows up in profiles.
	for slot.pushServing.LoadAcquire() != ticket {
		w.wait()
	}
	w.reset()
	// Queue full: the previous round's value is still unconsumed.
	for slot.hasData.LoadAcquire() {
		w.wait()
	}

	slot.data = *elem
	slot.hasData.StoreRelease(true)
	slot.pushServing.StoreRelease(ticket + 1)
}

// DequeueInto removes the value for the caller's reserved position
// into *elem (multiple consumers safe), blocking until it is
// published. Returns false only after Drain, when no value will arrive
// for that position; *elem is untouched and the ticket is not
// released, since the reserved position is consumed from the stream
// either way.
func (q *MPMC[T]) DequeueInto(elem *T) bool {
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
	// Queue empty: wait for the paired producer to publish.
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
func (q *MPMC[T]) Dequeue() (T, error) {
	var elem T
	if !q.DequeueInto(&elem) {
		return elem, ErrNoMoreData
	}
	return elem, nil
}

// Drain signals that no more values will be enqueued. Idempotent and
// one-way. Blocked consumers observe the flag and return exhausted;
// producers never check it, so Drain must be called strictly after
// every Enqueue has returned.
func (q *MPMC[T]) Drain() {
	q.draining.StoreRelease(true)
}

// Len returns the signed difference between reserved producer and
// consumer positions. Advisory only: it exceeds Cap() while producers
// stall against a full ring, and goes negative when drained consumers
// have overshot. Exact only for a quiescent queue.
func (q *MPMC[T]) Len() int {
	return int(int32(q.writePos.LoadRelaxed() - q.readPos.LoadRelaxed()))
}

// Cap returns the queue capacity.
func (q *MPMC[T]) Cap() int {
	return int(q.mask) + 1
}
