// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cirq

import "code.hybscloud.com/atomix"

// MPSC is a blocking multi-producer single-consumer circular queue.
//
// Producers run the full ticketed protocol; the sole consumer advances
// its position with a plain increment and needs no tickets, saving one
// counter pair per slot. Useful for collecting results from many
// workers into one aggregator.
//
// Memory: n slots (flag + producer ticket pair + payload per slot)
type MPSC[T any] struct {
	_        pad
	writePos atomix.Uint32 // Producer position (FAA)
	_        pad
	readPos  atomix.Uint32 // Consumer position (single consumer writes, Len reads)
	_        pad
	draining atomix.Bool
	_        pad
	slots    []mpscSlot[T]
	mask     uint32
	wait     waitConfig
}

type mpscSlot[T any] struct {
	hasData     atomix.Bool
	pushServing atomix.Uint32
	pushNext    atomix.Uint32
	data        T
	_           padShort // Pad to cache line
}

// NewMPSC creates a new blocking MPSC queue.
// Capacity rounds up to the next power of 2, at most MaxCapacity.
func NewMPSC[T any](capacity int) *MPSC[T] {
	n := capSlots(capacity)
	return &MPSC[T]{
		slots: make([]mpscSlot[T], n),
		mask:  n - 1,
	}
}

// Enqueue publishes an element (multiple producers safe). It blocks
// until publication: first behind any earlier producer ticketed on the
// same slot, then while the slot's previous value is unconsumed.
//
// Calling Enqueue after Drain is a contract violation.
func (q *MPSC[T]) Enqueue(elem *T) {
	if checkEnabled && q.draining.LoadAcquire() {
		panic("cirq: enqueue after drain")
	}

	pos := q.writePos.AddAcqRel(1) - 1
	slot := &q.slots[pos&q.mask]
	ticket := slot.pushNext.AddAcqRel(1) - 1

	w := newWaiter(q.wait)
	// Producers wrapped a full ring onto this slot.
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

// DequeueInto removes the next value into *elem (single consumer
// only), blocking until it is published. Returns false only after
// Drain, when no value will arrive for the reserved position; the
// position is consumed from the stream either way.
func (q *MPSC[T]) DequeueInto(elem *T) bool {
	pos := q.readPos.LoadRelaxed()
	q.readPos.StoreRelaxed(pos + 1)
	slot := &q.slots[pos&q.mask]

	w := newWaiter(q.wait)
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
	return true
}

// Dequeue removes and returns the next value (single consumer only),
// blocking until it is published. Returns ErrNoMoreData only after
// Drain, when no value will arrive for the reserved position.
func (q *MPSC[T]) Dequeue() (T, error) {
	var elem T
	if !q.DequeueInto(&elem) {
		return elem, ErrNoMoreData
	}
	return elem, nil
}

// Drain signals that no more values will be enqueued. Idempotent and
// one-way; call strictly after every Enqueue has returned.
func (q *MPSC[T]) Drain() {
	q.draining.StoreRelease(true)
}

// Len returns the signed difference between reserved producer and
// consumer positions. Advisory; see MPMC.Len. Under a single consumer
// the value is a usable occupancy hint.
func (q *MPSC[T]) Len() int {
	return int(int32(q.writePos.LoadRelaxed() - q.readPos.LoadRelaxed()))
}

// Cap returns the queue capacity.
func (q *MPSC[T]) Cap() int {
	return int(q.mask) + 1
}
