// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cirq

import "time"

const (
	// DefaultCapacity is a reasonable capacity when no sizing
	// information is available.
	DefaultCapacity = 32

	// MaxCapacity is the largest legal capacity. Positions are 32-bit
	// counters that wrap at 2^32; the wrap maps cleanly onto slots
	// only while the slot count divides 2^32, which caps a power-of-two
	// capacity at 2^31.
	MaxCapacity = 1 << 31
)

// Options configures queue creation and variant selection.
type Options struct {
	// Producer/Consumer constraints (determines queue type)
	singleProducer bool
	singleConsumer bool

	// Wait strategy for blocked operations
	wait waitConfig

	// Capacity (rounds up to next power of 2)
	capacity int
}

// Builder creates queues with fluent configuration.
//
// The builder selects the queue variant from the declared
// producer/consumer constraints, and carries the wait strategy for
// blocked operations.
//
// Example:
//
//	// SPSC pipeline stage with the default yield wait
//	q := cirq.BuildSPSC[Event](cirq.New(1024).SingleProducer().SingleConsumer())
//
//	// MPMC worker pool that sleeps while idle
//	q := cirq.BuildMPMC[Job](cirq.New(256).Sleep(time.Millisecond))
type Builder struct {
	opts Options
}

// New creates a queue builder with the given capacity.
//
// Capacity rounds up to the next power of 2 and must not exceed
// MaxCapacity. Panics if capacity < 2 or capacity > MaxCapacity.
func New(capacity int) *Builder {
	checkCapacity(capacity)
	return &Builder{opts: Options{capacity: capacity}}
}

// SingleProducer declares that only one goroutine will enqueue.
// Selects a variant without producer tickets (SPMC or SPSC).
func (b *Builder) SingleProducer() *Builder {
	b.opts.singleProducer = true
	return b
}

// SingleConsumer declares that only one goroutine will dequeue.
// Selects a variant without consumer tickets (MPSC or SPSC).
func (b *Builder) SingleConsumer() *Builder {
	b.opts.singleConsumer = true
	return b
}

// Spin selects the WaitSpin strategy for blocked operations.
func (b *Builder) Spin() *Builder {
	b.opts.wait = waitConfig{strategy: WaitSpin}
	return b
}

// Backoff selects the WaitBackoff strategy for blocked operations.
func (b *Builder) Backoff() *Builder {
	b.opts.wait = waitConfig{strategy: WaitBackoff}
	return b
}

// Sleep selects the WaitSleep strategy with the given bounded sleep
// between retries. Durations <= 0 fall back to one millisecond.
func (b *Builder) Sleep(d time.Duration) *Builder {
	if d <= 0 {
		d = defaultSleep
	}
	b.opts.wait = waitConfig{strategy: WaitSleep, sleep: d}
	return b
}

// Build creates a Queue[T] with automatic variant selection.
//
// Variant selection:
//
//	SingleProducer + SingleConsumer → SPSC (no tickets)
//	SingleProducer only             → SPMC (consumer tickets)
//	SingleConsumer only             → MPSC (producer tickets)
//	Neither                         → MPMC (tickets on both sides)
//
// For type-safe returns with concrete types, use BuildMPMC, BuildMPSC,
// BuildSPMC or BuildSPSC.
func Build[T any](b *Builder) Queue[T] {
	switch {
	case b.opts.singleProducer && b.opts.singleConsumer:
		q := NewSPSC[T](b.opts.capacity)
		q.wait = b.opts.wait
		return q
	case b.opts.singleProducer:
		q := NewSPMC[T](b.opts.capacity)
		q.wait = b.opts.wait
		return q
	case b.opts.singleConsumer:
		q := NewMPSC[T](b.opts.capacity)
		q.wait = b.opts.wait
		return q
	default:
		q := NewMPMC[T](b.opts.capacity)
		q.wait = b.opts.wait
		return q
	}
}

// BuildMPMC creates an MPMC queue with compile-time type safety.
// Panics if builder has any constraints set.
func BuildMPMC[T any](b *Builder) *MPMC[T] {
	if b.opts.singleProducer || b.opts.singleConsumer {
		panic("cirq: BuildMPMC requires no constraints")
	}
	q := NewMPMC[T](b.opts.capacity)
	q.wait = b.opts.wait
	return q
}

// BuildMPSC creates an MPSC queue with compile-time type safety.
// Panics if builder is not configured with SingleConsumer() only.
func BuildMPSC[T any](b *Builder) *MPSC[T] {
	if b.opts.singleProducer || !b.opts.singleConsumer {
		panic("cirq: BuildMPSC requires SingleConsumer() without SingleProducer()")
	}
	q := NewMPSC[T](b.opts.capacity)
	q.wait = b.opts.wait
	return q
}

// BuildSPMC creates an SPMC queue with compile-time type safety.
// Panics if builder is not configured with SingleProducer() only.
func BuildSPMC[T any](b *Builder) *SPMC[T] {
	if !b.opts.singleProducer || b.opts.singleConsumer {
		panic("cirq: BuildSPMC requires SingleProducer() without SingleConsumer()")
	}
	q := NewSPMC[T](b.opts.capacity)
	q.wait = b.opts.wait
	return q
}

// BuildSPSC creates an SPSC queue with compile-time type safety.
// Panics if builder is not configured with SingleProducer().SingleConsumer().
func BuildSPSC[T any](b *Builder) *SPSC[T] {
	if !b.opts.singleProducer || !b.opts.singleConsumer {
		panic("cirq: BuildSPSC requires SingleProducer().SingleConsumer()")
	}
	q := NewSPSC[T](b.opts.capacity)
	q.wait = b.opts.wait
	return q
}

func checkCapacity(capacity int) {
	if capacity < 2 {
		panic("cirq: capacity must be >= 2")
	}
	if capacity > MaxCapacity {
		panic("cirq: capacity must be <= MaxCapacity")
	}
}

// capSlots validates capacity and returns the slot count.
func capSlots(capacity int) uint32 {
	checkCapacity(capacity)
	return uint32(roundToPow2(capacity))
}

// roundToPow2 rounds n up to the next power of 2.
func roundToPow2(n int) int {
	if n < 2 {
		return 2
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte

// padShort is padding to fill a cache line after the slot metadata.
type padShort [64 - 8]byte
