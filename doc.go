// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cirq provides blocking bounded FIFO circular queues for
// producer/consumer workloads, coordinated entirely by atomic
// operations and cooperative waiting — no mutexes, semaphores or
// condition variables.
//
// Producers and consumers each reserve a monotonically increasing
// 32-bit position with Fetch-And-Add; position mod capacity selects a
// slot. Each slot hands its payload between the two sides through a
// single readiness flag, and threads that wrap a full ring onto a busy
// slot are serialized by a per-slot ticket pair, first come first
// served. Operations block while the queue is full (producers) or
// empty (consumers) by spinning on the slot state with a configurable
// wait strategy.
//
// The package offers one variant per producer/consumer pattern, each
// carrying only the coordination metadata its pattern needs:
//
//   - SPSC: Single-Producer Single-Consumer (flag handshake only)
//   - MPSC: Multi-Producer Single-Consumer (producer tickets)
//   - SPMC: Single-Producer Multi-Consumer (consumer tickets)
//   - MPMC: Multi-Producer Multi-Consumer (tickets on both sides)
//
// # Quick Start
//
// Direct constructors:
//
//	q := cirq.NewMPMC[Task](cirq.DefaultCapacity)
//	q := cirq.NewSPSC[Event](1024)
//
// Builder API selects the variant from declared constraints:
//
//	q := cirq.Build[Event](cirq.New(1024).SingleProducer().SingleConsumer()) // → SPSC
//	q := cirq.Build[Event](cirq.New(1024).SingleConsumer())                  // → MPSC
//	q := cirq.Build[Event](cirq.New(1024).SingleProducer())                  // → SPMC
//	q := cirq.Build[Event](cirq.New(1024))                                   // → MPMC
//
// Capacity rounds up to the next power of 2; the minimum is 2 and the
// maximum is MaxCapacity (2^31), because the 32-bit position counters
// wrap cleanly only onto a power-of-two ring.
//
// # Blocking Semantics
//
// Enqueue returns once the value is published; while the queue is full
// it waits for a consumer. Dequeue returns the value for the position
// it reserved; while the queue is empty it waits for a producer.
// There is no failure mode in steady state — the only non-success
// outcome is exhaustion after Drain.
//
// Consumers come in two forms backed by the same mechanism:
//
//	v, err := q.Dequeue()        // ErrNoMoreData after Drain
//	ok := q.DequeueInto(&v)      // false after Drain
//
// # Worker Pool (MPMC)
//
//	q := cirq.NewMPMC[Job](256)
//
//	// Workers
//	for range numWorkers {
//	    go func() {
//	        for {
//	            job, err := q.Dequeue()
//	            if cirq.IsNoMoreData(err) {
//	                return
//	            }
//	            job.Run()
//	        }
//	    }()
//	}
//
//	// Submit blocks while the pool is saturated
//	func Submit(j Job) {
//	    q.Enqueue(&j)
//	}
//
// # Graceful Shutdown
//
// Drain marks the queue as closed for publishing. It is idempotent,
// one-way, and polled — never awaited — by blocked consumers, which
// return exhausted once no value will arrive for their reserved
// position. Values still in the queue at Drain time are delivered
// before consumers start draining out.
//
//	prodWg.Wait() // every Enqueue has returned
//	q.Drain()
//	consWg.Wait() // consumers exit via ErrNoMoreData
//
// Two contract points follow from the reservation protocol:
//
//   - Enqueue must not be called after Drain. Producers do not check
//     the flag; the misuse is asserted only under the cirqcheck build
//     tag.
//   - A consumer position is consumed from the stream the moment it is
//     reserved, even if the consumer later exits exhausted. Issue
//     Drain only after all intended enqueues, and expect exactly one
//     successful dequeue per published value; dequeues beyond that
//     before Drain block until Drain.
//
// # Wait Strategies
//
// Blocked operations retry through a per-queue strategy chosen at
// build time (see WaitStrategy):
//
//	cirq.New(n)                      // WaitYield: scheduler yield (default)
//	cirq.New(n).Spin()               // WaitSpin: CPU pause instructions
//	cirq.New(n).Backoff()            // WaitBackoff: adaptive backoff
//	cirq.New(n).Sleep(time.Millisecond) // WaitSleep: fixed bounded sleep
//
// The strategy trades latency against burnt cycles; it never changes
// the blocking semantics.
//
// # Thread Safety
//
// Each variant is safe exactly within its access pattern. Violating a
// Single constraint (for example two producers on an SPMC) corrupts
// the position counter and is undefined behavior, as is killing a
// goroutine between its position reservation and its flag store —
// the affected slot stalls forever. Run queue operations to
// completion.
//
// # Length
//
// Len reports the signed difference between reserved producer and
// consumer positions. Accurate counts in lock-free structures require
// cross-core synchronization this queue does not pay for, so Len is
// advisory: it can exceed Cap while producers stall against a full
// ring and go negative once drained consumers overshoot. Under a
// single consumer it is a usable occupancy hint; treat it as exact
// only for a quiescent queue.
//
// # Race Detection
//
// Payload cells are plain memory guarded by acquire/release operations
// on the slot flag. Go's race detector does not track happens-before
// edges established through atomix orderings and reports false
// positives on the handoff; concurrent tests are skipped under -race
// via the RaceEnabled constant, as is conventional for lock-free code.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for atomic primitives
// with explicit memory ordering, [code.hybscloud.com/spin] for the
// WaitSpin strategy, and [code.hybscloud.com/iox] for the WaitBackoff
// strategy.
package cirq
