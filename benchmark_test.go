// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cirq_test

import (
	"testing"

	"code.hybscloud.com/cirq"
)

// =============================================================================
// Single-Threaded Baselines
// =============================================================================

func BenchmarkSPSC_SingleOp(b *testing.B) {
	q := cirq.NewSPSC[int](1024)

	b.ResetTimer()
	for i := range b.N {
		v := i
		q.Enqueue(&v)
		q.Dequeue()
	}
}

func BenchmarkMPSC_SingleOp(b *testing.B) {
	q := cirq.NewMPSC[int](1024)

	b.ResetTimer()
	for i := range b.N {
		v := i
		q.Enqueue(&v)
		q.Dequeue()
	}
}

func BenchmarkSPMC_SingleOp(b *testing.B) {
	q := cirq.NewSPMC[int](1024)

	b.ResetTimer()
	for i := range b.N {
		v := i
		q.Enqueue(&v)
		q.Dequeue()
	}
}

func BenchmarkMPMC_SingleOp(b *testing.B) {
	q := cirq.NewMPMC[int](1024)

	b.ResetTimer()
	for i := range b.N {
		v := i
		q.Enqueue(&v)
		q.Dequeue()
	}
}

// =============================================================================
// Contended Throughput
// =============================================================================

// BenchmarkMPMC_Parallel keeps every worker doing an enqueue/dequeue
// pair, so the queue stays near-empty while all counters stay hot.
func BenchmarkMPMC_Parallel(b *testing.B) {
	q := cirq.NewMPMC[int](1024)

	b.RunParallel(func(pb *testing.PB) {
		v := 1
		for pb.Next() {
			q.Enqueue(&v)
			q.Dequeue()
		}
	})
}

// BenchmarkMPMC_ParallelSmallRing forces slot collisions by running the
// pair loop against a ring smaller than the worker count.
func BenchmarkMPMC_ParallelSmallRing(b *testing.B) {
	q := cirq.NewMPMC[int](2)

	b.RunParallel(func(pb *testing.PB) {
		v := 1
		for pb.Next() {
			q.Enqueue(&v)
			q.Dequeue()
		}
	})
}
