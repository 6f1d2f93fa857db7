// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

// This file contains examples that move payloads through atomix-guarded
// slots. The handoff is invisible to Go's race detector and reports
// false positives; the examples are correct and excluded from race
// testing.

package cirq_test

import (
	"fmt"
	"sync"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/cirq"
)

// ExampleNewSPSC demonstrates a basic pipeline stage with drain.
func ExampleNewSPSC() {
	q := cirq.NewSPSC[int](8)

	// Producer sends 5 values, then signals the end of the stream
	for i := 1; i <= 5; i++ {
		v := i * 10
		q.Enqueue(&v)
	}
	q.Drain()

	// Consumer receives until exhaustion
	for {
		v, err := q.Dequeue()
		if cirq.IsNoMoreData(err) {
			break
		}
		fmt.Println(v)
	}

	// Output:
	// 10
	// 20
	// 30
	// 40
	// 50
}

// ExampleNewMPMC demonstrates the producer/consumer tally pattern:
// many producers push a unit value, many consumers sum what they pop,
// and the grand total equals the number of pushes.
func ExampleNewMPMC() {
	const (
		producers = 4
		consumers = 4
		perProd   = 1000
	)

	q := cirq.NewMPMC[int](16)

	var prodWg, consWg sync.WaitGroup
	var sum atomix.Int64

	for range consumers {
		consWg.Add(1)
		go func() {
			defer consWg.Done()
			for {
				v, err := q.Dequeue()
				if cirq.IsNoMoreData(err) {
					return
				}
				sum.Add(int64(v))
			}
		}()
	}

	for range producers {
		prodWg.Add(1)
		go func() {
			defer prodWg.Done()
			for range perProd {
				v := 1
				q.Enqueue(&v)
			}
		}()
	}

	prodWg.Wait()
	q.Drain()
	consWg.Wait()

	fmt.Println("total:", sum.Load())

	// Output:
	// total: 4000
}

// ExampleMPMC_DequeueInto demonstrates the out-parameter consumer form.
func ExampleMPMC_DequeueInto() {
	q := cirq.NewMPMC[string](4)

	for _, s := range []string{"a", "b", "c"} {
		q.Enqueue(&s)
	}
	q.Drain()

	var s string
	for q.DequeueInto(&s) {
		fmt.Println(s)
	}

	// Output:
	// a
	// b
	// c
}

// ExampleBuild demonstrates the builder API for variant selection.
func ExampleBuild() {
	// SPSC - both constraints
	spsc := cirq.Build[int](cirq.New(64).SingleProducer().SingleConsumer())

	// MPSC - only single consumer constraint
	mpsc := cirq.Build[int](cirq.New(64).SingleConsumer())

	// SPMC - only single producer constraint
	spmc := cirq.Build[int](cirq.New(64).SingleProducer())

	// MPMC - no constraints
	mpmc := cirq.Build[int](cirq.New(64))

	fmt.Println("SPSC capacity:", spsc.Cap())
	fmt.Println("MPSC capacity:", mpsc.Cap())
	fmt.Println("SPMC capacity:", spmc.Cap())
	fmt.Println("MPMC capacity:", mpmc.Cap())

	// Output:
	// SPSC capacity: 64
	// MPSC capacity: 64
	// SPMC capacity: 64
	// MPMC capacity: 64
}

// ExampleIsNoMoreData demonstrates distinguishing exhaustion from a
// delivered value after Drain.
func ExampleIsNoMoreData() {
	q := cirq.NewSPSC[int](4)

	v := 7
	q.Enqueue(&v)
	q.Drain()

	// The value published before Drain is still delivered
	got, err := q.Dequeue()
	fmt.Println(got, cirq.IsNoMoreData(err))

	// Then the queue is exhausted
	_, err = q.Dequeue()
	fmt.Println(cirq.IsNoMoreData(err))

	// Output:
	// 7 false
	// true
}
