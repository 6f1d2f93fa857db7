// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cirq

import (
	"runtime"
	"time"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/spin"
)

// WaitStrategy selects how a blocked operation waits for the other
// side. The queue never blocks on an OS primitive; every wait is a
// cooperative retry loop around one of these strategies.
//
// The strategy is a tuning knob, not a contract: all strategies
// preserve the same blocking semantics.
type WaitStrategy uint8

const (
	// WaitYield surrenders the current scheduler quantum between
	// retries (runtime.Gosched). The default: cheap, fair, and safe
	// for waits of unknown length.
	WaitYield WaitStrategy = iota

	// WaitSpin issues CPU pause instructions between retries
	// (spin.Wait). Lowest latency for waits expected to last
	// nanoseconds; burns a core on longer waits.
	WaitSpin

	// WaitBackoff waits adaptively (iox.Backoff), ramping from pauses
	// toward yields. A middle ground when wait lengths vary.
	WaitBackoff

	// WaitSleep sleeps a fixed bounded duration between retries.
	// For queues expected to sit full or empty for long stretches,
	// where repeated yielding would waste cycles.
	WaitSleep
)

// defaultSleep is the WaitSleep duration when none is configured.
const defaultSleep = time.Millisecond

// waitConfig is the per-queue wait tunable, set by the builder.
// The zero value selects WaitYield.
type waitConfig struct {
	strategy WaitStrategy
	sleep    time.Duration
}

// waiter is per-operation wait state. Local to one call, like the
// spin.Wait values in retry loops elsewhere in this ecosystem.
type waiter struct {
	cfg waitConfig
	sw  spin.Wait
	bo  iox.Backoff
}

func newWaiter(cfg waitConfig) waiter {
	return waiter{cfg: cfg}
}

func (w *waiter) wait() {
	switch w.cfg.strategy {
	case WaitSpin:
		w.sw.Once()
	case WaitBackoff:
		w.bo.Wait()
	case WaitSleep:
		time.Sleep(w.cfg.sleep)
	default:
		runtime.Gosched()
	}
}

// reset clears adaptive state between protocol phases, so the wait for
// a slot's flag starts fresh after the wait for its ticket.
func (w *waiter) reset() {
	switch w.cfg.strategy {
	case WaitSpin:
		w.sw.Reset()
	case WaitBackoff:
		w.bo.Reset()
	}
}
