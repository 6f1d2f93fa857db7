// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cirq

import "errors"

// ErrNoMoreData reports that the queue has been drained and the
// consumer's reserved position will never receive a value.
//
// ErrNoMoreData is terminal, not retryable: once a drained queue runs
// out of published values, every further Dequeue keeps returning it.
// This is different from a transient empty queue, which blocks instead
// of erroring.
//
// The error is returned by the value-returning consumer form only;
// DequeueInto reports the same outcome as a false return.
//
// Example:
//
//	for {
//	    v, err := q.Dequeue()
//	    if cirq.IsNoMoreData(err) {
//	        break // queue drained, worker exits
//	    }
//	    process(v)
//	}
var ErrNoMoreData = errors.New("cirq: no more data")

// IsNoMoreData reports whether err indicates queue exhaustion after
// Drain. Supports wrapped errors.
func IsNoMoreData(err error) bool {
	return errors.Is(err, ErrNoMoreData)
}
