// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package cirq

// RaceEnabled is true when the race detector is active.
// Used by tests to skip concurrent scenarios: the detector cannot see
// the happens-before edges established through atomix orderings and
// reports false positives on the payload handoff.
const RaceEnabled = true
