// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !cirqcheck

package cirq

// checkEnabled is false without the cirqcheck build tag; contract
// violations are undefined behavior in release builds.
const checkEnabled = false
