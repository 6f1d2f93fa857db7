// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build cirqcheck

package cirq

// checkEnabled gates contract-violation assertions (enqueue after
// Drain). Build with -tags cirqcheck during development; release
// builds compile the checks out.
const checkEnabled = true
