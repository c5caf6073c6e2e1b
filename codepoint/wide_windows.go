// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build windows

package codepoint

// Wide is the platform wide-character unit. On Windows it holds UTF-16.
type Wide = uint16
