// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package xfer provides buffered transfer resources: a single-slot byte buffer
// placed between a raw byte source/sink (file, descriptor, in-memory container,
// standard stream) and the typed stream layers built on top of it.
//
// Transfer model
//   - Input: fill-on-demand reads. Small requests are served from the buffer;
//     requests larger than the buffer capacity bypass it (lean retrieval).
//   - Output: buffer-then-flush writes. Requests larger than the capacity are
//     written directly after flushing what is pending.
//   - Stream: Input and Output sharing one buffer over a seekable raw resource.
//
// Positions are logical: a fill on a seekable raw resource is compensated by
// seeking the raw cursor back by the amount filled, so the raw cursor plus the
// buffer cursor is always the position the caller observes.
//
// End-of-data is a short count, never a failure of its own. Read follows the
// io.Reader contract and pairs a short count with io.EOF.
//
// A resource is not safe for concurrent use.
package xfer
