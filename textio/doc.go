// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package textio reads and writes code points through buffered resources in
// any Unicode encoding form and byte order.
//
// A Reader decodes UTF-8, UTF-16 or UTF-32 from an xfer.Readable; a Writer
// encodes into an xfer.Writable. Both take an Encoding, the pair of a Form
// and a byte Order. ReadBOM and WriteBOM handle the byte order mark, and a
// reversed mark read from UTF-16 or UTF-32 input switches the Reader to the
// other order.
//
// Transcoder exposes the same conversion as a golang.org/x/text transform
// stage.
package textio
