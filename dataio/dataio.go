// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package dataio reads and writes fixed-width scalars in a chosen byte order
// through buffered resources.
//
// A value is either transferred whole or reported as failed: a stream that
// ends inside a value returns io.ErrUnexpectedEOF, one that ends before it
// returns io.EOF.
package dataio

import (
	"encoding/binary"
	"io"
	"math"

	"code.hybscloud.com/xfer"
)

// Reader decodes scalars from a byte source.
type Reader struct {
	src   io.Reader
	order binary.ByteOrder
	buf   [8]byte
}

// NewReader returns a Reader over src. A nil order means binary.NativeEndian.
func NewReader(src io.Reader, order binary.ByteOrder) *Reader {
	if order == nil {
		order = binary.NativeEndian
	}
	return &Reader{src: src, order: order}
}

func (r *Reader) next(n int) ([]byte, error) {
	b := r.buf[:n]
	if _, err := io.ReadFull(r.src, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *Reader) ReadUint8() (uint8, error) {
	b, err := r.next(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *Reader) ReadUint16() (uint16, error) {
	b, err := r.next(2)
	if err != nil {
		return 0, err
	}
	return r.order.Uint16(b), nil
}

func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.next(4)
	if err != nil {
		return 0, err
	}
	return r.order.Uint32(b), nil
}

func (r *Reader) ReadUint64() (uint64, error) {
	b, err := r.next(8)
	if err != nil {
		return 0, err
	}
	return r.order.Uint64(b), nil
}

func (r *Reader) ReadInt8() (int8, error) {
	v, err := r.ReadUint8()
	return int8(v), err
}

func (r *Reader) ReadInt16() (int16, error) {
	v, err := r.ReadUint16()
	return int16(v), err
}

func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

func (r *Reader) ReadInt64() (int64, error) {
	v, err := r.ReadUint64()
	return int64(v), err
}

func (r *Reader) ReadFloat32() (float32, error) {
	v, err := r.ReadUint32()
	return math.Float32frombits(v), err
}

func (r *Reader) ReadFloat64() (float64, error) {
	v, err := r.ReadUint64()
	return math.Float64frombits(v), err
}

// ReadBool reads one byte; any non-zero value is true.
func (r *Reader) ReadBool() (bool, error) {
	v, err := r.ReadUint8()
	return v != 0, err
}

// ReadBytes fills p.
func (r *Reader) ReadBytes(p []byte) error {
	_, err := io.ReadFull(r.src, p)
	return err
}

// Writer encodes scalars into a byte sink.
type Writer struct {
	dst   io.Writer
	order binary.AppendByteOrder
	buf   []byte
}

// NewWriter returns a Writer over dst. A nil order means binary.NativeEndian.
func NewWriter(dst io.Writer, order binary.AppendByteOrder) *Writer {
	if order == nil {
		order = binary.NativeEndian
	}
	return &Writer{dst: dst, order: order, buf: make([]byte, 0, 8)}
}

func (w *Writer) emit(b []byte) error {
	_, err := w.dst.Write(b)
	return err
}

func (w *Writer) WriteUint8(v uint8) error { return w.emit(append(w.buf[:0], v)) }

func (w *Writer) WriteUint16(v uint16) error { return w.emit(w.order.AppendUint16(w.buf[:0], v)) }

func (w *Writer) WriteUint32(v uint32) error { return w.emit(w.order.AppendUint32(w.buf[:0], v)) }

func (w *Writer) WriteUint64(v uint64) error { return w.emit(w.order.AppendUint64(w.buf[:0], v)) }

func (w *Writer) WriteInt8(v int8) error { return w.WriteUint8(uint8(v)) }

func (w *Writer) WriteInt16(v int16) error { return w.WriteUint16(uint16(v)) }

func (w *Writer) WriteInt32(v int32) error { return w.WriteUint32(uint32(v)) }

func (w *Writer) WriteInt64(v int64) error { return w.WriteUint64(uint64(v)) }

func (w *Writer) WriteFloat32(v float32) error { return w.WriteUint32(math.Float32bits(v)) }

func (w *Writer) WriteFloat64(v float64) error { return w.WriteUint64(math.Float64bits(v)) }

// WriteBool writes 1 for true and 0 for false.
func (w *Writer) WriteBool(v bool) error {
	if v {
		return w.WriteUint8(1)
	}
	return w.WriteUint8(0)
}

// WriteBytes writes p as is.
func (w *Writer) WriteBytes(p []byte) error { return w.emit(p) }

// Flush flushes the sink when it buffers.
func (w *Writer) Flush() error {
	if f, ok := w.dst.(xfer.Flusher); ok {
		return f.Flush()
	}
	return nil
}
