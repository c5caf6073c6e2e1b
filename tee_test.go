// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xfer_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"code.hybscloud.com/xfer"
)

// -----------------------------------------------------------------------------
// TeeReader and Tee tests
// -----------------------------------------------------------------------------

// helper writer that fails after writing k bytes
type failAfterWriter struct {
	k   int
	err error
}

func (w *failAfterWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if w.k <= 0 {
		return 0, w.err
	}
	n := min(w.k, len(p))
	w.k -= n
	return n, w.err
}

func TestTeeReader_Basic(t *testing.T) {
	var side bytes.Buffer
	tr := xfer.TeeReader(strings.NewReader("hello"), &side)
	buf := make([]byte, 8)
	n, err := tr.Read(buf)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if n != 5 || string(buf[:n]) != "hello" {
		t.Fatalf("n=%d buf=%q", n, buf[:n])
	}
	if side.String() != "hello" {
		t.Fatalf("side=%q", side.String())
	}
	if n, err := tr.Read(buf); n != 0 || err != io.EOF {
		t.Fatalf("at end: n=%d err=%v", n, err)
	}
}

func TestTeeReader_WriteSideError(t *testing.T) {
	fw := &failAfterWriter{k: 1, err: errors.New("side-write-error")}
	tr := xfer.TeeReader(strings.NewReader("xy"), fw)
	n, err := tr.Read(make([]byte, 4))
	if !errors.Is(err, fw.err) {
		t.Fatalf("want side error got %v", err)
	}
	if n != 1 {
		t.Fatalf("n=%d want 1", n)
	}
}

func TestTeeReader_ShortSideWrite(t *testing.T) {
	tr := xfer.TeeReader(strings.NewReader("abcd"), &shortWriter{max: 3})
	n, err := tr.Read(make([]byte, 4))
	if n != 3 || err != io.ErrShortWrite {
		t.Fatalf("n=%d err=%v", n, err)
	}
}

func TestTeeReader_IntoInput(t *testing.T) {
	var side bytes.Buffer
	in := xfer.NewInput(xfer.TeeReader(strings.NewReader("line one\nline two\n"), &side), xfer.WithBufferSize(4))
	got, err := io.ReadAll(in)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != side.String() {
		t.Fatalf("read %q, side saw %q", got, side.String())
	}
}

func TestTee_Write(t *testing.T) {
	var a, b bytes.Buffer
	tee := xfer.NewTee(&a, &b)
	n, err := tee.Write([]byte("hello"))
	if n != 5 || err != nil {
		t.Fatalf("n=%d err=%v", n, err)
	}
	if a.String() != "hello" || b.String() != "hello" {
		t.Fatalf("a=%q b=%q", a.String(), b.String())
	}
}

func TestTee_Errors(t *testing.T) {
	var a bytes.Buffer
	if _, err := xfer.NewTee(errWriter{errBoom}, &a).Write([]byte("x")); !errors.Is(err, errBoom) {
		t.Fatalf("primary error: %v", err)
	}
	if a.Len() != 0 {
		t.Fatal("secondary written after the primary failed")
	}
	if _, err := xfer.NewTee(&a, errWriter{errBoom}).Write([]byte("x")); !errors.Is(err, errBoom) {
		t.Fatalf("secondary error: %v", err)
	}
	if _, err := xfer.NewTee(&shortWriter{max: 1}, &a).Write([]byte("xy")); err != io.ErrShortWrite {
		t.Fatalf("short primary: %v", err)
	}
	if _, err := xfer.NewTee(&a, &shortWriter{max: 1}).Write([]byte("xy")); err != io.ErrShortWrite {
		t.Fatalf("short secondary: %v", err)
	}
}

func TestTee_FlushesOutputs(t *testing.T) {
	m1 := xfer.NewMemory[byte](xfer.AccessWrite)
	m2 := xfer.NewMemory[byte](xfer.AccessWrite)
	tee := xfer.NewTee(xfer.NewOutput(m1), xfer.NewOutput(m2))
	tee.Write([]byte("both"))
	if m1.Len() != 0 || m2.Len() != 0 {
		t.Fatal("outputs flushed before Flush")
	}
	if err := tee.Flush(); err != nil {
		t.Fatal(err)
	}
	if m1.String() != "both" || m2.String() != "both" {
		t.Fatalf("m1=%q m2=%q", m1.String(), m2.String())
	}

	var plain bytes.Buffer
	if err := xfer.NewTee(&plain, xfer.NewOutput(xfer.MemoryString("", xfer.AccessRead))).Flush(); err != nil {
		t.Fatalf("Flush with nothing pending: %v", err)
	}
}
