// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xfer_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"code.hybscloud.com/xfer"
)

// ----------------------------------------------------------------------------
// Bytes served
// ----------------------------------------------------------------------------

func TestInput_BytesServed(t *testing.T) {
	data := pattern(100)
	sizes := []int{1, 3, 7, 2, 11, 64}

	for _, capacity := range []int{0, 1, 5, 16, xfer.DefaultBufferSize} {
		t.Run(fmt.Sprintf("cap=%d", capacity), func(t *testing.T) {
			m := xfer.MemoryOf(data, xfer.AccessRead)
			in := xfer.NewInput(m, xfer.WithBufferSize(capacity))
			if in.Cap() != capacity {
				t.Fatalf("Cap()=%d", in.Cap())
			}

			var got []byte
			for i := 0; ; i++ {
				p := make([]byte, sizes[i%len(sizes)])
				n, err := in.Read(p)
				got = append(got, p[:n]...)

				pos, perr := in.Position()
				if perr != nil {
					t.Fatalf("Position: %v", perr)
				}
				if pos != int64(len(got)) {
					t.Fatalf("Position()=%d after %d bytes", pos, len(got))
				}

				if err == io.EOF {
					if n == len(p) {
						t.Fatalf("io.EOF with a full count")
					}
					break
				}
				if err != nil {
					t.Fatalf("Read: %v", err)
				}
				if n != len(p) {
					t.Fatalf("short read %d/%d without error", n, len(p))
				}
			}
			if !bytes.Equal(got, data) {
				t.Fatalf("served %q want %q", got, data)
			}
		})
	}
}

func TestInput_Unseekable(t *testing.T) {
	for _, capacity := range []int{0, 4, 64} {
		t.Run(fmt.Sprintf("cap=%d", capacity), func(t *testing.T) {
			in := xfer.NewInput(plainReader{strings.NewReader("hello, world")}, xfer.WithBufferSize(capacity))
			p := make([]byte, 5)
			if n, err := in.Read(p); n != 5 || err != nil || string(p) != "hello" {
				t.Fatalf("Read: n=%d err=%v %q", n, err, p)
			}
			rest, err := io.ReadAll(in)
			if err != nil || string(rest) != ", world" {
				t.Fatalf("ReadAll: %q %v", rest, err)
			}
			if _, err := in.Position(); !errors.Is(err, xfer.ErrUnseekable) {
				t.Fatalf("Position err=%v want ErrUnseekable", err)
			}
			if _, err := in.SetPosition(0, xfer.Begin); !errors.Is(err, xfer.ErrUnseekable) {
				t.Fatalf("SetPosition err=%v want ErrUnseekable", err)
			}
		})
	}
}

func TestInput_Pipe(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	go func() {
		w.Write([]byte("hello\n"))
		w.Close()
	}()

	in := xfer.NewInput(xfer.NewFile(r, xfer.AccessRead), xfer.WithBufferSize(4))
	var got []byte
	p := make([]byte, 2)
	for {
		n, err := in.Read(p)
		got = append(got, p[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Read: %v", err)
		}
	}
	if string(got) != "hello\n" {
		t.Fatalf("got %q", got)
	}
	if _, err := in.Position(); !errors.Is(err, xfer.ErrUnseekable) {
		t.Fatalf("Position err=%v want ErrUnseekable", err)
	}
}

// ----------------------------------------------------------------------------
// Lean retrieval
// ----------------------------------------------------------------------------

func TestInput_OversizedReadBypassesBuffer(t *testing.T) {
	rec := &recorder{raw: xfer.MemoryOf(pattern(32), xfer.AccessRead)}
	in := xfer.NewInput(rec, xfer.WithBufferSize(4))

	p := make([]byte, 10)
	if n, err := in.Read(p); n != 10 || err != nil {
		t.Fatalf("Read: n=%d err=%v", n, err)
	}
	if len(rec.reads) != 1 || rec.reads[0] != 10 {
		t.Fatalf("raw reads %v, want one read of 10", rec.reads)
	}
	if !bytes.Equal(p, pattern(10)) {
		t.Fatalf("got %q", p)
	}

	// A small read after the lean one goes through the buffer.
	q := make([]byte, 2)
	if _, err := in.Read(q); err != nil {
		t.Fatal(err)
	}
	if last := rec.reads[len(rec.reads)-1]; last != 4 {
		t.Fatalf("fill size %d, want 4", last)
	}
	if pos, _ := in.Position(); pos != 12 {
		t.Fatalf("Position()=%d want 12", pos)
	}
	if in.Buffered() != 2 {
		t.Fatalf("Buffered()=%d want 2", in.Buffered())
	}
}

func TestInput_DrainsBufferBeforeLean(t *testing.T) {
	in := xfer.NewInput(xfer.MemoryString("abcdefghij", xfer.AccessRead), xfer.WithBufferSize(4))
	b, _ := in.ReadByte()
	if b != 'a' {
		t.Fatalf("ReadByte=%q", b)
	}
	p := make([]byte, 8)
	if n, err := in.Read(p); n != 8 || err != nil || string(p) != "bcdefghi" {
		t.Fatalf("Read: n=%d err=%v %q", n, err, p)
	}
}

// ----------------------------------------------------------------------------
// Tie
// ----------------------------------------------------------------------------

func TestInput_TieFlushesBeforeRead(t *testing.T) {
	sink := xfer.NewMemory[byte](xfer.AccessWrite)
	out := xfer.NewOutput(sink)
	in := xfer.NewInput(xfer.MemoryString("y\n", xfer.AccessRead))
	in.Tie(out)
	if in.Tied() != xfer.Flusher(out) {
		t.Fatal("Tied() did not return the tied output")
	}

	out.WriteString("continue? ")
	if sink.Len() != 0 {
		t.Fatalf("prompt reached the sink before the read: %q", sink.String())
	}
	if b, err := in.ReadByte(); err != nil || b != 'y' {
		t.Fatalf("ReadByte=%q err=%v", b, err)
	}
	if sink.String() != "continue? " {
		t.Fatalf("sink=%q", sink.String())
	}

	in.Tie(nil)
	out.WriteString("again")
	in.ReadByte()
	if sink.String() != "continue? " {
		t.Fatalf("untied read flushed: %q", sink.String())
	}
}

func TestInput_TieError(t *testing.T) {
	in := xfer.NewInput(xfer.MemoryString("x", xfer.AccessRead))
	f := &countingFlusher{err: errBoom}
	in.Tie(f)
	if _, err := in.ReadByte(); !errors.Is(err, errBoom) {
		t.Fatalf("err=%v want errBoom", err)
	}
	if f.n != 1 {
		t.Fatalf("Flush called %d times", f.n)
	}
}

// ----------------------------------------------------------------------------
// AtEnd
// ----------------------------------------------------------------------------

func TestInput_AtEnd(t *testing.T) {
	for _, capacity := range []int{0, 1, 4} {
		t.Run(fmt.Sprintf("cap=%d", capacity), func(t *testing.T) {
			in := xfer.NewInput(xfer.MemoryString("ab", xfer.AccessRead), xfer.WithBufferSize(capacity))
			if end, err := in.AtEnd(); end || err != nil {
				t.Fatalf("AtEnd before reading: %v %v", end, err)
			}
			p := make([]byte, 2)
			if n, err := in.Read(p); n != 2 || err != nil {
				t.Fatalf("Read: n=%d err=%v", n, err)
			}
			if end, err := in.AtEnd(); !end || err != nil {
				t.Fatalf("AtEnd after reading: %v %v", end, err)
			}
		})
	}

	in := xfer.NewInput(plainReader{strings.NewReader("ab")}, xfer.Unbuffered())
	if _, err := in.AtEnd(); !errors.Is(err, xfer.ErrUnseekable) {
		t.Fatalf("unbuffered unseekable AtEnd err=%v", err)
	}
}

// ----------------------------------------------------------------------------
// Positioning
// ----------------------------------------------------------------------------

func TestInput_SetPosition(t *testing.T) {
	in := xfer.NewInput(xfer.MemoryString("0123456789", xfer.AccessRead), xfer.WithBufferSize(4))
	in.Read(make([]byte, 3))

	tests := []struct {
		name    string
		off     int64
		ref     xfer.Reference
		want    int64
		next    byte
		wantErr error
	}{
		{"forward", 2, xfer.Current, 5, '5', nil},
		{"back", -4, xfer.Current, 1, '1', nil},
		{"begin", 7, xfer.Begin, 7, '7', nil},
		{"begin clamps", -5, xfer.Begin, 0, '0', nil},
		{"end", -1, xfer.End, 9, '9', nil},
	}
	for _, tt := range tests {
		got, err := in.SetPosition(tt.off, tt.ref)
		if err != tt.wantErr || got != tt.want {
			t.Fatalf("%s: SetPosition=%d,%v want %d,%v", tt.name, got, err, tt.want, tt.wantErr)
		}
		b, err := in.ReadByte()
		if err != nil || b != tt.next {
			t.Fatalf("%s: ReadByte=%q,%v want %q", tt.name, b, err, tt.next)
		}
		// Undo the byte just read.
		if _, err := in.GoBack(1); err != nil {
			t.Fatalf("%s: GoBack: %v", tt.name, err)
		}
	}

	in.SetPosition(1, xfer.Begin)
	if _, err := in.SetPosition(-2, xfer.Current); !errors.Is(err, xfer.ErrNegativePosition) {
		t.Fatalf("before start err=%v", err)
	}
	if _, err := in.Seek(0, 7); !errors.Is(err, xfer.ErrInvalidWhence) {
		t.Fatalf("bad whence err=%v", err)
	}
	if pos, err := in.GoForward(3); pos != 4 || err != nil {
		t.Fatalf("GoForward=%d,%v", pos, err)
	}
	if pos, err := in.Seek(0, io.SeekEnd); pos != 10 || err != nil {
		t.Fatalf("Seek end=%d,%v", pos, err)
	}
	if _, err := in.ReadByte(); err != io.EOF {
		t.Fatalf("ReadByte at end err=%v", err)
	}
}

// ----------------------------------------------------------------------------
// Failures and lifetime
// ----------------------------------------------------------------------------

func TestInput_InvalidAccess(t *testing.T) {
	in := xfer.NewInput(xfer.NewMemory[byte](xfer.AccessWrite))
	if _, err := in.Read(make([]byte, 1)); !errors.Is(err, xfer.ErrInvalidAccess) {
		t.Fatalf("err=%v want ErrInvalidAccess", err)
	}
}

func TestInput_RawError(t *testing.T) {
	in := xfer.NewInput(errReader{errBoom})
	n, err := in.Read(make([]byte, 4))
	if n != 0 || !errors.Is(err, errBoom) {
		t.Fatalf("n=%d err=%v", n, err)
	}
}

func TestInput_ZeroCountIsEndOfData(t *testing.T) {
	in := xfer.NewInput(zeroReader{}, xfer.WithBufferSize(8))
	if n, err := in.Read(make([]byte, 4)); n != 0 || err != io.EOF {
		t.Fatalf("buffered: n=%d err=%v", n, err)
	}
	in = xfer.NewInput(zeroReader{}, xfer.Unbuffered())
	if n, err := in.Read(make([]byte, 4)); n != 0 || err != io.EOF {
		t.Fatalf("unbuffered: n=%d err=%v", n, err)
	}
}

func TestInput_Close(t *testing.T) {
	in := xfer.NewInput(xfer.MemoryString("abc", xfer.AccessRead))
	if err := in.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := in.Close(); !errors.Is(err, xfer.ErrClosed) {
		t.Fatalf("second Close err=%v", err)
	}
	if _, err := in.Read(make([]byte, 1)); !errors.Is(err, xfer.ErrClosed) {
		t.Fatalf("Read after Close err=%v", err)
	}
	if _, err := in.Position(); !errors.Is(err, xfer.ErrClosed) {
		t.Fatalf("Position after Close err=%v", err)
	}
}

func TestInput_WriteTo(t *testing.T) {
	for _, capacity := range []int{0, 3, 4096} {
		in := xfer.NewInput(xfer.MemoryOf(pattern(50), xfer.AccessRead), xfer.WithBufferSize(capacity))
		in.ReadByte()
		var sink bytes.Buffer
		n, err := in.WriteTo(&sink)
		if n != 49 || err != nil || !bytes.Equal(sink.Bytes(), pattern(50)[1:]) {
			t.Fatalf("cap=%d: WriteTo=%d,%v %q", capacity, n, err, sink.Bytes())
		}
	}
}
