// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package textio_test

import (
	"bytes"
	"io"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"

	"code.hybscloud.com/xfer"
	"code.hybscloud.com/xfer/codepoint"
	"code.hybscloud.com/xfer/textio"
)

const sample = "Grüße\n世界 😀\nend"

func reference(enc textio.Encoding) encoding.Encoding {
	switch enc.Form {
	case textio.UTF16:
		if enc.Order == textio.LittleEndian {
			return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
		}
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case textio.UTF32:
		if enc.Order == textio.LittleEndian {
			return utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM)
		}
		return utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM)
	default:
		return unicode.UTF8
	}
}

var encodings = []textio.Encoding{
	{Form: textio.UTF8},
	{Form: textio.UTF16, Order: textio.BigEndian},
	{Form: textio.UTF16, Order: textio.LittleEndian},
	{Form: textio.UTF32, Order: textio.BigEndian},
	{Form: textio.UTF32, Order: textio.LittleEndian},
}

// ----------------------------------------------------------------------------
// encodings
// ----------------------------------------------------------------------------

func TestParseEncoding(t *testing.T) {
	cases := map[string]textio.Encoding{
		"utf-8":    {Form: textio.UTF8, Order: textio.NativeOrder},
		"UTF8":     {Form: textio.UTF8, Order: textio.NativeOrder},
		"utf-16le": {Form: textio.UTF16, Order: textio.LittleEndian},
		"UTF-16BE": {Form: textio.UTF16, Order: textio.BigEndian},
		"utf16":    textio.EncodingUTF16,
		"utf_32be": {Form: textio.UTF32, Order: textio.BigEndian},
		"utf-32":   textio.EncodingUTF32,
	}
	for name, want := range cases {
		got, ok := textio.ParseEncoding(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}
	for _, bad := range []string{"", "latin1", "utf-16xe", "utf-7"} {
		_, ok := textio.ParseEncoding(bad)
		assert.False(t, ok, bad)
	}
	assert.Equal(t, "UTF-16LE", textio.Encoding{Form: textio.UTF16, Order: textio.LittleEndian}.String())
	assert.Equal(t, "UTF-8", textio.EncodingUTF8.String())
}

func TestDetectBOM(t *testing.T) {
	for _, enc := range encodings {
		b, err := enc.AppendRune(nil, codepoint.BOM)
		require.NoError(t, err)
		got, n := textio.DetectBOM(append(b, 'x', 0, 0, 0))
		assert.Equal(t, len(b), n, enc.String())
		assert.Equal(t, enc.Form, got.Form, enc.String())
		if enc.Form != textio.UTF8 {
			assert.Equal(t, enc.Order, got.Order, enc.String())
		}
	}
	_, n := textio.DetectBOM([]byte("plain"))
	assert.Zero(t, n)
}

// ----------------------------------------------------------------------------
// writer and reader against x/text
// ----------------------------------------------------------------------------

func TestWriterMatchesReference(t *testing.T) {
	for _, enc := range encodings {
		t.Run(enc.String(), func(t *testing.T) {
			mem := xfer.NewMemory[byte](xfer.AccessReadWrite)
			out := xfer.NewOutput(mem, xfer.WithBufferSize(7))
			w := textio.NewWriter(out, enc)
			n, err := w.WriteString(sample)
			require.NoError(t, err)
			assert.Equal(t, len(sample), n)
			require.NoError(t, w.Flush())

			want, err := reference(enc).NewEncoder().String(sample)
			require.NoError(t, err)
			assert.Equal(t, want, mem.String())
		})
	}
}

func TestReaderMatchesReference(t *testing.T) {
	for _, enc := range encodings {
		t.Run(enc.String(), func(t *testing.T) {
			raw, err := reference(enc).NewEncoder().String(sample)
			require.NoError(t, err)
			r := textio.NewReader(xfer.NewInput(xfer.MemoryString(raw, xfer.AccessRead), xfer.WithBufferSize(5)), enc)
			got, err := r.ReadAll()
			require.NoError(t, err)
			assert.Equal(t, sample, got)
			end, err := r.AtEnd()
			require.NoError(t, err)
			assert.True(t, end)
		})
	}
}

// ----------------------------------------------------------------------------
// BOM
// ----------------------------------------------------------------------------

func TestBOMRoundTripNonNativeOrder(t *testing.T) {
	for _, form := range []textio.Form{textio.UTF16, textio.UTF32} {
		t.Run(form.String(), func(t *testing.T) {
			written := textio.Encoding{Form: form, Order: textio.NativeOrder.Swap()}

			mem := xfer.NewMemory[byte](xfer.AccessReadWrite)
			st := xfer.NewStream(mem)
			w := textio.NewWriter(st, written)
			require.NoError(t, w.WriteBOM())
			_, err := w.WriteString("abc")
			require.NoError(t, err)
			require.NoError(t, w.Flush())

			_, err = st.SetPosition(0, xfer.Begin)
			require.NoError(t, err)

			r := textio.NewReader(st, textio.Native(form))
			cp, err := r.ReadBOM()
			require.NoError(t, err)
			assert.Equal(t, rune(codepoint.BOM), cp)
			assert.Equal(t, written.Order, r.Order())

			text, err := r.ReadAll()
			require.NoError(t, err)
			assert.Equal(t, "abc", text)
		})
	}
}

func TestBOMRoundTripUTF8(t *testing.T) {
	mem := xfer.NewMemory[byte](xfer.AccessReadWrite)
	out := xfer.NewOutput(mem)
	w := textio.NewWriter(out, textio.EncodingUTF8)
	require.NoError(t, w.WriteBOM())
	require.NoError(t, w.WriteLine("abc"))
	require.NoError(t, w.Flush())
	assert.Equal(t, "\uFEFFabc\n", mem.String())

	_, err := mem.Seek(0, io.SeekStart)
	require.NoError(t, err)
	r := textio.NewReader(xfer.NewInput(mem), textio.EncodingUTF8)
	cp, err := r.ReadBOM()
	require.NoError(t, err)
	assert.Equal(t, rune(codepoint.BOM), cp)
	line, err := r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "abc", line)
}

func TestReadBOMPushesBackOtherCodePoint(t *testing.T) {
	raw, err := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder().String("hi")
	require.NoError(t, err)
	r := textio.NewReader(xfer.NewInput(xfer.MemoryString(raw, xfer.AccessRead)),
		textio.Encoding{Form: textio.UTF16, Order: textio.BigEndian})

	cp, err := r.ReadBOM()
	require.NoError(t, err)
	assert.Equal(t, 'h', cp)
	assert.Equal(t, textio.BigEndian, r.Order())

	end, err := r.AtEnd()
	require.NoError(t, err)
	assert.False(t, end)

	text, err := r.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "hi", text)
}

// ----------------------------------------------------------------------------
// lines
// ----------------------------------------------------------------------------

func TestLinesAtEnd(t *testing.T) {
	for _, size := range []int{0, 1, 3, 16, xfer.DefaultBufferSize} {
		in := xfer.NewInput(xfer.MemoryString("one\ntwo\nthree\nfour", xfer.AccessRead), xfer.WithBufferSize(size))
		r := textio.NewReader(in, textio.EncodingUTF8)
		want := []string{"one", "two", "three", "four"}
		for i, w := range want {
			line, err := r.ReadLine()
			require.NoError(t, err, "size %d line %d", size, i)
			assert.Equal(t, w, line)
			end, err := r.AtEnd()
			require.NoError(t, err)
			assert.Equal(t, i == len(want)-1, end, "size %d after line %d", size, i)
		}
		_, err := r.ReadLine()
		assert.ErrorIs(t, err, io.EOF)
	}
}

func TestAppendLineWide(t *testing.T) {
	raw, err := utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM).NewEncoder().String("😀x\n\nlast")
	require.NoError(t, err)
	r := textio.NewReader(xfer.NewInput(xfer.MemoryString(raw, xfer.AccessRead)),
		textio.Encoding{Form: textio.UTF32, Order: textio.LittleEndian})

	line, err := textio.AppendLine(r, []uint16(nil))
	require.NoError(t, err)
	assert.Equal(t, []uint16{0xD83D, 0xDE00, 'x'}, line)

	empty, err := textio.AppendLine(r, []uint16(nil))
	require.NoError(t, err)
	assert.Empty(t, empty)

	rest, err := textio.AppendAll(r, []uint32{'>'})
	require.NoError(t, err)
	assert.Equal(t, []uint32{'>', 'l', 'a', 's', 't'}, rest)
}

// ----------------------------------------------------------------------------
// malformed input
// ----------------------------------------------------------------------------

func TestReaderMalformed(t *testing.T) {
	r := textio.NewReader(xfer.NewInput(xfer.MemoryString("ok\x80", xfer.AccessRead)), textio.EncodingUTF8)
	_, err := r.ReadCodePoint()
	require.NoError(t, err)
	_, err = r.ReadCodePoint()
	require.NoError(t, err)
	_, err = r.ReadCodePoint()
	var e *codepoint.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, codepoint.KindInvalidEncoding, e.Kind)
	assert.Equal(t, 2, e.Offset)

	// lone leading surrogate at the end
	r = textio.NewReader(xfer.NewInput(xfer.MemoryString("\x00a\xD8\x00", xfer.AccessRead)),
		textio.Encoding{Form: textio.UTF16, Order: textio.BigEndian})
	_, err = r.ReadAll()
	require.ErrorAs(t, err, &e)
	assert.Equal(t, codepoint.KindPastEnd, e.Kind)
	assert.Equal(t, 2, e.Offset)

	// odd byte count
	r = textio.NewReader(xfer.NewInput(xfer.MemoryString("\x00a\x00", xfer.AccessRead)),
		textio.Encoding{Form: textio.UTF16, Order: textio.BigEndian})
	_, err = r.ReadAll()
	assert.ErrorIs(t, err, codepoint.ErrPastEnd)
}

func TestWriterRejectsInvalid(t *testing.T) {
	mem := xfer.NewMemory[byte](xfer.AccessWrite)
	w := textio.NewWriter(xfer.NewOutput(mem), textio.EncodingUTF32)
	assert.ErrorIs(t, w.WriteCodePoint(0xD800), codepoint.ErrInvalidCodePoint)
	n, err := w.WriteString("a\xFFb")
	assert.Equal(t, 1, n)
	assert.ErrorIs(t, err, codepoint.ErrInvalidEncoding)
}

func TestWriteUnits(t *testing.T) {
	mem := xfer.NewMemory[byte](xfer.AccessWrite)
	w := textio.NewWriter(xfer.NewOutput(mem), textio.EncodingUTF8)
	require.NoError(t, textio.WriteUnits(w, []uint32{'h', 0x1F600}))
	require.NoError(t, textio.WriteUnits(w, []uint16{0xD83D, 0xDE00}))
	require.NoError(t, w.Flush())
	assert.Equal(t, "h😀😀", mem.String())

	assert.ErrorIs(t, textio.WriteUnits(w, []uint16{0xDC00}), codepoint.ErrInvalidCodePoint)
}

// ----------------------------------------------------------------------------
// transcoder
// ----------------------------------------------------------------------------

func TestTranscoderMatchesReference(t *testing.T) {
	for _, to := range encodings {
		t.Run(to.String(), func(t *testing.T) {
			got, _, err := transform.String(textio.NewTranscoder(textio.EncodingUTF8, to), sample)
			require.NoError(t, err)
			want, err := reference(to).NewEncoder().String(sample)
			require.NoError(t, err)
			assert.Equal(t, want, got)

			back, _, err := transform.String(textio.NewTranscoder(to, textio.EncodingUTF8), got)
			require.NoError(t, err)
			assert.Equal(t, sample, back)
		})
	}
}

func TestTranscoderBOM(t *testing.T) {
	le := textio.Encoding{Form: textio.UTF16, Order: textio.LittleEndian}
	be := textio.Encoding{Form: textio.UTF16, Order: textio.BigEndian}

	withBOM, _, err := transform.String(textio.NewTranscoder(textio.EncodingUTF8, le, textio.EmitBOM()), "abc")
	require.NoError(t, err)
	assert.Equal(t, "\xFF\xFEa\x00b\x00c\x00", withBOM)

	// declared big-endian; the reversed mark switches to little-endian
	text, _, err := transform.String(textio.NewTranscoder(be, textio.EncodingUTF8, textio.SkipBOM()), withBOM)
	require.NoError(t, err)
	assert.Equal(t, "abc", text)
}

func TestTranscoderSmallChunks(t *testing.T) {
	to := textio.Encoding{Form: textio.UTF16, Order: textio.BigEndian}
	src := iotest.OneByteReader(bytes.NewReader([]byte("\uFEFF" + sample)))
	got, err := io.ReadAll(transform.NewReader(src, textio.NewTranscoder(textio.EncodingUTF8, to, textio.SkipBOM())))
	require.NoError(t, err)
	want, err := reference(to).NewEncoder().String(sample)
	require.NoError(t, err)
	assert.Equal(t, want, string(got))
}

func TestTranscoderMalformed(t *testing.T) {
	_, _, err := transform.String(textio.NewTranscoder(textio.EncodingUTF8, textio.EncodingUTF16), "ab\xE2\x82")
	var e *codepoint.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, codepoint.KindPastEnd, e.Kind)
}
