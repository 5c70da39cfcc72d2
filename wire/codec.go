// Package wire implements the fixed binary encoding shared by every core
// type in the chain module: little-endian integers, a length-prefixed
// encoding for byte strings and vectors, a one-byte tag for optional
// values, and a little-endian uint32 discriminant for enums.
//
// The format intentionally mirrors a bincode-style wire contract so that
// independent implementations of this module can interoperate on bytes.
package wire

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Writer accumulates the binary encoding of a value, sticking on the first
// error so call sites can chain writes without checking every one.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter returns a Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Err returns the first error encountered during writing, if any.
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) write(p []byte) {
	if w.err != nil {
		return
	}
	_, w.err = w.w.Write(p)
}

// PutUint8 writes a single byte.
func (w *Writer) PutUint8(v uint8) {
	w.write([]byte{v})
}

// PutUint32 writes a little-endian uint32, used for enum discriminants.
func (w *Writer) PutUint32(v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	w.write(buf[:])
}

// PutUint64 writes a little-endian uint64.
func (w *Writer) PutUint64(v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	w.write(buf[:])
}

// PutInt32 writes a little-endian int32.
func (w *Writer) PutInt32(v int32) {
	w.PutUint32(uint32(v))
}

// PutBool writes a single byte boolean.
func (w *Writer) PutBool(v bool) {
	if v {
		w.PutUint8(1)
	} else {
		w.PutUint8(0)
	}
}

// PutBytes writes a little-endian uint64 length prefix followed by the raw
// bytes. This is the encoding used for []byte, string, and every vector.
func (w *Writer) PutBytes(b []byte) {
	w.PutUint64(uint64(len(b)))
	w.write(b)
}

// PutString writes s using the same length-prefixed encoding as PutBytes.
func (w *Writer) PutString(s string) {
	w.PutBytes([]byte(s))
}

// PutOptionalBytes writes the one-byte presence tag followed by the
// length-prefixed payload when present.
func (w *Writer) PutOptionalBytes(b []byte, present bool) {
	w.PutBool(present)
	if present {
		w.PutBytes(b)
	}
}

// PutOptionalString writes the one-byte presence tag followed by the
// length-prefixed payload when present.
func (w *Writer) PutOptionalString(s *string) {
	w.PutOptionalBytes([]byte(derefString(s)), s != nil)
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Reader decodes the binary encoding produced by Writer, sticking on the
// first error encountered.
type Reader struct {
	r   io.Reader
	err error
}

// NewReader returns a Reader that reads from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Err returns the first error encountered during reading, if any.
func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) read(p []byte) {
	if r.err != nil {
		return
	}
	_, r.err = io.ReadFull(r.r, p)
}

// Uint8 reads a single byte.
func (r *Reader) Uint8() uint8 {
	var buf [1]byte
	r.read(buf[:])
	return buf[0]
}

// Uint32 reads a little-endian uint32.
func (r *Reader) Uint32() uint32 {
	var buf [4]byte
	r.read(buf[:])
	return binary.LittleEndian.Uint32(buf[:])
}

// Uint64 reads a little-endian uint64.
func (r *Reader) Uint64() uint64 {
	var buf [8]byte
	r.read(buf[:])
	return binary.LittleEndian.Uint64(buf[:])
}

// Int32 reads a little-endian int32.
func (r *Reader) Int32() int32 {
	return int32(r.Uint32())
}

// Bool reads a single byte boolean.
func (r *Reader) Bool() bool {
	return r.Uint8() != 0
}

// maxAllocLen bounds how much a single length-prefixed read will allocate,
// guarding against a corrupt or adversarial length field forcing a huge
// allocation before the read itself fails.
const maxAllocLen = 64 << 20

// Bytes reads a little-endian uint64 length prefix followed by that many
// raw bytes.
func (r *Reader) Bytes() []byte {
	n := r.Uint64()
	if r.err != nil {
		return nil
	}
	if n > maxAllocLen {
		r.err = fmt.Errorf("wire: length %d exceeds maximum allocation %d", n, maxAllocLen)
		return nil
	}
	buf := make([]byte, n)
	r.read(buf)
	return buf
}

// String reads the same encoding as Bytes and returns it as a string.
func (r *Reader) String() string {
	return string(r.Bytes())
}

// OptionalBytes reads the one-byte presence tag and, if present, the
// length-prefixed payload.
func (r *Reader) OptionalBytes() []byte {
	if !r.Bool() {
		return nil
	}
	return r.Bytes()
}

// OptionalString reads the one-byte presence tag and, if present, the
// length-prefixed payload, returning nil when absent.
func (r *Reader) OptionalString() *string {
	if !r.Bool() {
		return nil
	}
	s := r.String()
	return &s
}
