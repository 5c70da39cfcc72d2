package wire

import (
	"bytes"
	"testing"
)

func TestUintRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.PutUint8(0xab)
	w.PutUint32(0xdeadbeef)
	w.PutUint64(0x0123456789abcdef)
	w.PutInt32(-42)
	w.PutBool(true)
	w.PutBool(false)
	if err := w.Err(); err != nil {
		t.Fatalf("write error: %v", err)
	}

	r := NewReader(&buf)
	if got := r.Uint8(); got != 0xab {
		t.Fatalf("Uint8() = %#x, want 0xab", got)
	}
	if got := r.Uint32(); got != 0xdeadbeef {
		t.Fatalf("Uint32() = %#x, want 0xdeadbeef", got)
	}
	if got := r.Uint64(); got != 0x0123456789abcdef {
		t.Fatalf("Uint64() = %#x, want 0x0123456789abcdef", got)
	}
	if got := r.Int32(); got != -42 {
		t.Fatalf("Int32() = %d, want -42", got)
	}
	if !r.Bool() {
		t.Fatal("expected true")
	}
	if r.Bool() {
		t.Fatal("expected false")
	}
	if err := r.Err(); err != nil {
		t.Fatalf("read error: %v", err)
	}
}

func TestBytesAndStringRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.PutBytes([]byte("raw payload"))
	w.PutString("a string value")
	w.PutBytes(nil)

	r := NewReader(&buf)
	if got := string(r.Bytes()); got != "raw payload" {
		t.Fatalf("Bytes() = %q, want %q", got, "raw payload")
	}
	if got := r.String(); got != "a string value" {
		t.Fatalf("String() = %q, want %q", got, "a string value")
	}
	if got := r.Bytes(); len(got) != 0 {
		t.Fatalf("Bytes() for an empty payload = %v, want empty", got)
	}
	if err := r.Err(); err != nil {
		t.Fatalf("read error: %v", err)
	}
}

func TestOptionalBytesRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.PutOptionalBytes([]byte("present"), true)
	w.PutOptionalBytes(nil, false)

	r := NewReader(&buf)
	got := r.OptionalBytes()
	if got == nil || string(got) != "present" {
		t.Fatalf("OptionalBytes() = %v, want %q", got, "present")
	}
	if got := r.OptionalBytes(); got != nil {
		t.Fatalf("OptionalBytes() for an absent value = %v, want nil", got)
	}
}

func TestOptionalStringRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	s := "hello"
	w.PutOptionalString(&s)
	w.PutOptionalString(nil)

	r := NewReader(&buf)
	got := r.OptionalString()
	if got == nil || *got != "hello" {
		t.Fatalf("OptionalString() = %v, want %q", got, "hello")
	}
	if got := r.OptionalString(); got != nil {
		t.Fatalf("OptionalString() for an absent value = %v, want nil", got)
	}
}

func TestReaderSticksOnShortInput(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x01, 0x02}))
	_ = r.Uint64()
	if r.Err() == nil {
		t.Fatal("expected a sticky error reading a uint64 from only 2 bytes")
	}
	if got := r.Uint32(); got != 0 {
		t.Fatalf("Uint32() after a prior error should return the zero value, got %d", got)
	}
}

func TestBytesRejectsOversizedLengthPrefix(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.PutUint64(maxAllocLen + 1)

	r := NewReader(&buf)
	if got := r.Bytes(); got != nil {
		t.Fatalf("Bytes() with an oversized length prefix should return nil, got %v", got)
	}
	if r.Err() == nil {
		t.Fatal("expected an error for a length prefix exceeding maxAllocLen")
	}
}

func TestWriterSticksOnFirstError(t *testing.T) {
	w := NewWriter(failingWriter{})
	w.PutUint8(1)
	firstErr := w.Err()
	if firstErr == nil {
		t.Fatal("expected an error from the failing writer")
	}
	w.PutUint64(123)
	if w.Err() != firstErr {
		t.Fatal("Writer should stick on the first error rather than overwrite it")
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errWriteFailed
}

var errWriteFailed = &writeError{}

type writeError struct{}

func (*writeError) Error() string { return "wire: simulated write failure" }
