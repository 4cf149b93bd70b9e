// Package cursor provides bounds checked little endian writers and readers
// over caller owned byte buffers.
//
// Every write checks the remaining capacity first, so a failed write never
// touches the buffer. Strings and vectors use the borsh convention of a u32
// length prefix, options a single 0/1 tag byte.
package cursor

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var (
	ErrShortBuffer = errors.New("cursor: short buffer")
	ErrBadOption   = errors.New("cursor: option tag must be 0 or 1")
	ErrBadBool     = errors.New("cursor: bool must be 0 or 1")
	ErrSeekRange   = errors.New("cursor: seek beyond buffer")
)

// Writer writes into buf starting at its current position.
type Writer struct {
	buf []byte
	pos uint64
}

func NewWriter(buf []byte) *Writer {
	return &Writer{buf: buf}
}

// Pos returns the offset of the next byte to be written.
func (w *Writer) Pos() uint64 { return w.pos }

// Remaining returns the capacity left after Pos.
func (w *Writer) Remaining() uint64 { return uint64(len(w.buf)) - w.pos }

// Seek moves to an absolute offset.
func (w *Writer) Seek(off uint64) error {
	if off > uint64(len(w.buf)) {
		return fmt.Errorf("%w: %d > %d", ErrSeekRange, off, len(w.buf))
	}
	w.pos = off
	return nil
}

func (w *Writer) reserve(n uint64) ([]byte, error) {
	if n > w.Remaining() {
		return nil, fmt.Errorf("%w: need %d at %d, have %d", ErrShortBuffer, n, w.pos, w.Remaining())
	}
	b := w.buf[w.pos : w.pos+n]
	w.pos += n
	return b, nil
}

func (w *Writer) WriteU8(v uint8) error {
	b, err := w.reserve(1)
	if err != nil {
		return err
	}
	b[0] = v
	return nil
}

func (w *Writer) WriteBool(v bool) error {
	if v {
		return w.WriteU8(1)
	}
	return w.WriteU8(0)
}

func (w *Writer) WriteU16(v uint16) error {
	b, err := w.reserve(2)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(b, v)
	return nil
}

func (w *Writer) WriteU32(v uint32) error {
	b, err := w.reserve(4)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(b, v)
	return nil
}

func (w *Writer) WriteU64(v uint64) error {
	b, err := w.reserve(8)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(b, v)
	return nil
}

func (w *Writer) WriteI64(v int64) error {
	return w.WriteU64(uint64(v))
}

// WriteBytes writes raw bytes with no length prefix.
func (w *Writer) WriteBytes(v []byte) error {
	b, err := w.reserve(uint64(len(v)))
	if err != nil {
		return err
	}
	copy(b, v)
	return nil
}

// WriteString writes a u32 length prefix followed by the bytes of v.
func (w *Writer) WriteString(v string) error {
	if uint64(len(v)) > uint64(^uint32(0)) {
		return fmt.Errorf("%w: string length %d", ErrShortBuffer, len(v))
	}
	if uint64(len(v))+4 > w.Remaining() {
		return fmt.Errorf("%w: need %d at %d, have %d", ErrShortBuffer, len(v)+4, w.pos, w.Remaining())
	}
	if err := w.WriteU32(uint32(len(v))); err != nil {
		return err
	}
	return w.WriteBytes([]byte(v))
}

// WriteOption writes the option tag. The caller writes the value when present.
func (w *Writer) WriteOption(present bool) error {
	return w.WriteBool(present)
}
