package cursor

import (
	"encoding/binary"
	"fmt"
)

// Reader reads from buf starting at its current position. It never reads
// beyond len(buf).
type Reader struct {
	buf []byte
	pos uint64
}

func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

func (r *Reader) Pos() uint64 { return r.pos }

func (r *Reader) Remaining() uint64 { return uint64(len(r.buf)) - r.pos }

func (r *Reader) Seek(off uint64) error {
	if off > uint64(len(r.buf)) {
		return fmt.Errorf("%w: %d > %d", ErrSeekRange, off, len(r.buf))
	}
	r.pos = off
	return nil
}

func (r *Reader) take(n uint64) ([]byte, error) {
	if n > r.Remaining() {
		return nil, fmt.Errorf("%w: need %d at %d, have %d", ErrShortBuffer, n, r.pos, r.Remaining())
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *Reader) ReadU8() (uint8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *Reader) ReadBool() (bool, error) {
	v, err := r.ReadU8()
	if err != nil {
		return false, err
	}
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, fmt.Errorf("%w: got %d", ErrBadBool, v)
}

func (r *Reader) ReadU16() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (r *Reader) ReadU32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *Reader) ReadU64() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (r *Reader) ReadI64() (int64, error) {
	v, err := r.ReadU64()
	return int64(v), err
}

// ReadBytes copies n raw bytes into dst, which must have length n.
func (r *Reader) ReadBytes(dst []byte) error {
	b, err := r.take(uint64(len(dst)))
	if err != nil {
		return err
	}
	copy(dst, b)
	return nil
}

func (r *Reader) ReadString() (string, error) {
	n, err := r.ReadU32()
	if err != nil {
		return "", err
	}
	b, err := r.take(uint64(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadOption reads an option tag and reports whether a value follows.
func (r *Reader) ReadOption() (bool, error) {
	v, err := r.ReadU8()
	if err != nil {
		return false, err
	}
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, fmt.Errorf("%w: got %d", ErrBadOption, v)
}
