// Package bitcodec packs small values really tight, bit by bit, so that an
// entire contraption fits in a string short enough to live in a URL hash.
//
// Unsigned values use a unary-prefixed variable-length code, booleans and
// option presence flags are one bit each, and the resulting bit string maps
// onto a URL-safe base64 alphabet in 6-bit chunks.
package bitcodec

import (
	"errors"
	"fmt"
	"math"
	"math/bits"

	"github.com/bits-and-blooms/bitset"
)

var (
	ErrEOF      = errors.New("unexpected end of input")
	ErrTrailing = errors.New("not all bits were consumed")
	ErrOverflow = errors.New("number is too big")
)

// Alphabet used for the string form. All characters are safe in the
// fragment portion of a URL per RFC 3986.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

var alphabetInv = func() [128]int8 {
	var inv [128]int8
	for i := range inv {
		inv[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		inv[alphabet[i]] = int8(i)
	}
	return inv
}()

// Writer accumulates bit-packed values.
type Writer struct {
	bits *bitset.BitSet
	n    uint
}

func NewWriter() *Writer {
	return &Writer{bits: bitset.New(64)}
}

// Number of bits written so far.
func (w *Writer) Len() int {
	return int(w.n)
}

func (w *Writer) push(b bool) {
	w.bits.SetTo(w.n, b)
	w.n++
}

// WriteBool appends a single bit.
func (w *Writer) WriteBool(v bool) {
	w.push(v)
}

// WriteUint appends v as a run of n ones, a zero, then the n low bits of
// v - (2^n - 1) in LSB-first order. Small values stay small: 0 is a single
// bit, 1 and 2 are three bits.
func (w *Writer) WriteUint(v uint64) {
	if v == 0 {
		w.push(false)
		return
	}

	ones := uint(bits.Len64(v)) - 1
	if v == math.MaxUint64 {
		ones = 64
	} else if v == uint64(1)<<(ones+1)-1 {
		ones++
	}

	var rem uint64
	if ones < 64 {
		rem = v - (uint64(1)<<ones - 1)
	}

	for i := uint(0); i < ones; i++ {
		w.push(true)
	}
	w.push(false)
	for i := uint(0); i < ones; i++ {
		w.push(rem>>i&1 != 0)
	}
}

// WriteInt appends a sign bit, then the magnitude. Negative values are
// encoded as -v - 1 so that -1 is as cheap as 0.
func (w *Writer) WriteInt(v int64) {
	w.push(v < 0)
	if v < 0 {
		v = ^v
	}
	w.WriteUint(uint64(v))
}

// WriteOption appends a presence bit. The caller writes the value itself
// when present.
func (w *Writer) WriteOption(present bool) {
	w.push(present)
}

// WriteLen appends a sequence length.
func (w *Writer) WriteLen(n int) {
	w.WriteUint(uint64(n))
}

// String renders the accumulated bits in 6-bit LSB-first chunks over the
// URL-safe alphabet, with the count of padding bits appended as a final
// digit.
func (w *Writer) String() string {
	padding := (6 - w.n%6) % 6
	out := make([]byte, 0, (w.n+5)/6+1)
	for i := uint(0); i < w.n; i += 6 {
		var chunk int
		for j := uint(0); j < 6 && i+j < w.n; j++ {
			if w.bits.Test(i + j) {
				chunk |= 1 << j
			}
		}
		out = append(out, alphabet[chunk])
	}
	return string(out) + fmt.Sprintf("%d", padding)
}

// Reader consumes bit-packed values produced by Writer.
type Reader struct {
	bits *bitset.BitSet
	n    uint
	pos  uint
}

// NewReader decodes the string form back into bits. The final character
// must be the padding digit.
func NewReader(s string) (*Reader, error) {
	if len(s) == 0 {
		return nil, fmt.Errorf("decode share string: %w", ErrEOF)
	}
	pad := s[len(s)-1]
	if pad < '0' || pad > '5' {
		return nil, fmt.Errorf("decode share string: bad padding digit %q", pad)
	}
	padding := uint(pad - '0')
	s = s[:len(s)-1]

	b := bitset.New(uint(len(s)) * 6)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 128 || alphabetInv[c] < 0 {
			return nil, fmt.Errorf("decode share string: bad character %q", c)
		}
		v := uint(alphabetInv[c])
		for j := uint(0); j < 6; j++ {
			b.SetTo(uint(i)*6+j, v>>j&1 != 0)
		}
	}

	n := uint(len(s)) * 6
	if padding > n {
		return nil, fmt.Errorf("decode share string: %w", ErrEOF)
	}
	return &Reader{bits: b, n: n - padding}, nil
}

// Remaining reports how many bits are left unread.
func (r *Reader) Remaining() int {
	return int(r.n - r.pos)
}

// Done returns ErrTrailing if unread bits remain.
func (r *Reader) Done() error {
	if r.pos != r.n {
		return ErrTrailing
	}
	return nil
}

func (r *Reader) pop() (bool, error) {
	if r.pos >= r.n {
		return false, ErrEOF
	}
	b := r.bits.Test(r.pos)
	r.pos++
	return b, nil
}

func (r *Reader) ReadBool() (bool, error) {
	return r.pop()
}

func (r *Reader) ReadUint() (uint64, error) {
	ones := uint(0)
	for {
		b, err := r.pop()
		if err != nil {
			return 0, err
		}
		if !b {
			break
		}
		ones++
		if ones > 64 {
			return 0, ErrOverflow
		}
	}

	var rem uint64
	for i := uint(0); i < ones; i++ {
		b, err := r.pop()
		if err != nil {
			return 0, err
		}
		if b {
			if i >= 64 {
				return 0, ErrOverflow
			}
			rem |= 1 << i
		}
	}

	if ones == 64 {
		if rem != 0 {
			return 0, ErrOverflow
		}
		return math.MaxUint64, nil
	}
	return rem + (uint64(1)<<ones - 1), nil
}

func (r *Reader) ReadInt() (int64, error) {
	neg, err := r.pop()
	if err != nil {
		return 0, err
	}
	mag, err := r.ReadUint()
	if err != nil {
		return 0, err
	}
	if neg {
		return ^int64(mag), nil
	}
	return int64(mag), nil
}

func (r *Reader) ReadOption() (bool, error) {
	return r.pop()
}

// ReadLen reads a sequence length. Every element of a sequence costs at
// least one bit, so a length beyond the unread bit count cannot decode;
// rejecting it here keeps a hostile length prefix from driving huge
// allocations in callers.
func (r *Reader) ReadLen() (int, error) {
	v, err := r.ReadUint()
	if err != nil {
		return 0, err
	}
	if v > uint64(r.Remaining()) {
		return 0, fmt.Errorf("length %d exceeds %d remaining bits: %w", v, r.Remaining(), ErrEOF)
	}
	return int(v), nil
}
