// Package sha256 implements the SHA-256 hash algorithm as defined in FIPS 180-4.
//
// A Digest accepts message bytes in chunks of any size and produces the
// 32-byte digest on Finalize, after which it is ready for a new message:
//
//	d := sha256.New()
//	d.Update(part1).Update(part2)
//	hexDigest := d.Finalize()
//
// Digest also satisfies hash.Hash, so it can be used anywhere the standard
// library expects one. Separate Digest values share no mutable state and may
// be used from separate goroutines; a single Digest is not safe for
// concurrent use.
package sha256

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
)

var (
	_ hash.Hash       = (*Digest)(nil)
	_ io.StringWriter = (*Digest)(nil)
)

// Digest is an incremental SHA-256 computation. The zero value is ready
// for use and behaves like the result of New.
type Digest struct {
	h     State
	buf   Block
	nbuf  int    // pending bytes in buf, always < BlockSize between calls
	bits  uint64 // message bits already compressed
	ready bool   // h holds a valid state; false only for the zero value
}

// New returns a Digest ready to accept the first message.
func New() *Digest {
	d := new(Digest)
	d.Reset()
	return d
}

// Reset discards any buffered input and restores the initial hash state.
func (d *Digest) Reset() {
	d.h = InitialState()
	d.buf = Block{}
	d.nbuf = 0
	d.bits = 0
	d.ready = true
}

func (d *Digest) ensureReady() {
	if !d.ready {
		d.Reset()
	}
}

// Size returns the digest length in bytes.
func (d *Digest) Size() int { return Size }

// BlockSize returns the block length in bytes.
func (d *Digest) BlockSize() int { return BlockSize }

// Update adds p to the message. Every completed 64-byte block is compressed
// immediately; the remainder stays buffered until more input or Finalize.
// Update returns d so calls can be chained.
func (d *Digest) Update(p []byte) *Digest {
	d.ensureReady()
	if d.nbuf > 0 {
		n := copy(d.buf[d.nbuf:], p)
		d.nbuf += n
		p = p[n:]
		if d.nbuf < BlockSize {
			return d
		}
		d.compress(&d.buf)
		d.nbuf = 0
	}
	for len(p) >= BlockSize {
		d.compress((*Block)(p[:BlockSize]))
		p = p[BlockSize:]
	}
	d.nbuf = copy(d.buf[:], p)
	return d
}

// UpdateString adds the bytes of s to the message.
func (d *Digest) UpdateString(s string) *Digest {
	return d.Update([]byte(s))
}

// Write implements io.Writer. It never returns an error.
func (d *Digest) Write(p []byte) (int, error) {
	d.Update(p)
	return len(p), nil
}

// WriteString implements io.StringWriter. It never returns an error.
func (d *Digest) WriteString(s string) (int, error) {
	d.UpdateString(s)
	return len(s), nil
}

// Finalize pads the message, returns its digest as 64 lowercase hex
// characters and resets d.
func (d *Digest) Finalize() string {
	sum := d.FinalizeBytes()
	return hex.EncodeToString(sum[:])
}

// FinalizeBytes pads the message, returns its raw digest and resets d.
func (d *Digest) FinalizeBytes() [Size]byte {
	sum := d.checkSum()
	d.Reset()
	return sum
}

// Sum appends the digest of the message so far to b. Unlike Finalize it
// leaves d unchanged, as hash.Hash requires.
func (d *Digest) Sum(b []byte) []byte {
	d0 := *d
	sum := d0.checkSum()
	return append(b, sum[:]...)
}

func (d *Digest) compress(b *Block) {
	d.h = Compress(d.h, b)
	d.bits += BlockSize * 8
}

// checkSum applies the FIPS 180-4 Section 5.1.1 padding and renders the
// state big-endian. It leaves d in a padded state; callers reset or discard it.
func (d *Digest) checkSum() [Size]byte {
	d.ensureReady()
	length := d.bits + uint64(d.nbuf)*8

	d.buf[d.nbuf] = 0x80
	d.nbuf++

	// No room for the 8-byte length: finish this block and pad a second one.
	if d.nbuf > BlockSize-8 {
		clear(d.buf[d.nbuf:])
		d.h = Compress(d.h, &d.buf)
		d.nbuf = 0
	}

	clear(d.buf[d.nbuf : BlockSize-8])
	binary.BigEndian.PutUint64(d.buf[BlockSize-8:], length)
	d.h = Compress(d.h, &d.buf)

	var out [Size]byte
	for i, w := range d.h {
		binary.BigEndian.PutUint32(out[i*4:], w)
	}
	return out
}

// Sum256 returns the SHA-256 digest of data.
func Sum256(data []byte) [Size]byte {
	var d Digest
	d.Update(data)
	return d.checkSum()
}

// SumHex returns the SHA-256 digest of data as 64 lowercase hex characters.
func SumHex(data []byte) string {
	sum := Sum256(data)
	return hex.EncodeToString(sum[:])
}

const (
	stateMagic    = "s256"
	marshaledSize = len(stateMagic) + 8*4 + 8 + 1 + BlockSize
)

// MarshalBinary encodes the in-progress state of d so the computation can be
// resumed later with UnmarshalBinary.
func (d *Digest) MarshalBinary() ([]byte, error) {
	return d.AppendBinary(make([]byte, 0, marshaledSize))
}

// AppendBinary appends the encoded state of d to b.
func (d *Digest) AppendBinary(b []byte) ([]byte, error) {
	d.ensureReady()
	b = append(b, stateMagic...)
	for _, w := range d.h {
		b = binary.BigEndian.AppendUint32(b, w)
	}
	b = binary.BigEndian.AppendUint64(b, d.bits)
	b = append(b, byte(d.nbuf))
	b = append(b, d.buf[:d.nbuf]...)
	b = append(b, make([]byte, BlockSize-d.nbuf)...)
	return b, nil
}

// UnmarshalBinary restores a state produced by MarshalBinary.
// On error d is left unchanged.
func (d *Digest) UnmarshalBinary(b []byte) error {
	if len(b) < len(stateMagic) || string(b[:len(stateMagic)]) != stateMagic {
		return ErrInvalidStateFormat
	}
	if len(b) != marshaledSize {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidStateSize, len(b), marshaledSize)
	}
	b = b[len(stateMagic):]

	var h State
	for i := range h {
		h[i] = binary.BigEndian.Uint32(b)
		b = b[4:]
	}
	bits := binary.BigEndian.Uint64(b)
	b = b[8:]
	nbuf := int(b[0])
	b = b[1:]

	if nbuf >= BlockSize {
		return fmt.Errorf("%w: %d pending bytes", ErrInvalidStateValue, nbuf)
	}
	if bits%(BlockSize*8) != 0 {
		return fmt.Errorf("%w: bit count %d is not a whole number of blocks", ErrInvalidStateValue, bits)
	}

	d.h = h
	d.bits = bits
	d.nbuf = nbuf
	d.ready = true
	copy(d.buf[:], b)
	return nil
}
