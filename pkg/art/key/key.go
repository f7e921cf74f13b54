// Package key builds order-preserving byte keys for the ART tree.
//
// Keys are opaque byte sequences; the tree orders them bytewise. The
// constructors in this package guarantee two properties the tree relies on:
//
//   - Lexicographic byte order equals the natural order of the source value.
//     Unsigned integers encode big-endian; signed integers are offset by
//     1<<63 before encoding so that negative values sort before zero and
//     positive values.
//   - Keys of one family are prefix-free. Variable-length keys (bytes and
//     strings) are suffixed with a Terminator byte that must not occur in
//     the payload; integer keys are a fixed eight bytes.
//
// Mixing terminated and fixed-width keys in one tree forfeits the
// prefix-free guarantee and is the caller's responsibility to avoid.
package key

import (
	"bytes"
	"encoding/binary"

	"golang.org/x/text/unicode/norm"
)

// Terminator ends every variable-length key. It is outside the payload
// alphabet: FromString and FromBytes reject nothing, but payloads containing
// it break the prefix-free property (see the package comment).
const Terminator byte = 0x00

// signBit is added to signed values before encoding so that the encoded
// bytes order negatives before positives.
const signBit = uint64(1) << 63

// Key is an encoded key as stored in the tree.
type Key []byte

// FromBytes returns a terminated copy of b.
func FromBytes(b []byte) Key {
	k := make(Key, len(b)+1)
	copy(k, b)
	k[len(b)] = Terminator
	return k
}

// FromString returns a terminated key holding the UTF-8 bytes of s after
// normalizing it to Unicode NFC, so that visually identical strings map to
// the same key.
func FromString(s string) Key {
	return FromBytes([]byte(norm.NFC.String(s)))
}

// FromUint64 encodes u as eight big-endian bytes.
func FromUint64(u uint64) Key {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], u)
	return b[:]
}

// FromUint32 encodes u into eight bytes, widening first so that keys built
// from different unsigned widths stay comparable.
func FromUint32(u uint32) Key { return FromUint64(uint64(u)) }

// FromUint16 encodes u into eight bytes.
func FromUint16(u uint16) Key { return FromUint64(uint64(u)) }

// FromUint8 encodes u into eight bytes.
func FromUint8(u uint8) Key { return FromUint64(uint64(u)) }

// FromUint encodes u into eight bytes.
func FromUint(u uint) Key { return FromUint64(uint64(u)) }

// FromInt64 encodes i as eight big-endian bytes after flipping the sign bit,
// so that lexicographic key order matches numeric order.
func FromInt64(i int64) Key { return FromUint64(uint64(i) + signBit) }

// FromInt32 encodes i into eight bytes, widening first.
func FromInt32(i int32) Key { return FromInt64(int64(i)) }

// FromInt16 encodes i into eight bytes.
func FromInt16(i int16) Key { return FromInt64(int64(i)) }

// FromInt8 encodes i into eight bytes.
func FromInt8(i int8) Key { return FromInt64(int64(i)) }

// FromInt encodes i into eight bytes.
func FromInt(i int) Key { return FromInt64(int64(i)) }

// ByteAt returns the byte at index i.
func (k Key) ByteAt(i int) byte { return k[i] }

// Len returns the encoded length, terminator included.
func (k Key) Len() int { return len(k) }

// Equal reports whether k and o hold the same encoded bytes.
func (k Key) Equal(o Key) bool { return bytes.Equal(k, o) }

// AsSlice exposes the encoded bytes.
func (k Key) AsSlice() []byte { return k }

// Payload returns the key bytes without the trailing terminator, or the key
// unchanged if its last byte is not the Terminator. A fixed-width integer
// key whose low byte is zero looks terminated and loses that byte here.
func (k Key) Payload() []byte {
	if n := len(k); n > 0 && k[n-1] == Terminator {
		return k[:n-1]
	}
	return k
}

// String renders the payload for diagnostics.
func (k Key) String() string { return string(k.Payload()) }
