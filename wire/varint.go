// Copyright (c) 2024 The bitwire authors
// Distributed under the MIT software license, see the accompanying
// file LICENSE or https://www.opensource.org/licenses/mit-license.php .

package wire

import "github.com/btcview/bitwire/wire/internal/cursor"

// Len is a decoded Bitcoin compact-size integer together with the number of
// wire bytes its encoding occupied. Decoding rejects any encoding that is
// not the shortest possible one for N, matching consensus's "non-minimal
// CompactSize" ban.
type Len struct {
	N        uint64
	Consumed int
}

// ParseLen decodes a compact-size integer from the front of b and returns
// the still-unconsumed remainder.
func ParseLen(b []byte) (Len, []byte, error) {
	n, consumed, rest, err := ReadLen(b)
	if err != nil {
		return Len{}, b, err
	}
	return Len{N: n, Consumed: consumed}, rest, nil
}

// ReadLen is the value-returning twin of ParseLen, for call sites that only
// want the scalar count and don't need a Len struct to pass around.
func ReadLen(b []byte) (n uint64, consumed int, rest []byte, err error) {
	c := cursor.New(b)
	first, ok := c.ReadByte()
	if !ok {
		return 0, 0, b, errInsufficientBytes("compact_size.prefix")
	}

	switch {
	case first < 0xfd:
		n = uint64(first)
		consumed = 1
	case first == 0xfd:
		v, ok := c.ReadUint16()
		if !ok {
			return 0, 0, b, errInsufficientBytes("compact_size.u16")
		}
		if v < 0xfd {
			return 0, 0, b, errNonMinimalVarInt("compact_size.u16")
		}
		n = uint64(v)
		consumed = 3
	case first == 0xfe:
		v, ok := c.ReadUint32()
		if !ok {
			return 0, 0, b, errInsufficientBytes("compact_size.u32")
		}
		if v <= 0xffff {
			return 0, 0, b, errNonMinimalVarInt("compact_size.u32")
		}
		n = uint64(v)
		consumed = 5
	default: // 0xff
		v, ok := c.ReadUint64()
		if !ok {
			return 0, 0, b, errInsufficientBytes("compact_size.u64")
		}
		if v <= 0xffffffff {
			return 0, 0, b, errNonMinimalVarInt("compact_size.u64")
		}
		n = v
		consumed = 9
	}

	// A decoded value this large is never itself rejected here: whether it
	// is plausible depends on what it is about to size (a byte count, an
	// element count), and only the caller slicing or iterating against the
	// remaining buffer knows that. Script, which uses N as a byte length,
	// checks it against the bytes actually available before slicing. The
	// vector parsers (TxIns, TxOuts, Witness), which use N as an element
	// count, parse one element per count and fail with InsufficientBytes as
	// soon as the buffer runs out.
	return n, consumed, c.Remaining(), nil
}
