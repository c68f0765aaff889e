// Copyright (c) 2024 The bitwire authors
// Distributed under the MIT software license, see the accompanying
// file LICENSE or https://www.opensource.org/licenses/mit-license.php .

package wire

import "encoding/binary"

// The helpers in this file assemble small, hand-verifiable wire-format
// byte sequences for tests. They exist so test cases read as "version
// field, then input count, then one input" rather than as opaque hex
// blobs.

func leUint32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func leUint64(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}

func leInt32(v int32) []byte {
	return leUint32(uint32(v))
}

// compactSize encodes n using the shortest (minimal) compact-size form.
func compactSize(n uint64) []byte {
	switch {
	case n < 0xfd:
		return []byte{byte(n)}
	case n <= 0xffff:
		return append([]byte{0xfd}, leUint16(uint16(n))...)
	case n <= 0xffffffff:
		return append([]byte{0xfe}, leUint32(uint32(n))...)
	default:
		return append([]byte{0xff}, leUint64(n)...)
	}
}

func leUint16(v uint16) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, v)
	return b
}

// emptyScript is a zero-length scriptSig/scriptPubKey: a single 0x00
// compact-size prefix and no payload.
func emptyScript() []byte {
	return []byte{0x00}
}

// scriptWithPayload length-prefixes payload with a minimal compact size.
func scriptWithPayload(payload []byte) []byte {
	return append(compactSize(uint64(len(payload))), payload...)
}

// nullOutPoint is the all-zero hash, all-ones index OutPoint coinbase
// inputs use.
func nullOutPoint() []byte {
	out := make([]byte, 36)
	binary.LittleEndian.PutUint32(out[32:36], 0xffffffff)
	return out
}

// outPointBytes builds an OutPoint with a given hash byte and index.
func outPointBytes(hashByte byte, index uint32) []byte {
	out := make([]byte, 36)
	for i := 0; i < 32; i++ {
		out[i] = hashByte
	}
	binary.LittleEndian.PutUint32(out[32:36], index)
	return out
}

// simpleTxIn builds a TxIn with a null outpoint, empty script, and the
// given sequence number: the shape a coinbase input takes minus its
// scriptSig payload.
func simpleTxIn(sequence uint32) []byte {
	var b []byte
	b = append(b, nullOutPoint()...)
	b = append(b, emptyScript()...)
	b = append(b, leUint32(sequence)...)
	return b
}

// simpleTxOut builds a TxOut with the given value and an empty script.
func simpleTxOut(value uint64) []byte {
	var b []byte
	b = append(b, leUint64(value)...)
	b = append(b, emptyScript()...)
	return b
}

// concat joins byte slices for readability at call sites that build up a
// whole message from several of these helpers.
func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
