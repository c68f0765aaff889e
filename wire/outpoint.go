// Copyright (c) 2024 The bitwire authors
// Distributed under the MIT software license, see the accompanying
// file LICENSE or https://www.opensource.org/licenses/mit-license.php .

package wire

import (
	"encoding/binary"

	"github.com/btcview/bitwire/wire/internal/cursor"
)

// outPointLen is the fixed wire size of an OutPoint: a 32-byte txid
// preimage hash followed by a 4-byte little-endian output index.
const outPointLen = 36

// OutPoint identifies the previous output an input spends. Hash returns the
// hash exactly as it appears on the wire, already reversed relative to the
// big-endian, human-displayed txid convention used by block explorers.
type OutPoint struct {
	raw []byte
}

// ParseOutPoint decodes a fixed-size OutPoint from the front of b.
func ParseOutPoint(b []byte) (OutPoint, []byte, error) {
	c := cursor.New(b)
	buf, ok := c.ReadBytes(outPointLen)
	if !ok {
		return OutPoint{}, b, errInsufficientBytes("outpoint")
	}
	return OutPoint{raw: buf}, c.Remaining(), nil
}

// Bytes returns the full 36-byte wire encoding.
func (o OutPoint) Bytes() []byte { return o.raw }

// Hash returns the referenced transaction's hash, in wire byte order.
func (o OutPoint) Hash() []byte { return o.raw[:32] }

// Index returns the referenced output's position within that transaction.
func (o OutPoint) Index() uint32 { return binary.LittleEndian.Uint32(o.raw[32:36]) }

// IsNull reports whether this is the null OutPoint used by coinbase inputs:
// an all-zero hash and an index of 0xffffffff.
func (o OutPoint) IsNull() bool {
	if o.Index() != 0xffffffff {
		return false
	}
	for _, b := range o.Hash() {
		if b != 0 {
			return false
		}
	}
	return true
}
