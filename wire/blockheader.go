// Copyright (c) 2024 The bitwire authors
// Distributed under the MIT software license, see the accompanying
// file LICENSE or https://www.opensource.org/licenses/mit-license.php .

package wire

import "github.com/btcview/bitwire/wire/internal/cursor"

// blockHeaderLen is the fixed size of a Bitcoin block header: version (4),
// previous block hash (32), merkle root (32), time (4), bits (4), nonce (4).
const blockHeaderLen = 80

// BlockHeader is a block's fixed-size 80-byte header. Every accessor is a
// view or a scalar decoded from the single backing slice; nothing is
// copied beyond what the accessor itself returns.
type BlockHeader struct {
	raw []byte
}

// ParseBlockHeader decodes a fixed-size block header from the front of b.
func ParseBlockHeader(b []byte) (BlockHeader, []byte, error) {
	c := cursor.New(b)
	buf, ok := c.ReadBytes(blockHeaderLen)
	if !ok {
		return BlockHeader{}, b, errInsufficientBytes("block_header")
	}
	return BlockHeader{raw: buf}, c.Remaining(), nil
}

// Bytes returns the full 80-byte encoding.
func (h BlockHeader) Bytes() []byte { return h.raw }

// Version returns the header's version field.
func (h BlockHeader) Version() int32 {
	c := cursor.New(h.raw[0:4])
	v, _ := c.ReadInt32()
	return v
}

// PrevBlockHash returns the hash of the preceding block, in wire byte order.
func (h BlockHeader) PrevBlockHash() []byte { return h.raw[4:36] }

// MerkleRoot returns the root of this block's transaction merkle tree, in
// wire byte order.
func (h BlockHeader) MerkleRoot() []byte { return h.raw[36:68] }

// Time returns the block's claimed creation time as a Unix timestamp.
func (h BlockHeader) Time() uint32 {
	c := cursor.New(h.raw[68:72])
	v, _ := c.ReadUint32()
	return v
}

// Bits returns the block's compact-encoded difficulty target.
func (h BlockHeader) Bits() uint32 {
	c := cursor.New(h.raw[72:76])
	v, _ := c.ReadUint32()
	return v
}

// Nonce returns the header's nonce field.
func (h BlockHeader) Nonce() uint32 {
	c := cursor.New(h.raw[76:80])
	v, _ := c.ReadUint32()
	return v
}

// Preimage returns the bytes hashed (double SHA-256) to produce this
// header's block hash: the entire 80-byte header, contiguous.
func (h BlockHeader) Preimage() []byte { return h.raw }
