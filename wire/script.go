// Copyright (c) 2024 The bitwire authors
// Distributed under the MIT software license, see the accompanying
// file LICENSE or https://www.opensource.org/licenses/mit-license.php .

package wire

import "github.com/btcview/bitwire/wire/internal/cursor"

// Script is a compact-size-length-prefixed byte string: a scriptSig, a
// scriptPubKey, or (via Witnesses) a single witness stack element. It holds
// no copy of its bytes; Bytes and Payload both return views into the buffer
// the caller originally supplied.
type Script struct {
	raw  []byte // prefix + payload, as it appears on the wire
	from int    // offset of the payload within raw
}

// ParseScript decodes a length-prefixed byte string from the front of b.
func ParseScript(b []byte) (Script, []byte, error) {
	length, consumed, rest, err := ReadLen(b)
	if err != nil {
		return Script{}, b, err
	}
	if length > uint64(len(rest)) {
		return Script{}, b, errInsufficientBytes("script.payload")
	}
	c := cursor.New(rest)
	if ok := c.Skip(int(length)); !ok {
		return Script{}, b, errInsufficientBytes("script.payload")
	}
	total := consumed + int(length)
	return Script{raw: b[:total], from: consumed}, b[total:], nil
}

// Bytes returns the script including its compact-size length prefix.
func (s Script) Bytes() []byte { return s.raw }

// Payload returns just the script content, without the length prefix.
func (s Script) Payload() []byte { return s.raw[s.from:] }

// Len reports the payload length in bytes.
func (s Script) Len() int { return len(s.raw) - s.from }
