// Copyright (c) 2024 The bitwire authors
// Distributed under the MIT software license, see the accompanying
// file LICENSE or https://www.opensource.org/licenses/mit-license.php .

package wire

import "github.com/btcview/bitwire/wire/internal/cursor"

// TxOut is a single transaction output: an amount, in satoshis, and the
// scriptPubKey that locks it.
type TxOut struct {
	raw    []byte
	value  uint64
	script Script
}

// ParseTxOut decodes a single output from the front of b.
func ParseTxOut(b []byte) (TxOut, []byte, error) {
	c := cursor.New(b)
	v, ok := c.ReadUint64()
	if !ok {
		return TxOut{}, b, errInsufficientBytes("txout.value")
	}
	script, rest, err := ParseScript(c.Remaining())
	if err != nil {
		return TxOut{}, b, err
	}
	total := len(b) - len(rest)
	return TxOut{raw: b[:total], value: v, script: script}, rest, nil
}

// Bytes returns the output's full wire encoding.
func (t TxOut) Bytes() []byte { return t.raw }

// Value returns the output amount in satoshis.
func (t TxOut) Value() uint64 { return t.value }

// ScriptPubKey returns the output's locking script.
func (t TxOut) ScriptPubKey() Script { return t.script }

// TxOuts is the parsed output vector of a transaction, stored the same way
// TxIns is: a compact-size count plus a view over validated bytes, with
// elements produced on demand through Iter.
type TxOuts struct {
	raw       []byte
	elemStart int
	count     uint64
}

func parseTxOuts(b []byte, v Visitor) (TxOuts, []byte, error) {
	count, consumed, rest, err := ReadLen(b)
	if err != nil {
		return TxOuts{}, b, err
	}
	if v != nil {
		v.VisitTxOutsBegin(count)
	}
	cur := rest
	for i := uint64(0); i < count; i++ {
		out, next, err := ParseTxOut(cur)
		if err != nil {
			return TxOuts{}, b, err
		}
		if v != nil && v.VisitTxOut(i, &out) {
			return TxOuts{}, b, errVisitBreak()
		}
		cur = next
	}
	total := len(b) - len(cur)
	return TxOuts{raw: b[:total], elemStart: consumed, count: count}, cur, nil
}

// Bytes returns the count prefix followed by every output's wire encoding.
func (t TxOuts) Bytes() []byte { return t.raw }

// Count reports how many outputs the vector holds.
func (t TxOuts) Count() uint64 { return t.count }

// Iter returns a restartable iterator over the vector's outputs.
func (t TxOuts) Iter() *TxOutIter {
	return &TxOutIter{data: t.raw[t.elemStart:], total: t.count}
}

// TxOutIter walks a TxOuts vector element by element without allocating.
type TxOutIter struct {
	data  []byte
	idx   uint64
	total uint64
}

// Next advances the iterator and reports whether a value was produced.
func (it *TxOutIter) Next() (TxOut, bool) {
	if it.idx >= it.total {
		return TxOut{}, false
	}
	out, rest, err := ParseTxOut(it.data)
	if err != nil {
		return TxOut{}, false
	}
	it.data = rest
	it.idx++
	return out, true
}
