// Copyright (c) 2024 The bitwire authors
// Distributed under the MIT software license, see the accompanying
// file LICENSE or https://www.opensource.org/licenses/mit-license.php .

package wire

import "github.com/btcview/bitwire/wire/internal/cursor"

// TxIn is a single transaction input: the OutPoint it spends, its
// scriptSig, and its sequence number. Witness data, when present, lives
// separately on the owning Transaction, not on the TxIn itself, because the
// wire format places every input's witness stack after all inputs and
// outputs rather than alongside its input.
type TxIn struct {
	raw      []byte
	outPoint OutPoint
	script   Script
	sequence uint32
}

// ParseTxIn decodes a single input from the front of b.
func ParseTxIn(b []byte) (TxIn, []byte, error) {
	outPoint, rest, err := ParseOutPoint(b)
	if err != nil {
		return TxIn{}, b, err
	}
	script, rest, err := ParseScript(rest)
	if err != nil {
		return TxIn{}, b, err
	}
	c := cursor.New(rest)
	sequence, ok := c.ReadUint32()
	if !ok {
		return TxIn{}, b, errInsufficientBytes("txin.sequence")
	}
	rest = c.Remaining()
	total := len(b) - len(rest)
	return TxIn{
		raw:      b[:total],
		outPoint: outPoint,
		script:   script,
		sequence: sequence,
	}, rest, nil
}

// Bytes returns the input's full wire encoding.
func (t TxIn) Bytes() []byte { return t.raw }

// OutPoint returns the previous output this input spends.
func (t TxIn) OutPoint() OutPoint { return t.outPoint }

// ScriptSig returns the input's unlocking script.
func (t TxIn) ScriptSig() Script { return t.script }

// Sequence returns the input's sequence number.
func (t TxIn) Sequence() uint32 { return t.sequence }

// TxIns is the parsed input vector of a transaction. It stores only the
// compact-size count and a view over the already-validated input bytes;
// individual TxIn values are produced on demand by Iter, never
// materialized into a slice.
type TxIns struct {
	raw       []byte // count prefix + every input, back to back
	elemStart int    // offset of the first input within raw
	count     uint64
}

func parseTxIns(b []byte, v Visitor) (TxIns, []byte, error) {
	count, consumed, rest, err := ReadLen(b)
	if err != nil {
		return TxIns{}, b, err
	}
	if v != nil {
		v.VisitTxInsBegin(count)
	}
	cur := rest
	for i := uint64(0); i < count; i++ {
		in, next, err := ParseTxIn(cur)
		if err != nil {
			return TxIns{}, b, err
		}
		if v != nil && v.VisitTxIn(i, &in) {
			return TxIns{}, b, errVisitBreak()
		}
		cur = next
	}
	total := len(b) - len(cur)
	return TxIns{raw: b[:total], elemStart: consumed, count: count}, cur, nil
}

// Bytes returns the count prefix followed by every input's wire encoding.
func (t TxIns) Bytes() []byte { return t.raw }

// Count reports how many inputs the vector holds.
func (t TxIns) Count() uint64 { return t.count }

// Iter returns a restartable iterator over the vector's inputs. Because
// every input was already validated once during parsing, re-reading them
// through Iter never fails: Next either yields the next TxIn or reports
// exhaustion.
func (t TxIns) Iter() *TxInIter {
	return &TxInIter{data: t.raw[t.elemStart:], total: t.count}
}

// TxInIter walks a TxIns vector element by element without allocating.
type TxInIter struct {
	data  []byte
	idx   uint64
	total uint64
}

// Next advances the iterator and reports whether a value was produced.
func (it *TxInIter) Next() (TxIn, bool) {
	if it.idx >= it.total {
		return TxIn{}, false
	}
	in, rest, err := ParseTxIn(it.data)
	if err != nil {
		// Unreachable: the vector's bytes were already validated by
		// parseTxIns before this iterator could exist.
		return TxIn{}, false
	}
	it.data = rest
	it.idx++
	return in, true
}
