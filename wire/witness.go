// Copyright (c) 2024 The bitwire authors
// Distributed under the MIT software license, see the accompanying
// file LICENSE or https://www.opensource.org/licenses/mit-license.php .

package wire

// Witness is one input's witness stack: a compact-size count of elements
// followed by that many length-prefixed byte strings. A non-segwit
// transaction, or a segwit transaction whose input spends a legacy output,
// has an empty Witness (Count() == 0) for that input.
type Witness struct {
	raw       []byte
	elemStart int
	count     uint64
}

func parseWitness(b []byte, vin uint64, v Visitor) (Witness, []byte, error) {
	if v != nil && v.VisitWitness(vin) {
		return Witness{}, b, errVisitBreak()
	}
	count, consumed, rest, err := ReadLen(b)
	if err != nil {
		return Witness{}, b, err
	}
	if v != nil {
		v.VisitWitnessTotalElement(count)
	}
	cur := rest
	for i := uint64(0); i < count; i++ {
		elem, next, err := ParseScript(cur)
		if err != nil {
			return Witness{}, b, err
		}
		if v != nil && v.VisitWitnessElement(i, elem.Payload()) {
			return Witness{}, b, errVisitBreak()
		}
		cur = next
	}
	if v != nil {
		v.VisitWitnessEnd()
	}
	total := len(b) - len(cur)
	return Witness{raw: b[:total], elemStart: consumed, count: count}, cur, nil
}

// Bytes returns the witness stack's full wire encoding.
func (w Witness) Bytes() []byte { return w.raw }

// Count reports how many stack elements the witness holds.
func (w Witness) Count() uint64 { return w.count }

// IsEmpty reports whether this input contributed no witness data.
func (w Witness) IsEmpty() bool { return w.count == 0 }

// Iter returns a restartable iterator over the witness's stack elements,
// each yielded as a Script (its length-prefixed encoding plus payload).
func (w Witness) Iter() *WitnessIter {
	return &WitnessIter{data: w.raw[w.elemStart:], total: w.count}
}

// WitnessIter walks a Witness stack element by element without allocating.
type WitnessIter struct {
	data  []byte
	idx   uint64
	total uint64
}

// Next advances the iterator and reports whether a value was produced.
func (it *WitnessIter) Next() (Script, bool) {
	if it.idx >= it.total {
		return Script{}, false
	}
	elem, rest, err := ParseScript(it.data)
	if err != nil {
		return Script{}, false
	}
	it.data = rest
	it.idx++
	return elem, true
}

// Witnesses holds one witness stack per input of a segwit transaction, laid
// out back to back in input order. Like TxIns and TxOuts it stores only a
// view over the validated bytes and an input count; individual Witness
// values are produced on demand by Iter, not materialized into a slice.
// For a legacy transaction it is the zero value: Count() == 0.
type Witnesses struct {
	raw   []byte
	count uint64
}

func parseWitnesses(b []byte, inputCount uint64, v Visitor) (Witnesses, []byte, error) {
	cur := b
	for i := uint64(0); i < inputCount; i++ {
		_, next, err := parseWitness(cur, i, v)
		if err != nil {
			return Witnesses{}, b, err
		}
		cur = next
	}
	total := len(b) - len(cur)
	return Witnesses{raw: b[:total], count: inputCount}, cur, nil
}

// Bytes returns every input's witness stack, concatenated in input order.
func (w Witnesses) Bytes() []byte { return w.raw }

// Count reports how many inputs have a witness entry, which for a parsed
// segwit transaction always equals its input count.
func (w Witnesses) Count() uint64 { return w.count }

// Iter returns a restartable iterator that yields one Witness per input, in
// input order, by re-reading the already-validated backing bytes.
func (w Witnesses) Iter() *WitnessesIter {
	return &WitnessesIter{data: w.raw, total: w.count}
}

// AllEmpty reports whether every input's witness stack has zero elements,
// the condition that makes a present segwit flag illegal.
func (w Witnesses) AllEmpty() bool {
	it := w.Iter()
	for {
		stack, ok := it.Next()
		if !ok {
			return true
		}
		if !stack.IsEmpty() {
			return false
		}
	}
}

// WitnessesIter walks a Witnesses vector one input's stack at a time
// without allocating.
type WitnessesIter struct {
	data  []byte
	idx   uint64
	total uint64
}

// Next advances the iterator and reports whether a value was produced.
func (it *WitnessesIter) Next() (Witness, bool) {
	if it.idx >= it.total {
		return Witness{}, false
	}
	w, rest, err := parseWitness(it.data, it.idx, nil)
	if err != nil {
		return Witness{}, false
	}
	it.data = rest
	it.idx++
	return w, true
}
