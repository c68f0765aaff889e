// Copyright (c) 2024 The bitwire authors
// Distributed under the MIT software license, see the accompanying
// file LICENSE or https://www.opensource.org/licenses/mit-license.php .

package wire

import "testing"

func TestParseTxOut(t *testing.T) {
	in := concat(simpleTxOut(5000000000), []byte{0x99})
	out, rest, err := ParseTxOut(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Value() != 5000000000 {
		t.Fatalf("Value() = %d, want 5000000000", out.Value())
	}
	if out.ScriptPubKey().Len() != 0 {
		t.Fatalf("ScriptPubKey().Len() = %d, want 0", out.ScriptPubKey().Len())
	}
	if len(rest) != 1 || rest[0] != 0x99 {
		t.Fatalf("rest = %x", rest)
	}
}

func TestParseTxOutsIterRestartable(t *testing.T) {
	in := concat(compactSize(3), simpleTxOut(1), simpleTxOut(2), simpleTxOut(3))
	outs, _, err := parseTxOuts(in, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outs.Count() != 3 {
		t.Fatalf("Count() = %d, want 3", outs.Count())
	}
	for pass := 0; pass < 2; pass++ {
		it := outs.Iter()
		var sum uint64
		for {
			v, ok := it.Next()
			if !ok {
				break
			}
			sum += v.Value()
		}
		if sum != 6 {
			t.Fatalf("pass %d: sum = %d, want 6", pass, sum)
		}
	}
}

func TestParseTxOutInsufficientBytes(t *testing.T) {
	_, _, err := ParseTxOut([]byte{0x01, 0x02, 0x03})
	assertKind(t, err, InsufficientBytes)
}

func TestParseTxOutMaxValue(t *testing.T) {
	in := simpleTxOut(^uint64(0))
	out, _, err := ParseTxOut(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Value() != ^uint64(0) {
		t.Fatalf("Value() = %d, want %d", out.Value(), ^uint64(0))
	}
}
