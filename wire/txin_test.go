// Copyright (c) 2024 The bitwire authors
// Distributed under the MIT software license, see the accompanying
// file LICENSE or https://www.opensource.org/licenses/mit-license.php .

package wire

import (
	"bytes"
	"testing"
)

func TestParseTxIn(t *testing.T) {
	in := concat(
		outPointBytes(0x11, 3),
		scriptWithPayload([]byte{0x51, 0x52}),
		leUint32(0xfffffffe),
		[]byte{0xaa}, // trailing byte belonging to whatever follows
	)
	txin, rest, err := ParseTxIn(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if txin.OutPoint().Index() != 3 {
		t.Fatalf("Index() = %d, want 3", txin.OutPoint().Index())
	}
	if !bytes.Equal(txin.ScriptSig().Payload(), []byte{0x51, 0x52}) {
		t.Fatalf("ScriptSig().Payload() = %x", txin.ScriptSig().Payload())
	}
	if txin.Sequence() != 0xfffffffe {
		t.Fatalf("Sequence() = %x", txin.Sequence())
	}
	if !bytes.Equal(rest, []byte{0xaa}) {
		t.Fatalf("rest = %x, want single trailing byte", rest)
	}
	if len(txin.Bytes()) != len(in)-1 {
		t.Fatalf("Bytes() len = %d, want %d", len(txin.Bytes()), len(in)-1)
	}
}

func TestParseTxInsCountAndIter(t *testing.T) {
	in := concat(
		compactSize(2),
		simpleTxIn(1),
		simpleTxIn(2),
	)
	ins, rest, err := parseTxIns(in, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rest) != 0 {
		t.Fatalf("rest = %x, want empty", rest)
	}
	if ins.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", ins.Count())
	}

	for pass := 0; pass < 2; pass++ {
		it := ins.Iter()
		var seqs []uint32
		for {
			v, ok := it.Next()
			if !ok {
				break
			}
			seqs = append(seqs, v.Sequence())
		}
		if len(seqs) != 2 || seqs[0] != 1 || seqs[1] != 2 {
			t.Fatalf("pass %d: got sequences %v, want [1 2]", pass, seqs)
		}
	}
}

func TestParseTxInsVisitorBreak(t *testing.T) {
	in := concat(compactSize(2), simpleTxIn(1), simpleTxIn(2))
	v := &breakOnTxIn{breakAt: 0}
	_, _, err := parseTxIns(in, v)
	assertKind(t, err, VisitBreak)
}

type breakOnTxIn struct {
	NoopVisitor
	breakAt uint64
}

func (b *breakOnTxIn) VisitTxIn(index uint64, _ *TxIn) bool {
	return index == b.breakAt
}
