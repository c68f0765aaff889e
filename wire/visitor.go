// Copyright (c) 2024 The bitwire authors
// Distributed under the MIT software license, see the accompanying
// file LICENSE or https://www.opensource.org/licenses/mit-license.php .

package wire

// Visitor receives structural events as a Block or Transaction is decoded,
// in the exact order those structures appear on the wire. For the methods
// that return a bool, returning true asks the decoder to stop immediately
// and surface a VisitBreak error from the call that was in progress, and
// returning false means continue. VisitTxInsBegin, VisitTxOutsBegin,
// VisitWitnessTotalElement and VisitWitnessEnd return nothing and cannot
// stop decoding.
//
// Decoding calls these hooks as a side effect of a single forward pass: no
// element a Visitor sees is ever re-parsed or re-delivered, and no element
// is buffered solely so it can be visited. Embed NoopVisitor to implement
// only the callbacks a particular use case cares about.
type Visitor interface {
	VisitBlockHeader(h *BlockHeader) bool
	VisitBlockBegin(txCount uint64) bool
	VisitTransaction(index uint64, tx *Transaction) bool

	VisitTxInsBegin(count uint64)
	VisitTxIn(index uint64, in *TxIn) bool

	VisitTxOutsBegin(count uint64)
	VisitTxOut(index uint64, out *TxOut) bool

	VisitWitness(vin uint64) bool
	VisitWitnessTotalElement(count uint64)
	VisitWitnessElement(index uint64, payload []byte) bool
	VisitWitnessEnd()
}

// NoopVisitor implements Visitor with every hook a no-op that requests no
// break. Embed it in a concrete visitor to override only the callbacks that
// matter, the same partial-implementation idiom ast.Visitor and
// similar dispatch interfaces in the standard library use.
type NoopVisitor struct{}

func (NoopVisitor) VisitBlockHeader(*BlockHeader) bool       { return false }
func (NoopVisitor) VisitBlockBegin(uint64) bool              { return false }
func (NoopVisitor) VisitTransaction(uint64, *Transaction) bool { return false }
func (NoopVisitor) VisitTxInsBegin(uint64)                   {}
func (NoopVisitor) VisitTxIn(uint64, *TxIn) bool             { return false }
func (NoopVisitor) VisitTxOutsBegin(uint64)                  {}
func (NoopVisitor) VisitTxOut(uint64, *TxOut) bool           { return false }
func (NoopVisitor) VisitWitness(uint64) bool                 { return false }
func (NoopVisitor) VisitWitnessTotalElement(uint64)          {}
func (NoopVisitor) VisitWitnessElement(uint64, []byte) bool  { return false }
func (NoopVisitor) VisitWitnessEnd()                         {}

var _ Visitor = NoopVisitor{}
