// Copyright (c) 2024 The bitwire authors
// Distributed under the MIT software license, see the accompanying
// file LICENSE or https://www.opensource.org/licenses/mit-license.php .

package wire

// Block is a fully decoded block: its 80-byte header, a compact-size
// transaction count, and that many transactions back to back. As with the
// vector types, transactions are not materialized into a slice; Iter
// re-reads the already-validated transaction bytes on demand.
type Block struct {
	raw     []byte
	header  BlockHeader
	txCount uint64
	txStart int // offset of the first transaction within raw
}

// ParseBlock decodes a full block from the front of b.
func ParseBlock(b []byte) (Block, []byte, error) {
	return parseBlock(b, nil)
}

// ParseBlockVisit decodes a full block from the front of b, driving v with
// structural events for the header, each transaction, and everything
// inside each transaction, in wire order.
func ParseBlockVisit(b []byte, v Visitor) (Block, []byte, error) {
	return parseBlock(b, v)
}

func parseBlock(b []byte, v Visitor) (Block, []byte, error) {
	header, rest, err := ParseBlockHeader(b)
	if err != nil {
		return Block{}, b, err
	}
	if v != nil && v.VisitBlockHeader(&header) {
		return Block{}, b, errVisitBreak()
	}

	txCount, _, rest, err := ReadLen(rest)
	if err != nil {
		return Block{}, b, err
	}
	if v != nil && v.VisitBlockBegin(txCount) {
		return Block{}, b, errVisitBreak()
	}

	txStart := len(b) - len(rest)
	cur := rest
	for i := uint64(0); i < txCount; i++ {
		_, next, err := parseTransaction(cur, i, v)
		if err != nil {
			return Block{}, b, err
		}
		cur = next
	}

	total := len(b) - len(cur)
	return Block{
		raw:     b[:total],
		header:  header,
		txCount: txCount,
		txStart: txStart,
	}, cur, nil
}

// Bytes returns the block's full wire encoding.
func (blk Block) Bytes() []byte { return blk.raw }

// Header returns the block's header.
func (blk Block) Header() BlockHeader { return blk.header }

// TxCount reports how many transactions the block holds.
func (blk Block) TxCount() uint64 { return blk.txCount }

// Iter returns a restartable iterator over the block's transactions.
func (blk Block) Iter() *BlockTxIter {
	return &BlockTxIter{data: blk.raw[blk.txStart:], total: blk.txCount}
}

// BlockTxIter walks a Block's transactions one at a time without
// allocating, re-parsing each from bytes already validated during
// ParseBlock.
type BlockTxIter struct {
	data  []byte
	idx   uint64
	total uint64
}

// Next advances the iterator and reports whether a value was produced.
func (it *BlockTxIter) Next() (Transaction, bool) {
	if it.idx >= it.total {
		return Transaction{}, false
	}
	tx, rest, err := parseTransaction(it.data, it.idx, nil)
	if err != nil {
		return Transaction{}, false
	}
	it.data = rest
	it.idx++
	return tx, true
}
