// Copyright (c) 2024 The bitwire authors
// Distributed under the MIT software license, see the accompanying
// file LICENSE or https://www.opensource.org/licenses/mit-license.php .

package wire

import "github.com/btcview/bitwire/wire/internal/cursor"

// segwitMarker is the reserved first byte of a post-BIP144 transaction's
// input count: a compact-size zero can only ever be encoded as this single
// byte, so seeing it where an input count is expected is an unambiguous,
// one-byte lookahead signal that marker/flag/witness framing follows.
const segwitMarker = 0x00

// segwitFlag is the only flag value consensus recognizes today.
const segwitFlag = 0x01

// Transaction is a fully decoded transaction: either the pre-SegWit
// four-field layout, or the marker/flag/witness layout BIP144 added. Every
// field is a borrowed view over the buffer ParseTransaction was given; no
// field is copied.
type Transaction struct {
	raw      []byte
	version  int32
	segwit   bool
	ins      TxIns
	outs     TxOuts
	witness  Witnesses
	lockTime uint32

	ioStart int // offset of the inputs+outputs region within raw
	ioLen   int // length of that region
}

// ParseTransaction decodes a single transaction from the front of b.
func ParseTransaction(b []byte) (Transaction, []byte, error) {
	return parseTransaction(b, 0, nil)
}

// ParseTransactionVisit decodes a single transaction from the front of b,
// driving v with structural events as it goes.
func ParseTransactionVisit(b []byte, v Visitor) (Transaction, []byte, error) {
	return parseTransaction(b, 0, v)
}

func parseTransaction(b []byte, index uint64, v Visitor) (Transaction, []byte, error) {
	c := cursor.New(b)
	version, ok := c.ReadInt32()
	if !ok {
		return Transaction{}, b, errInsufficientBytes("transaction.version")
	}
	afterVersion := c.Remaining()

	// The one lookahead this decoder performs: a minimally-encoded
	// compact-size zero is always a single 0x00 byte, so checking the
	// very next byte tells us, without parsing anything, whether what
	// follows is a real (non-empty) input count or the SegWit marker.
	segwit := false
	rest := afterVersion
	if len(afterVersion) > 0 && afterVersion[0] == segwitMarker {
		if len(afterVersion) < 2 {
			return Transaction{}, b, errInsufficientBytes("transaction.flag")
		}
		flag := afterVersion[1]
		if flag != segwitFlag {
			return Transaction{}, b, errUnknownSegwitFlag(flag)
		}
		segwit = true
		rest = afterVersion[2:]
	}

	ioRegionStart := len(b) - len(rest)

	ins, rest, err := parseTxIns(rest, v)
	if err != nil {
		return Transaction{}, b, err
	}
	outs, rest, err := parseTxOuts(rest, v)
	if err != nil {
		return Transaction{}, b, err
	}

	ioRegionLen := (len(b) - len(rest)) - ioRegionStart

	var witnesses Witnesses
	if segwit {
		witnesses, rest, err = parseWitnesses(rest, ins.Count(), v)
		if err != nil {
			return Transaction{}, b, err
		}
		// A segwit-framed transaction with zero real inputs has no
		// witness stacks to check; the all-empty rejection only
		// applies once there is at least one input to carry one.
		if ins.Count() > 0 && witnesses.AllEmpty() {
			return Transaction{}, b, errSegwitFlagWithoutWitnesses()
		}
	}

	c = cursor.New(rest)
	lockTime, ok := c.ReadUint32()
	if !ok {
		return Transaction{}, b, errInsufficientBytes("transaction.lock_time")
	}
	rest = c.Remaining()

	total := len(b) - len(rest)
	tx := Transaction{
		raw:      b[:total],
		version:  version,
		segwit:   segwit,
		ins:      ins,
		outs:     outs,
		witness:  witnesses,
		lockTime: lockTime,
		ioStart:  ioRegionStart,
		ioLen:    ioRegionLen,
	}

	if v != nil && v.VisitTransaction(index, &tx) {
		return Transaction{}, b, errVisitBreak()
	}

	return tx, rest, nil
}

// Bytes returns the transaction's full wire encoding.
func (t Transaction) Bytes() []byte { return t.raw }

// Version returns the transaction's version field.
func (t Transaction) Version() int32 { return t.version }

// IsSegWit reports whether this transaction used BIP144 marker/flag
// framing and therefore carries a witness for each input.
func (t Transaction) IsSegWit() bool { return t.segwit }

// Ins returns the transaction's input vector.
func (t Transaction) Ins() TxIns { return t.ins }

// Outs returns the transaction's output vector.
func (t Transaction) Outs() TxOuts { return t.outs }

// Witnesses returns the transaction's per-input witness stacks. For a
// non-segwit transaction this is the zero value.
func (t Transaction) Witnesses() Witnesses { return t.witness }

// LockTime returns the transaction's lock time field.
func (t Transaction) LockTime() uint32 { return t.lockTime }

// Preimage returns the byte ranges that, concatenated in wire order, form
// the legacy-format message whose double SHA-256 is this transaction's
// txid. Hashing itself is left to the caller; this method only identifies
// which bytes belong in the digest.
//
// A non-segwit transaction contributes a single range: its entire
// encoding. A segwit transaction contributes three, skipping the marker,
// flag, and witness data the txid was defined, pre-BIP144, never to
// include: the version field, the combined inputs-and-outputs region, and
// the lock time field.
func (t Transaction) Preimage() [][]byte {
	if !t.segwit {
		return [][]byte{t.raw}
	}
	return [][]byte{
		t.raw[0:4],
		t.raw[t.ioStart : t.ioStart+t.ioLen],
		t.raw[len(t.raw)-4:],
	}
}

// Weight implements BIP141's transaction weight metric: base_size*3 +
// total_size for a segwit transaction, where base_size excludes marker,
// flag, and witness bytes, or plain total_size*4 for a legacy one.
func (t Transaction) Weight() int {
	total := len(t.raw)
	if !t.segwit {
		return total * 4
	}
	base := 4 + t.ioLen + 4
	return base*3 + total
}
