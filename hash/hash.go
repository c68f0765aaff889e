// Copyright (c) 2024 The bitwire authors
// Distributed under the MIT software license, see the accompanying
// file LICENSE or https://www.opensource.org/licenses/mit-license.php .

// Package hash adapts chainhash.Hash, the 32-byte hash type used
// throughout the wider Bitcoin Go ecosystem, for the consensus structures
// this module decodes: block hashes, txids, and merkle roots. The wire
// package itself never constructs one; it only exposes the raw byte ranges
// (see wire.Transaction.Preimage and wire.BlockHeader.Preimage) a caller
// would hash to produce one.
package hash

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/pkg/errors"
)

// ID is any 32-byte hash: a block hash, a txid, or a merkle root.
type ID = chainhash.Hash

// Nil is the unset hash: all zeros, the previous-output hash a coinbase
// input's OutPoint carries.
var Nil ID

// FromSlice copies a 32-byte slice, in wire byte order, into an ID.
func FromSlice(arg []byte) (ID, error) {
	h, err := chainhash.NewHash(arg)
	if err != nil {
		return ID{}, errors.Wrap(err, "hash: from slice")
	}
	return *h, nil
}

// Decode parses a display-order hex hash string, the form a block explorer
// shows, back into wire byte order. s must be exactly 64 hex characters.
func Decode(s string) (ID, error) {
	if len(s) != 2*chainhash.HashSize {
		return ID{}, errors.Errorf("hash: decoding hex string: got %d characters, want %d", len(s), 2*chainhash.HashSize)
	}
	h, err := chainhash.NewHashFromStr(s)
	if err != nil {
		return ID{}, errors.Wrap(err, "hash: decoding hex string")
	}
	return *h, nil
}
