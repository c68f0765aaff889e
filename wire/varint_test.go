// Copyright (c) 2024 The bitwire authors
// Distributed under the MIT software license, see the accompanying
// file LICENSE or https://www.opensource.org/licenses/mit-license.php .

package wire

import "testing"

func TestParseLenMinimal(t *testing.T) {
	tests := []struct {
		name     string
		in       []byte
		wantN    uint64
		wantCons int
	}{
		{"zero", []byte{0x00}, 0, 1},
		{"small", []byte{0x05}, 5, 1},
		{"single-byte-max", []byte{0xfc}, 0xfc, 1},
		{"u16-min", []byte{0xfd, 0xfd, 0x00}, 0xfd, 3},
		{"u16-max", []byte{0xfd, 0xff, 0xff}, 0xffff, 3},
		{"u32-min", []byte{0xfe, 0x00, 0x00, 0x01, 0x00}, 0x00010000, 5},
		{"u64-min", []byte{0xff, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00}, 0x0000000100000000, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, rest, err := ParseLen(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if l.N != tt.wantN || l.Consumed != tt.wantCons {
				t.Fatalf("got N=%d Consumed=%d, want N=%d Consumed=%d", l.N, l.Consumed, tt.wantN, tt.wantCons)
			}
			if len(rest) != 0 {
				t.Fatalf("expected no remainder, got %d bytes", len(rest))
			}
		})
	}
}

func TestParseLenNonMinimal(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
	}{
		{"u16-should-be-byte", []byte{0xfd, 0xfc, 0x00}},
		{"u32-should-be-u16", []byte{0xfe, 0xff, 0xff, 0x00, 0x00}},
		{"u64-should-be-u32", []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0x00, 0x00, 0x00, 0x00}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseLen(tt.in)
			assertKind(t, err, NonMinimalVarInt)
		})
	}
}

func TestParseLenInsufficientBytes(t *testing.T) {
	tests := [][]byte{
		{},
		{0xfd},
		{0xfd, 0x01},
		{0xfe, 0x01, 0x02, 0x03},
		{0xff, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07},
	}
	for _, in := range tests {
		_, _, err := ParseLen(in)
		assertKind(t, err, InsufficientBytes)
	}
}

// assertKind fails the test unless err is a *Error of the given Kind.
func assertKind(t *testing.T, err error, want Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error of kind %v, got nil", want)
	}
	werr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *wire.Error, got %T: %v", err, err)
	}
	if werr.Kind != want {
		t.Fatalf("got kind %v, want %v", werr.Kind, want)
	}
}
