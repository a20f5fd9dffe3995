package strata

import (
	"github.com/shengdoushi/base58"
	"golang.org/x/crypto/sha3"
)

const refHashLength = 20

// NewEncodedRefs hashes every reference into a flat filesystem-safe path
// (shake256, base58-encoded) under the same scheme, hiding the caller's
// layout from the inner store. Useful in front of a disk store whose
// callers use arbitrary nested paths.
func NewEncodedRefs(inner Storage) *Mapper {
	m := NewMapper(inner)
	m.MapRef = encodeRef
	return m
}

func encodeRef(r Ref) (Ref, error) {
	h := make([]byte, refHashLength)
	sha3.ShakeSum256(h, []byte(r.String()))
	return Ref{Scheme: r.Scheme, Path: Base58Encode(h)}, nil
}

// base58 avoids problematic characters for both people and filesystems
func Base58Encode(buf []byte) string {
	return base58.Encode(buf, base58.BitcoinAlphabet)
}

func Base58Decode(enc string) ([]byte, error) {
	return base58.Decode(enc, base58.BitcoinAlphabet)
}
