// Package hashing provides the digest and hash-function capability shared
// by the Merkle tree and the STARK column commitment.
package hashing

import (
	"hash/fnv"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/sha3"
)

// DigestSize is the fixed width of every digest produced by this package.
const DigestSize = 32

// Digest is a fixed-width output of a HashFunc.
type Digest [DigestSize]byte

// IsZero reports whether d is the all-zero digest.
func (d Digest) IsZero() bool {
	return d == Digest{}
}

// Bytes returns a copy of d's contents.
func (d Digest) Bytes() []byte {
	out := make([]byte, DigestSize)
	copy(out, d[:])
	return out
}

// DigestFromBytes copies b into a Digest, zero-padding or truncating to
// DigestSize.
func DigestFromBytes(b []byte) Digest {
	var d Digest
	copy(d[:], b)
	return d
}

// HashFunc is the capability contract every hash implementation in this
// package satisfies, so the toy default can be swapped for a real hash
// without touching call sites (Merkle tree, column commitment).
type HashFunc interface {
	// Hash returns the digest of data.
	Hash(data []byte) Digest
	// HashPair returns hash(left || right); position-sensitive.
	HashPair(left, right Digest) Digest
}

// ToyHash is the spec-mandated default: not collision resistant, present
// only to give the pipeline a concrete, deterministic hash to commit with.
type ToyHash struct{}

// Hash implements HashFunc using a 64-bit FNV-1a fold zero-padded to 32 bytes.
func (ToyHash) Hash(data []byte) Digest {
	h := fnv.New64a()
	_, _ = h.Write(data)
	var d Digest
	sum := h.Sum64()
	for i := 0; i < 8; i++ {
		d[i] = byte(sum >> (8 * i))
	}
	return d
}

// HashPair implements HashFunc.
func (t ToyHash) HashPair(left, right Digest) Digest {
	buf := make([]byte, 0, 2*DigestSize)
	buf = append(buf, left[:]...)
	buf = append(buf, right[:]...)
	return t.Hash(buf)
}

// SHA3Hash is a real cryptographic hash option, grounded on the teacher's
// Fiat-Shamir channel which reaches for golang.org/x/crypto/sha3 by default.
type SHA3Hash struct{}

// Hash implements HashFunc.
func (SHA3Hash) Hash(data []byte) Digest {
	return sha3.Sum256(data)
}

// HashPair implements HashFunc.
func (s SHA3Hash) HashPair(left, right Digest) Digest {
	buf := make([]byte, 0, 2*DigestSize)
	buf = append(buf, left[:]...)
	buf = append(buf, right[:]...)
	return s.Hash(buf)
}

// Blake3Hash is a real, fast cryptographic hash option.
type Blake3Hash struct{}

// Hash implements HashFunc.
func (Blake3Hash) Hash(data []byte) Digest {
	return blake3.Sum256(data)
}

// HashPair implements HashFunc.
func (b Blake3Hash) HashPair(left, right Digest) Digest {
	buf := make([]byte, 0, 2*DigestSize)
	buf = append(buf, left[:]...)
	buf = append(buf, right[:]...)
	return b.Hash(buf)
}

// ByName resolves a hash algorithm name to a HashFunc. Supported names are
// "toy" (the default), "sha3", and "blake3". An unrecognized name falls
// back to ToyHash.
func ByName(name string) HashFunc {
	switch name {
	case "sha3":
		return SHA3Hash{}
	case "blake3":
		return Blake3Hash{}
	default:
		return ToyHash{}
	}
}
