package hashing

import "testing"

func TestDigestFromBytesRoundTrip(t *testing.T) {
	d := ToyHash{}.Hash([]byte("hello"))
	round := DigestFromBytes(d.Bytes())
	if round != d {
		t.Error("DigestFromBytes(d.Bytes()) should equal d")
	}
}

func TestHashPairIsPositionSensitive(t *testing.T) {
	for _, hash := range []HashFunc{ToyHash{}, SHA3Hash{}, Blake3Hash{}} {
		left := hash.Hash([]byte("left"))
		right := hash.Hash([]byte("right"))
		if hash.HashPair(left, right) == hash.HashPair(right, left) {
			t.Errorf("%T: HashPair should be sensitive to argument order", hash)
		}
	}
}

func TestHashIsDeterministic(t *testing.T) {
	for _, hash := range []HashFunc{ToyHash{}, SHA3Hash{}, Blake3Hash{}} {
		a := hash.Hash([]byte("deterministic"))
		b := hash.Hash([]byte("deterministic"))
		if a != b {
			t.Errorf("%T: Hash should be deterministic for identical input", hash)
		}
	}
}
