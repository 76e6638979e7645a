package hashing

import "testing"

func leavesOf(n int) [][]byte {
	leaves := make([][]byte, n)
	for i := range leaves {
		leaves[i] = []byte{byte(i)}
	}
	return leaves
}

func TestMerkleTreeRootDeterministic(t *testing.T) {
	hash := ToyHash{}
	a := NewMerkleTree(hash, leavesOf(5))
	b := NewMerkleTree(hash, leavesOf(5))
	if a.Root() != b.Root() {
		t.Error("identical leaf sets should produce identical roots")
	}
}

func TestMerkleTreeEmptyLeaves(t *testing.T) {
	tree := NewMerkleTree(ToyHash{}, nil)
	if !tree.Root().IsZero() {
		t.Error("empty leaf set should produce the all-zero root")
	}
	if tree.LeafCount() != 0 {
		t.Errorf("LeafCount() = %d, want 0", tree.LeafCount())
	}
}

func TestMerkleTreeOddPromotion(t *testing.T) {
	tree := NewMerkleTree(ToyHash{}, leavesOf(3))
	if tree.LeafCount() != 4 {
		t.Errorf("LeafCount() = %d, want 4 (odd leaf promoted)", tree.LeafCount())
	}
}

func TestGenerateAndVerifyProof(t *testing.T) {
	hash := ToyHash{}
	tree := NewMerkleTree(hash, leavesOf(7))

	for i := 0; i < 7; i++ {
		proof, err := tree.GenerateProof(i)
		if err != nil {
			t.Fatalf("GenerateProof(%d) failed: %v", i, err)
		}
		if !VerifyProof(hash, tree.Root(), proof) {
			t.Errorf("VerifyProof failed for leaf %d", i)
		}
	}
}

func TestVerifyProofRejectsTamperedLeaf(t *testing.T) {
	hash := ToyHash{}
	tree := NewMerkleTree(hash, leavesOf(7))

	proof, err := tree.GenerateProof(2)
	if err != nil {
		t.Fatalf("GenerateProof failed: %v", err)
	}
	proof.Leaf = hash.Hash([]byte{0xff})

	if VerifyProof(hash, tree.Root(), proof) {
		t.Error("VerifyProof should reject a tampered leaf")
	}
}

func TestGenerateProofOutOfRange(t *testing.T) {
	tree := NewMerkleTree(ToyHash{}, leavesOf(3))
	if _, err := tree.GenerateProof(-1); err == nil {
		t.Error("negative index should fail")
	}
	if _, err := tree.GenerateProof(100); err == nil {
		t.Error("out-of-range index should fail")
	}
}

func TestHashFuncByName(t *testing.T) {
	if _, ok := ByName("toy").(ToyHash); !ok {
		t.Error(`ByName("toy") should return a ToyHash`)
	}
	if _, ok := ByName("sha3").(SHA3Hash); !ok {
		t.Error(`ByName("sha3") should return a SHA3Hash`)
	}
	if _, ok := ByName("blake3").(Blake3Hash); !ok {
		t.Error(`ByName("blake3") should return a Blake3Hash`)
	}
	if _, ok := ByName("nonsense").(ToyHash); !ok {
		t.Error(`ByName of an unknown name should fall back to ToyHash`)
	}
}
