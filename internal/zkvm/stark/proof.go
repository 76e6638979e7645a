// Package stark implements the toy STARK pipeline: column interpolation,
// Merkle commitment, constraint evaluation, FRI folding, and the
// deterministic binary proof frame that carries them between prover and
// verifier.
package stark

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/nullifier-labs/zkvm-from-scratch/internal/zkvm/hashing"
)

// QueryProof is a single FRI query response: the codeword index, its
// value, and the Merkle authentication path for that value.
type QueryProof struct {
	Index      uint64
	Value      uint32
	MerklePath []hashing.Digest
}

// FRIProof is the toy FRI layer structure: one commitment per fold round,
// the final (small) polynomial, and a placeholder query proof.
type FRIProof struct {
	Commitments     []hashing.Digest
	FinalPolynomial []uint32
	QueryProofs     []QueryProof
}

// StarkProof is the structured form the Proof.Witness bytes decode to.
type StarkProof struct {
	TraceCommitment       hashing.Digest
	ConstraintEvaluations []uint32
	MerkleProof           []hashing.Digest
	FRI                   FRIProof
}

// Proof is the serialization-friendly envelope returned by the prover and
// consumed by the verifier.
type Proof struct {
	TraceCommitment []byte
	Witness         []byte
}

func writeUint64(buf *bytes.Buffer, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	buf.Write(b[:])
}

func writeUint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func writeDigests(buf *bytes.Buffer, digests []hashing.Digest) {
	writeUint64(buf, uint64(len(digests)))
	for _, d := range digests {
		buf.Write(d[:])
	}
}

func writeU32Slice(buf *bytes.Buffer, values []uint32) {
	writeUint64(buf, uint64(len(values)))
	for _, v := range values {
		writeUint32(buf, v)
	}
}

// Encode serializes p into the documented binary frame:
//
//	trace_commitment        : 32 bytes
//	constraint_evaluations  : u64 length || length * u32
//	merkle_proof            : u64 length || length * 32 bytes
//	fri.commitments         : u64 length || length * 32 bytes
//	fri.final_polynomial    : u64 length || length * u32
//	fri.query_proofs        : u64 length || length * {index u64, value u32, merkle_path}
func (p *StarkProof) Encode() []byte {
	var buf bytes.Buffer
	buf.Write(p.TraceCommitment[:])
	writeU32Slice(&buf, p.ConstraintEvaluations)
	writeDigests(&buf, p.MerkleProof)
	writeDigests(&buf, p.FRI.Commitments)
	writeU32Slice(&buf, p.FRI.FinalPolynomial)

	writeUint64(&buf, uint64(len(p.FRI.QueryProofs)))
	for _, q := range p.FRI.QueryProofs {
		writeUint64(&buf, q.Index)
		writeUint32(&buf, q.Value)
		writeDigests(&buf, q.MerklePath)
	}

	return buf.Bytes()
}

type byteReader struct {
	data []byte
	pos  int
}

func (r *byteReader) readUint64() (uint64, error) {
	if r.pos+8 > len(r.data) {
		return 0, fmt.Errorf("unexpected end of buffer reading u64")
	}
	v := binary.LittleEndian.Uint64(r.data[r.pos : r.pos+8])
	r.pos += 8
	return v, nil
}

func (r *byteReader) readUint32() (uint32, error) {
	if r.pos+4 > len(r.data) {
		return 0, fmt.Errorf("unexpected end of buffer reading u32")
	}
	v := binary.LittleEndian.Uint32(r.data[r.pos : r.pos+4])
	r.pos += 4
	return v, nil
}

func (r *byteReader) readDigest() (hashing.Digest, error) {
	if r.pos+hashing.DigestSize > len(r.data) {
		return hashing.Digest{}, fmt.Errorf("unexpected end of buffer reading digest")
	}
	d := hashing.DigestFromBytes(r.data[r.pos : r.pos+hashing.DigestSize])
	r.pos += hashing.DigestSize
	return d, nil
}

func (r *byteReader) readDigests() ([]hashing.Digest, error) {
	n, err := r.readUint64()
	if err != nil {
		return nil, err
	}
	out := make([]hashing.Digest, n)
	for i := range out {
		d, err := r.readDigest()
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}

func (r *byteReader) readU32Slice() ([]uint32, error) {
	n, err := r.readUint64()
	if err != nil {
		return nil, err
	}
	out := make([]uint32, n)
	for i := range out {
		v, err := r.readUint32()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Decode parses the binary frame produced by Encode.
func Decode(data []byte) (*StarkProof, error) {
	r := &byteReader{data: data}

	traceCommitment, err := r.readDigest()
	if err != nil {
		return nil, fmt.Errorf("decode trace commitment: %w", err)
	}

	constraintEvaluations, err := r.readU32Slice()
	if err != nil {
		return nil, fmt.Errorf("decode constraint evaluations: %w", err)
	}

	merkleProof, err := r.readDigests()
	if err != nil {
		return nil, fmt.Errorf("decode merkle proof: %w", err)
	}

	friCommitments, err := r.readDigests()
	if err != nil {
		return nil, fmt.Errorf("decode fri commitments: %w", err)
	}

	finalPolynomial, err := r.readU32Slice()
	if err != nil {
		return nil, fmt.Errorf("decode fri final polynomial: %w", err)
	}

	queryCount, err := r.readUint64()
	if err != nil {
		return nil, fmt.Errorf("decode fri query count: %w", err)
	}
	queryProofs := make([]QueryProof, queryCount)
	for i := range queryProofs {
		index, err := r.readUint64()
		if err != nil {
			return nil, fmt.Errorf("decode query index: %w", err)
		}
		value, err := r.readUint32()
		if err != nil {
			return nil, fmt.Errorf("decode query value: %w", err)
		}
		path, err := r.readDigests()
		if err != nil {
			return nil, fmt.Errorf("decode query merkle path: %w", err)
		}
		queryProofs[i] = QueryProof{Index: index, Value: value, MerklePath: path}
	}

	return &StarkProof{
		TraceCommitment:       traceCommitment,
		ConstraintEvaluations: constraintEvaluations,
		MerkleProof:           merkleProof,
		FRI: FRIProof{
			Commitments:     friCommitments,
			FinalPolynomial: finalPolynomial,
			QueryProofs:     queryProofs,
		},
	}, nil
}
