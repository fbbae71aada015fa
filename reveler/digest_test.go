package reveler_test

import (
	"encoding/binary"
	"hash"
	"testing"

	"github.com/reveler-crypto/reveler/reveler"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// TestDigestDerivation pins the digest procedure byte-for-byte:
// the point is serialized as big-endian 8-byte entries in index order,
// hashed once, then re-hashed three times through the same accumulated
// hash state. Chaining through one state and hashing each digest with a
// fresh state give different results; the chained form is the
// compatible one.
func TestDigestDerivation(t *testing.T) {
	params := reveler.ParamsN256Q16.Compile()

	ck, m, r := testInputs(t)
	record, err := reveler.NewCommiter(params, ck).Commit(m, r)
	assert.NoError(t, err)

	buf := make([]byte, 8*len(record.Point))
	for i, x := range record.Point {
		binary.BigEndian.PutUint64(buf[8*i:], x)
	}

	t.Run("ChainedState", func(t *testing.T) {
		h, err := blake2b.New(params.DigestSize(), nil)
		assert.NoError(t, err)

		h.Write(buf)
		digest := h.Sum(nil)
		for i := 0; i < 3; i++ {
			h.Write(digest)
			digest = h.Sum(nil)
		}

		assert.Equal(t, digest, record.Digest)
	})

	t.Run("IndependentRoundsDiffer", func(t *testing.T) {
		h, err := blake2b.New(params.DigestSize(), nil)
		assert.NoError(t, err)

		h.Write(buf)
		digest := h.Sum(nil)
		for i := 0; i < 3; i++ {
			h, err = blake2b.New(params.DigestSize(), nil)
			assert.NoError(t, err)
			h.Write(digest)
			digest = h.Sum(nil)
		}

		assert.NotEqual(t, digest, record.Digest)
	})
}

// The digest primitive is injectable; plugging in another hash changes
// the digest but not the point.
func TestDigestCustomHash(t *testing.T) {
	literal := reveler.ParamsN256Q16
	literal.Hash = func(size int) (hash.Hash, error) { return sha3.New256(), nil }
	params := literal.Compile()

	ck, m, r := testInputs(t)
	record, err := reveler.NewCommiter(params, ck).Commit(m, r)
	assert.NoError(t, err)
	assert.True(t, reveler.NewVerifier(params).Verify(record))

	recordDefault, err := reveler.NewCommiter(reveler.ParamsN256Q16.Compile(), ck).Commit(m, r)
	assert.NoError(t, err)
	assert.Equal(t, recordDefault.Point, record.Point)
	assert.NotEqual(t, recordDefault.Digest, record.Digest)
}
