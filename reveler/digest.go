package reveler

import (
	"encoding/binary"
)

// digestRounds is the number of extra hash applications chained after the
// initial one. The hash state is carried across rounds: each round writes
// the previous digest into the same accumulated state before finalizing
// again. This amplifies diffusion and is pinned for digest compatibility.
const digestRounds = 3

// serializePoint encodes a commitment point as the concatenation of the
// big-endian 8-byte encoding of each entry, in index order.
// This layout is pinned for cross-implementation digest compatibility.
func serializePoint(point Vector) []byte {
	buf := make([]byte, 8*len(point))
	for i, x := range point {
		binary.BigEndian.PutUint64(buf[8*i:], x)
	}
	return buf
}

// hashPoint derives the digest of a commitment point.
func hashPoint(params Parameters, point Vector) []byte {
	h := params.newHash()

	h.Write(serializePoint(point))
	digest := h.Sum(nil)

	for i := 0; i < digestRounds; i++ {
		h.Write(digest)
		digest = h.Sum(nil)
	}

	return digest
}
