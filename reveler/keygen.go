package reveler

// CommitKey is a public pair of matrices used for commitment.
type CommitKey struct {
	// A has dimension Degree * Degree and multiplies the message vector.
	A Matrix
	// B has dimension Degree * Degree and multiplies the randomness vector.
	B Matrix
}

// GenCommitKey generates a new CommitKey with entries uniform over [0, Q).
// The two matrices are sampled independently.
func GenCommitKey(params Parameters) CommitKey {
	us := NewUniformSampler(params)
	return genCommitKey(us)
}

// GenCommitKeyWithSeed generates a new CommitKey from a seed.
// Keys generated with the same seed are identical.
func GenCommitKeyWithSeed(params Parameters, seed []byte) CommitKey {
	us := NewUniformSamplerWithSeed(params, seed)
	return genCommitKey(us)
}

func genCommitKey(us *UniformSampler) CommitKey {
	return CommitKey{
		A: us.SampleMatrix(),
		B: us.SampleMatrix(),
	}
}
