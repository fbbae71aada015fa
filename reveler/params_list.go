package reveler

var (
	// ParamsN256Q16 is the reference parameter set,
	// committing length-256 vectors modulo 2^16 - 1 with 32-byte digests.
	ParamsN256Q16 = ParametersLiteral{
		Degree:  256,
		Modulus: 1<<16 - 1,

		DigestSize: 32,
	}

	// ParamsN1024Q16 is a parameter set
	// committing length-1024 vectors modulo 2^16 - 1 with 32-byte digests.
	ParamsN1024Q16 = ParametersLiteral{
		Degree:  1024,
		Modulus: 1<<16 - 1,

		DigestSize: 32,
	}
)
