package drawsource

import "math/rand/v2"

// Uniform draws count indices uniformly from [0, n) using a PCG seeded
// generator, mirroring the row selection performed by the tool under audit.
// A fixed seed yields a fixed sequence, which keeps audits reproducible.
// Returns an empty sequence when n or count is not positive.
func Uniform(n, count int, seed uint64) []int {
	if n <= 0 || count <= 0 {
		return []int{}
	}

	rng := rand.New(rand.NewPCG(seed, 0))

	draws := make([]int, count)
	for i := range draws {
		draws[i] = rng.IntN(n)
	}

	return draws
}
