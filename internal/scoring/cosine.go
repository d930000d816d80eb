// Trackrec - Track Recommendation Service
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/resonantlabs/trackrec

package scoring

import (
	"math"
	"runtime"
	"sync"
)

// normEpsilon is added to vector norms before division so a zero-length
// vector never produces a division by zero; the result stays finite rather
// than branching on the zero case.
const normEpsilon = 1e-8

// BatchCosine computes cosine similarity between q and every row of
// candidates in a single batched pass, returning a slice the same length as
// candidates. The work is split into contiguous row chunks and fanned out
// across GOMAXPROCS goroutines, mirroring the fan-out-then-wait shape used
// elsewhere in the codebase for per-candidate parallel work; this keeps the
// per-candidate cosine loop from becoming the dominant cost when
// stage3_candidates and the embedding dimension are both large.
func BatchCosine(q []float32, candidates [][]float32) []float64 {
	out := make([]float64, len(candidates))
	if len(candidates) == 0 {
		return out
	}

	qNorm := norm32(q)

	workers := runtime.GOMAXPROCS(0)
	if workers > len(candidates) {
		workers = len(candidates)
	}
	if workers < 1 {
		workers = 1
	}

	chunk := (len(candidates) + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < len(candidates); start += chunk {
		end := start + chunk
		if end > len(candidates) {
			end = len(candidates)
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				out[i] = cosine(q, qNorm, candidates[i])
			}
		}(start, end)
	}
	wg.Wait()

	return out
}

func cosine(q []float32, qNorm float64, c []float32) float64 {
	var dot float64
	n := len(q)
	if len(c) < n {
		n = len(c)
	}
	for i := 0; i < n; i++ {
		dot += float64(q[i]) * float64(c[i])
	}
	return dot / ((qNorm + normEpsilon) * (norm32(c) + normEpsilon))
}

func norm32(v []float32) float64 {
	var sumSq float64
	for _, x := range v {
		sumSq += float64(x) * float64(x)
	}
	return math.Sqrt(sumSq)
}
