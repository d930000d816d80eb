// Trackrec - Track Recommendation Service
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/resonantlabs/trackrec

package engine

import "github.com/resonantlabs/trackrec/internal/rerank"

// Config is the frozen set of scalars an Engine is constructed with. It is
// captured by value; nothing in Engine mutates it after construction.
type Config struct {
	EngineVersion    string
	AudioModel       string
	DefaultK         int
	CandidateTopN    int
	Stage3Candidates int
	AlphaAudio       float64
	Rerank           rerank.Scalars
	DemoMode         bool
}
