// Trackrec - Track Recommendation Service
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/resonantlabs/trackrec

// Package rerank implements the three-stage re-ranking pipeline (Stage 1.5):
// artist soft penalty, genre railguard, and artist hardcut, applied in that
// strict order to the raw CF candidate list. Every candidate carries a
// single Candidate struct through all three stages; fields are updated in
// place rather than threaded through parallel slices, so a candidate's
// score fields are always mutually consistent at every point in the
// pipeline.
package rerank
