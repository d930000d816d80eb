// Trackrec - Track Recommendation Service
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/resonantlabs/trackrec

// Package scoring holds the pure numeric primitives the recommendation
// engine is built on: batched cosine similarity, NaN-aware min-max
// normalization, and the genre-group classifier. Every function here is a
// pure function of its arguments with no shared state, so none of it needs
// locking even though callers may invoke it concurrently across requests.
package scoring
