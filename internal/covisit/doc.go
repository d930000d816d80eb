// Trackrec - Track Recommendation Service
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/resonantlabs/trackrec

// Package covisit serves the co-listening vocabulary: a precomputed,
// read-only adjacency list mapping a seed track's string key to an ordered
// list of neighbour keys and similarity scores. The model itself is trained
// offline; this package only loads and queries it. It is deliberately the
// thinnest possible adaptation of the co-occurrence table shape found in
// collaborative-filtering algorithms that train online — here there is no
// training step, only a load and a lookup.
package covisit
