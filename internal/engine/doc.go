// Trackrec - Track Recommendation Service
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/resonantlabs/trackrec

// Package engine orchestrates the catalogue, co-listening vocabulary,
// audio embedding bundle, scoring kernel, and re-ranking pipeline into a
// single Recommend entry point. It resolves a seed track, retrieves
// collaborative-filtering candidates, reranks them, fuses the result with
// audio similarity when available, and emits a ranked top-k list.
package engine
