// Trackrec - Track Recommendation Service
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/resonantlabs/trackrec

// Package catalogue owns the immutable track-metadata registry: the
// id-to-metadata mapping, the insertion-ordered id list, and the substring
// search index derived from it. The registry is built once at startup and
// never mutated afterward; every other component that needs track metadata
// reads through it.
package catalogue
