// Trackrec - Track Recommendation Service
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/resonantlabs/trackrec

// Package cache implements the Result Cache of spec.md §4.7: a
// read-through, JSON-over-string cache over an embedded badger store,
// keyed by engine version, audio-model tag, seed id, and k. Cache errors
// are never surfaced to callers; they are logged and treated as a miss or
// a no-op write.
package cache
