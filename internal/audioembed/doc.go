// Trackrec - Track Recommendation Service
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/resonantlabs/trackrec

// Package audioembed loads and serves the audio-content embedding bundle: a
// dense N x D matrix of content vectors, a bijection from track id to
// matrix row, and the model-type tag that selected which archive was
// loaded. Like the catalogue and the co-listening vocabulary, the bundle is
// built once at startup and never mutated.
package audioembed
