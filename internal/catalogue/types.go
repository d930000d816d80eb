// Trackrec - Track Recommendation Service
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/resonantlabs/trackrec

package catalogue

// UnknownArtistKey is the sentinel artist key used when a record has no
// resolvable artist identifier.
const UnknownArtistKey = "UNKNOWN"

// Track is a single catalogue record.
type Track struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	DisplayArtist string `json:"display_artist"`
	ArtistKey     string `json:"artist_key"`
	PrimaryGenre  string `json:"primary_genre"`
	Year          *int   `json:"year,omitempty"`
}
