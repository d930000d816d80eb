// Trackrec - Track Recommendation Service
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/resonantlabs/trackrec

package catalogue

import "fmt"

const (
	demoTrackCount  = 5000
	demoArtistCount = 100
)

// demoGenreCodes cycles across the general, TROT, CCM, KIDS, and GUGAK
// genre groups (see internal/scoring) so a demo catalogue still exercises
// the re-ranking railguard.
var demoGenreCodes = []string{"GN0100", "GN0700", "GN1900", "GN2200", "GN2400"}

// NewDemoRegistry builds a synthetic catalogue of demoTrackCount tracks with
// ids 1..demoTrackCount, cycling over demoGenreCodes and demoArtistCount
// synthetic artists. It is used when no catalogue source is configured (or
// unreadable) and demo mode is enabled.
func NewDemoRegistry() *Registry {
	ordered := make([]Track, 0, demoTrackCount)
	for id := 1; id <= demoTrackCount; id++ {
		artistIdx := id % demoArtistCount
		genre := demoGenreCodes[id%len(demoGenreCodes)]
		ordered = append(ordered, Track{
			ID:            int64(id),
			Name:          fmt.Sprintf("Demo Track %d", id),
			DisplayArtist: fmt.Sprintf("Synthetic Artist %03d", artistIdx),
			ArtistKey:     fmt.Sprintf("ARTIST_%03d", artistIdx),
			PrimaryGenre:  genre,
		})
	}
	return newRegistry(ordered)
}
