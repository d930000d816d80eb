// Trackrec - Track Recommendation Service
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/resonantlabs/trackrec

package catalogue

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/resonantlabs/trackrec/internal/logging"
)

// ErrCatalogueEmpty is returned by Load when the source produced zero usable
// records and demo mode is not enabled.
var ErrCatalogueEmpty = errors.New("catalogue: no usable records and demo mode disabled")

var idKeys = []string{"id", "song_id", "sid"}
var nameKeys = []string{"song_name", "title", "name", "track_name"}
var artistKeys = []string{"artist", "artist_name", "artists"}
var genreBasketKeys = []string{"song_gn_gnr_basket", "song_gn_dtl_gnr_basket"}
var genreKeys = []string{"genre", "genres"}
var yearKeys = []string{"issue_date", "issue_year"}

// Load builds a Registry from the JSON document at path. The document's
// top-level value may be an array of record objects or an object whose
// values are record objects. When path cannot be read and demoMode is true,
// a synthetic 5,000-track catalogue is generated instead; when demoMode is
// false, a missing or empty source is a hard error.
func Load(path string, demoMode bool) (*Registry, error) {
	raw, err := readSource(path)
	if err != nil {
		if demoMode {
			logging.Info().Str("path", path).Msg("catalogue source unavailable, generating demo catalogue")
			return NewDemoRegistry(), nil
		}
		return nil, fmt.Errorf("catalogue: %w", err)
	}

	records, err := decodeRecords(raw)
	if err != nil {
		if demoMode {
			logging.Warn().Err(err).Msg("catalogue source unparsable, generating demo catalogue")
			return NewDemoRegistry(), nil
		}
		return nil, fmt.Errorf("catalogue: decode: %w", err)
	}

	ordered := make([]Track, 0, len(records))
	seen := make(map[int64]struct{}, len(records))
	for _, rec := range records {
		t, ok := parseTrack(rec)
		if !ok {
			continue
		}
		if _, dup := seen[t.ID]; dup {
			logging.Debug().Int64("id", t.ID).Msg("duplicate catalogue id ignored")
			continue
		}
		seen[t.ID] = struct{}{}
		ordered = append(ordered, t)
	}

	if len(ordered) == 0 {
		if demoMode {
			logging.Warn().Msg("catalogue source produced no records, generating demo catalogue")
			return NewDemoRegistry(), nil
		}
		return nil, ErrCatalogueEmpty
	}

	return newRegistry(ordered), nil
}

func readSource(path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("no catalogue path configured")
	}
	return os.ReadFile(path)
}

// decodeRecords accepts either a top-level JSON array or a top-level JSON
// object whose values are record objects.
func decodeRecords(raw []byte) ([]map[string]any, error) {
	var asArray []map[string]any
	if err := json.Unmarshal(raw, &asArray); err == nil {
		return asArray, nil
	}

	var asObject map[string]map[string]any
	if err := json.Unmarshal(raw, &asObject); err != nil {
		return nil, err
	}
	records := make([]map[string]any, 0, len(asObject))
	for _, v := range asObject {
		records = append(records, v)
	}
	return records, nil
}

func parseTrack(rec map[string]any) (Track, bool) {
	id, ok := firstInt64(rec, idKeys...)
	if !ok {
		return Track{}, false
	}

	name := "Unknown"
	if v, ok := firstString(rec, nameKeys...); ok && v != "" {
		name = v
	}

	displayArtist := ""
	if v, ok := rec["artist_name_basket"]; ok {
		if joined, ok := joinStringArray(v, ", "); ok {
			displayArtist = joined
		}
	}
	if displayArtist == "" {
		if v, ok := firstString(rec, artistKeys...); ok {
			displayArtist = v
		}
	}

	primaryGenre := ""
	for _, key := range genreBasketKeys {
		if v, ok := rec[key]; ok {
			if joined, ok := joinStringArray(v, ", "); ok && joined != "" {
				primaryGenre = joined
				break
			}
			if s, ok := v.(string); ok && s != "" {
				primaryGenre = s
				break
			}
		}
	}
	if primaryGenre == "" {
		if v, ok := firstString(rec, genreKeys...); ok {
			primaryGenre = v
		}
	}

	var year *int
	for _, key := range yearKeys {
		if v, ok := rec[key]; ok {
			if s := stringify(v); len(s) >= 4 {
				if y, err := strconv.Atoi(s[:4]); err == nil {
					year = &y
					break
				}
			}
		}
	}

	artistKey := UnknownArtistKey
	if v, ok := rec["artist_id_basket"]; ok {
		if arr, ok := v.([]any); ok && len(arr) > 0 {
			if s := stringify(arr[0]); s != "" {
				artistKey = s
			}
		}
	}

	return Track{
		ID:            id,
		Name:          name,
		DisplayArtist: displayArtist,
		ArtistKey:     artistKey,
		PrimaryGenre:  primaryGenre,
		Year:          year,
	}, true
}

func firstString(rec map[string]any, keys ...string) (string, bool) {
	for _, key := range keys {
		if v, ok := rec[key]; ok {
			if s := stringify(v); s != "" {
				return s, true
			}
		}
	}
	return "", false
}

func firstInt64(rec map[string]any, keys ...string) (int64, bool) {
	for _, key := range keys {
		if v, ok := rec[key]; ok {
			if n, ok := asInt64(v); ok {
				return n, true
			}
		}
	}
	return 0, false
}

func asInt64(v any) (int64, bool) {
	switch t := v.(type) {
	case float64:
		return int64(t), true
	case json.Number:
		n, err := t.Int64()
		return n, err == nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		return n, err == nil
	default:
		return 0, false
	}
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	default:
		return ""
	}
}

func joinStringArray(v any, sep string) (string, bool) {
	arr, ok := v.([]any)
	if !ok {
		return "", false
	}
	parts := make([]string, 0, len(arr))
	for _, elem := range arr {
		if s := stringify(elem); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, sep), true
}
