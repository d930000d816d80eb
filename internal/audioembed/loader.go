// Trackrec - Track Recommendation Service
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/resonantlabs/trackrec

package audioembed

import (
	"compress/gzip"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/resonantlabs/trackrec/internal/logging"
)

var idKeyCandidates = []string{"song_ids", "ids", "song_id"}
var matrixKeyCandidates = []string{"embeddings", "emb", "audio_embeddings", "embedding"}

// Load reads a gzip-compressed JSON archive at path and builds a Bundle
// tagged with modelType. An empty path or missing/unparsable/shape-mismatched
// archive is logged and yields (nil, nil): the bundle is absent, not a hard
// error, per the optional-resource contract in the data model.
func Load(path, modelType string) (*Bundle, error) {
	if path == "" {
		return nil, nil
	}

	raw, err := readGzipJSON(path)
	if err != nil {
		logging.Info().Str("path", path).Err(err).Msg("audio embedding archive unavailable, audio similarity disabled")
		return nil, nil
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		logging.Warn().Err(err).Str("path", path).Msg("audio embedding archive unparsable, audio similarity disabled")
		return nil, nil
	}

	ids, vectors, ok := extractKeyedForm(doc)
	if !ok {
		ids, vectors, ok = extractFlatForm(doc)
	}
	if !ok {
		logging.Warn().Str("path", path).Msg("audio embedding archive has no recognizable id/matrix keys, audio similarity disabled")
		return nil, nil
	}

	bundle, err := build(ids, vectors, modelType)
	if err != nil {
		logging.Error().Err(err).Str("path", path).Msg("audio embedding archive shape mismatch, audio similarity disabled")
		return nil, nil
	}
	return bundle, nil
}

func readGzipJSON(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer gz.Close()

	return io.ReadAll(gz)
}

// extractKeyedForm looks for an explicit id-vector key and matrix key.
func extractKeyedForm(doc map[string]any) ([]int64, [][]float64, bool) {
	idsRaw, ok := firstPresent(doc, idKeyCandidates)
	if !ok {
		return nil, nil, false
	}
	matrixRaw, ok := firstPresent(doc, matrixKeyCandidates)
	if !ok {
		return nil, nil, false
	}

	ids, ok := asInt64Slice(idsRaw)
	if !ok {
		return nil, nil, false
	}
	matrix, ok := asFloat64Matrix(matrixRaw)
	if !ok {
		return nil, nil, false
	}
	return ids, matrix, true
}

// extractFlatForm treats the document as a flat id-string -> vector mapping,
// ignoring any "model_type" key.
func extractFlatForm(doc map[string]any) ([]int64, [][]float64, bool) {
	ids := make([]int64, 0, len(doc))
	for key := range doc {
		if key == "model_type" {
			continue
		}
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return nil, nil, false
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, nil, false
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	vectors := make([][]float64, 0, len(ids))
	for _, id := range ids {
		v, ok := asFloat64Vector(doc[strconv.FormatInt(id, 10)])
		if !ok {
			return nil, nil, false
		}
		vectors = append(vectors, v)
	}
	return ids, vectors, true
}

func build(ids []int64, vectors [][]float64, modelType string) (*Bundle, error) {
	n := len(ids)
	if n == 0 || n != len(vectors) {
		return nil, errShapeMismatch
	}
	d := len(vectors[0])
	if d == 0 {
		return nil, errShapeMismatch
	}

	data := make([]float32, 0, n*d)
	idToRow := make(map[int64]int, n)
	for i, vec := range vectors {
		if len(vec) != d {
			return nil, errShapeMismatch
		}
		if _, dup := idToRow[ids[i]]; dup {
			return nil, errShapeMismatch
		}
		idToRow[ids[i]] = i
		for _, v := range vec {
			data = append(data, float32(v))
		}
	}

	return &Bundle{
		ModelType: modelType,
		matrix:    Matrix{Data: data, Rows: n, Cols: d},
		idToRow:   idToRow,
	}, nil
}

func firstPresent(doc map[string]any, keys []string) (any, bool) {
	for _, k := range keys {
		if v, ok := doc[k]; ok {
			return v, true
		}
	}
	return nil, false
}

func asInt64Slice(v any) ([]int64, bool) {
	arr, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]int64, 0, len(arr))
	for _, elem := range arr {
		switch n := elem.(type) {
		case float64:
			out = append(out, int64(n))
		case json.Number:
			i, err := n.Int64()
			if err != nil {
				return nil, false
			}
			out = append(out, i)
		default:
			return nil, false
		}
	}
	return out, true
}

func asFloat64Matrix(v any) ([][]float64, bool) {
	rows, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([][]float64, 0, len(rows))
	for _, row := range rows {
		vec, ok := asFloat64Vector(row)
		if !ok {
			return nil, false
		}
		out = append(out, vec)
	}
	return out, true
}

func asFloat64Vector(v any) ([]float64, bool) {
	arr, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]float64, 0, len(arr))
	for _, elem := range arr {
		switch n := elem.(type) {
		case float64:
			out = append(out, n)
		case json.Number:
			f, err := n.Float64()
			if err != nil {
				return nil, false
			}
			out = append(out, f)
		default:
			return nil, false
		}
	}
	return out, true
}
