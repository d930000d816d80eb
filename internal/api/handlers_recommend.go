// Trackrec - Track Recommendation Service
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/resonantlabs/trackrec

package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/resonantlabs/trackrec/internal/cache"
	"github.com/resonantlabs/trackrec/internal/engine"
	"github.com/resonantlabs/trackrec/internal/metrics"
)

const (
	defaultRecommendK = 20
	maxRecommendK     = 100
)

// recommendResponse is the /recommend response body (spec.md §6).
type recommendResponse struct {
	EngineVersion string          `json:"engine_version"`
	AudioModel    string          `json:"audio_model"`
	Cached        bool            `json:"cached"`
	Method        string          `json:"method"`
	Seed          engine.SeedInfo `json:"seed"`
	Items         []engine.Item   `json:"items"`
}

// Recommend handles GET /recommend: cache lookup, and on miss, a full
// Engine.Recommend call whose result is written back to the cache before
// returning.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if r.Method != http.MethodGet {
		rw.MethodNotAllowed("method not allowed")
		return
	}

	if h.engine == nil {
		rw.ServiceUnavailable("engine is not initialized")
		return
	}

	seedID, err := strconv.ParseInt(r.URL.Query().Get("seed_id"), 10, 64)
	if err != nil {
		rw.BadRequest("seed_id must be an integer")
		return
	}

	k := h.engine.DefaultK()
	if raw := r.URL.Query().Get("k"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			rw.BadRequest("k must be an integer in [1,100]")
			return
		}
		k = parsed
	}

	if err := validate.Struct(recommendRequest{SeedID: seedID, K: k}); err != nil {
		rw.BadRequest("k must be an integer in [1,100]")
		return
	}

	engineVersion := h.engine.EngineVersion()
	audioModel := h.engine.AudioModel()
	cacheKey := cache.Key(engineVersion, audioModel, seedID, k)

	if entry, ok := h.cache.Get(cacheKey); ok {
		metrics.CacheHitsTotal.Inc()
		resp := entry.ToResponse()
		rw.Success(recommendResponse{
			EngineVersion: engineVersion,
			AudioModel:    audioModel,
			Cached:        true,
			Method:        resp.Method,
			Seed:          resp.Seed,
			Items:         resp.Items,
		})
		return
	}
	metrics.CacheMissesTotal.Inc()

	start := time.Now()
	resp, err := h.engine.Recommend(r.Context(), seedID, k)
	duration := time.Since(start)

	if err != nil {
		var engErr *engine.Error
		kind := "internal"
		if errors.As(err, &engErr) {
			kind = engErr.Kind.String()
		}
		metrics.RecommendErrorsTotal.WithLabelValues(kind).Inc()
		writeEngineError(rw, err)
		return
	}

	metrics.RecommendDuration.WithLabelValues(resp.Method).Observe(duration.Seconds())
	metrics.RecommendCandidateSurvivors.Observe(float64(len(resp.Items)))
	h.cache.Set(cacheKey, cache.FromResponse(resp), h.cacheTTL)

	rw.Success(recommendResponse{
		EngineVersion: engineVersion,
		AudioModel:    audioModel,
		Cached:        false,
		Method:        resp.Method,
		Seed:          resp.Seed,
		Items:         resp.Items,
	})
}
