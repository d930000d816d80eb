// Trackrec - Track Recommendation Service
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/resonantlabs/trackrec

package api

import (
	"net/http"
	"time"
)

// healthDocument is the /health response body (spec.md §6).
type healthDocument struct {
	Status             string  `json:"status"`
	EngineVersion      string  `json:"engine_version"`
	AudioModel         string  `json:"audio_model"`
	Demo               bool    `json:"demo"`
	CatalogueLoaded    bool    `json:"catalogue_loaded"`
	CatalogueCount     int     `json:"catalogue_count"`
	AudioMetaLoaded    bool    `json:"audio_metadata_loaded"`
	VocabularyLoaded   bool    `json:"cf_vocabulary_loaded"`
	AudioBundleLoaded  bool    `json:"audio_bundle_loaded"`
	CacheLoaded        bool    `json:"cache_loaded"`
	UptimeSeconds      float64 `json:"uptime_seconds"`
}

// Health handles GET /health. Status is "ok" only when the catalogue is
// loaded; every other resource reports its own independent load flag so
// probes can distinguish "not yet warm" from "cannot serve".
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if r.Method != http.MethodGet {
		rw.MethodNotAllowed("method not allowed")
		return
	}

	status := "degraded"
	var healthy struct {
		CatalogueLoaded  bool
		VocabularyLoaded bool
		BundleLoaded     bool
	}
	var engineVersion, audioModel string
	var demo bool

	if h.engine != nil {
		eh := h.engine.Health()
		healthy.CatalogueLoaded = eh.CatalogueLoaded
		healthy.VocabularyLoaded = eh.VocabularyLoaded
		healthy.BundleLoaded = eh.BundleLoaded
		engineVersion = h.engine.EngineVersion()
		audioModel = h.engine.AudioModel()
		demo = h.engine.DemoMode()
	}
	if healthy.CatalogueLoaded {
		status = "ok"
	}

	count := 0
	if h.catalogue != nil {
		count = h.catalogue.Len()
	}

	doc := healthDocument{
		Status:            status,
		EngineVersion:     engineVersion,
		AudioModel:        audioModel,
		Demo:              demo,
		CatalogueLoaded:   healthy.CatalogueLoaded,
		CatalogueCount:    count,
		AudioMetaLoaded:   h.audioMetaConfig,
		VocabularyLoaded:  healthy.VocabularyLoaded,
		AudioBundleLoaded: healthy.BundleLoaded,
		CacheLoaded:       h.cache != nil && h.cache.Ping(),
		UptimeSeconds:     time.Since(h.startTime).Seconds(),
	}

	rw.Success(doc)
}
