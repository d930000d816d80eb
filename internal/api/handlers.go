// Trackrec - Track Recommendation Service
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/resonantlabs/trackrec

package api

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/resonantlabs/trackrec/internal/cache"
	"github.com/resonantlabs/trackrec/internal/catalogue"
	"github.com/resonantlabs/trackrec/internal/engine"
)

// Handler holds the dependencies shared by every request handler. All
// fields are read-only references set once at construction.
type Handler struct {
	engine          *engine.Engine
	catalogue       *catalogue.Registry
	cache           *cache.Store
	cacheTTL        time.Duration
	audioMetaConfig bool
	logger          zerolog.Logger
	startTime       time.Time
}

// NewHandler wires an Engine, the shared catalogue, and the Result Cache
// into a Handler. catalogue and cache may be nil; the handlers degrade
// accordingly per spec.md §6. audioMetaConfigured reports whether
// SONG_META_AUDIO_PATH was set, for the health document's
// audio_metadata_loaded flag.
func NewHandler(eng *engine.Engine, reg *catalogue.Registry, store *cache.Store, cacheTTL time.Duration, audioMetaConfigured bool, logger zerolog.Logger) *Handler {
	return &Handler{
		engine:          eng,
		catalogue:       reg,
		cache:           store,
		cacheTTL:        cacheTTL,
		audioMetaConfig: audioMetaConfigured,
		logger:          logger.With().Str("component", "api").Logger(),
		startTime:       time.Now(),
	}
}
