// Trackrec - Track Recommendation Service
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/resonantlabs/trackrec

package config

import "time"

// AudioModel is the recognized set of audio-embedding model tags.
const (
	AudioModelMyna = "myna"
	AudioModelCNN  = "cnn"
)

// Config holds the full set of options recognized by the service, loaded
// once from the environment at startup and never mutated thereafter.
type Config struct {
	// Engine identity, participates in the Result Cache key.
	EngineVersion string
	AudioModel    string

	// Recommendation defaults and bounds.
	DefaultK         int
	CandidateTopN    int
	Stage3Candidates int
	AlphaAudio       float64

	// Re-ranking scalars.
	MaxPerArtistSoft      int
	MaxPerArtistFinal     int
	PenaltyPerExtra       float64
	OffrailPenaltyGeneral float64
	OffrailPenaltySpecial float64

	DemoMode bool

	// Result Cache.
	CacheDir    string
	CacheTTLSec int

	// Resource file paths. Each defaults to the empty string, and an empty
	// string leaves the resource unconfigured; no default relative path is
	// searched.
	SongMetaPath      string
	SongMetaAudioPath string
	Item2VecPath      string
	AudioEmbMynaPath  string
	AudioEmbCNNPath   string

	// Ambient stack.
	LogLevel    string
	LogFormat   string
	HTTPAddr    string
	MetricsAddr string
}

// Load reads Config from the environment, applying the defaults from
// spec.md §6, and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		EngineVersion: getEnv("ENGINE_VERSION", "stage3_v1_myna"),
		AudioModel:    getEnv("AUDIO_MODEL", AudioModelMyna),

		DefaultK:         getIntEnv("DEFAULT_K", 20),
		CandidateTopN:    getIntEnv("CANDIDATE_TOPN", 200),
		Stage3Candidates: getIntEnv("STAGE3_CANDIDATES", 200),
		AlphaAudio:       getFloatEnv("ALPHA_AUDIO", 0.3),

		MaxPerArtistSoft:      getIntEnv("MAX_PER_ARTIST_SOFT", 3),
		MaxPerArtistFinal:     getIntEnv("MAX_PER_ARTIST_FINAL", 2),
		PenaltyPerExtra:       getFloatEnv("PENALTY_PER_EXTRA", 0.05),
		OffrailPenaltyGeneral: getFloatEnv("OFFRAIL_PENALTY_GENERAL", 0.008),
		OffrailPenaltySpecial: getFloatEnv("OFFRAIL_PENALTY_SPECIAL", 0.03),

		DemoMode: getBoolEnv("DEMO_MODE", true),

		CacheDir:    getEnv("CACHE_DIR", "./data/cache"),
		CacheTTLSec: getIntEnv("CACHE_TTL_SEC", 900),

		SongMetaPath:      getEnv("SONG_META_PATH", ""),
		SongMetaAudioPath: getEnv("SONG_META_AUDIO_PATH", ""),
		Item2VecPath:      getEnv("ITEM2VEC_PATH", ""),
		AudioEmbMynaPath:  getEnv("AUDIO_EMB_MYNA_PATH", ""),
		AudioEmbCNNPath:   getEnv("AUDIO_EMB_CNN_PATH", ""),

		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),
		HTTPAddr:    getEnv("HTTP_ADDR", ":8080"),
		MetricsAddr: getEnv("METRICS_ADDR", ":9090"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// CacheTTL returns the configured cache TTL as a time.Duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSec) * time.Second
}

// AudioEmbPath returns the embedding archive path for the configured
// AudioModel.
func (c *Config) AudioEmbPath() string {
	if c.AudioModel == AudioModelCNN {
		return c.AudioEmbCNNPath
	}
	return c.AudioEmbMynaPath
}
