// Trackrec - Track Recommendation Service
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/resonantlabs/trackrec

package config

import "fmt"

// Validate checks that all loaded values fall within their documented
// ranges.
func (c *Config) Validate() error {
	if err := c.validateAudioModel(); err != nil {
		return err
	}
	if err := c.validateBounds(); err != nil {
		return err
	}
	return c.validateScalars()
}

func (c *Config) validateAudioModel() error {
	switch c.AudioModel {
	case AudioModelMyna, AudioModelCNN:
		return nil
	default:
		return fmt.Errorf("AUDIO_MODEL must be %q or %q, got %q", AudioModelMyna, AudioModelCNN, c.AudioModel)
	}
}

func (c *Config) validateBounds() error {
	if c.DefaultK < 1 || c.DefaultK > 100 {
		return fmt.Errorf("DEFAULT_K must be in [1,100], got %d", c.DefaultK)
	}
	if c.CandidateTopN < 10 {
		return fmt.Errorf("CANDIDATE_TOPN must be >= 10, got %d", c.CandidateTopN)
	}
	if c.Stage3Candidates < 10 {
		return fmt.Errorf("STAGE3_CANDIDATES must be >= 10, got %d", c.Stage3Candidates)
	}
	if c.AlphaAudio < 0 || c.AlphaAudio > 1 {
		return fmt.Errorf("ALPHA_AUDIO must be in [0,1], got %v", c.AlphaAudio)
	}
	if c.CacheTTLSec < 0 {
		return fmt.Errorf("CACHE_TTL_SEC must be >= 0, got %d", c.CacheTTLSec)
	}
	return nil
}

func (c *Config) validateScalars() error {
	if c.MaxPerArtistSoft < 1 {
		return fmt.Errorf("MAX_PER_ARTIST_SOFT must be >= 1, got %d", c.MaxPerArtistSoft)
	}
	if c.MaxPerArtistFinal < 1 {
		return fmt.Errorf("MAX_PER_ARTIST_FINAL must be >= 1, got %d", c.MaxPerArtistFinal)
	}
	if c.PenaltyPerExtra < 0 {
		return fmt.Errorf("PENALTY_PER_EXTRA must be >= 0, got %v", c.PenaltyPerExtra)
	}
	if c.OffrailPenaltyGeneral < 0 {
		return fmt.Errorf("OFFRAIL_PENALTY_GENERAL must be >= 0, got %v", c.OffrailPenaltyGeneral)
	}
	if c.OffrailPenaltySpecial < 0 {
		return fmt.Errorf("OFFRAIL_PENALTY_SPECIAL must be >= 0, got %v", c.OffrailPenaltySpecial)
	}
	return nil
}
