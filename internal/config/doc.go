// Trackrec - Track Recommendation Service
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/resonantlabs/trackrec

// Package config loads the service's configuration from environment
// variables. There is no config file layer: the full set of recognized
// options is small and flat enough that plain getEnv-family helpers cover
// it without a config framework.
package config
