// Trackrec - Track Recommendation Service
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/resonantlabs/trackrec

// Package api provides the HTTP request surface: health, catalogue lookup,
// search, and the recommend endpoint, routed with chi and wrapped in the
// standardized APIResponse envelope.
package api
