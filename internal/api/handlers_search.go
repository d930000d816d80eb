// Trackrec - Track Recommendation Service
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/resonantlabs/trackrec

package api

import (
	"net/http"
	"strconv"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100
)

// Search handles GET /search: a substring scan over the catalogue's search
// index. q is required and non-empty; limit defaults to 20, and a limit
// outside [1,100] is rejected with 400.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if r.Method != http.MethodGet {
		rw.MethodNotAllowed("method not allowed")
		return
	}

	if h.catalogue == nil {
		rw.ServiceUnavailable("catalogue is not loaded")
		return
	}

	q := r.URL.Query().Get("q")
	if q == "" {
		rw.BadRequest("q is required")
		return
	}

	limit := defaultSearchLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			rw.BadRequest("limit must be an integer in [1,100]")
			return
		}
		limit = parsed
	}

	if err := validate.Struct(searchRequest{Q: q, Limit: limit}); err != nil {
		rw.BadRequest("limit must be an integer in [1,100]")
		return
	}

	rw.Success(h.catalogue.Search(q, limit))
}
