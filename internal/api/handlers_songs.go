// Trackrec - Track Recommendation Service
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/resonantlabs/trackrec

package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Song handles GET /songs/{id}: a flat lookup by id over the catalogue.
func (h *Handler) Song(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if r.Method != http.MethodGet {
		rw.MethodNotAllowed("method not allowed")
		return
	}

	if h.catalogue == nil {
		rw.ServiceUnavailable("catalogue is not loaded")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		rw.BadRequest("id must be an integer")
		return
	}

	track, ok := h.catalogue.Lookup(id)
	if !ok {
		rw.NotFound("unknown id")
		return
	}

	rw.Success(track)
}
