// Trackrec - Track Recommendation Service
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/resonantlabs/trackrec

package api

import (
	"errors"

	"github.com/resonantlabs/trackrec/internal/engine"
)

// writeEngineError maps a recommend failure to its HTTP status code and
// error code per the Kind → status table: SeedNotFound and
// SeedUnknownToCF are both 404, CFGenerationFailed and
// EngineUninitialized are both 503, everything else is 500.
func writeEngineError(rw *ResponseWriter, err error) {
	var engErr *engine.Error
	if !errors.As(err, &engErr) {
		rw.InternalError("internal error")
		return
	}

	switch engErr.Kind {
	case engine.SeedNotFound, engine.SeedUnknownToCF:
		rw.NotFound(engErr.Message)
	case engine.CFGenerationFailed, engine.EngineUninitialized:
		rw.ServiceUnavailable(engErr.Message)
	default:
		rw.InternalError(engErr.Message)
	}
}
