// Trackrec - Track Recommendation Service
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/resonantlabs/trackrec

// Package api provides HTTP request validation structs with
// go-playground/validator tags, validated before a request reaches its
// handler's business logic.
package api

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// recommendRequest is the validated query parameters for GET /recommend.
type recommendRequest struct {
	SeedID int64
	K      int `validate:"min=1,max=100"`
}

// searchRequest is the validated query parameters for GET /search.
type searchRequest struct {
	Q     string `validate:"required,min=1"`
	Limit int    `validate:"min=1,max=100"`
}
