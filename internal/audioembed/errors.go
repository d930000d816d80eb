// Trackrec - Track Recommendation Service
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/resonantlabs/trackrec

package audioembed

import "errors"

var errShapeMismatch = errors.New("audioembed: id vector and embedding matrix disagree in shape")
