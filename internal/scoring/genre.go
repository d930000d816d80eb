// Trackrec - Track Recommendation Service
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/resonantlabs/trackrec

package scoring

import "strings"

// Genre group tags.
const (
	GroupTrot    = "TROT"
	GroupCCM     = "CCM"
	GroupKids    = "KIDS"
	GroupGugak   = "GUGAK"
	GroupUnknown = "UNK"
)

// specialGroups is the set of groups that receive the larger off-rail
// penalty when they disagree with the seed's group.
var specialGroups = map[string]bool{
	GroupTrot:  true,
	GroupCCM:   true,
	GroupKids:  true,
	GroupGugak: true,
}

// IsSpecialGroup reports whether group is one of the four special groups.
func IsSpecialGroup(group string) bool {
	return specialGroups[group]
}

// GenreGroup classifies a genre code into a coarse group tag. It is
// idempotent: GenreGroup(GenreGroup(x)) never changes the classification of
// an already-classified tag, because a code that is already one of the
// group tags is returned unchanged before any prefix rule below runs.
func GenreGroup(code string) string {
	switch {
	case code == "":
		return GroupUnknown
	case specialGroups[code] || code == GroupUnknown:
		return code
	case strings.HasPrefix(code, "GN07"), strings.HasPrefix(code, "GN11"):
		return GroupTrot
	case code == "GN1900", strings.HasPrefix(code, "GN19"):
		return GroupCCM
	case code == "GN2200", strings.HasPrefix(code, "GN22"):
		return GroupKids
	case code == "GN2400", strings.HasPrefix(code, "GN24"):
		return GroupGugak
	case len(code) >= 4:
		return code[:4]
	default:
		return GroupUnknown
	}
}
