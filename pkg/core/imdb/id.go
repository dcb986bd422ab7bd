package imdb

import (
	"regexp"
	"strings"
)

// idPattern matches a user-supplied catalogue ID: "tt" + 7-8 digits.
var idPattern = regexp.MustCompile(`^tt[0-9]{7,8}$`)

// ValidID reports whether id is a well-formed catalogue ID.
func ValidID(id string) bool {
	return idPattern.MatchString(id)
}

// ToPrefID formats a catalogue ID for entry into PREF by deleting the
// first 't' when the ID is longer than 9 characters. The rule is
// length-based only; the threshold of 9 is a compatibility constraint.
func ToPrefID(id string) string {
	if len(id) > 9 {
		return id[1:]
	}
	return id
}

// IDFromPath extracts the catalogue ID from a search hit's resource
// path, e.g. "/title/tt0133093/" -> "tt0133093". Returns "" if the
// path has no third segment.
func IDFromPath(path string) string {
	parts := strings.Split(path, "/")
	if len(parts) < 3 {
		return ""
	}
	return parts[2]
}
