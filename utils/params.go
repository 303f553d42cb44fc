package utils

import "strconv"

// ParseID converts a path segment to a record id. Ids arrive as text; a
// value that is not a positive integer can never match a record, so callers
// treat ok=false as not-found rather than as a malformed request.
func ParseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
