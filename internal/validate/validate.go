// Package validate holds the pure predicates run on keys and names
// before they touch the filesystem.
package validate

import (
	"regexp"
	"strings"
	"time"
)

var dateKeyRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// DateKey reports whether s is a well-formed YYYY-MM-DD date that
// also names a real calendar day.
func DateKey(s string) bool {
	if !dateKeyRe.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

const forbiddenFilenameChars = `/\:*?"<>|`

// Filename reports whether name is safe to use as a document filename
// stem: non-empty, at most 255 characters, and free of path separators
// and characters rejected by common filesystems.
func Filename(name string) bool {
	if name == "" || len(name) > 255 {
		return false
	}
	return !strings.ContainsAny(name, forbiddenFilenameChars)
}
