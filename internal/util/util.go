// Package util provides small shared helpers.
package util

import (
	"regexp"

	"github.com/lithammer/shortuuid/v4"
)

var uidMatcher = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{1,30}[a-zA-Z0-9])$`)

// GenUID generates a short unique id for a resource.
func GenUID() string {
	return shortuuid.New()
}

// ValidateUID returns true if the uid is a valid resource identifier.
func ValidateUID(uid string) bool {
	return uidMatcher.MatchString(uid)
}
