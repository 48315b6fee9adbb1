package utils

import (
	"fmt"
	"strings"
)

// BuildReference renders a "<ResourceType>/<id>" reference string. Cross
// resource relationships travel only in this form, never as embedded
// objects.
func BuildReference(resourceType, id string) string {
	return fmt.Sprintf("%s/%s", resourceType, id)
}

// ParseReference splits a reference on its single slash. Unknown resource
// types are accepted for forward compatibility; anything without exactly
// one slash or with an empty side fails.
func ParseReference(ref string) (resourceType, id string, ok bool) {
	parts := strings.Split(ref, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// BuildURN renders the urn:uuid form used for bundle entry fullUrl values.
func BuildURN(id string) string {
	return "urn:uuid:" + id
}
