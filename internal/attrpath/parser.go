package attrpath

import (
	"fmt"
	"strings"
)

// Parse creates a Path by splitting a raw attribute key on dots.
func Parse(rawKey string) (Path, error) {
	if rawKey == "" {
		return Path{}, fmt.Errorf("attribute key cannot be empty")
	}

	segments := strings.Split(rawKey, Separator)
	for i, segment := range segments {
		if segment == "" {
			return Path{}, fmt.Errorf("attribute key %q contains empty segment at position %d", rawKey, i)
		}
	}

	return Path{Segments: segments}, nil
}

// MustParse is like Parse but panics on an invalid key. It is meant for
// static tables.
func MustParse(rawKey string) Path {
	p, err := Parse(rawKey)
	if err != nil {
		panic(err)
	}
	return p
}
