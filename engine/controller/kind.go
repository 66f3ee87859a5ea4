package controller

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when a controller kind or name is not known to the switchboard.
var ErrNotFound = errors.New("controller not found")

// Kind identifies one of the fixed controller kinds.
type Kind int

const (
	// KindFirstPerson walks a free camera through the room.
	KindFirstPerson Kind = iota
	// KindTopDown looks straight down with an orthographic projection and pans.
	KindTopDown
	// KindTwoD looks at the front of the room with an orthographic projection and pans.
	KindTwoD
	// KindDebug orbits the room with the default arc-rotate inputs.
	KindDebug

	kindCount
)

var kindNames = [kindCount]string{
	KindFirstPerson: "first-person",
	KindTopDown:     "top-down",
	KindTwoD:        "two-d",
	KindDebug:       "debug",
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k >= 0 && k < kindCount
}

// Kinds returns every controller kind in table order.
//
// Returns:
//   - []Kind: the kinds
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := range kindCount {
		out = append(out, k)
	}
	return out
}

// ParseKind resolves a kind from its name. Matching ignores case and surrounding space.
//
// Parameters:
//   - name: the kind name, e.g. "top-down"
//
// Returns:
//   - Kind: the parsed kind
//   - error: error wrapping ErrNotFound if the name is unknown
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for k, s := range kindNames {
		if s == n {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("parse kind %q: %w", name, ErrNotFound)
}
