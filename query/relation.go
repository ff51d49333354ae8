package query

import (
	"strings"

	"github.com/pkg/errors"
)

// Relation declares one populatable reference field of an entity.
type Relation struct {
	// Path is the dotted bson path of the reference field, e.g. "eventId"
	// or "sessions.speakers".
	Path string
	// Collection is the target collection. Empty means infer from the last
	// path segment by naming convention.
	Collection string
	// Many marks reference fields holding an array of ids.
	Many bool
}

// Relations describes the join surface of one entity: which embedded paths
// are arrays and which fields reference other collections.
type Relations struct {
	// Arrays lists embedded array paths, outermost first,
	// e.g. ["sessions", "sessions.subSessions"].
	Arrays []string
	Refs   []Relation
}

// Target resolves the collection a relation joins against.
func (r Relation) Target() string {
	if r.Collection != "" {
		return r.Collection
	}
	return InferCollection(lastSegment(r.Path))
}

// Find returns the relation registered for a dotted path.
func (rs Relations) Find(path string) (Relation, bool) {
	for _, r := range rs.Refs {
		if r.Path == path {
			return r, true
		}
	}
	return Relation{}, false
}

// Validate checks every relation target against the known collection set.
// Run at startup so a typo in a registry fails fast instead of producing
// empty lookups at request time.
func (rs Relations) Validate(known map[string]bool) error {
	for _, r := range rs.Refs {
		if !known[r.Target()] {
			return errors.Errorf("relation %q targets unknown collection %q", r.Path, r.Target())
		}
	}
	return nil
}

// InferCollection derives a target collection from a reference field name:
// strip a trailing "Id", lowercase, pluralize. "eventId" -> "events",
// "speakers" -> "speakers".
func InferCollection(field string) string {
	base := strings.TrimSuffix(field, "Id")
	base = strings.ToLower(base)
	switch {
	case strings.HasSuffix(base, "s"):
		return base
	case strings.HasSuffix(base, "y"):
		return base[:len(base)-1] + "ies"
	default:
		return base + "s"
	}
}

func lastSegment(path string) string {
	if i := strings.LastIndex(path, "."); i >= 0 {
		return path[i+1:]
	}
	return path
}
