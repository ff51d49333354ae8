package query

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mongodb/grip"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var hexIDRe = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// BuildFilter translates filter descriptors into a Mongo filter document.
// Malformed _id values are dropped, not rejected: partially-typed
// identifiers from search-as-you-type clients must not error the request.
// Each drop is logged so the behavior is at least observable.
func BuildFilter(filters []Filter) bson.M {
	out := bson.M{}
	for _, f := range filters {
		if f.Field == "" || f.Value == "" {
			continue
		}
		field, predicate, ok := translate(f)
		if !ok {
			continue
		}
		out[field] = predicate
	}
	return out
}

func translate(f Filter) (string, interface{}, bool) {
	op := f.Operator
	if op == "" {
		op = "eq"
	}

	switch op {
	case "eq":
		return translateEq(f)

	case "contains":
		return f.Field, bson.M{"$regex": f.Value, "$options": "i"}, true

	case "startswith":
		return f.Field, bson.M{"$regex": "^" + f.Value, "$options": "i"}, true

	case "endswith":
		return f.Field, bson.M{"$regex": f.Value + "$", "$options": "i"}, true

	case "gt", "gte", "lt", "lte":
		return f.Field, bson.M{"$" + op: numericOrRaw(f.Value)}, true

	case "ne":
		return f.Field, bson.M{"$ne": coerceValue(f.Field, f.Value)}, true

	case "in":
		return f.Field, bson.M{"$in": splitList(f.Value)}, true

	case "nin":
		return f.Field, bson.M{"$nin": splitList(f.Value)}, true

	default:
		// Unknown operators behave like contains for plain fields and eq
		// for identifier fields.
		if isIDField(f.Field) {
			return translateEq(f)
		}
		return f.Field, bson.M{"$regex": f.Value, "$options": "i"}, true
	}
}

// translateEq builds an equality predicate. Identifier fields only match
// when the value is a full 24-char hex id; partial values drop the filter
// entirely rather than matching nothing, so search-as-you-type clients keep
// seeing the unfiltered set.
func translateEq(f Filter) (string, interface{}, bool) {
	if isIDField(f.Field) {
		if !hexIDRe.MatchString(f.Value) {
			grip.Warningf("dropping %s filter: %q is not a 24-char hex id", f.Field, f.Value)
			return "", nil, false
		}
		oid, err := primitive.ObjectIDFromHex(f.Value)
		if err != nil {
			grip.Warningf("dropping %s filter: %v", f.Field, err)
			return "", nil, false
		}
		return f.Field, oid, true
	}
	return f.Field, coerceValue(f.Field, f.Value), true
}

// isIDField reports whether a filter field holds ObjectIDs. Only the
// terminal path segment decides: "eventId" and "sessions.moduleId" do,
// while "eventId.name" reaches through the reference into a text field of
// the joined document and stays a plain predicate.
func isIDField(field string) bool {
	seg := lastSegment(field)
	return seg == "_id" || strings.Contains(seg, "Id")
}

// coerceValue applies the reference-identifier and boolean coercions the
// document schemas expect. Coercion failure falls back to the raw string.
func coerceValue(field, value string) interface{} {
	if strings.Contains(lastSegment(field), "Id") {
		if oid, err := primitive.ObjectIDFromHex(value); err == nil {
			return oid
		}
		return value
	}
	switch value {
	case "true":
		return true
	case "false":
		return false
	}
	return value
}

func numericOrRaw(value string) interface{} {
	if n, err := strconv.ParseFloat(value, 64); err == nil {
		return n
	}
	return value
}

func splitList(value string) []interface{} {
	parts := strings.Split(value, ",")
	out := make([]interface{}, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if oid, err := primitive.ObjectIDFromHex(p); err == nil {
			out = append(out, oid)
		} else {
			out = append(out, numericOrRaw(p))
		}
	}
	return out
}
