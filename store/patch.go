package store

import (
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var hexIDRe = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// NormalizePatch gives a raw JSON partial-update document the same field
// types the schemas store: RFC3339 strings become dates, 24-hex strings in
// identifier fields (and inside arrays, which only ever hold reference ids
// or plain prose) become ObjectIDs. Without this a PUT would silently
// rewrite a date or reference field as a plain string.
func NormalizePatch(patch bson.M) bson.M {
	for key, value := range patch {
		patch[key] = normalizeValue(key, value)
	}
	return patch
}

func normalizeValue(key string, value interface{}) interface{} {
	switch v := value.(type) {
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t.UTC()
		}
		if hexIDRe.MatchString(v) && (key == "_id" || strings.Contains(key, "Id")) {
			if oid, err := primitive.ObjectIDFromHex(v); err == nil {
				return oid
			}
		}
		return v
	case map[string]interface{}:
		for k, el := range v {
			v[k] = normalizeValue(k, el)
		}
		return v
	case bson.M:
		for k, el := range v {
			v[k] = normalizeValue(k, el)
		}
		return v
	case []interface{}:
		for i, el := range v {
			if s, ok := el.(string); ok && hexIDRe.MatchString(s) {
				if oid, err := primitive.ObjectIDFromHex(s); err == nil {
					v[i] = oid
					continue
				}
			}
			v[i] = normalizeValue(key, el)
		}
		return v
	default:
		return value
	}
}
