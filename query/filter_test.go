package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const validHex = "64adf0a1b2c3d4e5f6a7b8c9"

func TestBuildFilterTextOperators(t *testing.T) {
	cases := []struct {
		op   string
		want bson.M
	}{
		{"contains", bson.M{"$regex": "gala", "$options": "i"}},
		{"startswith", bson.M{"$regex": "^gala", "$options": "i"}},
		{"endswith", bson.M{"$regex": "gala$", "$options": "i"}},
	}
	for _, tc := range cases {
		t.Run(tc.op, func(t *testing.T) {
			out := BuildFilter([]Filter{{Field: "name", Operator: tc.op, Value: "gala"}})
			assert.Equal(t, bson.M{"name": tc.want}, out)
		})
	}
}

func TestBuildFilterComparisons(t *testing.T) {
	out := BuildFilter([]Filter{
		{Field: "votes", Operator: "gte", Value: "5"},
		{Field: "capacity", Operator: "lt", Value: "100"},
	})
	assert.Equal(t, bson.M{
		"votes":    bson.M{"$gte": float64(5)},
		"capacity": bson.M{"$lt": float64(100)},
	}, out)
}

func TestBuildFilterComparisonNonNumericKeepsRaw(t *testing.T) {
	out := BuildFilter([]Filter{{Field: "startTime", Operator: "gt", Value: "2026-01-01T00:00:00Z"}})
	assert.Equal(t, bson.M{"startTime": bson.M{"$gt": "2026-01-01T00:00:00Z"}}, out)
}

func TestBuildFilterEqIDField(t *testing.T) {
	oid, err := primitive.ObjectIDFromHex(validHex)
	require.NoError(t, err)

	out := BuildFilter([]Filter{{Field: "eventId", Operator: "eq", Value: validHex}})
	assert.Equal(t, bson.M{"eventId": oid}, out)
}

func TestBuildFilterEqForeignTextPathKept(t *testing.T) {
	out := BuildFilter([]Filter{{Field: "eventId.name", Operator: "eq", Value: "Annual Gala"}})
	assert.Equal(t, bson.M{"eventId.name": "Annual Gala"}, out)
}

func TestBuildFilterEqNestedIDSegment(t *testing.T) {
	oid, err := primitive.ObjectIDFromHex(validHex)
	require.NoError(t, err)

	out := BuildFilter([]Filter{{Field: "sessions.moduleId", Operator: "eq", Value: validHex}})
	assert.Equal(t, bson.M{"sessions.moduleId": oid}, out)

	out = BuildFilter([]Filter{{Field: "sessions.moduleId", Operator: "eq", Value: "64adf"}})
	assert.Empty(t, out)
}

func TestBuildFilterEqMalformedIDDropped(t *testing.T) {
	out := BuildFilter([]Filter{
		{Field: "eventId", Operator: "eq", Value: "64adf0a1b2"},
		{Field: "name", Operator: "eq", Value: "gala"},
	})
	assert.Equal(t, bson.M{"name": "gala"}, out)
}

func TestBuildFilterUnderscoreID(t *testing.T) {
	oid, err := primitive.ObjectIDFromHex(validHex)
	require.NoError(t, err)

	out := BuildFilter([]Filter{{Field: "_id", Operator: "eq", Value: validHex}})
	assert.Equal(t, bson.M{"_id": oid}, out)
}

func TestBuildFilterEqBooleanCoercion(t *testing.T) {
	out := BuildFilter([]Filter{{Field: "isPublic", Operator: "eq", Value: "true"}})
	assert.Equal(t, bson.M{"isPublic": true}, out)

	out = BuildFilter([]Filter{{Field: "isPublic", Operator: "eq", Value: "false"}})
	assert.Equal(t, bson.M{"isPublic": false}, out)
}

func TestBuildFilterNe(t *testing.T) {
	out := BuildFilter([]Filter{{Field: "status", Operator: "ne", Value: "draft"}})
	assert.Equal(t, bson.M{"status": bson.M{"$ne": "draft"}}, out)
}

func TestBuildFilterInSplitsAndCoerces(t *testing.T) {
	oid, err := primitive.ObjectIDFromHex(validHex)
	require.NoError(t, err)

	out := BuildFilter([]Filter{{Field: "eventId", Operator: "in", Value: validHex + ",draft"}})
	assert.Equal(t, bson.M{"eventId": bson.M{"$in": []interface{}{oid, "draft"}}}, out)
}

func TestBuildFilterInNumericCoercion(t *testing.T) {
	out := BuildFilter([]Filter{{Field: "votes", Operator: "in", Value: "1,2"}})
	assert.Equal(t, bson.M{"votes": bson.M{"$in": []interface{}{float64(1), float64(2)}}}, out)
}

func TestBuildFilterNin(t *testing.T) {
	out := BuildFilter([]Filter{{Field: "status", Operator: "nin", Value: "draft, archived"}})
	assert.Equal(t, bson.M{"status": bson.M{"$nin": []interface{}{"draft", "archived"}}}, out)
}

func TestBuildFilterUnknownOperatorFallback(t *testing.T) {
	out := BuildFilter([]Filter{{Field: "name", Operator: "fuzzy", Value: "gala"}})
	assert.Equal(t, bson.M{"name": bson.M{"$regex": "gala", "$options": "i"}}, out)

	oid, err := primitive.ObjectIDFromHex(validHex)
	require.NoError(t, err)
	out = BuildFilter([]Filter{{Field: "eventId", Operator: "fuzzy", Value: validHex}})
	assert.Equal(t, bson.M{"eventId": oid}, out)
}

func TestBuildFilterSkipsBlankEntries(t *testing.T) {
	out := BuildFilter([]Filter{
		{Field: "", Operator: "eq", Value: "x"},
		{Field: "name", Operator: "eq", Value: ""},
	})
	assert.Empty(t, out)
}
