package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNormalizePatchDates(t *testing.T) {
	patch := NormalizePatch(bson.M{"startTime": "2026-03-15T09:00:00Z"})

	got, ok := patch["startTime"].(time.Time)
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC), got)
}

func TestNormalizePatchDateWithOffset(t *testing.T) {
	patch := NormalizePatch(bson.M{"scheduledAt": "2026-03-15T09:00:00-05:00"})

	got, ok := patch["scheduledAt"].(time.Time)
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 3, 15, 14, 0, 0, 0, time.UTC), got)
}

func TestNormalizePatchIDFields(t *testing.T) {
	hex := "64adf0a1b2c3d4e5f6a7b8c9"
	oid, err := primitive.ObjectIDFromHex(hex)
	require.NoError(t, err)

	patch := NormalizePatch(bson.M{
		"eventId": hex,
		"name":    hex,
	})
	assert.Equal(t, oid, patch["eventId"])
	assert.Equal(t, hex, patch["name"])
}

func TestNormalizePatchPlainStringsUntouched(t *testing.T) {
	patch := NormalizePatch(bson.M{"title": "Opening keynote", "room": "A-101"})

	assert.Equal(t, "Opening keynote", patch["title"])
	assert.Equal(t, "A-101", patch["room"])
}

func TestNormalizePatchNestedDocuments(t *testing.T) {
	hex := "64adf0a1b2c3d4e5f6a7b8c9"
	oid, err := primitive.ObjectIDFromHex(hex)
	require.NoError(t, err)

	patch := NormalizePatch(bson.M{
		"properties": map[string]interface{}{
			"moduleId":  hex,
			"updatedAt": "2026-01-02T03:04:05Z",
			"label":     "general",
		},
	})

	nested := patch["properties"].(map[string]interface{})
	assert.Equal(t, oid, nested["moduleId"])
	assert.IsType(t, time.Time{}, nested["updatedAt"])
	assert.Equal(t, "general", nested["label"])
}

func TestNormalizePatchArrays(t *testing.T) {
	hex := "64adf0a1b2c3d4e5f6a7b8c9"
	oid, err := primitive.ObjectIDFromHex(hex)
	require.NoError(t, err)

	patch := NormalizePatch(bson.M{
		"speakers": []interface{}{hex, "tba"},
		"sessions": []interface{}{
			map[string]interface{}{"moduleId": hex, "title": "intro"},
		},
	})

	assert.Equal(t, []interface{}{oid, "tba"}, patch["speakers"])

	session := patch["sessions"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, oid, session["moduleId"])
	assert.Equal(t, "intro", session["title"])
}

func TestNormalizePatchLeavesNonStrings(t *testing.T) {
	patch := NormalizePatch(bson.M{"votes": float64(3), "isPublic": true, "note": nil})

	assert.Equal(t, float64(3), patch["votes"])
	assert.Equal(t, true, patch["isPublic"])
	assert.Nil(t, patch["note"])
}
