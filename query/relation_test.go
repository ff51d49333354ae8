package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferCollection(t *testing.T) {
	cases := map[string]string{
		"eventId":        "events",
		"organizationId": "organizations",
		"moduleId":       "modules",
		"categoryId":     "categories",
		"speakers":       "speakers",
		"voters":         "voters",
	}
	for field, want := range cases {
		assert.Equal(t, want, InferCollection(field), field)
	}
}

func TestRelationTarget(t *testing.T) {
	assert.Equal(t, "events", Relation{Path: "eventId"}.Target())
	assert.Equal(t, "speakers", Relation{Path: "sessions.subSessions.speakers", Many: true}.Target())
	assert.Equal(t, "users", Relation{Path: "voters", Collection: "users", Many: true}.Target())
}

func TestRelationsFind(t *testing.T) {
	rels := Relations{Refs: []Relation{{Path: "eventId"}, {Path: "sessions.speakers", Many: true}}}

	r, ok := rels.Find("sessions.speakers")
	assert.True(t, ok)
	assert.True(t, r.Many)

	_, ok = rels.Find("ownerId")
	assert.False(t, ok)
}

func TestRelationsValidate(t *testing.T) {
	known := map[string]bool{"events": true, "speakers": true}

	ok := Relations{Refs: []Relation{{Path: "eventId"}, {Path: "speakers", Many: true}}}
	assert.NoError(t, ok.Validate(known))

	bad := Relations{Refs: []Relation{{Path: "sponsorId"}}}
	err := bad.Validate(known)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "sponsorId")
	assert.Contains(t, err.Error(), "sponsors")
}
