package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/genialityco/events-api/query"
)

func TestResultPaginationMath(t *testing.T) {
	s := &Store[bson.M]{}

	cases := []struct {
		name  string
		total int64
		limit int64
		pages int64
	}{
		{"exact multiple", 30, 10, 3},
		{"partial last page", 31, 10, 4},
		{"fewer than one page", 4, 10, 1},
		{"empty", 0, 10, 0},
		{"zero limit", 7, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := s.result(nil, tc.total, query.Params{Page: 2, Limit: tc.limit})
			assert.Equal(t, tc.total, r.TotalItems)
			assert.Equal(t, tc.pages, r.TotalPages)
			assert.EqualValues(t, 2, r.CurrentPage)
		})
	}
}

func TestResultItemsNeverNil(t *testing.T) {
	s := &Store[bson.M]{}
	r := s.result([]bson.M{}, 0, query.Params{Page: 1, Limit: 10})
	assert.NotNil(t, r.Items)
	assert.Empty(t, r.Items)
}
