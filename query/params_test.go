package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDefaults(t *testing.T) {
	p := Parse(url.Values{})

	assert.EqualValues(t, 1, p.Page)
	assert.EqualValues(t, 10, p.Limit)
	assert.EqualValues(t, 0, p.Skip)
	assert.Empty(t, p.Filters)
	assert.Empty(t, p.Sorters)
	assert.Empty(t, p.Populate)
}

func TestParsePagination(t *testing.T) {
	cases := []struct {
		name              string
		query             string
		page, limit, skip int64
	}{
		{"page and limit", "page=3&limit=20", 3, 20, 40},
		{"current and pageSize", "current=2&pageSize=5", 2, 5, 5},
		{"current wins over page", "current=2&page=9&pageSize=5&limit=50", 2, 5, 5},
		{"legacy start and end", "_start=20&_end=30", 3, 10, 20},
		{"inverted range ignored", "_start=30&_end=20", 1, 10, 0},
		{"non-numeric ignored", "page=abc&limit=-4", 1, 10, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			values, err := url.ParseQuery(tc.query)
			assert.NoError(t, err)

			p := Parse(values)
			assert.Equal(t, tc.page, p.Page)
			assert.Equal(t, tc.limit, p.Limit)
			assert.Equal(t, tc.skip, p.Skip)
		})
	}
}

func TestParseIndexedFilters(t *testing.T) {
	values, err := url.ParseQuery(
		"filters[0][field]=name&filters[0][operator]=contains&filters[0][value]=gala" +
			"&filters[1][field]=votes&filters[1][operator]=gte&filters[1][value]=5")
	assert.NoError(t, err)

	p := Parse(values)
	assert.Equal(t, []Filter{
		{Field: "name", Operator: "contains", Value: "gala"},
		{Field: "votes", Operator: "gte", Value: "5"},
	}, p.Filters)
}

func TestParseFilterMissingOperatorDefaultsEq(t *testing.T) {
	values, err := url.ParseQuery("filters[0][field]=title&filters[0][value]=keynote")
	assert.NoError(t, err)

	p := Parse(values)
	assert.Equal(t, []Filter{{Field: "title", Operator: "eq", Value: "keynote"}}, p.Filters)
}

func TestParseIncompleteFilterSkipped(t *testing.T) {
	values, err := url.ParseQuery("filters[0][field]=title&filters[1][field]=x&filters[1][value]=y")
	assert.NoError(t, err)

	p := Parse(values)
	assert.Equal(t, []Filter{{Field: "x", Operator: "eq", Value: "y"}}, p.Filters)
}

func TestParseUnknownKeysBecomeEqFilters(t *testing.T) {
	values, err := url.ParseQuery("eventId=64adf0a1b2c3d4e5f6a7b8c9&page=2&populate=eventId")
	assert.NoError(t, err)

	p := Parse(values)
	assert.Equal(t, []Filter{
		{Field: "eventId", Operator: "eq", Value: "64adf0a1b2c3d4e5f6a7b8c9"},
	}, p.Filters)
	assert.Equal(t, []string{"eventId"}, p.Populate)
}

func TestParseIndexedSorters(t *testing.T) {
	values, err := url.ParseQuery(
		"sorters[0][field]=startTime&sorters[0][order]=asc" +
			"&sorters[1][field]=name&sorters[1][order]=DESC")
	assert.NoError(t, err)

	p := Parse(values)
	assert.Equal(t, []Sorter{
		{Field: "startTime", Desc: false},
		{Field: "name", Desc: true},
	}, p.Sorters)
}

func TestParseLegacySortPair(t *testing.T) {
	values, err := url.ParseQuery("_sort=votes&_order=desc")
	assert.NoError(t, err)

	p := Parse(values)
	assert.Equal(t, []Sorter{{Field: "votes", Desc: true}}, p.Sorters)
}

func TestParseIndexedSortersWinOverLegacy(t *testing.T) {
	values, err := url.ParseQuery("sorters[0][field]=name&sorters[0][order]=asc&_sort=votes&_order=desc")
	assert.NoError(t, err)

	p := Parse(values)
	assert.Equal(t, []Sorter{{Field: "name", Desc: false}}, p.Sorters)
}

func TestParsePopulateCommaSplit(t *testing.T) {
	values := url.Values{"populate": []string{"eventId, organizationId", "sessions.speakers"}}

	p := Parse(values)
	assert.Equal(t, []string{"eventId", "organizationId", "sessions.speakers"}, p.Populate)
}
