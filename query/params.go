package query

import (
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Filter is one {field, operator, value} predicate from a search request.
type Filter struct {
	Field    string
	Operator string
	Value    string
}

// Sorter is one {field, direction} entry from a search request.
type Sorter struct {
	Field string
	Desc  bool
}

// Params is the normalized form of a list request's query string.
type Params struct {
	Page     int64
	Limit    int64
	Skip     int64
	Filters  []Filter
	Sorters  []Sorter
	Populate []string
}

// Control parameters recognized by the normalizer. Anything else becomes an
// implicit eq filter on that field name.
var controlKeys = map[string]bool{
	"_start": true, "_end": true, "_sort": true, "_order": true,
	"page": true, "limit": true, "current": true, "pageSize": true,
	"sorters": true, "filters": true, "populate": true,
}

var (
	filterKeyRe = regexp.MustCompile(`^filters\[(\d+)\]\[(field|operator|value)\]$`)
	sorterKeyRe = regexp.MustCompile(`^sorters\[(\d+)\]\[(field|order)\]$`)
	indexedRe   = regexp.MustCompile(`^(filters|sorters)\[\d+\]\[\w+\]$`)
)

// Parse normalizes the historically-accreted pagination/filter/sort shapes
// into a single Params value. Recognized shapes, in priority order:
// current/pageSize, page/limit, legacy _start/_end. Filters arrive either as
// filters[i][field|operator|value] triples or as bare unknown keys (implicit
// eq). Sorters as sorters[i][field|order] or the legacy _sort/_order pair.
func Parse(values url.Values) Params {
	p := Params{Page: 1, Limit: 10}

	page := intParam(values, "current", "page")
	limit := intParam(values, "pageSize", "limit")

	switch {
	case page > 0 || limit > 0:
		if page > 0 {
			p.Page = page
		}
		if limit > 0 {
			p.Limit = limit
		}
		p.Skip = (p.Page - 1) * p.Limit
	case values.Get("_start") != "" && values.Get("_end") != "":
		start := intParam(values, "_start")
		end := intParam(values, "_end")
		if end > start {
			p.Skip = start
			p.Limit = end - start
			p.Page = start/p.Limit + 1
		}
	}

	p.Filters = parseFilters(values)
	p.Sorters = parseSorters(values)
	p.Populate = parsePopulate(values)

	return p
}

func parseFilters(values url.Values) []Filter {
	indexed := map[int]*Filter{}
	for key := range values {
		m := filterKeyRe.FindStringSubmatch(key)
		if m == nil {
			continue
		}
		i, _ := strconv.Atoi(m[1])
		f, ok := indexed[i]
		if !ok {
			f = &Filter{Operator: "eq"}
			indexed[i] = f
		}
		switch m[2] {
		case "field":
			f.Field = values.Get(key)
		case "operator":
			f.Operator = values.Get(key)
		case "value":
			f.Value = values.Get(key)
		}
	}

	order := make([]int, 0, len(indexed))
	for i := range indexed {
		order = append(order, i)
	}
	sort.Ints(order)

	var filters []Filter
	for _, i := range order {
		f := indexed[i]
		if f.Field == "" || f.Value == "" {
			continue
		}
		filters = append(filters, *f)
	}

	// Unknown top-level keys are implicit equality filters.
	extras := make([]string, 0)
	for key := range values {
		if controlKeys[key] || indexedRe.MatchString(key) {
			continue
		}
		extras = append(extras, key)
	}
	sort.Strings(extras)
	for _, key := range extras {
		if v := values.Get(key); v != "" {
			filters = append(filters, Filter{Field: key, Operator: "eq", Value: v})
		}
	}

	return filters
}

func parseSorters(values url.Values) []Sorter {
	indexed := map[int]*Sorter{}
	for key := range values {
		m := sorterKeyRe.FindStringSubmatch(key)
		if m == nil {
			continue
		}
		i, _ := strconv.Atoi(m[1])
		s, ok := indexed[i]
		if !ok {
			s = &Sorter{}
			indexed[i] = s
		}
		switch m[2] {
		case "field":
			s.Field = values.Get(key)
		case "order":
			s.Desc = strings.EqualFold(values.Get(key), "desc")
		}
	}

	order := make([]int, 0, len(indexed))
	for i := range indexed {
		order = append(order, i)
	}
	sort.Ints(order)

	var sorters []Sorter
	for _, i := range order {
		if s := indexed[i]; s.Field != "" {
			sorters = append(sorters, *s)
		}
	}

	if len(sorters) == 0 {
		if field := values.Get("_sort"); field != "" && values.Get("_order") != "" {
			sorters = append(sorters, Sorter{
				Field: field,
				Desc:  strings.EqualFold(values.Get("_order"), "desc"),
			})
		}
	}

	return sorters
}

func parsePopulate(values url.Values) []string {
	var fields []string
	for _, raw := range values["populate"] {
		for _, f := range strings.Split(raw, ",") {
			if f = strings.TrimSpace(f); f != "" {
				fields = append(fields, f)
			}
		}
	}
	return fields
}

func intParam(values url.Values, keys ...string) int64 {
	for _, key := range keys {
		if raw := values.Get(key); raw != "" {
			if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n >= 0 {
				return n
			}
		}
	}
	return 0
}
