package query

import (
	"strings"

	"github.com/mongodb/grip"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// NeedsPipeline reports whether a request requires an aggregation pipeline
// instead of a plain find: population was requested, or a filter reaches
// across a relation into another collection.
func NeedsPipeline(p Params, rels Relations) bool {
	if len(p.Populate) > 0 {
		return true
	}
	for _, f := range p.Filters {
		if _, ok := foreignPrefix(f.Field, rels); ok {
			return true
		}
	}
	return false
}

// Pipeline builds the item-fetching aggregation for a search request:
// local match, lookups for populated and cross-collection-filtered
// relations, foreign match, then sort/skip/limit.
func Pipeline(p Params, rels Relations) mongo.Pipeline {
	stages := coreStages(p, rels)
	stages = append(stages, bson.D{{Key: "$sort", Value: BuildSort(p.Sorters)}})
	stages = append(stages, bson.D{{Key: "$skip", Value: p.Skip}})
	stages = append(stages, bson.D{{Key: "$limit", Value: p.Limit}})
	return stages
}

// CountPipeline re-runs the same match/join stages with a terminal $count.
// It executes separately from the item fetch, so the two are not
// transactionally consistent under concurrent writes.
func CountPipeline(p Params, rels Relations) mongo.Pipeline {
	stages := coreStages(p, rels)
	stages = append(stages, bson.D{{Key: "$count", Value: "totalItems"}})
	return stages
}

// PopulateOne builds the pipeline for a single-document fetch with every
// registered reference resolved.
func PopulateOne(id interface{}, rels Relations) mongo.Pipeline {
	stages := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"_id": id}}},
	}
	return append(stages, populateStages(rels.Refs, rels)...)
}

// BuildSort maps sorters onto a Mongo sort document, defaulting to newest
// first.
func BuildSort(sorters []Sorter) bson.D {
	if len(sorters) == 0 {
		return bson.D{{Key: "createdAt", Value: -1}}
	}
	sort := bson.D{}
	for _, s := range sorters {
		dir := 1
		if s.Desc {
			dir = -1
		}
		sort = append(sort, bson.E{Key: s.Field, Value: dir})
	}
	return sort
}

func coreStages(p Params, rels Relations) mongo.Pipeline {
	filter := BuildFilter(p.Filters)
	local, foreign, needed := splitMatch(filter, rels)
	pops := resolvePopulate(p.Populate, needed, rels)

	stages := mongo.Pipeline{}
	if len(local) > 0 {
		stages = append(stages, bson.D{{Key: "$match", Value: local}})
	}
	stages = append(stages, populateStages(pops, rels)...)
	if len(foreign) > 0 {
		stages = append(stages, bson.D{{Key: "$match", Value: foreign}})
	}
	return stages
}

// splitMatch partitions a filter document into predicates on local fields
// and predicates on joined fields, and reports which relations the foreign
// predicates need joined even when not explicitly populated.
func splitMatch(filter bson.M, rels Relations) (local, foreign bson.M, needed []string) {
	local = bson.M{}
	foreign = bson.M{}
	seen := map[string]bool{}
	for field, predicate := range filter {
		if prefix, ok := foreignPrefix(field, rels); ok {
			foreign[field] = predicate
			if !seen[prefix] {
				seen[prefix] = true
				needed = append(needed, prefix)
			}
			continue
		}
		local[field] = predicate
	}
	return local, foreign, needed
}

// foreignPrefix reports whether a dotted filter field reaches through a
// registered relation, e.g. "eventId.name" through the "eventId" relation.
// Only the first segment is consulted, so paths through relations nested in
// embedded arrays ("sessions.speakers.names") are classified local and will
// not match: the stored elements hold bare ids, not joined documents.
func foreignPrefix(field string, rels Relations) (string, bool) {
	i := strings.Index(field, ".")
	if i < 0 {
		return "", false
	}
	prefix := field[:i]
	if _, ok := rels.Find(prefix); ok {
		return prefix, true
	}
	return "", false
}

// resolvePopulate maps requested populate paths (plus relations needed by
// cross-collection filters) onto the entity's relation registry. Unknown
// paths are skipped with a warning; the rest of the pipeline proceeds.
func resolvePopulate(requested, needed []string, rels Relations) []Relation {
	var out []Relation
	seen := map[string]bool{}
	add := func(path string, complain bool) {
		if seen[path] {
			return
		}
		r, ok := rels.Find(path)
		if !ok {
			if complain {
				grip.Warningf("skipping populate of %q: no registered relation", path)
			}
			return
		}
		seen[path] = true
		out = append(out, r)
	}
	for _, path := range needed {
		add(path, false)
	}
	for _, path := range requested {
		add(path, true)
	}
	return out
}

// populateStages synthesizes the join stages for the resolved relations.
// Top-level references become a $lookup (plus $unwind for scalar refs).
// References inside an embedded array are handled by tagging each parent
// with its id, unwinding the array, joining each element's references, and
// regrouping by the saved id to reconstitute the array.
func populateStages(pops []Relation, rels Relations) mongo.Pipeline {
	var top, nested []Relation
	for _, r := range pops {
		if arrayPrefix(r.Path, rels) == "" {
			top = append(top, r)
		} else {
			nested = append(nested, r)
		}
	}

	stages := mongo.Pipeline{}
	for _, r := range top {
		stages = append(stages, lookupStage(r.Target(), r.Path, r.Path))
		if !r.Many {
			stages = append(stages, unwindStage(r.Path))
		}
	}
	if len(nested) > 0 {
		stages = append(stages, nestedPopulateStages(nested, rels)...)
	}
	return stages
}

func nestedPopulateStages(nested []Relation, rels Relations) mongo.Pipeline {
	outer := rels.Arrays[0]

	stages := mongo.Pipeline{
		bson.D{{Key: "$addFields", Value: bson.M{"__docId": "$_id"}}},
		unwindStage(outer),
	}

	var cleanup bson.A
	for _, r := range nested {
		if arrayPrefix(r.Path, rels) == outer {
			// Reference directly inside the unwound array element.
			stages = append(stages, lookupStage(r.Target(), r.Path, r.Path))
			if !r.Many {
				stages = append(stages, unwindStage(r.Path))
			}
			continue
		}
		// Reference inside a second-level array (e.g. sub-sessions): join
		// every id reachable from this element into a scratch field, then
		// remap each inner element's references out of it.
		tmp := "__" + strings.ReplaceAll(r.Path, ".", "_")
		cleanup = append(cleanup, tmp)
		stages = append(stages, lookupStage(r.Target(), r.Path, tmp))
		stages = append(stages, remapStage(r, tmp, rels))
	}
	if len(cleanup) > 0 {
		stages = append(stages, bson.D{{Key: "$unset", Value: cleanup}})
	}

	stages = append(stages,
		bson.D{{Key: "$group", Value: bson.M{
			"_id":     "$__docId",
			"__root":  bson.M{"$first": "$$ROOT"},
			"__elems": bson.M{"$push": "$" + outer},
		}}},
		bson.D{{Key: "$replaceRoot", Value: bson.M{
			"newRoot": bson.M{"$mergeObjects": bson.A{"$__root", bson.M{outer: "$__elems"}}},
		}}},
		bson.D{{Key: "$unset", Value: bson.A{"__docId"}}},
	)
	return stages
}

// remapStage rewrites one reference field of a second-level array element,
// replacing bare ids with the joined documents collected in tmp.
func remapStage(r Relation, tmp string, rels Relations) bson.D {
	inner := arrayPrefix(r.Path, rels)           // e.g. "sessions.subSessions"
	leaf := r.Path[len(inner)+1:]                // e.g. "speakers"
	elemRef := "$$el." + leaf

	var resolved interface{}
	matches := bson.M{"$filter": bson.M{
		"input": "$" + tmp,
		"as":    "doc",
		"cond":  bson.M{"$in": bson.A{"$$doc._id", bson.M{"$ifNull": bson.A{elemRef, bson.A{}}}}},
	}}
	if r.Many {
		resolved = matches
	} else {
		resolved = bson.M{"$arrayElemAt": bson.A{
			bson.M{"$filter": bson.M{
				"input": "$" + tmp,
				"as":    "doc",
				"cond":  bson.M{"$eq": bson.A{"$$doc._id", elemRef}},
			}},
			0,
		}}
	}

	return bson.D{{Key: "$set", Value: bson.M{
		inner: bson.M{"$map": bson.M{
			"input": bson.M{"$ifNull": bson.A{"$" + inner, bson.A{}}},
			"as":    "el",
			"in":    bson.M{"$mergeObjects": bson.A{"$$el", bson.M{leaf: resolved}}},
		}},
	}}}
}

// arrayPrefix returns the longest registered embedded-array path that
// prefixes a relation path, or "" for top-level references.
func arrayPrefix(path string, rels Relations) string {
	best := ""
	for _, a := range rels.Arrays {
		if strings.HasPrefix(path, a+".") && len(a) > len(best) {
			best = a
		}
	}
	return best
}

func lookupStage(from, localField, as string) bson.D {
	return bson.D{{Key: "$lookup", Value: bson.M{
		"from":         from,
		"localField":   localField,
		"foreignField": "_id",
		"as":           as,
	}}}
}

func unwindStage(path string) bson.D {
	return bson.D{{Key: "$unwind", Value: bson.M{
		"path":                       "$" + path,
		"preserveNullAndEmptyArrays": true,
	}}}
}
