package repository

import (
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dcode-github/property_listing_card/constants"
)

// Query is a parsed listing request.
type Query struct {
	Filter bson.M
	Page   int
	Limit  int
}

func (q Query) Skip() int64 { return int64((q.Page - 1) * q.Limit) }

var (
	operatorMap = map[string]string{
		"eq": "$eq", "ne": "$ne", "gt": "$gt", "gte": "$gte", "lt": "$lt", "lte": "$lte",
	}
	numericFields = map[string]bool{
		"price": true, "bedrooms": true, "bathrooms": true, "parking": true, "area": true, "rating": true,
	}
	dateFields   = map[string]bool{"createdAt": true}
	boolFields   = map[string]bool{"featured": true}
	stringFields = map[string]string{
		"id": "_id", "title": "title", "type": "type", "location": "location", "createdBy": "createdBy",
	}
	regexFields = map[string]bool{"amenities": true}
	pageParams  = map[string]bool{"page": true, "limit": true}
)

// ParseQuery builds a Mongo filter and page window from URL parameters.
//
// Parameters take the form field=value or field[op]=value with op one of
// eq, ne, gt, gte, lt, lte. String fields accept comma separated lists,
// amenities match any of a comma separated list case-insensitively.
// Unknown fields and malformed values are ignored.
func ParseQuery(values url.Values) Query {
	page, limit := ParsePage(values)
	return Query{Filter: BuildFilter(values), Page: page, Limit: limit}
}

// ParsePage reads page (from 1) and limit (default and maximum from the
// pagination constants).
func ParsePage(values url.Values) (page, limit int) {
	page, limit = 1, constants.DefaultPageSize
	if p, err := strconv.Atoi(values.Get("page")); err == nil && p > 0 {
		page = p
	}
	if l, err := strconv.Atoi(values.Get("limit")); err == nil && l > 0 {
		limit = l
	}
	if limit > constants.MaxPageSize {
		limit = constants.MaxPageSize
	}
	return page, limit
}

func BuildFilter(values url.Values) bson.M {
	rawKeys := make([]string, 0, len(values))
	for k := range values {
		rawKeys = append(rawKeys, k)
	}
	sort.Strings(rawKeys)

	var andConditions []bson.M
	fieldSpecificConditions := make(map[string]bson.M)

	for _, rawKey := range rawKeys {
		queryValues := values[rawKey]
		if pageParams[rawKey] || len(queryValues) == 0 || queryValues[0] == "" {
			continue
		}

		fieldKey := rawKey
		mongoOperator := "$eq"

		if strings.Contains(rawKey, "[") && strings.HasSuffix(rawKey, "]") {
			parts := strings.SplitN(rawKey, "[", 2)
			fieldKey = parts[0]
			mapped, ok := operatorMap[strings.TrimSuffix(parts[1], "]")]
			if !ok {
				continue
			}
			mongoOperator = mapped
		}
		queryValue := queryValues[0]

		if regexFields[fieldKey] {
			var orClauses bson.A
			for _, term := range splitTrim(queryValue) {
				orClauses = append(orClauses, bson.M{fieldKey: bson.M{"$regex": primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}}})
			}
			if len(orClauses) > 0 {
				andConditions = append(andConditions, bson.M{"$or": orClauses})
			}
			continue
		}

		if column, ok := stringFields[fieldKey]; ok {
			terms := splitTrim(queryValue)
			if len(terms) == 0 {
				continue
			}
			if mongoOperator == "$ne" {
				andConditions = append(andConditions, bson.M{column: bson.M{"$nin": terms}})
			} else {
				andConditions = append(andConditions, bson.M{column: bson.M{"$in": terms}})
			}
			continue
		}

		if boolFields[fieldKey] {
			if b, err := strconv.ParseBool(strings.ToLower(queryValue)); err == nil {
				andConditions = append(andConditions, bson.M{fieldKey: bson.M{mongoOperator: b}})
			}
			continue
		}

		if numericFields[fieldKey] {
			if n, err := strconv.ParseFloat(queryValue, 64); err == nil {
				conditionsFor(fieldSpecificConditions, fieldKey)[mongoOperator] = n
			}
			continue
		}

		if dateFields[fieldKey] {
			if t, err := time.Parse("2006-01-02", queryValue); err == nil {
				conditionsFor(fieldSpecificConditions, fieldKey)[mongoOperator] = t
			}
		}
	}

	fields := make([]string, 0, len(fieldSpecificConditions))
	for f := range fieldSpecificConditions {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		andConditions = append(andConditions, bson.M{f: fieldSpecificConditions[f]})
	}

	filter := bson.M{}
	if len(andConditions) > 0 {
		filter["$and"] = andConditions
	}
	return filter
}

func conditionsFor(m map[string]bson.M, field string) bson.M {
	if _, ok := m[field]; !ok {
		m[field] = bson.M{}
	}
	return m[field]
}

func splitTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
