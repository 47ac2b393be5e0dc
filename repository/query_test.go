package repository

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildFilterEmpty(t *testing.T) {
	assert.Equal(t, bson.M{}, BuildFilter(url.Values{}))
	assert.Equal(t, bson.M{}, BuildFilter(url.Values{"page": {"2"}, "limit": {"5"}, "unknown": {"x"}}))
}

func TestBuildFilterNumericRange(t *testing.T) {
	f := BuildFilter(url.Values{
		"price[gte]": {"1000"},
		"price[lt]":  {"5000"},
		"bedrooms":   {"3"},
	})

	and, ok := f["$and"].([]bson.M)
	require.True(t, ok)
	assert.Equal(t, []bson.M{
		{"bedrooms": bson.M{"$eq": 3.0}},
		{"price": bson.M{"$gte": 1000.0, "$lt": 5000.0}},
	}, and)
}

func TestBuildFilterStringsBoolsAndDates(t *testing.T) {
	f := BuildFilter(url.Values{
		"type":           {"Flat, Duplex"},
		"location[ne]":   {"Ikeja"},
		"id":             {"p1"},
		"featured":       {"TRUE"},
		"createdAt[gte]": {"2024-01-31"},
	})

	and := f["$and"].([]bson.M)
	assert.Contains(t, and, bson.M{"type": bson.M{"$in": []string{"Flat", "Duplex"}}})
	assert.Contains(t, and, bson.M{"location": bson.M{"$nin": []string{"Ikeja"}}})
	assert.Contains(t, and, bson.M{"_id": bson.M{"$in": []string{"p1"}}})
	assert.Contains(t, and, bson.M{"featured": bson.M{"$eq": true}})
	assert.Contains(t, and, bson.M{"createdAt": bson.M{"$gte": time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)}})
	assert.Len(t, and, 5)
}

func TestBuildFilterAmenitiesAreEscapedRegex(t *testing.T) {
	f := BuildFilter(url.Values{"amenities": {"pool, wi-fi (5g)"}})

	and := f["$and"].([]bson.M)
	require.Len(t, and, 1)
	assert.Equal(t, bson.M{"$or": bson.A{
		bson.M{"amenities": bson.M{"$regex": primitive.Regex{Pattern: "pool", Options: "i"}}},
		bson.M{"amenities": bson.M{"$regex": primitive.Regex{Pattern: `wi-fi \(5g\)`, Options: "i"}}},
	}}, and[0])
}

func TestBuildFilterIgnoresMalformedInput(t *testing.T) {
	f := BuildFilter(url.Values{
		"price[between]": {"1"},
		"rating":         {"high"},
		"featured":       {"maybe"},
		"createdAt":      {"yesterday"},
		"title":          {" , "},
	})
	assert.Equal(t, bson.M{}, f)
}

func TestParsePage(t *testing.T) {
	cases := []struct {
		name      string
		values    url.Values
		page, lim int
	}{
		{"defaults", url.Values{}, 1, 10},
		{"explicit", url.Values{"page": {"3"}, "limit": {"20"}}, 3, 20},
		{"capped", url.Values{"limit": {"1000"}}, 1, 100},
		{"garbage", url.Values{"page": {"-1"}, "limit": {"x"}}, 1, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page, limit := ParsePage(tc.values)
			assert.Equal(t, tc.page, page)
			assert.Equal(t, tc.lim, limit)
		})
	}
}

func TestQuerySkip(t *testing.T) {
	q := ParseQuery(url.Values{"page": {"3"}, "limit": {"10"}})
	assert.Equal(t, int64(20), q.Skip())
}
