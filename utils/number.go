package utils

import (
	"math"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
)

// coercion priority for object-shaped counts
var countKeys = []string{"available", "count", "total"}

// CoerceCount converts a heterogeneous count encoding into a non-negative
// number. Accepted encodings: a bare number, an object exposing
// available/count/total (first present wins, in that order), or a numeric
// string. Anything unparseable, NaN or infinite collapses to the
// fallback; negative values clamp to zero.
func CoerceCount(v interface{}, fallback float64) float64 {
	switch n := v.(type) {
	case nil:
		return fallback
	case float64:
		return sanitize(n, fallback)
	case float32:
		return sanitize(float64(n), fallback)
	case int:
		return sanitize(float64(n), fallback)
	case int32:
		return sanitize(float64(n), fallback)
	case int64:
		return sanitize(float64(n), fallback)
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return fallback
		}
		return sanitize(f, fallback)
	case map[string]interface{}:
		return coerceObject(n, fallback)
	case bson.M:
		return coerceObject(n, fallback)
	case bson.D:
		m := map[string]interface{}{}
		for _, e := range n {
			m[e.Key] = e.Value
		}
		return coerceObject(m, fallback)
	}
	return fallback
}

func coerceObject(m map[string]interface{}, fallback float64) float64 {
	for _, k := range countKeys {
		if v, ok := m[k]; ok {
			return CoerceCount(v, fallback)
		}
	}
	return fallback
}

func sanitize(f, fallback float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fallback
	}
	if f < 0 {
		return 0
	}
	return f
}

// CoerceBool converts loosely-typed boolean encodings (bool, "true"/"false",
// nonzero number) with a fallback for anything else.
func CoerceBool(v interface{}, fallback bool) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		parsed, err := strconv.ParseBool(b)
		if err != nil {
			return fallback
		}
		return parsed
	case float64, float32, int, int32, int64:
		return CoerceCount(v, 0) != 0
	}
	return fallback
}
