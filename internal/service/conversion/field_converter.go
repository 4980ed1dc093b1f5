package conversion

import (
	"math"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// ConvertFields computes the converted values for every allow-listed
// monetary field present in the document with a strictly positive numeric
// value. Pure and deterministic: no I/O, no hidden state.
//
// Fields that are absent, non-numeric, zero or negative are left out of
// both maps entirely, so the two key sets always match and an untouched
// field can never leak into the audit snapshot. An empty result means the
// caller must skip both the write and the history record.
func ConvertFields(doc bson.M, fields []string, rate float64) (updates, originals map[string]float64) {

	for _, field := range fields {
		value, ok := lookupNumeric(doc, field)
		if !ok || value <= 0 {
			continue
		}

		if updates == nil {
			updates = make(map[string]float64)
			originals = make(map[string]float64)
		}

		originals[field] = value
		updates[field] = math.Round(value * rate)
	}

	return updates, originals
}

// lookupNumeric resolves a possibly dotted field name against the document,
// supporting one level of nesting (e.g. "metadata.amount").
func lookupNumeric(doc bson.M, field string) (float64, bool) {
	parent, child, nested := strings.Cut(field, ".")
	if !nested {
		return toNumber(doc[field])
	}

	sub, ok := toDocument(doc[parent])
	if !ok {
		return 0, false
	}
	return toNumber(sub[child])
}

// toDocument normalizes the document shapes the driver may hand back for a
// nested value.
func toDocument(value interface{}) (bson.M, bool) {
	switch v := value.(type) {
	case bson.M:
		return v, true
	case map[string]interface{}:
		return v, true
	case bson.D:
		m := make(bson.M, len(v))
		for _, elem := range v {
			m[elem.Key] = elem.Value
		}
		return m, true
	default:
		return nil, false
	}
}

func toNumber(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}
