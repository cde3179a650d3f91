package zeppelin

// Filter is a boolean/comparison predicate tree in the Zeppelin wire format.
// Build filters with the package-level constructors and compose them with
// And, Or and Not; the client forwards values verbatim without validation.
type Filter map[string]any

// Eq matches documents whose field equals value.
func Eq(field string, value any) Filter {
	return Filter{"op": "eq", "field": field, "value": value}
}

// NotEq matches documents whose field does not equal value.
func NotEq(field string, value any) Filter {
	return Filter{"op": "not_eq", "field": field, "value": value}
}

// RangeBounds holds optional numeric range boundaries. Nil bounds are left
// out of the wire format entirely.
type RangeBounds struct {
	GT  *float64
	GTE *float64
	LT  *float64
	LTE *float64
}

// Float64 returns a pointer to v, for use in RangeBounds literals.
func Float64(v float64) *float64 { return &v }

// Range matches documents whose numeric field falls within the supplied
// bounds. Only the bounds actually set appear as keys.
func Range(field string, bounds RangeBounds) Filter {
	f := Filter{"op": "range", "field": field}
	if bounds.GTE != nil {
		f["gte"] = *bounds.GTE
	}
	if bounds.LTE != nil {
		f["lte"] = *bounds.LTE
	}
	if bounds.GT != nil {
		f["gt"] = *bounds.GT
	}
	if bounds.LT != nil {
		f["lt"] = *bounds.LT
	}
	return f
}

// In matches documents whose field is one of values.
func In(field string, values ...any) Filter {
	if values == nil {
		values = []any{}
	}
	return Filter{"op": "in", "field": field, "values": values}
}

// NotIn matches documents whose field is none of values.
func NotIn(field string, values ...any) Filter {
	if values == nil {
		values = []any{}
	}
	return Filter{"op": "not_in", "field": field, "values": values}
}

// Contains matches documents whose array field contains value.
func Contains(field string, value any) Filter {
	return Filter{"op": "contains", "field": field, "value": value}
}

// ContainsAllTokens matches documents whose field contains every token,
// in any order.
func ContainsAllTokens(field string, tokens ...string) Filter {
	if tokens == nil {
		tokens = []string{}
	}
	return Filter{"op": "contains_all_tokens", "field": field, "tokens": tokens}
}

// ContainsTokenSequence matches documents whose field contains the tokens
// as an exact phrase: adjacent and in order.
func ContainsTokenSequence(field string, tokens ...string) Filter {
	if tokens == nil {
		tokens = []string{}
	}
	return Filter{"op": "contains_token_sequence", "field": field, "tokens": tokens}
}

// And matches documents satisfying every sub-filter.
func And(filters ...Filter) Filter {
	if filters == nil {
		filters = []Filter{}
	}
	return Filter{"op": "and", "filters": filters}
}

// Or matches documents satisfying any sub-filter.
func Or(filters ...Filter) Filter {
	if filters == nil {
		filters = []Filter{}
	}
	return Filter{"op": "or", "filters": filters}
}

// Not negates a sub-filter.
func Not(filter Filter) Filter {
	return Filter{"op": "not", "filter": filter}
}
