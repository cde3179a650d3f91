package zeppelin

// RankBy is a BM25 scoring expression in the Zeppelin wire format: a nested
// array where position encodes meaning. Any constructor's output is a valid
// child of any other, so weighted combinations nest arbitrarily.
type RankBy []any

// BM25 scores a single field against the query text:
// [field, "BM25", query].
func BM25(field, query string) RankBy {
	return RankBy{field, "BM25", query}
}

// Sum adds the scores of the child expressions: ["Sum", [exprs...]].
func Sum(exprs ...RankBy) RankBy {
	return RankBy{"Sum", children(exprs)}
}

// Max takes the highest score among the child expressions:
// ["Max", [exprs...]].
func Max(exprs ...RankBy) RankBy {
	return RankBy{"Max", children(exprs)}
}

// Product scales a child expression by weight: ["Product", weight, expr].
func Product(weight float64, expr RankBy) RankBy {
	return RankBy{"Product", weight, expr}
}

func children(exprs []RankBy) []any {
	out := make([]any, len(exprs))
	for i, e := range exprs {
		out[i] = e
	}
	return out
}
