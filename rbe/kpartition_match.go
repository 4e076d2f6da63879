package rbe

import "context"

// MatchPartitioned tries every k-way split of items (one of k candidate
// expressions per bucket) and returns the first assignment where every
// bucket's items independently match that bucket's own candidate
// expression. candidates[i] is tried as bucket i.
//
// This is the disambiguation And's derivative order-independence rule
// leaves open: MatchBag on the combined expression only decides whether
// some valid assignment of arcs to constraints exists, not which one, so
// a caller that needs to know which arc belongs to which constraint (to
// emit the right pending obligation against that constraint's own value
// shape) enumerates candidate partitions with KPartition instead.
//
// ok is false if no assignment makes every bucket match; assignment and
// results are both nil in that case. maxSteps <= 0 selects
// DefaultMaxSteps, same as MatchBag.
func MatchPartitioned(ctx context.Context, candidates []Expr, items []PendingItem, maxSteps int) ([]int, []MatchResult, bool, error) {
	k := len(candidates)
	if k == 0 {
		return nil, nil, len(items) == 0, nil
	}

	part := NewKPartition(len(items), k, nil)

	var (
		foundAssignment []int
		foundResults    []MatchResult
		found           bool
		loopErr         error
	)

	part.Each(func(assignment []int) bool {
		buckets := Buckets(k, assignment)
		results := make([]MatchResult, k)
		for bi, itemIdxs := range buckets {
			bucketItems := make([]PendingItem, len(itemIdxs))
			for j, itemIdx := range itemIdxs {
				bucketItems[j] = items[itemIdx]
			}
			res, err := MatchBag(ctx, candidates[bi], bucketItems, maxSteps)
			if err != nil {
				loopErr = err
				return false
			}
			results[bi] = res
			if !res.Matched {
				return true // keep searching other partitions
			}
		}
		found = true
		foundAssignment = append([]int(nil), assignment...)
		foundResults = results
		return false
	})

	if loopErr != nil {
		return nil, nil, false, loopErr
	}
	if !found {
		return nil, nil, false, nil
	}
	return foundAssignment, foundResults, true, nil
}
