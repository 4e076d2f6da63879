package rbe

// KPartition enumerates every way to split n items into k labeled buckets
// (bucket index 0..k-1 per item), filtering out assignments where some
// item is placed in a bucket it is not a member of. This is a base-k
// odometer over [0,k)^n, not cardinality-pruned backtracking: every
// candidate assignment is generated and then checked, exactly as the
// reference k-partition search does (it relies on n and k staying small
// enough — MatchPartitioned passes the number of items as n and the number
// of candidate expressions as k).
type KPartition struct {
	n, k int
	// memberOf[i] is the set of buckets item i is allowed to land in. A
	// nil entry means item i may go in any bucket.
	memberOf []map[int]bool
}

// NewKPartition builds an enumerator for n items over k buckets.
// memberOf may be nil or have fewer than n entries; missing entries allow
// any bucket.
func NewKPartition(n, k int, memberOf []map[int]bool) *KPartition {
	return &KPartition{n: n, k: k, memberOf: memberOf}
}

func (p *KPartition) allowed(item, bucket int) bool {
	if item >= len(p.memberOf) || p.memberOf[item] == nil {
		return true
	}
	return p.memberOf[item][bucket]
}

// Each calls visit once for every valid assignment (one bucket index per
// item, 0 <= assignment[i] < k) satisfying memberOf, in lexicographic
// odometer order. visit must not retain the slice it is given; Each
// reuses the same backing array across calls. If visit returns false,
// enumeration stops early.
func (p *KPartition) Each(visit func(assignment []int) bool) {
	if p.n == 0 {
		visit(nil)
		return
	}
	if p.k <= 0 {
		return
	}

	digits := make([]int, p.n)
	for {
		if p.satisfies(digits) {
			if !visit(digits) {
				return
			}
		}
		if !p.increment(digits) {
			return
		}
	}
}

func (p *KPartition) satisfies(digits []int) bool {
	for i, b := range digits {
		if !p.allowed(i, b) {
			return false
		}
	}
	return true
}

// increment advances digits to the next base-k odometer value, returning
// false once every combination has been produced.
func (p *KPartition) increment(digits []int) bool {
	for i := len(digits) - 1; i >= 0; i-- {
		digits[i]++
		if digits[i] < p.k {
			return true
		}
		digits[i] = 0
	}
	return false
}

// Buckets groups item indices 0..n-1 by the bucket assignment produced by
// Each, for callers that want the partition itself rather than the raw
// assignment vector.
func Buckets(k int, assignment []int) [][]int {
	buckets := make([][]int, k)
	for i, b := range assignment {
		buckets[b] = append(buckets[b], i)
	}
	return buckets
}
