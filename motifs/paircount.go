package motifs

// pairKey addresses one entry of a co-occurrence table. Canonical form
// keeps a < b, so each unordered pair has exactly one entry.
type pairKey struct {
	a, b int
}

// pairCounts is a sparse symmetric co-occurrence table: entry {a,b} holds
// the number of opposite-side nodes adjacent to both a and b. Only pairs
// seen at least once are materialized; duplicate insertions sum. Totals
// are int64 so derivation stays exact integer arithmetic throughout.
type pairCounts struct {
	m map[pairKey]int64
}

// newPairCounts returns an empty table.
func newPairCounts() *pairCounts {
	return &pairCounts{m: make(map[pairKey]int64)}
}

// add accumulates one co-occurrence for the unordered pair {a, b}.
func (p *pairCounts) add(a, b int) {
	if a > b {
		a, b = b, a
	}
	p.m[pairKey{a: a, b: b}]++
}

// len reports the number of materialized pairs.
func (p *pairCounts) len() int {
	return len(p.m)
}
