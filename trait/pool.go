package trait

// Pool is an ordered multiset of traits. Order is first-seen order and is
// only significant for the deterministic ordering of generated candidates.
type Pool []Trait

// NewPool copies ts into a pool.
func NewPool(ts ...Trait) Pool {
	out := make(Pool, len(ts))
	copy(out, ts)

	return out
}

// Contains reports whether at least one copy of t remains.
func (p Pool) Contains(t Trait) bool {
	for _, v := range p {
		if v == t {
			return true
		}
	}

	return false
}

// Distinct returns each trait once, in first-seen order.
func (p Pool) Distinct() []Trait {
	seen := make(map[Trait]struct{}, len(p))
	out := make([]Trait, 0, len(p))
	for _, v := range p {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}

// Counts returns the multiplicity of every trait.
func (p Pool) Counts() map[Trait]int {
	out := make(map[Trait]int, len(p))
	for _, v := range p {
		out[v]++
	}

	return out
}

// Subtract returns p minus used (multiset difference). Traits of used that
// are absent from p are ignored; counts never go negative. Copies of one
// trait are grouped together in the result, in first-seen order of p.
//
// Complexity: O(len(p) + len(used)).
func (p Pool) Subtract(used []Trait) Pool {
	counts := p.Counts()
	for _, u := range used {
		if counts[u] > 0 {
			counts[u]--
		}
	}
	out := make(Pool, 0, len(p))
	for _, t := range p.Distinct() {
		for i := 0; i < counts[t]; i++ {
			out = append(out, t)
		}
	}

	return out
}

// Remove deletes a single occurrence of t. It reports false when t is absent.
func (p *Pool) Remove(t Trait) bool {
	for i, v := range *p {
		if v == t {
			*p = append((*p)[:i:i], (*p)[i+1:]...)
			return true
		}
	}

	return false
}
