package analyzer

// CountTable is a fixed-length table of access counts indexed by period value.
type CountTable []int

func newCountTable(size int) CountTable {
	return make(CountTable, size)
}

func (t CountTable) reset() {
	for i := range t {
		t[i] = 0
	}
}

func (t CountTable) inRange(i int) bool {
	return i >= 0 && i < len(t)
}

func (t CountTable) Sum() int {
	total := 0
	for _, c := range t {
		total += c
	}
	return total
}

// Busiest returns the index of the largest count. Ties go to the lowest index.
func (t CountTable) Busiest() int {
	if len(t) == 0 {
		return 0
	}
	busiest, max := 0, t[0]
	for i := 1; i < len(t); i++ {
		if t[i] > max {
			busiest, max = i, t[i]
		}
	}
	return busiest
}

// Quietest returns the index of the smallest count. Ties go to the lowest
// index, so an all-zero table yields 0.
func (t CountTable) Quietest() int {
	if len(t) == 0 {
		return 0
	}
	quietest, min := 0, t[0]
	for i := 1; i < len(t); i++ {
		if t[i] < min {
			quietest, min = i, t[i]
		}
	}
	return quietest
}

// BusiestPair returns i maximizing t[i] + t[(i+1) % len(t)]. The last slot
// pairs with slot 0. Ties go to the lowest index.
func (t CountTable) BusiestPair() int {
	if len(t) == 0 {
		return 0
	}
	busiest, max := 0, t.pairAt(0)
	for i := 1; i < len(t); i++ {
		if sum := t.pairAt(i); sum > max {
			busiest, max = i, sum
		}
	}
	return busiest
}

func (t CountTable) pairAt(i int) int {
	return t[i] + t[(i+1)%len(t)]
}

func (t CountTable) clone() []int {
	out := make([]int, len(t))
	copy(out, t)
	return out
}
