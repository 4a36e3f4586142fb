package query

import "sort"

// counter tallies keys and remembers the order they were first seen in.
type counter struct {
	order  []string
	counts map[string]int
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

type ranked struct {
	key   string
	count int
}

// top returns the n most frequent keys. Equal counts keep first-seen order.
func (c *counter) top(n int) []ranked {
	out := make([]ranked, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, ranked{key: k, count: c.counts[k]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].count > out[j].count })
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
