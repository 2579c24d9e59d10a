package gotopic

import "sort"

// bindingTable is an immutable snapshot of every live binding.
// Mutations build a new table; readers never see a table change under them.
type bindingTable struct {
	// patterns maps a queue to its bound patterns, keyed by pattern text.
	patterns map[string]map[string]Pattern

	// queues is the sorted list of queues holding at least one binding.
	queues []string

	// index is the segment trie built from every pattern.
	index *trieNode
}

func newBindingTable(patterns map[string]map[string]Pattern) *bindingTable {
	t := &bindingTable{
		patterns: patterns,
		queues:   make([]string, 0, len(patterns)),
		index:    newTrieNode(),
	}

	for queue, bound := range patterns {
		t.queues = append(t.queues, queue)

		for _, p := range bound {
			if !p.matchAll {
				t.index.insert(p.segments, queue)
			}
		}
	}

	sort.Strings(t.queues)

	return t
}

func emptyBindingTable() *bindingTable {
	return newBindingTable(make(map[string]map[string]Pattern))
}

// has reports whether the queue is bound with the exact pattern text.
func (t *bindingTable) has(queue, text string) bool {
	_, ok := t.patterns[queue][text]

	return ok
}

// with returns a copy of the table holding the extra binding.
func (t *bindingTable) with(queue string, p Pattern) *bindingTable {
	patterns := t.copyPatterns(queue)

	if patterns[queue] == nil {
		patterns[queue] = make(map[string]Pattern, 1)
	}

	patterns[queue][p.text] = p

	return newBindingTable(patterns)
}

// without returns a copy of the table missing the binding. Queues left without patterns are dropped.
func (t *bindingTable) without(queue, text string) *bindingTable {
	patterns := t.copyPatterns(queue)

	delete(patterns[queue], text)

	if len(patterns[queue]) == 0 {
		delete(patterns, queue)
	}

	return newBindingTable(patterns)
}

// copyPatterns copies the outer map and the inner map of the queue about to change.
// Inner maps of other queues are shared, as no table ever mutates them.
func (t *bindingTable) copyPatterns(queue string) map[string]map[string]Pattern {
	patterns := make(map[string]map[string]Pattern, len(t.patterns)+1)

	for q, bound := range t.patterns {
		patterns[q] = bound
	}

	if bound, ok := t.patterns[queue]; ok {
		inner := make(map[string]Pattern, len(bound)+1)

		for text, p := range bound {
			inner[text] = p
		}

		patterns[queue] = inner
	}

	return patterns
}

// route returns the sorted queues matching the split routing key.
func (t *bindingTable) route(words []string, kind ExchangeType) []string {
	if kind == ExchangeTypeFanout {
		queues := make([]string, len(t.queues))
		copy(queues, t.queues)

		return queues
	}

	matched := t.index.match(words)

	queues := make([]string, 0, len(matched))
	for queue := range matched {
		queues = append(queues, queue)
	}

	sort.Strings(queues)

	return queues
}

// bindings lists every binding sorted by queue, then pattern.
func (t *bindingTable) bindings() []Binding {
	bindings := make([]Binding, 0)

	for _, queue := range t.queues {
		texts := make([]string, 0, len(t.patterns[queue]))
		for text := range t.patterns[queue] {
			texts = append(texts, text)
		}

		sort.Strings(texts)

		for _, text := range texts {
			bindings = append(bindings, Binding{Queue: queue, Pattern: text})
		}
	}

	return bindings
}
