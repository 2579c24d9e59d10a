package gotopic

// trieNode is one segment position of the binding index.
// Literal words, "*" and "#" each get their own branch.
type trieNode struct {
	literals map[string]*trieNode
	single   *trieNode
	multi    *trieNode

	// queues holds every queue with a pattern ending at this node.
	queues []string
}

func newTrieNode() *trieNode {
	return &trieNode{literals: make(map[string]*trieNode)}
}

// insert adds the queue at the end of the segment path, creating nodes as needed.
func (n *trieNode) insert(segments []segment, queue string) {
	node := n

	for _, s := range segments {
		switch s.kind {
		case segmentSingle:
			if node.single == nil {
				node.single = newTrieNode()
			}

			node = node.single
		case segmentMulti:
			if node.multi == nil {
				node.multi = newTrieNode()
			}

			node = node.multi
		default:
			child, ok := node.literals[s.word]
			if !ok {
				child = newTrieNode()
				node.literals[s.word] = child
			}

			node = child
		}
	}

	for _, existing := range node.queues {
		if existing == queue {
			return
		}
	}

	node.queues = append(node.queues, queue)
}

type visit struct {
	node *trieNode
	i    int
}

// trieWalk collects the queues matching one routing key.
type trieWalk struct {
	words   []string
	matched map[string]struct{}

	// seen is only allocated once a "#" branch is explored, as only "#" can reach a node twice.
	seen map[visit]struct{}
}

func (w *trieWalk) walk(node *trieNode, i int) {
	if node.multi != nil {
		if w.seen == nil {
			w.seen = make(map[visit]struct{})
		}

		for k := i; k <= len(w.words); k++ {
			v := visit{node: node.multi, i: k}
			if _, done := w.seen[v]; done {
				continue
			}

			w.seen[v] = struct{}{}
			w.walk(node.multi, k)
		}
	}

	if i == len(w.words) {
		for _, queue := range node.queues {
			w.matched[queue] = struct{}{}
		}

		return
	}

	if child, ok := node.literals[w.words[i]]; ok {
		w.walk(child, i+1)
	}

	if node.single != nil {
		w.walk(node.single, i+1)
	}
}

// match returns the set of queues whose patterns match the split routing key.
func (n *trieNode) match(words []string) map[string]struct{} {
	w := &trieWalk{words: words, matched: make(map[string]struct{})}

	w.walk(n, 0)

	return w.matched
}
