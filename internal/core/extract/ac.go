package extract

// A tiny stdlib-only Aho-Corasick automaton over byte strings.
// Inputs are normalized lowercase UTF-8. Each node keeps a fixed 256-way
// transition table so scanning never touches a map

type acNode struct {
	// trans[b] = next state or -1 if absent
	trans  [256]int
	fail   int
	output []int // pattern IDs ending at this node, longest first
}

type automaton struct {
	nodes []acNode
	lens  []int // pattern ID -> byte length
}

// acMatch is a [start,end) span over the scanned text
type acMatch struct {
	id         int
	start, end int
}

func newAutomaton() *automaton {
	a := &automaton{nodes: make([]acNode, 1)}
	for i := range a.nodes[0].trans {
		a.nodes[0].trans[i] = -1
	}
	return a
}

// add inserts pattern under id. IDs must be dense, starting at 0
func (a *automaton) add(pat string, id int) {
	for len(a.lens) <= id {
		a.lens = append(a.lens, 0)
	}
	a.lens[id] = len(pat)
	if pat == "" {
		return
	}
	state := 0
	for i := 0; i < len(pat); i++ {
		b := pat[i]
		nxt := a.nodes[state].trans[b]
		if nxt == -1 {
			nxt = len(a.nodes)
			a.nodes[state].trans[b] = nxt
			var n acNode
			for j := range n.trans {
				n.trans[j] = -1
			}
			a.nodes = append(a.nodes, n)
		}
		state = nxt
	}
	a.nodes[state].output = append(a.nodes[state].output, id)
}

// build finalizes failure links breadth first
func (a *automaton) build() {
	q := make([]int, 0, 64)
	for b := range 256 {
		if s := a.nodes[0].trans[b]; s != -1 {
			a.nodes[s].fail = 0
			q = append(q, s)
		}
	}
	for qi := 0; qi < len(q); qi++ {
		r := q[qi]
		for b := range 256 {
			s := a.nodes[r].trans[b]
			if s == -1 {
				continue
			}
			q = append(q, s)

			f := a.nodes[r].fail
			for f != 0 && a.nodes[f].trans[b] == -1 {
				f = a.nodes[f].fail
			}
			if nxt := a.nodes[f].trans[b]; nxt != -1 {
				a.nodes[s].fail = nxt
			} else {
				a.nodes[s].fail = 0
			}
			a.nodes[s].output = append(a.nodes[s].output, a.nodes[a.nodes[s].fail].output...)
		}
	}
}

// scan returns non-overlapping matches in text order. When two patterns end at the
// same byte the longer one wins, and a match starting inside an accepted span is dropped
func (a *automaton) scan(text string, keep func(start, end int) bool) []acMatch {
	var out []acMatch
	lastEnd := -1
	state := 0
	for i := 0; i < len(text); i++ {
		b := text[i]
		for state != 0 && a.nodes[state].trans[b] == -1 {
			state = a.nodes[state].fail
		}
		if nxt := a.nodes[state].trans[b]; nxt != -1 {
			state = nxt
		}
		for _, id := range a.nodes[state].output {
			end := i + 1
			start := end - a.lens[id]
			if start < lastEnd {
				continue
			}
			if keep != nil && !keep(start, end) {
				continue
			}
			// a longer pattern sharing this end may have been accepted already
			if n := len(out); n > 0 && out[n-1].end == end {
				continue
			}
			out = append(out, acMatch{id: id, start: start, end: end})
			lastEnd = end
		}
	}
	return out
}
