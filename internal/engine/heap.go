package engine

import "github.com/parsat-project/parsat/lit"

// varHeap is a binary max-heap over variable activity, grounded on the
// VSIDS priority queue used by other_examples/togatoga-gatosat__solver.go
// (s.VarOrder), adapted to this engine's lit.Var type.
type varHeap struct {
	heap     []lit.Var
	indexOf  map[lit.Var]int
	activity []float64
}

func newVarHeap() *varHeap {
	return &varHeap{indexOf: make(map[lit.Var]int)}
}

func (h *varHeap) ensure(v lit.Var) {
	for len(h.activity) <= int(v) {
		h.activity = append(h.activity, 0)
	}
}

func (h *varHeap) inHeap(v lit.Var) bool {
	_, ok := h.indexOf[v]
	return ok
}

func (h *varHeap) less(a, b lit.Var) bool {
	return h.activity[a] > h.activity[b]
}

func (h *varHeap) push(v lit.Var) {
	if h.inHeap(v) {
		return
	}
	h.ensure(v)
	h.heap = append(h.heap, v)
	i := len(h.heap) - 1
	h.indexOf[v] = i
	h.up(i)
}

func (h *varHeap) up(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if h.less(h.heap[i], h.heap[p]) {
			h.swap(i, p)
			i = p
		} else {
			break
		}
	}
}

func (h *varHeap) down(i int) {
	n := len(h.heap)
	for {
		l, r := 2*i+1, 2*i+2
		best := i
		if l < n && h.less(h.heap[l], h.heap[best]) {
			best = l
		}
		if r < n && h.less(h.heap[r], h.heap[best]) {
			best = r
		}
		if best == i {
			return
		}
		h.swap(i, best)
		i = best
	}
}

func (h *varHeap) swap(i, j int) {
	h.heap[i], h.heap[j] = h.heap[j], h.heap[i]
	h.indexOf[h.heap[i]] = i
	h.indexOf[h.heap[j]] = j
}

func (h *varHeap) update(v lit.Var) {
	i, ok := h.indexOf[v]
	if !ok {
		return
	}
	h.up(i)
	h.down(i)
}

func (h *varHeap) empty() bool {
	return len(h.heap) == 0
}

func (h *varHeap) removeMin() lit.Var {
	top := h.heap[0]
	last := len(h.heap) - 1
	h.swap(0, last)
	h.heap = h.heap[:last]
	delete(h.indexOf, top)
	if len(h.heap) > 0 {
		h.down(0)
	}
	return top
}

func (h *varHeap) bump(v lit.Var, inc float64) {
	h.ensure(v)
	h.activity[v] += inc
	if h.inHeap(v) {
		h.update(v)
	}
}

func (h *varHeap) decay(factor float64) {
	for i := range h.activity {
		h.activity[i] *= factor
	}
}
