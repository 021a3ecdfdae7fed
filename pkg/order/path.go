package order

import "container/heap"

// path records how a frontier reached its endpoint. Paths share prefixes:
// extending one allocates a single link.
type path[N comparable] struct {
	node N
	prev *path[N]
	len  int
}

func rootPath[N comparable](n N) *path[N] {
	return &path[N]{node: n, len: 1}
}

func (p *path[N]) extend(n N) *path[N] {
	return &path[N]{node: n, prev: p, len: p.len + 1}
}

// nodes returns the path from its root to its endpoint.
func (p *path[N]) nodes() []N {
	out := make([]N, p.len)
	for q := p; q != nil; q = q.prev {
		out[q.len-1] = q.node
	}
	return out
}

// joinCycle splices a forward path (rooted at the inserted edge's sink) and
// a backward path (rooted at its source) whose endpoints are joined by an
// edge. The result starts at the sink and ends at the source; the inserted
// edge closes it.
func joinCycle[N comparable](forward, backward *path[N]) []N {
	cycle := make([]N, 0, forward.len+backward.len)
	cycle = append(cycle, forward.nodes()...)
	for q := backward; q != nil; q = q.prev {
		cycle = append(cycle, q.node)
	}
	return cycle
}

type queued[N comparable] struct {
	path *path[N]
	key  int
}

// pathQueue implements heap.Interface over paths keyed by the index of their
// endpoint. With descending set the highest key pops first.
type pathQueue[N comparable] struct {
	items      []queued[N]
	descending bool
}

func (q *pathQueue[N]) Len() int { return len(q.items) }

func (q *pathQueue[N]) Less(i, j int) bool {
	if q.descending {
		return q.items[i].key > q.items[j].key
	}
	return q.items[i].key < q.items[j].key
}

func (q *pathQueue[N]) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *pathQueue[N]) Push(x any) { q.items = append(q.items, x.(queued[N])) }

func (q *pathQueue[N]) Pop() any {
	old := q.items
	n := len(old)
	item := old[n-1]
	old[n-1] = queued[N]{}
	q.items = old[:n-1]
	return item
}

// frontier is one side of the search: a priority queue of open paths and
// every node the side has reached so far, queued or already expanded.
type frontier[N comparable] struct {
	queue   pathQueue[N]
	reached map[N]*path[N]
}

func newFrontier[N comparable](root N, key int, descending bool) *frontier[N] {
	f := &frontier[N]{
		queue:   pathQueue[N]{descending: descending},
		reached: make(map[N]*path[N]),
	}
	f.push(rootPath(root), key)
	return f
}

func (f *frontier[N]) push(p *path[N], key int) {
	f.reached[p.node] = p
	heap.Push(&f.queue, queued[N]{path: p, key: key})
}

func (f *frontier[N]) pop() *path[N] {
	return heap.Pop(&f.queue).(queued[N]).path
}

func (f *frontier[N]) empty() bool { return f.queue.Len() == 0 }
