package jps

import (
	"container/heap"
	"fmt"

	"github.com/c2huc2hu/jps/field"
)

// runner holds the mutable state of a single search. Every query builds a
// fresh runner, so concurrent queries over one shared Field never touch
// common state and repeated queries are idempotent.
type runner struct {
	f      *field.Field              // immutable configuration; read-only here
	open   nodePQ                    // min-heap over fCost / h / insertion order
	nodes  map[field.Point]*nodeItem // every seen position → its record
	closed map[field.Point]bool      // finalized positions, insert-once
	seq    int64                     // insertion counter for tie-breaking
}

// newRunner prepares an empty search over f.
func newRunner(f *field.Field) *runner {
	return &runner{
		f:      f,
		open:   make(nodePQ, 0, 64),
		nodes:  make(map[field.Point]*nodeItem),
		closed: make(map[field.Point]bool),
	}
}

// nextOrder returns the next insertion sequence number.
func (r *runner) nextOrder() int64 {
	r.seq++

	return r.seq
}

// run executes the best-first main loop and returns the goal's node record.
//
//  1. Seed the open set with start (g=0, h=Heuristic(start)).
//  2. Extract the minimum-f node; if it is a goal, succeed.
//  3. Close it and expand it through the jump primitive over its pruned
//     direction set.
//  4. An empty open set means no goal is reachable: ErrNoPath.
//
// A node's g is final once closed; with the default (consistent) octile
// heuristic the first goal extraction is therefore optimal.
func (r *runner) run() (*nodeItem, error) {
	start := r.f.Start()
	s := &nodeItem{
		pos:   start,
		h:     r.f.Heuristic(start),
		order: r.nextOrder(),
	}
	s.fCost = s.g + s.h
	heap.Init(&r.open)
	heap.Push(&r.open, s)
	r.nodes[start] = s

	for r.open.Len() > 0 {
		cur := heap.Pop(&r.open).(*nodeItem)
		if r.f.IsGoal(cur.pos) {
			return cur, nil // path tail; parents lead back to start
		}
		r.closed[cur.pos] = true
		if err := r.expand(cur); err != nil {
			return nil, err
		}
	}

	return nil, ErrNoPath
}

// expand invokes the jump primitive for every direction in cur's pruned
// set and inserts or improves the resulting jump points in the open set.
func (r *runner) expand(cur *nodeItem) error {
	for _, d := range r.successors(cur) {
		if d.dx == 0 && d.dy == 0 {
			// Invariant violation: pruning produced a zero direction.
			return fmt.Errorf("%w: expanding (%d,%d)", ErrBadDirection, cur.pos.X, cur.pos.Y)
		}
		jp, ok := jump(r.f, cur.pos, d)
		if !ok {
			continue
		}
		if r.closed[jp] {
			continue
		}
		tentative := cur.g + r.f.Distance(cur.pos, jp)
		item, seen := r.nodes[jp]
		if !seen {
			item = &nodeItem{
				pos:       jp,
				parent:    cur.pos,
				hasParent: true,
				dir:       d,
				g:         tentative,
				h:         r.f.Heuristic(jp),
				order:     r.nextOrder(),
			}
			item.fCost = item.g + item.h
			r.nodes[jp] = item
			heap.Push(&r.open, item)

			continue
		}
		if tentative < item.g {
			// Decrease-key: rewire the parent link and restore heap order
			// in place. The original insertion order is kept so equal-f
			// ties stay stable.
			item.g = tentative
			item.fCost = tentative + item.h
			item.parent = cur.pos
			item.dir = d
			heap.Fix(&r.open, item.index)
		}
	}

	return nil
}

// successors returns the pruned direction set for node n, derived from its
// direction of arrival. The start node has no arrival direction and uses
// all 8 directions.
//
// Straight arrival keeps only the natural continuation plus, per side with
// a forced neighbor, the turn directions that forced neighbor demands.
// Diagonal arrival keeps the diagonal and its two straight components,
// plus a forced diagonal per blocked back cell with an open cell past it.
// Every move skipped here is provably reachable at equal or lower cost
// through a neighbor the search already considers.
func (r *runner) successors(n *nodeItem) []direction {
	if !n.hasParent {
		return allDirections
	}
	f := r.f
	p := n.pos
	d := n.dir
	dirs := make([]direction, 0, 5)

	if d.diagonal() {
		dirs = append(dirs, direction{d.dx, 0}, direction{0, d.dy}, d)
		if !f.WalkableAt(field.Point{X: p.X - d.dx, Y: p.Y}) &&
			f.WalkableAt(field.Point{X: p.X - d.dx, Y: p.Y + d.dy}) {
			dirs = append(dirs, direction{-d.dx, d.dy})
		}
		if !f.WalkableAt(field.Point{X: p.X, Y: p.Y - d.dy}) &&
			f.WalkableAt(field.Point{X: p.X + d.dx, Y: p.Y - d.dy}) {
			dirs = append(dirs, direction{d.dx, -d.dy})
		}

		return dirs
	}

	dirs = append(dirs, d)
	// Perpendicular unit offsets for the two sides of straight travel.
	px, py := d.dy, d.dx // (0,±1)→(±1,0) and (±1,0)→(0,±1), sign handled per side
	for _, s := range [2]int{1, -1} {
		if !forcedStraight(f, p, d.dx, d.dy, px*s, py*s) {
			continue
		}
		if f.CornerCutting() {
			// Turn diagonally past the obstacle.
			dirs = append(dirs, direction{d.dx + px*s, d.dy + py*s})

			continue
		}
		// Without corner cutting the obstacle is already behind; both the
		// orthogonal turn and the forward diagonal become candidates.
		dirs = append(dirs, direction{px * s, py * s}, direction{d.dx + px*s, d.dy + py*s})
	}

	return dirs
}
