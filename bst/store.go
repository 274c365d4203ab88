// Copyright ©2012 Dan Kortschak <dan.kortschak@adelaide.edu.au>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package bst

import "math"

// ref is the index of a node in a store. The zero ref is the nil node.
type ref int32

const nilRef ref = 0

// A node holds one key/value pair of a Tree.
type node[K, V any] struct {
	key         K
	val         V
	left, right ref
	parent      ref   // Back reference only; nodes are owned by the store.
	size        int32 // Number of nodes in the subtree rooted here.
	bal         int32 // Height in AVL mode, Color in RedBlack mode.
}

// store owns every node of a Tree. Slot 0 is the nil node: it is never
// handed out and never written, so reading through a nil ref yields zero
// links and a zero size.
type store[K, V any] struct {
	nodes []node[K, V]
	free  []ref
}

func newStore[K, V any]() store[K, V] {
	return store[K, V]{nodes: make([]node[K, V], 1)}
}

// alloc returns a detached node holding key and val, reusing a released
// slot when one is available.
func (s *store[K, V]) alloc(key K, val V, bal int32) ref {
	n := node[K, V]{key: key, val: val, size: 1, bal: bal}
	if i := len(s.free) - 1; i >= 0 {
		r := s.free[i]
		s.free = s.free[:i]
		s.nodes[r] = n
		return r
	}
	if len(s.nodes) == math.MaxInt32 {
		panic("bst: node store exhausted")
	}
	s.nodes = append(s.nodes, n)
	return ref(len(s.nodes) - 1)
}

// release returns the slot of r to the store. The key and value are
// cleared so they can be collected.
func (s *store[K, V]) release(r ref) {
	if r == nilRef {
		panic("bst: release of nil node")
	}
	s.nodes[r] = node[K, V]{}
	s.free = append(s.free, r)
}

// used returns the number of live nodes.
func (s *store[K, V]) used() int {
	return len(s.nodes) - 1 - len(s.free)
}

func (s *store[K, V]) clone() store[K, V] {
	c := store[K, V]{
		nodes: make([]node[K, V], len(s.nodes), cap(s.nodes)),
		free:  make([]ref, len(s.free), cap(s.free)),
	}
	copy(c.nodes, s.nodes)
	copy(c.free, s.free)
	return c
}

// Node accessors. All of them accept nilRef.

func (t *Tree[K, V]) node(r ref) *node[K, V] { return &t.store.nodes[r] }
func (t *Tree[K, V]) key(r ref) K            { return t.store.nodes[r].key }
func (t *Tree[K, V]) left(r ref) ref         { return t.store.nodes[r].left }
func (t *Tree[K, V]) right(r ref) ref        { return t.store.nodes[r].right }
func (t *Tree[K, V]) parent(r ref) ref       { return t.store.nodes[r].parent }
func (t *Tree[K, V]) size(r ref) int32       { return t.store.nodes[r].size }

// height returns the AVL height of r. An absent child has height -1 and
// a leaf has height 0.
func (t *Tree[K, V]) height(r ref) int32 {
	if r == nilRef {
		return -1
	}
	return t.store.nodes[r].bal
}

// color returns the effective color of r. A nil node is black, as is
// every node of an AVL tree.
func (t *Tree[K, V]) color(r ref) Color {
	if r == nilRef || t.mode == AVL {
		return Black
	}
	return t.store.nodes[r].bal != 0
}

func (t *Tree[K, V]) isRed(r ref) bool { return t.color(r) == Red }

func (t *Tree[K, V]) setColor(r ref, c Color) {
	if r == nilRef {
		panic("bst: color of nil node")
	}
	t.store.nodes[r].bal = colorBal(c)
}

func colorBal(c Color) int32 {
	if c == Black {
		return 1
	}
	return 0
}

func (t *Tree[K, V]) setLeft(p, c ref) {
	t.store.nodes[p].left = c
	if c != nilRef {
		t.store.nodes[c].parent = p
	}
}

func (t *Tree[K, V]) setRight(p, c ref) {
	t.store.nodes[p].right = c
	if c != nilRef {
		t.store.nodes[c].parent = p
	}
}

func (t *Tree[K, V]) setRoot(r ref) {
	t.root = r
	if r != nilRef {
		t.store.nodes[r].parent = nilRef
	}
}

// update recomputes the metadata of r from its children: the subtree size
// always and the height in AVL mode. Color is left to the red-black fix-ups.
func (t *Tree[K, V]) update(r ref) {
	n := &t.store.nodes[r]
	n.size = 1 + t.size(n.left) + t.size(n.right)
	if t.mode == AVL {
		n.bal = 1 + max(t.height(n.left), t.height(n.right))
	}
}

// min returns the left-most node of the subtree rooted at r.
func (t *Tree[K, V]) min(r ref) ref {
	if r == nilRef {
		return nilRef
	}
	for t.left(r) != nilRef {
		r = t.left(r)
	}
	return r
}

// max returns the right-most node of the subtree rooted at r.
func (t *Tree[K, V]) max(r ref) ref {
	if r == nilRef {
		return nilRef
	}
	for t.right(r) != nilRef {
		r = t.right(r)
	}
	return r
}
