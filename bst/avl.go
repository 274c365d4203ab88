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

// AVL balancing. Every node visited on the way back up from a mutation has
// its height recomputed and is then handed to avlRebalance, which applies at
// most one single or double rotation.

func (t *Tree[K, V]) avlInsert(p ref, key K, val V) (root ref, added bool) {
	if p == nilRef {
		return t.store.alloc(key, val, 0), true
	}

	switch k := t.key(p); {
	case t.less(key, k):
		var l ref
		l, added = t.avlInsert(t.left(p), key, val)
		t.setLeft(p, l)
	case t.less(k, key):
		var r ref
		r, added = t.avlInsert(t.right(p), key, val)
		t.setRight(p, r)
	default:
		t.node(p).val = val
	}
	if !added {
		return p, false
	}

	t.update(p)
	return t.avlRebalance(p), true
}

// avlRebalance restores the AVL balance at x, whose height must be current.
// The child on the heavy side is rotated first only when its inner subtree
// is strictly taller than its outer one; equal heights get a single rotation.
func (t *Tree[K, V]) avlRebalance(x ref) ref {
	l, r := t.left(x), t.right(x)
	switch t.height(l) - t.height(r) {
	case 2:
		if t.height(t.left(l)) < t.height(t.right(l)) {
			t.setLeft(x, t.rotateLeft(l))
		}
		return t.rotateRight(x)
	case -2:
		if t.height(t.right(r)) < t.height(t.left(r)) {
			t.setRight(x, t.rotateRight(r))
		}
		return t.rotateLeft(x)
	}
	return x
}

func (t *Tree[K, V]) avlDelete(p ref, key K) (root ref, removed bool) {
	if p == nilRef {
		return nilRef, false
	}

	switch k := t.key(p); {
	case t.less(key, k):
		var l ref
		l, removed = t.avlDelete(t.left(p), key)
		t.setLeft(p, l)
	case t.less(k, key):
		var r ref
		r, removed = t.avlDelete(t.right(p), key)
		t.setRight(p, r)
	default:
		l, r := t.left(p), t.right(p)
		if l == nilRef || r == nilRef {
			t.store.release(p)
			if l == nilRef {
				return r, true
			}
			return l, true
		}
		// The successor is unlinked from the right subtree and takes
		// the place of p, so no key or value is copied.
		var m ref
		r, m = t.avlDeleteMin(r)
		t.store.release(p)
		t.setLeft(m, l)
		t.setRight(m, r)
		p, removed = m, true
	}
	if !removed {
		return p, false
	}

	t.update(p)
	return t.avlRebalance(p), true
}

// avlDeleteMin unlinks the left-most node m of the subtree rooted at p and
// returns the rebalanced remainder of the subtree along with m.
func (t *Tree[K, V]) avlDeleteMin(p ref) (root, m ref) {
	l := t.left(p)
	if l == nilRef {
		return t.right(p), p
	}
	l, m = t.avlDeleteMin(l)
	t.setLeft(p, l)
	t.update(p)
	return t.avlRebalance(p), m
}
