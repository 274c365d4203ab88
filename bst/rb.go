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

// Red-black balancing. Insertion repairs red-red violations while unwinding
// the recursion; deletion reports a black-height deficit to the caller, which
// repairs it at its own level or passes it further up.

// rbInsert inserts key below p. fromLeft records whether p is the left child
// of its parent.
func (t *Tree[K, V]) rbInsert(p ref, key K, val V, fromLeft bool) (root ref, added bool) {
	if p == nilRef {
		return t.store.alloc(key, val, colorBal(Red)), true
	}

	switch k := t.key(p); {
	case t.less(key, k):
		var l ref
		l, added = t.rbInsert(t.left(p), key, val, true)
		if !added {
			return p, false
		}
		t.setLeft(p, l)
		t.update(p)

		// A red right child of its parent with a red left child is turned
		// into a straight line for the grandparent to resolve.
		if t.isRed(p) && t.isRed(l) && !fromLeft {
			p = t.rotateRight(p)
		}
		if c := t.left(p); t.isRed(c) && t.isRed(t.left(c)) {
			t.setColor(p, Red)
			t.setColor(c, Black)
			if r := t.right(p); t.isRed(r) {
				t.setColor(r, Black)
			} else {
				p = t.rotateRight(p)
			}
		}
	case t.less(k, key):
		var r ref
		r, added = t.rbInsert(t.right(p), key, val, false)
		if !added {
			return p, false
		}
		t.setRight(p, r)
		t.update(p)

		if t.isRed(p) && t.isRed(r) && fromLeft {
			p = t.rotateLeft(p)
		}
		if c := t.right(p); t.isRed(c) && t.isRed(t.right(c)) {
			t.setColor(p, Red)
			t.setColor(c, Black)
			if l := t.left(p); t.isRed(l) {
				t.setColor(l, Black)
			} else {
				p = t.rotateLeft(p)
			}
		}
	default:
		t.node(p).val = val
		return p, false
	}

	return p, true
}

// rbDelete deletes key below p. short is true when the subtree returned
// holds one black node fewer on every path than the subtree p did.
func (t *Tree[K, V]) rbDelete(p ref, key K) (root ref, removed, short bool) {
	if p == nilRef {
		return nilRef, false, false
	}

	switch k := t.key(p); {
	case t.less(key, k):
		var l ref
		l, removed, short = t.rbDelete(t.left(p), key)
		if !removed {
			return p, false, false
		}
		t.setLeft(p, l)
		t.update(p)
		if short {
			p, short = t.rbFixLeft(p)
		}
		return p, true, short
	case t.less(k, key):
		var r ref
		r, removed, short = t.rbDelete(t.right(p), key)
		if !removed {
			return p, false, false
		}
		t.setRight(p, r)
		t.update(p)
		if short {
			p, short = t.rbFixRight(p)
		}
		return p, true, short
	}

	l, r := t.left(p), t.right(p)
	if l == nilRef || r == nilRef {
		short = t.color(p) == Black
		t.store.release(p)
		if l == nilRef {
			return r, true, short
		}
		return l, true, short
	}

	// The successor takes the place and the color of p; the deficit, if
	// any, is the one left where the successor was unlinked.
	var m ref
	r, m, short = t.rbDeleteMin(r)
	c := t.color(p)
	t.store.release(p)
	t.setLeft(m, l)
	t.setRight(m, r)
	t.setColor(m, c)
	t.update(m)
	if short {
		m, short = t.rbFixRight(m)
	}
	return m, true, short
}

// rbDeleteMin unlinks the left-most node m of the subtree rooted at p.
func (t *Tree[K, V]) rbDeleteMin(p ref) (root, m ref, short bool) {
	l := t.left(p)
	if l == nilRef {
		return t.right(p), p, t.color(p) == Black
	}
	l, m, short = t.rbDeleteMin(l)
	t.setLeft(p, l)
	t.update(p)
	if short {
		p, short = t.rbFixLeft(p)
	}
	return p, m, short
}

// rbFixLeft repairs x after its left subtree lost one black node. It returns
// the new subtree root and whether the whole subtree is still short.
func (t *Tree[K, V]) rbFixLeft(x ref) (root ref, short bool) {
	if l := t.left(x); t.isRed(l) {
		t.setColor(l, Black)
		return x, false
	}

	s := t.right(x)
	if s == nilRef {
		panic("bst: black height deficit without sibling")
	}
	if t.isRed(s) {
		t.setColor(s, Black)
		t.setColor(x, Red)
		root = t.rotateLeft(x)
		var l ref
		l, short = t.rbFixLeft(x)
		t.setLeft(root, l)
		return root, short
	}

	if !t.isRed(t.left(s)) && !t.isRed(t.right(s)) {
		t.setColor(s, Red)
		if t.isRed(x) {
			t.setColor(x, Black)
			return x, false
		}
		return x, true
	}

	if !t.isRed(t.right(s)) {
		t.setColor(t.left(s), Black)
		t.setColor(s, Red)
		s = t.rotateRight(s)
		t.setRight(x, s)
	}
	t.setColor(s, t.color(x))
	t.setColor(x, Black)
	t.setColor(t.right(s), Black)
	return t.rotateLeft(x), false
}

// rbFixRight is the mirror of rbFixLeft.
func (t *Tree[K, V]) rbFixRight(x ref) (root ref, short bool) {
	if r := t.right(x); t.isRed(r) {
		t.setColor(r, Black)
		return x, false
	}

	s := t.left(x)
	if s == nilRef {
		panic("bst: black height deficit without sibling")
	}
	if t.isRed(s) {
		t.setColor(s, Black)
		t.setColor(x, Red)
		root = t.rotateRight(x)
		var r ref
		r, short = t.rbFixRight(x)
		t.setRight(root, r)
		return root, short
	}

	if !t.isRed(t.left(s)) && !t.isRed(t.right(s)) {
		t.setColor(s, Red)
		if t.isRed(x) {
			t.setColor(x, Black)
			return x, false
		}
		return x, true
	}

	if !t.isRed(t.left(s)) {
		t.setColor(t.right(s), Black)
		t.setColor(s, Red)
		s = t.rotateLeft(s)
		t.setLeft(x, s)
	}
	t.setColor(s, t.color(x))
	t.setColor(x, Black)
	t.setColor(t.left(s), Black)
	return t.rotateRight(x), false
}
