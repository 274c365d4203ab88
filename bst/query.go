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

// Get returns the value stored under key and whether key was found.
func (t *Tree[K, V]) Get(key K) (val V, ok bool) {
	n := t.search(key)
	if n == nilRef {
		return val, false
	}
	return t.node(n).val, true
}

// Contains returns whether key is stored in the Tree.
func (t *Tree[K, V]) Contains(key K) bool {
	return t.search(key) != nilRef
}

func (t *Tree[K, V]) search(key K) ref {
	n := t.root
	for n != nilRef {
		switch k := t.key(n); {
		case t.less(key, k):
			n = t.left(n)
		case t.less(k, key):
			n = t.right(n)
		default:
			return n
		}
	}
	return nilRef
}

// Min returns the smallest key in the Tree.
func (t *Tree[K, V]) Min() (key K, ok bool) {
	if t.root == nilRef {
		return key, false
	}
	return t.key(t.min(t.root)), true
}

// Max returns the largest key in the Tree.
func (t *Tree[K, V]) Max() (key K, ok bool) {
	if t.root == nilRef {
		return key, false
	}
	return t.key(t.max(t.root)), true
}

// Floor returns the greatest key equal to or less than q.
func (t *Tree[K, V]) Floor(q K) (key K, ok bool) {
	n := t.floor(q)
	if n == nilRef {
		return key, false
	}
	return t.key(n), true
}

func (t *Tree[K, V]) floor(q K) ref {
	best := nilRef
	for n := t.root; n != nilRef; {
		switch k := t.key(n); {
		case t.less(q, k):
			n = t.left(n)
		case t.less(k, q):
			best, n = n, t.right(n)
		default:
			return n
		}
	}
	return best
}

// Ceil returns the smallest key equal to or greater than q.
func (t *Tree[K, V]) Ceil(q K) (key K, ok bool) {
	n := t.ceil(q)
	if n == nilRef {
		return key, false
	}
	return t.key(n), true
}

func (t *Tree[K, V]) ceil(q K) ref {
	best := nilRef
	for n := t.root; n != nilRef; {
		switch k := t.key(n); {
		case t.less(k, q):
			n = t.right(n)
		case t.less(q, k):
			best, n = n, t.left(n)
		default:
			return n
		}
	}
	return best
}

// Rank returns the number of keys in the Tree that are less than key.
// key need not be present.
func (t *Tree[K, V]) Rank(key K) int {
	r, _ := t.rank(key)
	return r
}

func (t *Tree[K, V]) rank(key K) (r int, found bool) {
	for n := t.root; n != nilRef; {
		switch k := t.key(n); {
		case t.less(key, k):
			n = t.left(n)
		case t.less(k, key):
			r += int(t.size(t.left(n))) + 1
			n = t.right(n)
		default:
			return r + int(t.size(t.left(n))), true
		}
	}
	return r, false
}

// Select returns the key of rank i, the key with exactly i smaller keys
// in the Tree. ok is false if i is not in [0, t.Len()).
func (t *Tree[K, V]) Select(i int) (key K, ok bool) {
	if i < 0 || i >= t.Len() {
		return key, false
	}
	n := t.root
	for {
		nl := int(t.size(t.left(n)))
		switch {
		case i < nl:
			n = t.left(n)
		case i > nl:
			// Skip the left subtree and this node.
			i -= nl + 1
			n = t.right(n)
		default:
			return t.key(n), true
		}
	}
}

// RangeSize returns the number of keys k in the Tree with lo <= k <= hi.
// An inverted range holds no keys.
func (t *Tree[K, V]) RangeSize(lo, hi K) int {
	if t.less(hi, lo) {
		return 0
	}
	l, _ := t.rank(lo)
	h, found := t.rank(hi)
	if found {
		h++
	}
	return h - l
}
