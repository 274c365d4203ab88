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

import "iter"

// An Operation is a function that operates on a key/value pair. If done is
// returned true, the Operation is indicating that no further work needs to be
// done and so the Do function should traverse no further.
type Operation[K, V any] func(key K, val V) (done bool)

// Do performs fn on all key/value pairs stored in the tree in ascending key
// order. A boolean is returned indicating whether the traversal was interrupted
// by an Operation returning true. fn must not mutate the Tree.
func (t *Tree[K, V]) Do(fn Operation[K, V]) bool {
	if t.root == nilRef {
		return false
	}
	return t.do(t.root, fn)
}

func (t *Tree[K, V]) do(n ref, fn Operation[K, V]) (done bool) {
	if l := t.left(n); l != nilRef {
		done = t.do(l, fn)
		if done {
			return
		}
	}
	done = fn(t.key(n), t.node(n).val)
	if done {
		return
	}
	if r := t.right(n); r != nilRef {
		done = t.do(r, fn)
	}
	return
}

// DoReverse performs fn on all key/value pairs stored in the tree in
// descending key order. A boolean is returned indicating whether the traversal
// was interrupted by an Operation returning true. fn must not mutate the Tree.
func (t *Tree[K, V]) DoReverse(fn Operation[K, V]) bool {
	if t.root == nilRef {
		return false
	}
	return t.doReverse(t.root, fn)
}

func (t *Tree[K, V]) doReverse(n ref, fn Operation[K, V]) (done bool) {
	if r := t.right(n); r != nilRef {
		done = t.doReverse(r, fn)
		if done {
			return
		}
	}
	done = fn(t.key(n), t.node(n).val)
	if done {
		return
	}
	if l := t.left(n); l != nilRef {
		done = t.doReverse(l, fn)
	}
	return
}

// DoRange performs fn on all key/value pairs stored in the tree over the
// interval [from, to) in ascending key order. If to equals from the call is a
// no-op, and if to is less than from DoRange will panic. A boolean is returned
// indicating whether the traversal was interrupted by an Operation returning
// true. fn must not mutate the Tree.
func (t *Tree[K, V]) DoRange(fn Operation[K, V], from, to K) bool {
	if t.less(to, from) {
		panic("bst: inverted range")
	}
	if t.root == nilRef || !t.less(from, to) {
		return false
	}
	return t.doRange(t.root, fn, from, to)
}

func (t *Tree[K, V]) doRange(n ref, fn Operation[K, V], lo, hi K) (done bool) {
	k := t.key(n)
	lc, hc := !t.less(k, lo), t.less(k, hi)
	if l := t.left(n); lc && l != nilRef {
		done = t.doRange(l, fn, lo, hi)
		if done {
			return
		}
	}
	if lc && hc {
		done = fn(k, t.node(n).val)
		if done {
			return
		}
	}
	if r := t.right(n); hc && r != nilRef {
		done = t.doRange(r, fn, lo, hi)
	}
	return
}

// A Cursor is a position in a Tree. Cursors step through the tree in key
// order by following parent links, so a cursor stays valid across
// insertions and deletions of other keys, but not across deletion of the
// key it points to.
type Cursor[K, V any] struct {
	t *Tree[K, V]
	n ref
}

// First returns a Cursor at the smallest key. It is not valid if the Tree
// is empty.
func (t *Tree[K, V]) First() Cursor[K, V] {
	return Cursor[K, V]{t: t, n: t.min(t.root)}
}

// Last returns a Cursor at the largest key. It is not valid if the Tree
// is empty.
func (t *Tree[K, V]) Last() Cursor[K, V] {
	return Cursor[K, V]{t: t, n: t.max(t.root)}
}

// Seek returns a Cursor at the smallest key equal to or greater than q. It
// is not valid if there is no such key.
func (t *Tree[K, V]) Seek(q K) Cursor[K, V] {
	return Cursor[K, V]{t: t, n: t.ceil(q)}
}

// Valid returns whether the Cursor points to a key.
func (c Cursor[K, V]) Valid() bool { return c.t != nil && c.n != nilRef }

// Key returns the key at the Cursor, or the zero K if the cursor is not valid.
func (c Cursor[K, V]) Key() (key K) {
	if !c.Valid() {
		return key
	}
	return c.t.key(c.n)
}

// Value returns the value at the Cursor, or the zero V if the cursor is not
// valid.
func (c Cursor[K, V]) Value() (val V) {
	if !c.Valid() {
		return val
	}
	return c.t.node(c.n).val
}

// Next returns a Cursor at the following key.
func (c Cursor[K, V]) Next() Cursor[K, V] {
	if !c.Valid() {
		return c
	}
	return Cursor[K, V]{t: c.t, n: c.t.successor(c.n)}
}

// Prev returns a Cursor at the preceding key.
func (c Cursor[K, V]) Prev() Cursor[K, V] {
	if !c.Valid() {
		return c
	}
	return Cursor[K, V]{t: c.t, n: c.t.predecessor(c.n)}
}

func (t *Tree[K, V]) successor(n ref) ref {
	if r := t.right(n); r != nilRef {
		return t.min(r)
	}
	p := t.parent(n)
	for p != nilRef && n == t.right(p) {
		n, p = p, t.parent(p)
	}
	return p
}

func (t *Tree[K, V]) predecessor(n ref) ref {
	if l := t.left(n); l != nilRef {
		return t.max(l)
	}
	p := t.parent(n)
	for p != nilRef && n == t.left(p) {
		n, p = p, t.parent(p)
	}
	return p
}

// All returns an iterator over the key/value pairs of the Tree in ascending
// key order. The iterator may be used any number of times.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for c := t.First(); c.Valid(); c = c.Next() {
			if !yield(c.Key(), c.Value()) {
				return
			}
		}
	}
}

// Backward returns an iterator over the key/value pairs of the Tree in
// descending key order.
func (t *Tree[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for c := t.Last(); c.Valid(); c = c.Prev() {
			if !yield(c.Key(), c.Value()) {
				return
			}
		}
	}
}
