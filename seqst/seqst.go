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

// Package seqst implements an ordered symbol table held in a sorted sequence.
// Every operation is a linear scan, so a Table is only suited to small
// collections or to checking the results of a faster index.
//
// Unlike bst.Tree, a Table keeps duplicate keys. A key that is put more than
// once is stored once per Put, with the most recent entry first.
package seqst

import "golang.org/x/exp/constraints"

type entry[K, V any] struct {
	key K
	val V
}

// A Table is a sequence of key/value pairs in ascending key order.
type Table[K, V any] struct {
	less    func(a, b K) bool
	entries []entry[K, V]
}

// New returns an empty Table ordered by less.
func New[K, V any](less func(a, b K) bool) *Table[K, V] {
	if less == nil {
		panic("seqst: nil comparator")
	}
	return &Table[K, V]{less: less}
}

// NewOrdered returns an empty Table ordered by the < operator of K.
func NewOrdered[K constraints.Ordered, V any]() *Table[K, V] {
	return New[K, V](func(a, b K) bool { return a < b })
}

// Len returns the number of entries in the Table, duplicates included.
func (t *Table[K, V]) Len() int { return len(t.entries) }

// lower returns the index of the first entry with a key not less than key.
func (t *Table[K, V]) lower(key K) int {
	i := 0
	for i < len(t.entries) && t.less(t.entries[i].key, key) {
		i++
	}
	return i
}

func (t *Table[K, V]) equal(a, b K) bool {
	return !t.less(a, b) && !t.less(b, a)
}

// Put adds val under key ahead of any entries already held for key.
func (t *Table[K, V]) Put(key K, val V) {
	i := t.lower(key)
	t.entries = append(t.entries, entry[K, V]{})
	copy(t.entries[i+1:], t.entries[i:])
	t.entries[i] = entry[K, V]{key: key, val: val}
}

// Get returns the most recently put value for key.
func (t *Table[K, V]) Get(key K) (val V, ok bool) {
	i := t.lower(key)
	if i == len(t.entries) || !t.equal(t.entries[i].key, key) {
		return val, false
	}
	return t.entries[i].val, true
}

// Delete removes the most recently put entry for key. It returns false if
// key is not present.
func (t *Table[K, V]) Delete(key K) bool {
	i := t.lower(key)
	if i == len(t.entries) || !t.equal(t.entries[i].key, key) {
		return false
	}
	copy(t.entries[i:], t.entries[i+1:])
	t.entries[len(t.entries)-1] = entry[K, V]{}
	t.entries = t.entries[:len(t.entries)-1]
	return true
}

// Floor returns the greatest key equal to or less than q.
func (t *Table[K, V]) Floor(q K) (key K, ok bool) {
	for _, e := range t.entries {
		if t.less(q, e.key) {
			break
		}
		key, ok = e.key, true
	}
	return key, ok
}

// Ceil returns the smallest key equal to or greater than q.
func (t *Table[K, V]) Ceil(q K) (key K, ok bool) {
	i := t.lower(q)
	if i == len(t.entries) {
		return key, false
	}
	return t.entries[i].key, true
}

// Rank returns the number of entries with keys less than key.
func (t *Table[K, V]) Rank(key K) int { return t.lower(key) }

// Select returns the key of the entry at position i.
func (t *Table[K, V]) Select(i int) (key K, ok bool) {
	if i < 0 || i >= len(t.entries) {
		return key, false
	}
	return t.entries[i].key, true
}

// Size returns the number of entries with keys in [lo, hi]. An inverted
// range holds no entries.
func (t *Table[K, V]) Size(lo, hi K) int {
	if t.less(hi, lo) {
		return 0
	}
	var n int
	for _, e := range t.entries[t.lower(lo):] {
		if t.less(hi, e.key) {
			break
		}
		n++
	}
	return n
}

// Do performs fn on each entry in ascending key order, stopping if fn
// returns true. A boolean is returned indicating whether the traversal was
// interrupted.
func (t *Table[K, V]) Do(fn func(key K, val V) (done bool)) bool {
	for _, e := range t.entries {
		if fn(e.key, e.val) {
			return true
		}
	}
	return false
}
