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

// Package bst implements an ordered key/value index stored in a self-balancing
// binary search tree. A Tree is balanced either by subtree height (AVL) or by
// node color (red-black). Both modes share the node store, the rotations and
// the ordered queries, so insertion, deletion, lookup, rank, select, floor,
// ceiling and range counting are all O(log n) whichever mode is used.
//
// Keys are unique. Inserting a key that is already present replaces its value
// and leaves the shape of the tree untouched.
//
// A Tree is not safe for concurrent use. Mutations must be serialized by the
// caller and reads must not overlap a mutation.
package bst

import (
	"golang.org/x/exp/constraints"
)

// A Mode is the balancing discipline of a Tree.
type Mode int

const (
	AVL      Mode = iota // Height balanced.
	RedBlack             // Color balanced.
)

// String returns a string representation of a Mode.
func (m Mode) String() string {
	switch m {
	case AVL:
		return "AVL"
	case RedBlack:
		return "RedBlack"
	}
	return "Mode(?)"
}

// A Color represents the color of a node in a red-black tree.
type Color bool

// String returns a string representation of a Color.
func (c Color) String() string {
	if c {
		return "Black"
	}
	return "Red"
}

const (
	// Red as false gives new nodes the red color from their zero value.
	Red   Color = false
	Black Color = true
)

// A Tree is an ordered map from K to V. The zero value is not usable; trees
// are created with New or NewOrdered.
type Tree[K, V any] struct {
	mode  Mode
	less  func(a, b K) bool
	store store[K, V]
	root  ref
}

// New returns an empty Tree balanced according to mode and ordered by less.
// less must be a strict weak order: keys a and b are equal when neither
// less(a, b) nor less(b, a) holds.
func New[K, V any](mode Mode, less func(a, b K) bool) *Tree[K, V] {
	if mode != AVL && mode != RedBlack {
		panic("bst: unknown mode")
	}
	if less == nil {
		panic("bst: nil comparator")
	}
	return &Tree[K, V]{mode: mode, less: less, store: newStore[K, V]()}
}

// NewOrdered returns an empty Tree ordered by the < operator of K.
func NewOrdered[K constraints.Ordered, V any](mode Mode) *Tree[K, V] {
	return New[K, V](mode, func(a, b K) bool { return a < b })
}

// Mode returns the balancing discipline of the Tree.
func (t *Tree[K, V]) Mode() Mode { return t.mode }

// Len returns the number of keys stored in the Tree.
func (t *Tree[K, V]) Len() int { return int(t.size(t.root)) }

// Height returns the number of levels in the Tree. An empty tree has height 0.
func (t *Tree[K, V]) Height() int {
	if t.mode == AVL {
		return int(t.height(t.root)) + 1
	}
	var h int
	t.Walk(func(v Visit[K, V]) bool {
		if v.Depth >= h {
			h = v.Depth + 1
		}
		return false
	})
	return h
}

// Insert stores val under key. If key is already present its value is
// replaced and no node is created.
func (t *Tree[K, V]) Insert(key K, val V) {
	var root ref
	switch t.mode {
	case AVL:
		root, _ = t.avlInsert(t.root, key, val)
	case RedBlack:
		root, _ = t.rbInsert(t.root, key, val, false)
		t.setColor(root, Black)
	}
	t.setRoot(root)
}

// Delete removes key and its value from the Tree. It returns false, leaving
// the Tree unaltered, if key is not present.
func (t *Tree[K, V]) Delete(key K) bool {
	var (
		root    ref
		removed bool
	)
	switch t.mode {
	case AVL:
		root, removed = t.avlDelete(t.root, key)
	case RedBlack:
		root, removed, _ = t.rbDelete(t.root, key)
	}
	if !removed {
		return false
	}
	t.setRoot(root)
	if t.mode == RedBlack && root != nilRef {
		t.setColor(root, Black)
	}
	return true
}

// DeleteMin deletes the smallest key in the Tree.
func (t *Tree[K, V]) DeleteMin() {
	if t.root == nilRef {
		return
	}
	t.Delete(t.key(t.min(t.root)))
}

// DeleteMax deletes the largest key in the Tree.
func (t *Tree[K, V]) DeleteMax() {
	if t.root == nilRef {
		return
	}
	t.Delete(t.key(t.max(t.root)))
}

// Clear removes every key from the Tree, releasing nodes children first.
func (t *Tree[K, V]) Clear() {
	t.releaseAll(t.root)
	t.root = nilRef
}

func (t *Tree[K, V]) releaseAll(r ref) {
	if r == nilRef {
		return
	}
	t.releaseAll(t.left(r))
	t.releaseAll(t.right(r))
	t.store.release(r)
}

// Clone returns a deep copy of the Tree. Keys and values are copied by
// assignment.
func (t *Tree[K, V]) Clone() *Tree[K, V] {
	c := *t
	c.store = t.store.clone()
	return &c
}
