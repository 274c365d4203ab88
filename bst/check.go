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

import (
	"errors"
	"fmt"
)

// Errors returned by Check. A Tree only ever reports one of these if it has
// been corrupted or if its comparator is not a strict weak order.
var (
	ErrUnordered   = errors.New("bst: keys out of order")
	ErrDuplicate   = errors.New("bst: duplicate key")
	ErrLink        = errors.New("bst: inconsistent parent link")
	ErrSize        = errors.New("bst: inconsistent subtree size")
	ErrHeight      = errors.New("bst: inconsistent height")
	ErrUnbalanced  = errors.New("bst: height imbalance")
	ErrRedRoot     = errors.New("bst: red root")
	ErrDoubleRed   = errors.New("bst: red node with red child")
	ErrBlackHeight = errors.New("bst: unequal black height")
)

// Check verifies the structural invariants of the Tree and returns an error
// describing the first violation found. It takes time proportional to the
// size of the Tree.
func (t *Tree[K, V]) Check() error {
	if t.root != nilRef && t.parent(t.root) != nilRef {
		return fmt.Errorf("%w: root %v has a parent", ErrLink, t.key(t.root))
	}
	if err := t.checkLinks(t.root); err != nil {
		return err
	}
	if err := t.checkOrder(); err != nil {
		return err
	}
	switch t.mode {
	case AVL:
		return t.checkHeights(t.root)
	case RedBlack:
		if t.isRed(t.root) {
			return ErrRedRoot
		}
		_, err := t.checkColors(t.root)
		return err
	}
	return nil
}

// checkOrder checks that an in-order traversal is strictly ascending.
func (t *Tree[K, V]) checkOrder() (err error) {
	var (
		prev  K
		first = true
	)
	t.Do(func(k K, _ V) bool {
		switch {
		case first:
			first = false
		case t.less(k, prev):
			err = fmt.Errorf("%w: %v after %v", ErrUnordered, k, prev)
		case !t.less(prev, k):
			err = fmt.Errorf("%w: %v", ErrDuplicate, k)
		}
		prev = k
		return err != nil
	})
	return err
}

// checkLinks checks parent links and subtree sizes below n.
func (t *Tree[K, V]) checkLinks(n ref) error {
	if n == nilRef {
		return nil
	}
	l, r := t.left(n), t.right(n)
	for _, c := range []ref{l, r} {
		if c != nilRef && t.parent(c) != n {
			return fmt.Errorf("%w: child %v of %v", ErrLink, t.key(c), t.key(n))
		}
	}
	if t.size(n) != 1+t.size(l)+t.size(r) {
		return fmt.Errorf("%w at %v: %d != 1+%d+%d", ErrSize, t.key(n), t.size(n), t.size(l), t.size(r))
	}
	if err := t.checkLinks(l); err != nil {
		return err
	}
	return t.checkLinks(r)
}

func (t *Tree[K, V]) checkHeights(n ref) error {
	if n == nilRef {
		return nil
	}
	l, r := t.left(n), t.right(n)
	if err := t.checkHeights(l); err != nil {
		return err
	}
	if err := t.checkHeights(r); err != nil {
		return err
	}
	hl, hr := t.height(l), t.height(r)
	if t.height(n) != 1+max(hl, hr) {
		return fmt.Errorf("%w at %v: %d with children %d and %d", ErrHeight, t.key(n), t.height(n), hl, hr)
	}
	if d := hl - hr; d < -1 || d > 1 {
		return fmt.Errorf("%w at %v: balance factor %d", ErrUnbalanced, t.key(n), d)
	}
	return nil
}

// checkColors returns the black height of the subtree rooted at n.
func (t *Tree[K, V]) checkColors(n ref) (int, error) {
	if n == nilRef {
		return 0, nil
	}
	l, r := t.left(n), t.right(n)
	if t.isRed(n) && (t.isRed(l) || t.isRed(r)) {
		return 0, fmt.Errorf("%w at %v", ErrDoubleRed, t.key(n))
	}
	bl, err := t.checkColors(l)
	if err != nil {
		return 0, err
	}
	br, err := t.checkColors(r)
	if err != nil {
		return 0, err
	}
	if bl != br {
		return 0, fmt.Errorf("%w at %v: %d and %d", ErrBlackHeight, t.key(n), bl, br)
	}
	if t.color(n) == Black {
		bl++
	}
	return bl, nil
}
