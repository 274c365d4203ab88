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

// A Visit describes a node reached by Walk.
type Visit[K, V any] struct {
	Key   K
	Value V
	Depth int // Depth of the node; the root is at depth 0.
	Size  int // Number of nodes in the subtree rooted at the node.

	// Height is the height of the subtree rooted at the node, with
	// leaves at height 0. It is only maintained by AVL trees and is
	// zero in red-black trees.
	Height int

	// Color is the node's color. Nodes of AVL trees are Black.
	Color Color
}

// Walk calls fn for each node of the Tree in pre-order: a node is visited
// before its left subtree, which is visited before its right subtree. The walk
// keeps its own stack rather than recursing, and stops early if fn returns
// true, in which case Walk returns true. fn must not mutate the Tree.
func (t *Tree[K, V]) Walk(fn func(Visit[K, V]) (done bool)) bool {
	type frame struct {
		n     ref
		depth int
	}
	if t.root == nilRef {
		return false
	}
	stack := []frame{{n: t.root}}
	for len(stack) != 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.node(f.n)
		v := Visit[K, V]{
			Key:   n.key,
			Value: n.val,
			Depth: f.depth,
			Size:  int(n.size),
			Color: t.color(f.n),
		}
		if t.mode == AVL {
			v.Height = int(n.bal)
		}
		if fn(v) {
			return true
		}

		if n.right != nilRef {
			stack = append(stack, frame{n: n.right, depth: f.depth + 1})
		}
		if n.left != nilRef {
			stack = append(stack, frame{n: n.left, depth: f.depth + 1})
		}
	}
	return false
}
