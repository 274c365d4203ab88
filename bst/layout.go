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

import "fmt"

// A Canvas is the area a Tree is laid out on. The root is placed midway
// between Left and Right at Top, and each level is placed Step below the
// one above it.
type Canvas struct {
	Left, Right int
	Top         int
	Step        int
}

// A Point is the position of a node in a layout.
type Point[K any] struct {
	X, Y int
	Key  K

	// Label is the text drawn for the node: "key:height" for AVL
	// trees and "key" for red-black trees.
	Label string

	Color Color
}

// An Edge joins the position of a child, (X0, Y0), to the position of its
// parent, (X1, Y1).
type Edge struct {
	X0, Y0 int
	X1, Y1 int
}

// ExportLayout lays the Tree out on a canvas width wide, with the root at the
// top and step between levels. See Layout.
func (t *Tree[K, V]) ExportLayout(width, step int) ([]Point[K], []Edge) {
	return t.Layout(Canvas{Right: width, Step: step})
}

// Layout returns the positions of the nodes of the Tree, in pre-order, and
// the edges between them. Each node is centered in the horizontal span it is
// given; its left child is given the left half of that span and its right
// child the right half.
func (t *Tree[K, V]) Layout(c Canvas) (points []Point[K], edges []Edge) {
	type span struct {
		n           ref
		left, right int
		top         int
		parent      int // Index of the parent in points, or -1.
	}
	if t.root == nilRef {
		return nil, nil
	}

	points = make([]Point[K], 0, t.Len())
	edges = make([]Edge, 0, t.Len()-1)
	stack := []span{{n: t.root, left: c.Left, right: c.Right, top: c.Top, parent: -1}}
	for len(stack) != 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		mid := (s.left + s.right) / 2
		p := Point[K]{X: mid, Y: s.top, Key: t.key(s.n), Label: t.label(s.n), Color: t.color(s.n)}
		if s.parent >= 0 {
			pp := points[s.parent]
			edges = append(edges, Edge{X0: p.X, Y0: p.Y, X1: pp.X, Y1: pp.Y})
		}
		points = append(points, p)

		i := len(points) - 1
		if r := t.right(s.n); r != nilRef {
			stack = append(stack, span{n: r, left: mid, right: s.right, top: s.top + c.Step, parent: i})
		}
		if l := t.left(s.n); l != nilRef {
			stack = append(stack, span{n: l, left: s.left, right: mid, top: s.top + c.Step, parent: i})
		}
	}
	return points, edges
}

func (t *Tree[K, V]) label(n ref) string {
	if t.mode == AVL {
		return fmt.Sprintf("%v:%d", t.key(n), t.height(n))
	}
	return fmt.Sprint(t.key(n))
}
