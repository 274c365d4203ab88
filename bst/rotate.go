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

// Rotations relink x, its child y and y's inner child, then recompute the
// metadata of x and y in that order. The caller must rebind its link to x
// to the returned subtree root. Colors are not touched.

// ((a,c)b,(e,g)f)d -rotL-> (((a,c)b,e)d,g)f
func (t *Tree[K, V]) rotateLeft(x ref) (root ref) {
	root = t.right(x)
	if root == nilRef {
		panic("bst: rotate left without right child")
	}
	nx, ny := t.node(x), t.node(root)
	nx.right = ny.left
	if ny.left != nilRef {
		t.node(ny.left).parent = x
	}
	ny.left = x
	ny.parent = nx.parent
	nx.parent = root
	t.update(x)
	t.update(root)
	return
}

// ((a,c)b,(e,g)f)d -rotR-> (a,(c,(e,g)f)d)b
func (t *Tree[K, V]) rotateRight(x ref) (root ref) {
	root = t.left(x)
	if root == nilRef {
		panic("bst: rotate right without left child")
	}
	nx, ny := t.node(x), t.node(root)
	nx.left = ny.right
	if ny.right != nilRef {
		t.node(ny.right).parent = x
	}
	ny.right = x
	ny.parent = nx.parent
	nx.parent = root
	t.update(x)
	t.update(root)
	return
}
