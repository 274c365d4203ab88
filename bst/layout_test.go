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
	check "gopkg.in/check.v1"
)

func (s *S) TestExportLayout(c *check.C) {
	for _, test := range []struct {
		mode   Mode
		points []Point[int]
	}{
		{
			mode: AVL,
			points: []Point[int]{
				{X: 50, Y: 0, Key: 2, Label: "2:1", Color: Black},
				{X: 25, Y: 10, Key: 1, Label: "1:0", Color: Black},
				{X: 75, Y: 10, Key: 3, Label: "3:0", Color: Black},
			},
		},
		{
			mode: RedBlack,
			points: []Point[int]{
				{X: 50, Y: 0, Key: 2, Label: "2", Color: Black},
				{X: 25, Y: 10, Key: 1, Label: "1", Color: Red},
				{X: 75, Y: 10, Key: 3, Label: "3", Color: Red},
			},
		},
	} {
		t := NewOrdered[int, struct{}](test.mode)
		for _, k := range []int{2, 1, 3} {
			t.Insert(k, struct{}{})
		}
		points, edges := t.ExportLayout(100, 10)
		c.Check(points, check.DeepEquals, test.points)
		c.Check(edges, check.DeepEquals, []Edge{
			{X0: 25, Y0: 10, X1: 50, Y1: 0},
			{X0: 75, Y0: 10, X1: 50, Y1: 0},
		})
	}
}

func (s *S) TestLayoutCanvas(c *check.C) {
	t := NewOrdered[int, struct{}](AVL)
	t.Insert(1, struct{}{})
	t.Insert(2, struct{}{})
	points, edges := t.Layout(Canvas{Left: 100, Right: 200, Top: 5, Step: 20})
	c.Check(points, check.DeepEquals, []Point[int]{
		{X: 150, Y: 5, Key: 1, Label: "1:1", Color: Black},
		{X: 175, Y: 25, Key: 2, Label: "2:0", Color: Black},
	})
	c.Check(edges, check.DeepEquals, []Edge{{X0: 175, Y0: 25, X1: 150, Y1: 5}})
}

func (s *S) TestLayoutShape(c *check.C) {
	const (
		width = 1 << 20
		step  = 7
	)
	for _, m := range modes {
		t := NewOrdered[int, int](m)
		for i := 0; i < 1000; i++ {
			t.Insert((i*7919)%1000, i)
		}
		points, edges := t.ExportLayout(width, step)
		c.Assert(points, check.HasLen, t.Len())
		c.Assert(edges, check.HasLen, t.Len()-1)

		var got []int
		at := make(map[int]Point[int])
		for _, p := range points {
			got = append(got, p.Key)
			at[p.Key] = p
			c.Check(p.Label, check.Equals, t.label(t.search(p.Key)))
		}
		c.Check(got, check.DeepEquals, preOrder(t))

		root := points[0]
		c.Check(root.X, check.Equals, width/2)
		c.Check(root.Y, check.Equals, 0)

		t.Walk(func(v Visit[int, int]) bool {
			p := at[v.Key]
			c.Check(p.Y, check.Equals, v.Depth*step)
			n := t.search(v.Key)
			if l := t.left(n); l != nilRef {
				c.Check(at[t.key(l)].X < p.X, check.Equals, true, check.Commentf("left of %d", v.Key))
			}
			if r := t.right(n); r != nilRef {
				c.Check(at[t.key(r)].X > p.X, check.Equals, true, check.Commentf("right of %d", v.Key))
			}
			return false
		})

		for _, e := range edges {
			c.Check(e.Y0, check.Equals, e.Y1+step, check.Commentf("%+v", e))
		}
	}
}
