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

func buildEvens(m Mode, n int) *Tree[int, int] {
	t := NewOrdered[int, int](m)
	for i := 0; i < n; i++ {
		t.Insert(2*i, i)
	}
	return t
}

func (s *S) TestDo(c *check.C) {
	for _, m := range modes {
		t := buildEvens(m, 100)
		var (
			got  []int
			want []int
		)
		for i := 0; i < 100; i++ {
			want = append(want, 2*i)
		}
		c.Check(t.Do(func(k, v int) bool {
			c.Check(v, check.Equals, k/2)
			got = append(got, k)
			return false
		}), check.Equals, false)
		c.Check(got, check.DeepEquals, want)

		got = got[:0]
		c.Check(t.Do(func(k, _ int) bool {
			got = append(got, k)
			return k == 10
		}), check.Equals, true)
		c.Check(got, check.DeepEquals, []int{0, 2, 4, 6, 8, 10})
	}
}

func (s *S) TestDoReverse(c *check.C) {
	for _, m := range modes {
		t := buildEvens(m, 10)
		var got []int
		c.Check(t.DoReverse(func(k, _ int) bool {
			got = append(got, k)
			return false
		}), check.Equals, false)
		c.Check(got, check.DeepEquals, []int{18, 16, 14, 12, 10, 8, 6, 4, 2, 0})

		got = got[:0]
		c.Check(t.DoReverse(func(k, _ int) bool {
			got = append(got, k)
			return k == 14
		}), check.Equals, true)
		c.Check(got, check.DeepEquals, []int{18, 16, 14})
	}
}

func (s *S) TestDoRange(c *check.C) {
	for _, m := range modes {
		t := buildEvens(m, 50)
		for _, test := range []struct {
			from, to int
			want     []int
		}{
			{10, 20, []int{10, 12, 14, 16, 18}},
			{9, 21, []int{10, 12, 14, 16, 18, 20}},
			{-10, 3, []int{0, 2}},
			{95, 1000, []int{96, 98}},
			{11, 12, nil},
			{5, 5, nil},
			{1000, 2000, nil},
		} {
			var got []int
			t.DoRange(func(k, _ int) bool {
				got = append(got, k)
				return false
			}, test.from, test.to)
			c.Check(got, check.DeepEquals, test.want, check.Commentf("%v [%d, %d)", m, test.from, test.to))
		}

		var got []int
		c.Check(t.DoRange(func(k, _ int) bool {
			got = append(got, k)
			return k == 14
		}, 10, 30), check.Equals, true)
		c.Check(got, check.DeepEquals, []int{10, 12, 14})

		c.Check(func() { t.DoRange(func(int, int) bool { return false }, 2, 1) }, check.Panics, "bst: inverted range")
	}
}

func (s *S) TestCursor(c *check.C) {
	for _, m := range modes {
		t := buildEvens(m, 100)

		var got []int
		for cur := t.First(); cur.Valid(); cur = cur.Next() {
			got = append(got, cur.Key())
			c.Check(cur.Value(), check.Equals, cur.Key()/2)
		}
		c.Check(got, check.DeepEquals, keys(t))

		got = got[:0]
		for cur := t.Last(); cur.Valid(); cur = cur.Prev() {
			got = append(got, cur.Key())
		}
		c.Check(len(got), check.Equals, 100)
		c.Check(got[0], check.Equals, 198)
		c.Check(got[99], check.Equals, 0)

		cur := t.Seek(51)
		c.Check(cur.Valid(), check.Equals, true)
		c.Check(cur.Key(), check.Equals, 52)
		c.Check(cur.Prev().Key(), check.Equals, 50)
		c.Check(t.Seek(52).Key(), check.Equals, 52)

		end := t.Seek(199)
		c.Check(end.Valid(), check.Equals, false)
		c.Check(end.Key(), check.Equals, 0)
		c.Check(end.Value(), check.Equals, 0)
		c.Check(end.Next().Valid(), check.Equals, false)
		c.Check(t.Last().Next().Valid(), check.Equals, false)
		c.Check(t.First().Prev().Valid(), check.Equals, false)

		var zero Cursor[int, int]
		c.Check(zero.Valid(), check.Equals, false)
	}
}

// Cursors hold their node across deletion of other keys.
func (s *S) TestCursorAcrossDeletion(c *check.C) {
	for _, m := range modes {
		t := buildEvens(m, 100)
		cur := t.Seek(100)
		for k := 0; k < 200; k += 2 {
			if k != 100 && k%4 == 0 {
				t.Delete(k)
			}
		}
		c.Assert(cur.Key(), check.Equals, 100)
		var got []int
		for ; cur.Valid(); cur = cur.Next() {
			got = append(got, cur.Key())
		}
		var want []int
		for k := 100; k < 200; k += 2 {
			if k == 100 || k%4 != 0 {
				want = append(want, k)
			}
		}
		c.Check(got, check.DeepEquals, want)
	}
}

func (s *S) TestAllBackward(c *check.C) {
	for _, m := range modes {
		t := buildEvens(m, 20)
		all := t.All()
		for pass := 0; pass < 2; pass++ {
			var got []int
			for k, v := range all {
				c.Check(v, check.Equals, k/2)
				got = append(got, k)
			}
			c.Check(got, check.DeepEquals, keys(t))
		}

		var got []int
		for k := range t.Backward() {
			if k < 30 {
				break
			}
			got = append(got, k)
		}
		c.Check(got, check.DeepEquals, []int{38, 36, 34, 32, 30})
	}
}

func preOrder[K, V any](t *Tree[K, V]) []K {
	var (
		ks     []K
		follow func(ref)
	)
	follow = func(n ref) {
		if n == nilRef {
			return
		}
		ks = append(ks, t.key(n))
		follow(t.left(n))
		follow(t.right(n))
	}
	follow(t.root)
	return ks
}

func (s *S) TestWalk(c *check.C) {
	for _, m := range modes {
		t := buildEvens(m, 200)
		var got []int
		c.Check(t.Walk(func(v Visit[int, int]) bool {
			got = append(got, v.Key)
			n := t.search(v.Key)
			c.Check(v.Value, check.Equals, v.Key/2)
			c.Check(v.Size, check.Equals, int(t.size(n)))
			c.Check(v.Color, check.Equals, t.color(n))
			if m == AVL {
				c.Check(v.Height, check.Equals, int(t.height(n)))
			} else {
				c.Check(v.Height, check.Equals, 0)
			}
			var depth int
			for p := t.parent(n); p != nilRef; p = t.parent(p) {
				depth++
			}
			c.Check(v.Depth, check.Equals, depth)
			return false
		}), check.Equals, false)
		c.Check(got, check.DeepEquals, preOrder(t))

		var n int
		c.Check(t.Walk(func(Visit[int, int]) bool {
			n++
			return n == 5
		}), check.Equals, true)
		c.Check(n, check.Equals, 5)
	}
}
