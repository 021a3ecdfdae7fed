package order

import (
	"slices"
	"testing"
)

func TestPathNodes(t *testing.T) {
	root := rootPath("a")
	b := root.extend("b")
	c := b.extend("c")
	d := b.extend("d")

	if got := c.nodes(); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("c.nodes() = %v", got)
	}
	if got := d.nodes(); !slices.Equal(got, []string{"a", "b", "d"}) {
		t.Errorf("d.nodes() = %v", got)
	}
	if got := root.nodes(); !slices.Equal(got, []string{"a"}) {
		t.Errorf("root.nodes() = %v", got)
	}
}

func TestJoinCycle(t *testing.T) {
	forward := rootPath(1).extend(2)
	backward := rootPath(4).extend(3)

	if got := joinCycle(forward, backward); !slices.Equal(got, []int{1, 2, 3, 4}) {
		t.Errorf("joinCycle() = %v, want [1 2 3 4]", got)
	}
}

func TestFrontierOrder(t *testing.T) {
	tests := []struct {
		name       string
		descending bool
		want       []string
	}{
		{"ascending", false, []string{"root", "x", "y", "z"}},
		{"descending", true, []string{"z", "y", "x", "root"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFrontier("root", 0, tt.descending)
			root := f.reached["root"]
			f.push(root.extend("y"), 5)
			f.push(root.extend("z"), 9)
			f.push(root.extend("x"), 2)

			var got []string
			for !f.empty() {
				got = append(got, f.pop().node)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("pop order = %v, want %v", got, tt.want)
			}
			if len(f.reached) != 4 {
				t.Errorf("reached keeps %d nodes after draining, want 4", len(f.reached))
			}
		})
	}
}
