package slices

import "testing"

type ids []int

func TestFind(t *testing.T) {
	if x, ok := Find(ids{3, 4, 5}, func(i int) bool { return i%2 == 0 }); !ok || x != 4 {
		t.Errorf("Find returned %d, %v", x, ok)
	}
	if _, ok := Find([]string{"a"}, func(s string) bool { return s == "b" }); ok {
		t.Error("Find found a missing element")
	}
}

func TestReverse(t *testing.T) {
	for _, test := range []struct{ in, out []int }{
		{nil, nil},
		{[]int{1}, []int{1}},
		{[]int{1, 2, 3, 4}, []int{4, 3, 2, 1}},
	} {
		got := Reverse(append([]int{}, test.in...))
		if len(got) != len(test.out) {
			t.Fatalf("Reverse(%v) = %v", test.in, got)
		}
		for i := range got {
			if got[i] != test.out[i] {
				t.Errorf("Reverse(%v) = %v", test.in, got)
				break
			}
		}
	}
}
