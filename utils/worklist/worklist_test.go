package worklist

import "testing"

func TestFIFO(t *testing.T) {
	w := Empty[int]()
	w.Push(1)
	w.Push(2)

	var order []int
	for !w.IsEmpty() {
		next := w.Pop()
		order = append(order, next)
		if next < 4 {
			w.Push(2 * next)
			w.Push(2*next + 1)
		}
	}

	expected := []int{1, 2, 2, 3, 4, 5, 4, 5, 6, 7}
	if len(order) != len(expected) {
		t.Fatalf("Visited %v, expected %v", order, expected)
	}
	for i := range order {
		if order[i] != expected[i] {
			t.Fatalf("Visited %v, expected %v", order, expected)
		}
	}
}

func TestPopEmpty(t *testing.T) {
	w := Empty[string]()
	w.Push("a")
	if w.Pop() != "a" || w.Pop() != "" || !w.IsEmpty() {
		t.Error("Unexpected worklist state")
	}
}
