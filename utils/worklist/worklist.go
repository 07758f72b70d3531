package worklist

// Worklist is a FIFO queue of pending elements.
type Worklist[T any] struct {
	list []T
}

func Empty[T any]() *Worklist[T] {
	return &Worklist[T]{}
}

func (w *Worklist[T]) Push(el T) {
	w.list = append(w.list, el)
}

// Pop removes the oldest element. It returns the zero value on an empty
// worklist.
func (w *Worklist[T]) Pop() (ret T) {
	if len(w.list) == 0 {
		return
	}
	ret = w.list[0]
	w.list = w.list[1:]
	return
}

func (w *Worklist[T]) IsEmpty() bool {
	return len(w.list) == 0
}
