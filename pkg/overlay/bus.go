package overlay

// Handler is a callback for published values.
type Handler[T any] func(T)

// Bus is a typed publish/subscribe channel. It is not safe for concurrent
// use; all calls are expected on the Bubble Tea update loop.
type Bus[T any] struct {
	handlers map[int]Handler[T]
	order    []int
	nextID   int
}

// NewBus creates an empty bus.
func NewBus[T any]() *Bus[T] {
	return &Bus[T]{
		handlers: make(map[int]Handler[T]),
	}
}

// Subscribe registers a handler and returns a function that removes it.
func (b *Bus[T]) Subscribe(handler Handler[T]) func() {
	id := b.nextID
	b.nextID++
	b.handlers[id] = handler
	b.order = append(b.order, id)

	return func() {
		if _, ok := b.handlers[id]; !ok {
			return
		}
		delete(b.handlers, id)
		for i, v := range b.order {
			if v == id {
				b.order = append(b.order[:i], b.order[i+1:]...)
				break
			}
		}
	}
}

// Publish delivers v to every handler in subscription order.
func (b *Bus[T]) Publish(v T) {
	// Snapshot so handlers may unsubscribe while being called.
	ids := append([]int(nil), b.order...)
	for _, id := range ids {
		if h, ok := b.handlers[id]; ok {
			h(v)
		}
	}
}

// Count returns the number of registered handlers.
func (b *Bus[T]) Count() int {
	return len(b.handlers)
}
