// Package pager exposes a growing "show more" window over a result list.
package pager

// PageSize is the number of additional items each page reveals.
const PageSize = 10

// Window is a prefix of items that grows one page at a time.
type Window[T any] struct {
	items    []T
	size     int
	pageSize int
}

// New returns an empty window that grows by pageSize (PageSize if <= 0).
func New[T any](pageSize int) *Window[T] {
	if pageSize <= 0 {
		pageSize = PageSize
	}
	return &Window[T]{pageSize: pageSize}
}

// Reset stores items and shows the first page.
func (w *Window[T]) Reset(items []T) {
	w.items = items
	w.size = min(w.step(), len(items))
}

// ShowMore reveals one more page. It is a no-op once everything is visible.
func (w *Window[T]) ShowMore() {
	w.size = min(w.size+w.step(), len(w.items))
}

// Visible returns the currently shown prefix.
func (w *Window[T]) Visible() []T {
	return w.items[:w.size]
}

// All returns every item, visible or not.
func (w *Window[T]) All() []T {
	return w.items
}

// Size returns the number of visible items.
func (w *Window[T]) Size() int {
	return w.size
}

// Len returns the total number of items.
func (w *Window[T]) Len() int {
	return len(w.items)
}

// HasMore reports whether ShowMore would reveal anything.
func (w *Window[T]) HasMore() bool {
	return w.size < len(w.items)
}

// PageSize returns the page increment.
func (w *Window[T]) PageSize() int {
	return w.step()
}

func (w *Window[T]) step() int {
	if w.pageSize <= 0 {
		return PageSize
	}
	return w.pageSize
}
