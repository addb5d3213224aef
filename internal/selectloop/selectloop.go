// Package selectloop provides a circular selection over a fixed, non-empty
// list of items. Every list in the browser (tabs, media files, subtitles)
// is backed by one.
package selectloop

import "errors"

// ErrEmptySelection is returned when a SelectLoop would be built without
// any items. An empty list is a configuration problem, never a runtime state.
var ErrEmptySelection = errors.New("selection list is empty")

// SelectLoop holds an ordered set of items and the index of the current one.
// The contents are fixed at construction; only Next and Previous move the index.
type SelectLoop[T any] struct {
	items []T
	index int
}

// New builds a SelectLoop positioned on the first item.
func New[T any](items []T) (*SelectLoop[T], error) {
	if len(items) == 0 {
		return nil, ErrEmptySelection
	}
	owned := make([]T, len(items))
	copy(owned, items)
	return &SelectLoop[T]{items: owned}, nil
}

// Next advances the selection, wrapping to the first item after the last.
func (s *SelectLoop[T]) Next() {
	s.index = (s.index + 1) % len(s.items)
}

// Previous moves the selection back, wrapping to the last item before the first.
func (s *SelectLoop[T]) Previous() {
	if s.index > 0 {
		s.index--
		return
	}
	s.index = len(s.items) - 1
}

// Current returns the selected item.
func (s *SelectLoop[T]) Current() T {
	return s.items[s.index]
}

// Index returns the position of the selected item.
func (s *SelectLoop[T]) Index() int {
	return s.index
}

// Len returns the number of items.
func (s *SelectLoop[T]) Len() int {
	return len(s.items)
}

// Items returns a copy of the items in order.
func (s *SelectLoop[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// At returns the item at position i.
func (s *SelectLoop[T]) At(i int) T {
	return s.items[i]
}
