package transaction

import (
	"expense_tracker/internal/core/domain/repository"
)

// listenerSet is a set of listeners keyed by identity. It is not safe for concurrent use;
// the store guards it with its state lock.
type listenerSet struct {
	listeners map[repository.Listener]struct{}
}

func newListenerSet() *listenerSet {
	return &listenerSet{
		listeners: make(map[repository.Listener]struct{}),
	}
}

// add inserts l and reports whether it was not already present.
func (s *listenerSet) add(l repository.Listener) bool {
	if l == nil || s.exists(l) {
		return false
	}
	s.listeners[l] = struct{}{}
	return true
}

// remove deletes l and reports whether it was present.
func (s *listenerSet) remove(l repository.Listener) bool {
	if l == nil || !s.exists(l) {
		return false
	}
	delete(s.listeners, l)
	return true
}

func (s *listenerSet) exists(l repository.Listener) bool {
	if l == nil {
		return false
	}
	_, exists := s.listeners[l]
	return exists
}

func (s *listenerSet) len() int {
	return len(s.listeners)
}

// snapshot returns the current members. Order is unspecified.
func (s *listenerSet) snapshot() []repository.Listener {
	list := make([]repository.Listener, 0, len(s.listeners))
	for l := range s.listeners {
		list = append(list, l)
	}
	return list
}
