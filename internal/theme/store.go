package theme

import (
	"errors"
	"fmt"
	"image/color"
	"sync"
)

var (
	ErrUnknownRole  = errors.New("unknown colour role")
	ErrInvalidColor = errors.New("fully transparent colour")
)

type roleSub struct {
	id int
	fn func(Role, color.RGBA)
}

// Store is the shared role→colour table views draw from. The scheduler writes
// it; views read it every frame or subscribe to changes. Safe for concurrent
// use.
type Store struct {
	mu     sync.RWMutex
	colors [roleCount]color.RGBA
	set    [roleCount]bool
	subs   []roleSub
	nextID int
}

func NewStore() *Store {
	return &Store{}
}

// Set stores c for r and notifies subscribers if the value changed.
func (s *Store) Set(r Role, c color.RGBA) error {
	if !r.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownRole, int(r))
	}
	if c.A == 0 {
		return fmt.Errorf("%w for %s", ErrInvalidColor, r)
	}

	s.mu.Lock()
	changed := !s.set[r] || s.colors[r] != c
	s.colors[r] = c
	s.set[r] = true
	subs := append([]roleSub(nil), s.subs...)
	s.mu.Unlock()

	if changed {
		for _, sub := range subs {
			sub.fn(r, c)
		}
	}
	return nil
}

func (s *Store) Color(r Role) (color.RGBA, bool) {
	if !r.Valid() {
		return color.RGBA{}, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.colors[r], s.set[r]
}

// MustColor returns the colour for r, or Neutral when it was never set.
func (s *Store) MustColor(r Role) color.RGBA {
	if c, ok := s.Color(r); ok {
		return c
	}
	return Neutral
}

// Snapshot copies the current table, Neutral for unset roles.
func (s *Store) Snapshot() Palette {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var p Palette
	for i := range p {
		if s.set[i] {
			p[i] = s.colors[i]
		} else {
			p[i] = Neutral
		}
	}
	return p
}

// Subscribe registers fn for every change; call the returned func to detach.
func (s *Store) Subscribe(fn func(Role, color.RGBA)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, roleSub{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}
