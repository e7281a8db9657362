package usecase

import (
	"sync"
	"sync/atomic"
	"time"

	"kiosk_quote/internal/domain/entities"
	"kiosk_quote/internal/domain/wizard"
)

// kioskSession is one terminal's wizard. busy is the in-flight guard held for
// the whole of a mutating operation; mu only guards the fields below it so
// readers never wait on I/O.
type kioskSession struct {
	id         string
	terminalID string
	machine    *wizard.Machine
	busy       atomic.Bool

	mu       sync.Mutex
	state    wizard.State
	toasts   []entities.Notification
	lastSeen time.Time
}

func (s *kioskSession) release() {
	s.busy.Store(false)
}

func (s *kioskSession) current() wizard.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *kioskSession) commit(st wizard.State, now time.Time) {
	s.mu.Lock()
	s.state = st
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *kioskSession) push(n entities.Notification) {
	s.mu.Lock()
	s.toasts = append(s.toasts, n)
	s.mu.Unlock()
}

// snapshot returns the state and drains pending notifications.
func (s *kioskSession) snapshot() (wizard.State, []entities.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	toasts := s.toasts
	s.toasts = nil
	return s.state, toasts
}

func (s *kioskSession) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *kioskSession) seen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}
