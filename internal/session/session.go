package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/cart"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/catalog"
)

// Session owns one shopper's cart, the item being customized and the
// checkout in-flight flag. Callers mutate it inside Do.
type Session struct {
	ID string

	mu          sync.Mutex
	cart        *cart.Cart
	customizer  *cart.Customizer
	checkingOut bool
	lastSeen    time.Time
}

func newSession(id string, now time.Time) *Session {
	return &Session{ID: id, cart: cart.New(), lastSeen: now}
}

// State is the view of a session handed to Do callbacks.
type State struct {
	Cart       *cart.Cart
	Customizer *cart.Customizer
}

// StartCustomizing replaces any in-progress customization with a fresh one
// for item.
func (s *State) StartCustomizing(item catalog.MenuItem) *cart.Customizer {
	s.Customizer = cart.NewCustomizer(item)
	return s.Customizer
}

func (s *State) StopCustomizing() {
	s.Customizer = nil
}

// Do runs fn with exclusive access to the session state.
func (s *Session) Do(fn func(st *State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := &State{Cart: s.cart, Customizer: s.customizer}
	err := fn(st)
	s.customizer = st.Customizer
	return err
}

// TryBeginCheckout marks a checkout as in flight. It reports false when one
// already is.
func (s *Session) TryBeginCheckout() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.checkingOut {
		return false
	}
	s.checkingOut = true
	return true
}

func (s *Session) EndCheckout() {
	s.mu.Lock()
	s.checkingOut = false
	s.mu.Unlock()
}

func (s *Session) CheckingOut() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkingOut
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

// Store keeps sessions in memory, keyed by id.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session), now: time.Now}
}

func NewID() string {
	return uuid.NewString()
}

// Get returns the live session for id and marks it as seen.
func (st *Store) Get(id string) (*Session, bool) {
	now := st.now()

	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if ok {
		s.touch(now)
	}
	return s, ok
}

// Create starts a session under a freshly generated id. Ids are never
// taken from the client.
func (st *Store) Create() *Session {
	now := st.now()

	st.mu.Lock()
	defer st.mu.Unlock()

	id := NewID()
	for st.sessions[id] != nil {
		id = NewID()
	}
	s := newSession(id, now)
	st.sessions[id] = s
	return s
}

func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// Sweep drops sessions idle for longer than ttl, skipping any with a checkout
// in flight. It returns the number removed.
func (st *Store) Sweep(now time.Time, ttl time.Duration) int {
	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, s := range st.sessions {
		if s.idleSince(now) <= ttl || s.CheckingOut() {
			continue
		}
		delete(st.sessions, id)
		removed++
	}
	return removed
}

// RunSweeper sweeps every interval until ctx is done.
func (st *Store) RunSweeper(ctx context.Context, interval, ttl time.Duration, onSweep func(removed int)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n := st.Sweep(st.now(), ttl)
			if onSweep != nil && n > 0 {
				onSweep(n)
			}
		}
	}
}
