// Package session keeps the in-progress reservation flows of the gateway, one coordinator each.
package session

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Astemirdum/ureserve/gateway/internal/coordinator"
	"github.com/Astemirdum/ureserve/gateway/internal/errs"
	"github.com/Astemirdum/ureserve/gateway/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Session struct {
	ID uuid.UUID

	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
	coord  *coordinator.Coordinator

	// unix nanos of the last access
	lastSeen atomic.Int64
	// state as of the last finished operation, readable while one is in flight
	snapshot atomic.Pointer[model.DraftState]
}

// publish refreshes the snapshot. Callers hold mu.
func (sess *Session) publish() model.DraftState {
	st := sess.coord.State()
	st.SessionID = sess.ID.String()
	sess.snapshot.Store(&st)
	return st
}

func (sess *Session) touch(now time.Time) {
	sess.lastSeen.Store(now.UnixNano())
}

// Factory builds the coordinator of a new session.
type Factory func() *coordinator.Coordinator

type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session

	ttl     time.Duration
	factory Factory
	now     func() time.Time
	log     *zap.Logger
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func NewStore(factory Factory, ttl time.Duration, log *zap.Logger, opts ...Option) *Store {
	s := &Store{
		sessions: make(map[uuid.UUID]*Session),
		ttl:      ttl,
		factory:  factory,
		now:      time.Now,
		log:      log.Named("session"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open starts a flow for ft with user as the initiator.
func (s *Store) Open(ft model.FacilityType, user model.Person) (model.DraftState, error) {
	coord := s.factory()
	if err := coord.Initialize(ft, user); err != nil {
		return model.DraftState{}, err
	}
	ctx, cancel := context.WithCancel(context.Background())
	sess := &Session{
		ID:     uuid.New(),
		ctx:    ctx,
		cancel: cancel,
		coord:  coord,
	}
	sess.touch(s.now())
	st := sess.publish()

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	s.log.Debug("session opened", zap.Stringer("sessionId", sess.ID), zap.String("facility", string(ft)))
	return st, nil
}

func (s *Store) get(id uuid.UUID) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, errs.ErrSessionNotFound
	}
	return sess, nil
}

// Do runs fn against the session's coordinator. Only one operation per session may run at a time:
// a concurrent one fails with ErrOperationInFlight. ctx passed to fn is also cancelled when the
// session is closed.
func (s *Store) Do(ctx context.Context, id uuid.UUID, fn func(ctx context.Context, c *coordinator.Coordinator) error) error {
	sess, err := s.get(id)
	if err != nil {
		return err
	}
	if !sess.mu.TryLock() {
		return errs.ErrOperationInFlight
	}
	defer sess.mu.Unlock()
	if sess.ctx.Err() != nil {
		return errs.ErrSessionNotFound
	}
	sess.touch(s.now())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(sess.ctx, cancel)
	defer stop()

	err = fn(ctx, sess.coord)
	sess.publish()
	return err
}

// State returns the session's view as of its last finished operation. It never waits for
// nor rejects on an operation in flight.
func (s *Store) State(id uuid.UUID) (model.DraftState, error) {
	sess, err := s.get(id)
	if err != nil {
		return model.DraftState{}, err
	}
	sess.touch(s.now())
	return *sess.snapshot.Load(), nil
}

func (s *Store) Close(id uuid.UUID) error {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if !ok {
		return errs.ErrSessionNotFound
	}
	sess.cancel()
	s.log.Debug("session closed", zap.Stringer("sessionId", id))
	return nil
}

// Sweep drops the sessions idle for longer than the ttl. Busy sessions are never idle.
func (s *Store) Sweep() int {
	deadline := s.now().Add(-s.ttl).UnixNano()
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, sess := range s.sessions {
		if !sess.mu.TryLock() {
			continue
		}
		expired := sess.lastSeen.Load() < deadline
		sess.mu.Unlock()
		if !expired {
			continue
		}
		delete(s.sessions, id)
		sess.cancel()
		n++
	}
	if n > 0 {
		s.log.Info("expired sessions swept", zap.Int("count", n))
	}
	return n
}

// Run sweeps expired sessions until ctx is done, then closes the rest.
func (s *Store) Run(ctx context.Context) {
	interval := s.ttl / 2
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.CloseAll()
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

func (s *Store) CloseAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sess := range s.sessions {
		sess.cancel()
		delete(s.sessions, id)
	}
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
