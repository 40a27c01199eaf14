// Package session owns the in-memory quoting sessions. One session is
// one advisor flow: its wizard state, at most one live document
// artifact, and the cancelable post-payment reset timer.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"quoting-engine/internal/document"
	"quoting-engine/internal/model"
	"quoting-engine/internal/wizard"
)

var ErrClosed = errors.New("session closed")

type Session struct {
	ID        string
	CreatedAt time.Time

	mu         sync.Mutex
	state      *model.WizardState
	artifact   *document.Artifact
	resetTimer *time.Timer
	lastTouch  time.Time
	closed     bool
}

// Do runs fn with exclusive access to the wizard state and the live
// artifact. All reads and mutations go through here.
func (s *Session) Do(fn func(st *model.WizardState, artifact *document.Artifact) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.lastTouch = time.Now()
	return fn(s.state, s.artifact)
}

// ReplaceArtifact generates a new artifact under the session lock,
// releases the superseded handle and clears the dispatch reference so a
// stale folio is never shown against a new document.
func (s *Session) ReplaceArtifact(gen func(st *model.WizardState) (*document.Artifact, error)) (*document.Artifact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrClosed
	}
	s.lastTouch = time.Now()

	a, err := gen(s.state)
	if err != nil {
		return nil, err
	}
	if s.artifact != nil {
		s.artifact.Release()
	}
	s.artifact = a
	s.state.DispatchRef = ""
	return a, nil
}

// ArtifactData returns the live artifact and a copy of its bytes.
func (s *Session) ArtifactData() (*document.Artifact, []byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || !s.artifact.Live() {
		return nil, nil, false
	}
	data := make([]byte, len(s.artifact.Data()))
	copy(data, s.artifact.Data())
	return s.artifact, data, true
}

// SchedulePostPaymentReset arms a timer that returns the wizard to the
// discovery step after the given delay. Re-arming replaces the pending
// timer; closing the session cancels it.
func (s *Session) SchedulePostPaymentReset(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if s.resetTimer != nil {
		s.resetTimer.Stop()
	}
	s.resetTimer = time.AfterFunc(d, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed {
			return
		}
		s.state.Step = model.StepFirst
		s.resetTimer = nil
	})
}

// Close cancels timers and releases the artifact. Idempotent.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	if s.resetTimer != nil {
		s.resetTimer.Stop()
		s.resetTimer = nil
	}
	if s.artifact != nil {
		s.artifact.Release()
		s.artifact = nil
	}
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastTouch)
}

// Manager keeps the live sessions and sweeps the idle ones.
type Manager struct {
	sessions sync.Map
	logger   *zap.Logger
	idleTTL  time.Duration
	stop     chan struct{}
	stopOnce sync.Once
}

func NewManager(logger *zap.Logger, idleTTL time.Duration) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		logger:  logger,
		idleTTL: idleTTL,
		stop:    make(chan struct{}),
	}
}

// Create seeds a new session with wizard defaults.
func (m *Manager) Create(line model.ProductLine, advisorName, advisorEmail string) *Session {
	now := time.Now()
	s := &Session{
		ID:        uuid.New().String(),
		CreatedAt: now,
		state:     wizard.New(line, advisorName, advisorEmail),
		lastTouch: now,
	}
	m.sessions.Store(s.ID, s)
	m.logger.Info("session created",
		zap.String("session_id", s.ID),
		zap.String("line", string(s.state.Line)))
	return s
}

func (m *Manager) Get(id string) (*Session, bool) {
	v, ok := m.sessions.Load(id)
	if !ok {
		return nil, false
	}
	return v.(*Session), true
}

// Delete closes and removes a session.
func (m *Manager) Delete(id string) bool {
	v, ok := m.sessions.LoadAndDelete(id)
	if !ok {
		return false
	}
	v.(*Session).Close()
	m.logger.Info("session closed", zap.String("session_id", id))
	return true
}

// StartJanitor sweeps idle sessions until Stop is called.
func (m *Manager) StartJanitor(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-m.stop:
				return
			case now := <-ticker.C:
				m.Sweep(now)
			}
		}
	}()
}

// Sweep closes sessions idle past the TTL.
func (m *Manager) Sweep(now time.Time) {
	if m.idleTTL <= 0 {
		return
	}
	m.sessions.Range(func(key, value interface{}) bool {
		s := value.(*Session)
		if s.idleSince(now) > m.idleTTL {
			m.sessions.Delete(key)
			s.Close()
			m.logger.Info("session expired", zap.String("session_id", s.ID))
		}
		return true
	})
}

// Stop halts the janitor and closes every session.
func (m *Manager) Stop() {
	m.stopOnce.Do(func() { close(m.stop) })
	m.sessions.Range(func(key, value interface{}) bool {
		m.sessions.Delete(key)
		value.(*Session).Close()
		return true
	})
}
