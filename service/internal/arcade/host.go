package arcade

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/casualarcade/arcade/engine"
	"github.com/casualarcade/arcade/service/internal/config"
)

// Host creates and tracks sessions by id.
type Host struct {
	registry *Registry
	cfg      config.Config
	log      logrus.FieldLogger

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session

	// OnGameEnd, when set before sessions are created, is called once per
	// finished game. It runs with that session's lock held.
	OnGameEnd OnGameEndFunc
}

func NewHost(reg *Registry, cfg config.Config, log logrus.FieldLogger) *Host {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Host{
		registry: reg,
		cfg:      cfg,
		log:      log,
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Create starts a session for title. A zero seed uses the configured seed.
func (h *Host) Create(title string, seed uint64, d engine.Difficulty) (*Session, error) {
	if seed == 0 {
		seed = h.cfg.Seed
	}
	g, err := h.registry.New(title, seed, d)
	if err != nil {
		return nil, err
	}
	s := NewSession(g, h.cfg.AIDelay, h.log)
	s.onEnd = h.OnGameEnd

	h.mu.Lock()
	h.sessions[s.ID] = s
	h.mu.Unlock()

	h.log.WithFields(logrus.Fields{
		"session":    s.ID,
		"game":       title,
		"difficulty": d,
		"seed":       seed,
	}).Info("session created")
	return s, nil
}

// Get looks a session up.
func (h *Host) Get(id uuid.UUID) (*Session, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	s, ok := h.sessions[id]
	return s, ok
}

// Remove closes and forgets a session.
func (h *Host) Remove(id uuid.UUID) error {
	h.mu.Lock()
	s, ok := h.sessions[id]
	delete(h.sessions, id)
	h.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: session %s", engine.ErrInvalidArgument, id)
	}
	s.Close()
	h.log.WithField("session", id).Info("session removed")
	return nil
}

// Len is the number of live sessions.
func (h *Host) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// Close closes every session.
func (h *Host) Close() {
	h.mu.Lock()
	sessions := h.sessions
	h.sessions = make(map[uuid.UUID]*Session)
	h.mu.Unlock()
	for _, s := range sessions {
		s.Close()
	}
}
