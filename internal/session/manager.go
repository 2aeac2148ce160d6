// Package session owns the per-chat dialogue sessions. Sessions are
// in-memory only; abandoned ones expire after a TTL instead of leaking.
package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"task-planner-bot/internal/model"
)

const maxSessions = 10000

// Manager keys active sessions by chat ID. The underlying LRU is
// thread-safe, and each session is only ever touched by its own chat's
// message handler, so no additional locking is needed.
type Manager struct {
	sessions *expirable.LRU[int64, *model.Session]
}

// NewManager creates a Manager whose sessions expire after ttl of
// inactivity, provided the owner calls Touch on activity. A
// non-positive ttl disables expiry.
func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		sessions: expirable.NewLRU[int64, *model.Session](maxSessions, nil, ttl),
	}
}

// Get returns the active session for a chat, if any.
func (m *Manager) Get(chatID int64) (*model.Session, bool) {
	return m.sessions.Get(chatID)
}

// Start opens a fresh session for the given flow, replacing any session
// the chat already had. Fields always start empty so an aborted earlier
// flow cannot leak values into the new one.
func (m *Manager) Start(chatID int64, flow model.FlowType, state model.DialogState) *model.Session {
	s := &model.Session{
		ID:        uuid.NewString(),
		ChatID:    chatID,
		Flow:      flow,
		State:     state,
		Fields:    make(map[string]string),
		StartedAt: time.Now(),
	}
	m.sessions.Add(chatID, s)
	return s
}

// Touch resets the session's expiry deadline. The LRU measures TTL
// from insertion, so without re-adding on activity a slow but live
// dialogue would be dropped mid-flow at exactly ttl.
func (m *Manager) Touch(chatID int64) {
	if s, ok := m.sessions.Get(chatID); ok {
		m.sessions.Add(chatID, s)
	}
}

// Clear drops the chat's session, if any.
func (m *Manager) Clear(chatID int64) {
	m.sessions.Remove(chatID)
}
