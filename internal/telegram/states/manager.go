package states

import (
	"sync"
	"time"
)

type session struct {
	state     State
	touchedAt time.Time
}

// Manager хранит состояния пользователей в памяти. Состояние скоупится по
// пользователю, поэтому между разными пользователями конкуренции нет.
type Manager struct {
	mu       sync.RWMutex
	sessions map[int64]session
	now      func() time.Time
}

// NewManager создает новый менеджер состояний
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[int64]session),
		now:      time.Now,
	}
}

// GetState получает текущее состояние пользователя
func (m *Manager) GetState(userID int64) State {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, exists := m.sessions[userID]
	if !exists {
		return StateIdle
	}
	return s.state
}

// SetState устанавливает состояние пользователя
func (m *Manager) SetState(userID int64, state State) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[userID] = session{state: state, touchedAt: m.now()}
}

// Clear очищает состояние пользователя
func (m *Manager) Clear(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, userID)
}

// ClearStale удаляет сессии, не обновлявшиеся дольше maxAge, и возвращает
// количество удалённых. Используется фоновым чистильщиком.
func (m *Manager) ClearStale(maxAge time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := m.now().Add(-maxAge)
	removed := 0
	for userID, s := range m.sessions {
		if s.touchedAt.Before(cutoff) {
			delete(m.sessions, userID)
			removed++
		}
	}
	return removed
}
