package state

import (
	"sync"

	"github.com/izzat1998/exhibition-bot/core/logger"
	tghelpers "github.com/izzat1998/exhibition-bot/core/telegram/helpers"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

type conversation struct {
	session Session
	// busy serializes handler execution for the conversation; an event that
	// arrives while a handler is in flight waits instead of interleaving.
	busy sync.Mutex
}

type memoryManager struct {
	mu            sync.RWMutex
	conversations map[Key]*conversation
	handlers      map[State]tele.HandlerFunc
}

// NewMemoryManager constructs an in-memory Manager implementation.
func NewMemoryManager() Manager {
	return &memoryManager{
		conversations: make(map[Key]*conversation),
		handlers:      make(map[State]tele.HandlerFunc),
	}
}

func (m *memoryManager) conv(key Key) *conversation {
	m.mu.Lock()
	defer m.mu.Unlock()
	cv, ok := m.conversations[key]
	if !ok {
		cv = &conversation{session: Session{State: StateIdle, TempData: make(map[string]interface{})}}
		m.conversations[key] = cv
	}
	return cv
}

// Get returns a copy of the session for a conversation, or a default idle
// session when none exists yet.
func (m *memoryManager) Get(key Key) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if cv, ok := m.conversations[key]; ok {
		s := cv.session
		return &s
	}
	return &Session{State: StateIdle, TempData: make(map[string]interface{})}
}

// SetTemp stores a temporary name/value pair for the conversation.
func (m *memoryManager) SetTemp(key Key, name string, value interface{}) {
	cv := m.conv(key)
	m.mu.Lock()
	defer m.mu.Unlock()
	cv.session.TempData[name] = value
}

// GetTemp retrieves a temporary value by name for the conversation.
func (m *memoryManager) GetTemp(key Key, name string) (interface{}, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	cv, ok := m.conversations[key]
	if !ok {
		return nil, false
	}
	val, ok := cv.session.TempData[name]
	return val, ok
}

// GetTempInt64 retrieves a temporary value by name and asserts it as int64.
func (m *memoryManager) GetTempInt64(key Key, name string) (int64, bool) {
	val, found := m.GetTemp(key, name)
	if !found {
		return 0, false
	}
	v, ok := val.(int64)
	if !ok {
		return 0, false
	}
	return v, true
}

// ClearTemp removes a temporary name/value pair for the conversation.
func (m *memoryManager) ClearTemp(key Key, name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cv, ok := m.conversations[key]; ok {
		delete(cv.session.TempData, name)
	}
}

// Clear removes the entire session for a conversation.
func (m *memoryManager) Clear(key Key) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.conversations, key)
}

// SetState sets the FSM state for the conversation.
func (m *memoryManager) SetState(key Key, st State) {
	cv := m.conv(key)
	m.mu.Lock()
	defer m.mu.Unlock()
	cv.session.State = st
}

// GetState returns the current FSM state of a conversation, or StateIdle if
// none exists.
func (m *memoryManager) GetState(key Key) State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if cv, ok := m.conversations[key]; ok {
		return cv.session.State
	}
	return StateIdle
}

// ClearState resets the FSM state to idle without removing session data.
func (m *memoryManager) ClearState(key Key) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cv, ok := m.conversations[key]; ok {
		cv.session.State = StateIdle
	}
}

// HasState checks if a conversation has an active state other than idle.
func (m *memoryManager) HasState(key Key) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	cv, ok := m.conversations[key]
	return ok && cv.session.State != StateIdle
}

// InProgress reports whether the conversation currently has an active FSM state.
func (m *memoryManager) InProgress(key Key) bool {
	return m.HasState(key)
}

// RegisterHandler associates a state with its handler.
func (m *memoryManager) RegisterHandler(st State, h tele.HandlerFunc) {
	if h == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[st] = h
}

// ManagerHandler executes the handler registered for the conversation's
// current state, if any. Execution is serialized per conversation.
func (m *memoryManager) ManagerHandler(c tele.Context) error {
	key := KeyOf(c)
	cv := m.conv(key)

	cv.busy.Lock()
	defer cv.busy.Unlock()

	current := m.GetState(key)
	ctx := tghelpers.BuildContext(c)
	logger.Debug(ctx, "tg", "fsm.manager",
		slog.String("status", "ok"),
		slog.Int64("user_id", key.UserID),
		slog.String("state", string(current)),
	)

	m.mu.RLock()
	handler, ok := m.handlers[current]
	m.mu.RUnlock()
	if ok {
		return handler(c)
	}
	return nil
}
