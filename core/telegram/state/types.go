package state

import tele "gopkg.in/telebot.v4"

// State identifies a finite-state-machine step used in conversations.
type State string

const (
	// StateIdle indicates there is no active conversation with the user.
	StateIdle State = "idle"
)

// Key addresses one conversation. Private chats have ChatID == UserID;
// keeping both keeps group usage unambiguous.
type Key struct {
	ChatID int64
	UserID int64
}

// KeyOf derives the conversation key from an update context.
func KeyOf(c tele.Context) Key {
	var k Key
	if chat := c.Chat(); chat != nil {
		k.ChatID = chat.ID
	}
	if sender := c.Sender(); sender != nil {
		k.UserID = sender.ID
	}
	return k
}

// Session stores conversation state and temporary data for one conversation.
type Session struct {
	State    State
	TempData map[string]interface{}
}

// Manager orchestrates conversation sessions and FSM state transitions.
// Implementations own their handler table; there is no package-level
// registration.
type Manager interface {
	Get(key Key) *Session
	SetTemp(key Key, name string, value interface{})
	ClearTemp(key Key, name string)
	GetTemp(key Key, name string) (interface{}, bool)
	GetTempInt64(key Key, name string) (int64, bool)
	Clear(key Key)

	// Dialog state
	SetState(key Key, st State)
	GetState(key Key) State
	HasState(key Key) bool
	ClearState(key Key)

	RegisterHandler(st State, h tele.HandlerFunc)

	InProgress(key Key) bool
	ManagerHandler(c tele.Context) error
}
