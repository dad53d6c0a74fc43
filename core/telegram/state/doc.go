// Package state provides an in-memory FSM/session manager for Telegram bots.
// Each chat/user pair owns a conversation with a state, a scratch data map,
// and a busy flag that serializes its updates. Step handlers are registered
// on the manager and dispatched by ManagerHandler.
package state
