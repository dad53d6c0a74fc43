package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	tele "gopkg.in/telebot.v4"
)

// botFiles downloads Telegram file content through the running bot. The bot
// instance only exists once the runtime is up, so it is bound late.
type botFiles struct {
	mu  sync.RWMutex
	bot *tele.Bot
}

func (f *botFiles) bind(b *tele.Bot) {
	f.mu.Lock()
	f.bot = b
	f.mu.Unlock()
}

func (f *botFiles) Download(_ context.Context, fileID string) ([]byte, error) {
	f.mu.RLock()
	b := f.bot
	f.mu.RUnlock()
	if b == nil {
		return nil, errors.New("bot is not running")
	}

	rc, err := b.File(&tele.File{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("download file %s: %w", fileID, err)
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
