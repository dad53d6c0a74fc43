package app

import (
	"fmt"
	"strconv"
	"strings"

	tele "gopkg.in/telebot.v4"

	"github.com/izzat1998/exhibition-bot/core/telegram/format"
	"github.com/izzat1998/exhibition-bot/core/telegram/helpers"
	"github.com/izzat1998/exhibition-bot/internal/journal"
)

// recentCommand builds the admin /recent handler. Without an argument it shows
// the caller's own submission journal; /recent <telegram_id> shows another
// agent's.
func recentCommand(store *journal.Store) tele.HandlerFunc {
	return func(c tele.Context) error {
		agentID := c.Sender().ID
		if arg := strings.TrimSpace(c.Message().Payload); arg != "" {
			id, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				return helpers.SendText(c, "Usage: /recent <telegram_id>")
			}
			agentID = id
		}

		entries, err := store.Recent(helpers.BuildContext(c), agentID, 10)
		if err != nil {
			return helpers.SendText(c, "Unable to read the submission journal.")
		}
		return helpers.SendHTML(c, formatRecent(agentID, entries))
	}
}

func formatRecent(agentID int64, entries []journal.Entry) string {
	if len(entries) == 0 {
		return fmt.Sprintf("No recorded submissions for <b>%d</b>.", agentID)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Latest submissions for <b>%d</b>:\n", agentID)
	for _, e := range entries {
		mark := "❌"
		if e.Accepted {
			mark = "✅"
		}
		fmt.Fprintf(&b, "\n%s %s — status %d", mark, e.CreatedAt.Format("2006-01-02 15:04"), e.Status)
		if e.Detail != "" {
			b.WriteString(": " + format.EscapeHTML(e.Detail))
		}
	}
	return b.String()
}
