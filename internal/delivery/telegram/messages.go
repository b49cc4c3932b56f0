// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"html"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/jeopardy-bot/internal/domain/entities"
)

const (
	msgWelcome = "🎲 <b>Jeopardy Bot</b>\n\n" +
		"Six categories, five clues each. Tap a cell to reveal its question, tap again to reveal the answer.\n\n" +
		"Press the button below or send /play to deal a board."
	msgHelp = "Commands:\n\n" +
		"/play — start a new game (replaces the current board)\n" +
		"/help — this message\n\n" +
		"Tap ❓ to see a question, tap it again to see the answer. Revealed answers stay revealed until you restart."
	msgLoading        = "⏳ Dealing the board…"
	msgLoadFailed     = "😕 Couldn't fetch categories from the trivia service. Try again."
	msgBoardReady     = "🎲 <b>Your board is ready.</b>\n\nTap any ❓ to reveal a question."
	msgNoBoard        = "No board yet — send /play to start a game."
	msgInternalError  = "Something went wrong. Try again later."
	msgUnknownCommand = "Unknown command. Send /play to start a game or /help for help."
)

// newHTMLMessage creates a message with HTML parse mode.
func newHTMLMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	return msg
}

// newHTMLEdit creates an edit with HTML parse mode.
func newHTMLEdit(chatID int64, msgID int, text string) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageText(chatID, msgID, text)
	edit.ParseMode = tgbotapi.ModeHTML
	return edit
}

// formatRevealedClue formats the message body for the clue that was just
// activated. Button labels are truncated, so the full text goes here.
func formatRevealedClue(categoryTitle string, clue entities.Clue) string {
	switch clue.Showing {
	case entities.RevealAnswer:
		return fmt.Sprintf(
			"📂 <b>%s</b>\n\n❓ %s\n\n✅ <b>%s</b>",
			html.EscapeString(categoryTitle),
			html.EscapeString(clue.Question),
			html.EscapeString(clue.Answer),
		)
	default:
		return fmt.Sprintf(
			"📂 <b>%s</b>\n\n❓ <b>%s</b>\n\nTap the cell again for the answer.",
			html.EscapeString(categoryTitle),
			html.EscapeString(clue.Question),
		)
	}
}
