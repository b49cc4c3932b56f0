package telegram

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// handleStartCommand sends the welcome message with the start control.
func (h *Handler) handleStartCommand(chatID int64) {
	msg := newHTMLMessage(chatID, msgWelcome)
	kb := buildStartKeyboard("▶️ Start game")
	msg.ReplyMarkup = kb
	h.send(msg)
}

// playHandler starts (or restarts) a game from the /play command. The
// board replaces whatever the chat had before.
func (h *Handler) playHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		sess := h.sessions.get(chatID)
		if !sess.beginLoading() {
			return nil
		}
		defer sess.endLoading()

		sent, err := h.bot.Send(newHTMLMessage(chatID, msgLoading))
		if err != nil {
			return fmt.Errorf("send loading message: %w", err)
		}

		if err := h.finishStart(ctx, sess, chatID, sent.MessageID); err != nil {
			// The board message already shows the failure and the retry
			// control; only the log entry is still missing.
			h.logger.Error("game start failed",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
		}
		return nil
	}
}

// finishStart runs the fetch for a start attempt whose message already
// shows the loading text, then edits that message with the outcome. On
// failure the start control comes back so the user can retry; the chat is
// never left stuck in the loading presentation.
func (h *Handler) finishStart(ctx context.Context, sess *session, chatID int64, msgID int) error {
	board, err := h.games.NewBoard(ctx)
	if err != nil {
		edit := newHTMLEdit(chatID, msgID, msgLoadFailed)
		kb := buildStartKeyboard("🔁 Try again")
		edit.ReplyMarkup = &kb
		h.send(edit)
		return fmt.Errorf("build board: %w", err)
	}

	sess.state.ReplaceBoard(board)

	edit := newHTMLEdit(chatID, msgID, msgBoardReady)
	kb := buildBoardKeyboard(board)
	edit.ReplyMarkup = &kb
	h.send(edit)
	return nil
}
