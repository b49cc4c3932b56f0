package telegram

import (
	"context"
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		return
	}

	cd := decodeCallback(cb.Data)

	switch cd.Action {
	case actionGame:
		_ = h.withCallbackErrorHandling(h.gameCallbackHandler(cd))(ctx, cb)
	case actionClue:
		_ = h.withCallbackErrorHandling(h.clueCallbackHandler(cd))(ctx, cb)
	case actionNoop:
		// Header cells only display the category title.
	default:
		h.logger.Debug("unknown callback action", zap.String("data", cb.Data))
	}

	// Remove the user's "clock".
	answer := tgbotapi.NewCallback(cb.ID, "")
	if _, err := h.bot.Request(answer); err != nil {
		h.logger.Error("callback answer error", zap.Error(err))
	}
}

// gameCallbackHandler runs the start/restart control. A press while a
// load is already in flight is ignored.
func (h *Handler) gameCallbackHandler(cd callbackData) CallbackFunc {
	return func(ctx context.Context, cb *tgbotapi.CallbackQuery) error {
		if len(cd.Params) != 1 || cd.Params[0] != gameStart {
			return fmt.Errorf("invalid game callback data %q", cb.Data)
		}

		chatID := cb.Message.Chat.ID
		msgID := cb.Message.MessageID

		sess := h.sessions.get(chatID)
		if !sess.beginLoading() {
			return nil
		}
		defer sess.endLoading()

		h.send(newHTMLEdit(chatID, msgID, msgLoading))
		return h.finishStart(ctx, sess, chatID, msgID)
	}
}

// clueCallbackHandler advances one clue cell: first press reveals the
// question, second the answer, any further press changes nothing. The
// cell's position resolves to its question text, which is the lookup key
// into the game state; the advance itself happens under the state's lock.
// A lookup miss changes no UI state.
func (h *Handler) clueCallbackHandler(cd callbackData) CallbackFunc {
	return func(_ context.Context, cb *tgbotapi.CallbackQuery) error {
		if len(cd.Params) != 2 {
			return fmt.Errorf("invalid clue callback data %q", cb.Data)
		}

		col, err1 := strconv.Atoi(cd.Params[0])
		row, err2 := strconv.Atoi(cd.Params[1])
		if err1 != nil || err2 != nil {
			return fmt.Errorf("invalid clue callback values %q", cb.Data)
		}

		chatID := cb.Message.Chat.ID

		sess := h.sessions.get(chatID)
		if sess.isLoading() {
			return nil
		}

		if len(sess.state.Board()) == 0 {
			// Stale board message, e.g. from before a bot restart.
			h.send(newHTMLMessage(chatID, msgNoBoard))
			return nil
		}

		cell, err := sess.state.ClueAt(col, row)
		if err != nil {
			return fmt.Errorf("clue cell (%d,%d): %w", col, row, err)
		}

		clue, changed, err := sess.state.AdvanceClue(cell.Question)
		if err != nil {
			return fmt.Errorf("advance clue %q: %w", cell.Question, err)
		}
		if !changed {
			// Already showing the answer.
			return nil
		}

		board := sess.state.Board()
		if col >= len(board) {
			return nil
		}

		edit := newHTMLEdit(chatID, cb.Message.MessageID, formatRevealedClue(board[col].Title, clue))
		kb := buildBoardKeyboard(board)
		edit.ReplyMarkup = &kb
		h.send(edit)
		return nil
	}
}
