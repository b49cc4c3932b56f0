package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type HandlerFunc func(ctx context.Context, chatID int64) error

type CallbackFunc func(ctx context.Context, cb *tgbotapi.CallbackQuery) error

// withErrorHandling wraps command handlers: a failure is logged and the
// chat gets a generic error message.
func (h *Handler) withErrorHandling(fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if err := fn(ctx, chatID); err != nil {
			h.logger.Error("handle error",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
			h.sendError(chatID, msgInternalError)
			return nil
		}
		return nil
	}
}

// withCallbackErrorHandling wraps callback handlers: a failure is logged
// with the callback payload and nothing else happens. A failed cell
// activation must not change any UI state, and a failed start has already
// put the retry control back on the board message.
func (h *Handler) withCallbackErrorHandling(fn CallbackFunc) CallbackFunc {
	return func(ctx context.Context, cb *tgbotapi.CallbackQuery) error {
		if err := fn(ctx, cb); err != nil {
			h.logger.Error("callback error",
				zap.Int64("chat_id", cb.Message.Chat.ID),
				zap.String("data", cb.Data),
				zap.Error(err),
			)
			return nil
		}
		return nil
	}
}
