package telegram

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/jeopardy-bot/internal/domain/entities"
)

const (
	clueHiddenGlyph = "❓"
	// Telegram renders long button labels poorly, keep them short.
	buttonLabelLimit = 28
)

// buildBoardKeyboard projects a board into an inline keyboard: a header
// row of category titles, one row per clue index with a button per
// category, and a trailing restart control. It is a pure function of the
// board and never mutates it.
func buildBoardKeyboard(board entities.Board) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	header := make([]tgbotapi.InlineKeyboardButton, 0, len(board))
	for _, category := range board {
		label := truncateLabel(strings.ToUpper(category.Title), buttonLabelLimit)
		header = append(header, tgbotapi.NewInlineKeyboardButtonData(label, buildNoopCallback()))
	}
	rows = append(rows, header)

	for row := 0; row < cluesPerCategory(board); row++ {
		cells := make([]tgbotapi.InlineKeyboardButton, 0, len(board))
		for col, category := range board {
			label := clueLabel(category.Clues[row])
			cells = append(cells, tgbotapi.NewInlineKeyboardButtonData(label, buildClueCallback(col, row)))
		}
		rows = append(rows, cells)
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🔄 Restart", buildGameStartCallback()),
	))

	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// buildStartKeyboard builds the pre-game keyboard with only the start control.
func buildStartKeyboard(label string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, buildGameStartCallback()),
		),
	)
}

// clueLabel picks the cell text for a clue's current reveal state.
func clueLabel(c entities.Clue) string {
	switch c.Showing {
	case entities.RevealQuestion:
		return truncateLabel(c.Question, buttonLabelLimit)
	case entities.RevealAnswer:
		return truncateLabel(c.Answer, buttonLabelLimit)
	default:
		return clueHiddenGlyph
	}
}

// cluesPerCategory returns the board's row count. Boards are built with
// every category the same length.
func cluesPerCategory(board entities.Board) int {
	if len(board) == 0 {
		return 0
	}
	return len(board[0].Clues)
}

// truncateLabel shortens s to at most limit runes, marking the cut with an
// ellipsis.
func truncateLabel(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
