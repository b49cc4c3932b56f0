package telegram

import (
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionGame = "game"
	actionClue = "clue"
	actionNoop = "noop"
)

// Game sub-actions.
const (
	gameStart = "start"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	if len(parts) == 0 {
		return callbackData{Raw: data}
	}

	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// buildGameStartCallback builds callback data for the start/restart control.
func buildGameStartCallback() string {
	return callbackData{
		Action: actionGame,
		Params: []string{gameStart},
	}.encode()
}

// buildClueCallback builds callback data for a clue cell. Cells are keyed
// by position (category column, clue row), not by question text.
func buildClueCallback(col, row int) string {
	return callbackData{
		Action: actionClue,
		Params: []string{
			strconv.Itoa(col),
			strconv.Itoa(row),
		},
	}.encode()
}

// buildNoopCallback builds callback data for buttons that only display text.
func buildNoopCallback() string {
	return actionNoop
}
