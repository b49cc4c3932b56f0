package game

import (
	"errors"
	"sync"

	"github.com/aliskhannn/jeopardy-bot/internal/domain/entities"
)

var ErrClueNotFound = errors.New("game: clue not found")

// State holds the board for one chat's game session. The board is swapped
// wholesale on every start or restart; between swaps only the reveal state
// of individual clues changes. All reads hand out copies and the only
// mutation path is AdvanceClue, so every access to clue state happens
// under the state's lock.
type State struct {
	mu    sync.RWMutex
	board entities.Board
}

func NewState() *State {
	return &State{}
}

// ReplaceBoard discards the previous board entirely and installs a freshly
// built one. The board is cloned on the way in; renderers never observe a
// partially updated board and the caller keeps no aliases into it.
func (s *State) ReplaceBoard(b entities.Board) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.board = b.Clone()
}

// Board returns a snapshot of the current board. Empty until the first
// game starts.
func (s *State) Board() entities.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board.Clone()
}

// FindClue locates the clue whose question text matches exactly, scanning
// in board order, and returns a copy of it. Question text is assumed
// unique across a board; if two clues share it, the first match wins.
func (s *State) FindClue(question string) (entities.Clue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	clue, err := s.findLocked(question)
	if err != nil {
		return entities.Clue{}, err
	}

	return *clue, nil
}

// ClueAt returns a copy of the clue in column col (category index) and
// row (clue index within the category).
func (s *State) ClueAt(col, row int) (entities.Clue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if col < 0 || col >= len(s.board) {
		return entities.Clue{}, ErrClueNotFound
	}
	if row < 0 || row >= len(s.board[col].Clues) {
		return entities.Clue{}, ErrClueNotFound
	}

	return s.board[col].Clues[row], nil
}

// AdvanceClue advances the reveal state of the clue with the given
// question text, holding the write lock across lookup and mutation. It
// returns a copy of the clue after the attempt and whether the state
// changed; a clue already showing its answer stays put.
func (s *State) AdvanceClue(question string) (entities.Clue, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	clue, err := s.findLocked(question)
	if err != nil {
		return entities.Clue{}, false, err
	}

	changed := clue.Advance()
	return *clue, changed, nil
}

// findLocked scans for a question's clue. Callers must hold the lock.
func (s *State) findLocked(question string) (*entities.Clue, error) {
	for ci := range s.board {
		for qi := range s.board[ci].Clues {
			if s.board[ci].Clues[qi].Question == question {
				return &s.board[ci].Clues[qi], nil
			}
		}
	}

	return nil, ErrClueNotFound
}
