package game

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/aliskhannn/jeopardy-bot/internal/domain/entities"
)

func testBoard() entities.Board {
	return entities.Board{
		{
			Title: "math",
			Clues: []entities.Clue{
				{Question: "2+2", Answer: "4"},
				{Question: "3*3", Answer: "9"},
			},
		},
		{
			Title: "capitals",
			Clues: []entities.Clue{
				{Question: "capital of France", Answer: "Paris"},
				{Question: "capital of Japan", Answer: "Tokyo"},
			},
		},
	}
}

func TestStateBoardInitiallyEmpty(t *testing.T) {
	state := NewState()
	if len(state.Board()) != 0 {
		t.Fatal("fresh state should have no board")
	}
}

func TestReplaceBoardSwapsWholesale(t *testing.T) {
	state := NewState()
	state.ReplaceBoard(testBoard())

	if _, changed, err := state.AdvanceClue("2+2"); err != nil || !changed {
		t.Fatalf("AdvanceClue: changed=%v err=%v", changed, err)
	}

	// Replacing the board discards all reveal state from the old one.
	state.ReplaceBoard(testBoard())
	clue, err := state.FindClue("2+2")
	if err != nil {
		t.Fatalf("FindClue after replace: %v", err)
	}
	if clue.Showing != entities.RevealHidden {
		t.Errorf("clue on the new board should be hidden, got %v", clue.Showing)
	}
}

func TestFindClue(t *testing.T) {
	state := NewState()
	state.ReplaceBoard(testBoard())

	clue, err := state.FindClue("capital of Japan")
	if err != nil {
		t.Fatalf("FindClue: %v", err)
	}
	if clue.Answer != "Tokyo" {
		t.Errorf("answer: want Tokyo, got %q", clue.Answer)
	}

	if _, err := state.FindClue("no such question"); !errors.Is(err, ErrClueNotFound) {
		t.Fatalf("want ErrClueNotFound, got %v", err)
	}
}

func TestFindClueDuplicateQuestionYieldsFirstMatch(t *testing.T) {
	board := testBoard()
	board[1].Clues[0].Question = "2+2"
	board[1].Clues[0].Answer = "also 4"

	state := NewState()
	state.ReplaceBoard(board)

	clue, err := state.FindClue("2+2")
	if err != nil {
		t.Fatalf("FindClue: %v", err)
	}
	if clue.Answer != "4" {
		t.Errorf("duplicate question should resolve to first match, got answer %q", clue.Answer)
	}
}

func TestAdvanceClueSequence(t *testing.T) {
	state := NewState()
	state.ReplaceBoard(testBoard())

	clue, changed, err := state.AdvanceClue("2+2")
	if err != nil || !changed {
		t.Fatalf("first advance: changed=%v err=%v", changed, err)
	}
	if clue.Showing != entities.RevealQuestion {
		t.Errorf("after first advance: want question, got %v", clue.Showing)
	}

	clue, changed, err = state.AdvanceClue("2+2")
	if err != nil || !changed {
		t.Fatalf("second advance: changed=%v err=%v", changed, err)
	}
	if clue.Showing != entities.RevealAnswer {
		t.Errorf("after second advance: want answer, got %v", clue.Showing)
	}

	// Terminal: further activations change nothing.
	clue, changed, err = state.AdvanceClue("2+2")
	if err != nil {
		t.Fatalf("third advance: %v", err)
	}
	if changed {
		t.Error("third advance should be a no-op")
	}
	if clue.Showing != entities.RevealAnswer {
		t.Errorf("third advance left answer state: got %v", clue.Showing)
	}

	if _, _, err := state.AdvanceClue("no such question"); !errors.Is(err, ErrClueNotFound) {
		t.Fatalf("want ErrClueNotFound, got %v", err)
	}
}

func TestAdvanceVisibleOnNextLookup(t *testing.T) {
	state := NewState()
	state.ReplaceBoard(testBoard())

	if _, changed, err := state.AdvanceClue("2+2"); err != nil || !changed {
		t.Fatalf("AdvanceClue: changed=%v err=%v", changed, err)
	}

	clue, err := state.FindClue("2+2")
	if err != nil {
		t.Fatalf("FindClue: %v", err)
	}
	if clue.Showing != entities.RevealQuestion {
		t.Errorf("advance should be visible on next lookup, got %v", clue.Showing)
	}
}

func TestClueAt(t *testing.T) {
	state := NewState()
	state.ReplaceBoard(testBoard())

	clue, err := state.ClueAt(1, 1)
	if err != nil {
		t.Fatalf("ClueAt: %v", err)
	}
	if clue.Question != "capital of Japan" {
		t.Errorf("ClueAt(1,1): got question %q", clue.Question)
	}

	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if _, err := state.ClueAt(pos[0], pos[1]); !errors.Is(err, ErrClueNotFound) {
			t.Errorf("ClueAt(%d,%d): want ErrClueNotFound, got %v", pos[0], pos[1], err)
		}
	}
}

func TestStateHandsOutNoAliases(t *testing.T) {
	input := testBoard()
	state := NewState()
	state.ReplaceBoard(input)

	// Mutating the caller's board after the swap must not leak in.
	input[0].Clues[0].Showing = entities.RevealAnswer
	clue, err := state.FindClue("2+2")
	if err != nil {
		t.Fatalf("FindClue: %v", err)
	}
	if clue.Showing != entities.RevealHidden {
		t.Error("ReplaceBoard must copy the board it is given")
	}

	// Mutating a snapshot must not leak back either.
	snapshot := state.Board()
	snapshot[0].Clues[0].Showing = entities.RevealAnswer
	clue, err = state.FindClue("2+2")
	if err != nil {
		t.Fatalf("FindClue: %v", err)
	}
	if clue.Showing != entities.RevealHidden {
		t.Error("Board must return an independent copy")
	}
}

// TestConcurrentActivationsOfOneClue runs the activation sequence the
// callback handler uses (positional lookup, advance by question text,
// board snapshot for rendering) from many goroutines at once. Exactly two
// of the activations may change state, and the clue must end on its
// answer.
func TestConcurrentActivationsOfOneClue(t *testing.T) {
	state := NewState()
	state.ReplaceBoard(testBoard())

	var wg sync.WaitGroup
	var advanced atomic.Int32

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			cell, err := state.ClueAt(0, 0)
			if err != nil {
				t.Errorf("ClueAt: %v", err)
				return
			}

			_, changed, err := state.AdvanceClue(cell.Question)
			if err != nil {
				t.Errorf("AdvanceClue: %v", err)
				return
			}
			if changed {
				advanced.Add(1)
			}

			_ = state.Board()
		}()
	}
	wg.Wait()

	if got := advanced.Load(); got != 2 {
		t.Errorf("state-changing activations: want exactly 2, got %d", got)
	}

	clue, err := state.FindClue("2+2")
	if err != nil {
		t.Fatalf("FindClue: %v", err)
	}
	if clue.Showing != entities.RevealAnswer {
		t.Errorf("final state: want answer, got %v", clue.Showing)
	}
}
