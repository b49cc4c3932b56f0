package entities

// RevealState tracks how much of a clue has been shown to the player.
type RevealState int

const (
	RevealHidden RevealState = iota
	RevealQuestion
	RevealAnswer
)

func (s RevealState) String() string {
	switch s {
	case RevealHidden:
		return "hidden"
	case RevealQuestion:
		return "question"
	case RevealAnswer:
		return "answer"
	default:
		return "unknown"
	}
}

// Clue is a single question/answer unit. Question and Answer are fixed at
// creation; Showing is the only field that changes during a game.
type Clue struct {
	Question string
	Answer   string
	Showing  RevealState
}

// Advance moves the clue to the next reveal state
// (hidden -> question -> answer). It reports whether the state changed;
// a clue in the answer state stays there.
func (c *Clue) Advance() bool {
	switch c.Showing {
	case RevealHidden:
		c.Showing = RevealQuestion
	case RevealQuestion:
		c.Showing = RevealAnswer
	default:
		return false
	}
	return true
}

// Category is a titled group of clues, one column of the board.
type Category struct {
	Title string
	Clues []Clue
}

// Board is the full set of categories for one game session. It is rebuilt
// from scratch on every start or restart and owns all clue state.
type Board []Category

// Clone returns a deep copy of the board. The board's holder hands out
// clones so no clue state escapes by reference.
func (b Board) Clone() Board {
	if b == nil {
		return nil
	}

	out := make(Board, len(b))
	for i, category := range b {
		clues := make([]Clue, len(category.Clues))
		copy(clues, category.Clues)
		out[i] = Category{Title: category.Title, Clues: clues}
	}

	return out
}
