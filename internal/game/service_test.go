package game

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/zap"

	"github.com/aliskhannn/jeopardy-bot/internal/domain/entities"
)

type fakeSource struct {
	ids        []int
	poolErr    error
	failID     int
	cluesPerID int
}

func (f *fakeSource) FetchCategoryPool(_ context.Context, sampleSize, _ int) ([]int, error) {
	if f.poolErr != nil {
		return nil, f.poolErr
	}
	return f.ids[:sampleSize], nil
}

func (f *fakeSource) FetchCategory(_ context.Context, id int) (entities.Category, error) {
	if id == f.failID {
		return entities.Category{}, fmt.Errorf("category %d unavailable", id)
	}

	clues := make([]entities.Clue, f.cluesPerID)
	for i := range clues {
		clues[i] = entities.Clue{
			Question: fmt.Sprintf("question %d-%d", id, i),
			Answer:   fmt.Sprintf("answer %d-%d", id, i),
		}
	}
	return entities.Category{Title: fmt.Sprintf("category %d", id), Clues: clues}, nil
}

func testConfig() Config {
	return Config{CategoryCount: 6, PoolSize: 100, CluesPerCategory: 5}
}

func TestNewBoardShapeAndOrder(t *testing.T) {
	source := &fakeSource{ids: []int{11, 7, 42, 3, 99, 25}, cluesPerID: 8}
	service := NewService(source, testConfig(), zap.NewNop())

	board, err := service.NewBoard(context.Background())
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}

	if len(board) != 6 {
		t.Fatalf("categories: want 6, got %d", len(board))
	}

	for i, id := range source.ids {
		wantTitle := fmt.Sprintf("category %d", id)
		if board[i].Title != wantTitle {
			t.Errorf("category %d: want title %q, got %q", i, wantTitle, board[i].Title)
		}
		if len(board[i].Clues) != 5 {
			t.Errorf("category %d: want 5 clues, got %d", i, len(board[i].Clues))
		}
		for _, clue := range board[i].Clues {
			if clue.Showing != entities.RevealHidden {
				t.Errorf("category %d: clue %q not hidden", i, clue.Question)
			}
		}
	}
}

func TestNewBoardFailsFastOnSingleCategoryError(t *testing.T) {
	source := &fakeSource{ids: []int{11, 7, 42, 3, 99, 25}, cluesPerID: 8, failID: 42}
	service := NewService(source, testConfig(), zap.NewNop())

	board, err := service.NewBoard(context.Background())
	if err == nil {
		t.Fatal("want error when one category fetch fails")
	}
	if board != nil {
		t.Fatal("no partial board on failure")
	}
}

func TestNewBoardPoolErrorPropagates(t *testing.T) {
	poolErr := errors.New("pool down")
	source := &fakeSource{poolErr: poolErr}
	service := NewService(source, testConfig(), zap.NewNop())

	_, err := service.NewBoard(context.Background())
	if !errors.Is(err, poolErr) {
		t.Fatalf("want wrapped pool error, got %v", err)
	}
}

func TestNewBoardRejectsShortCategories(t *testing.T) {
	source := &fakeSource{ids: []int{11, 7, 42, 3, 99, 25}, cluesPerID: 3}
	service := NewService(source, testConfig(), zap.NewNop())

	_, err := service.NewBoard(context.Background())
	if !errors.Is(err, ErrNotEnoughClues) {
		t.Fatalf("want ErrNotEnoughClues, got %v", err)
	}
}
