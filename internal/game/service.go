package game

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aliskhannn/jeopardy-bot/internal/domain/entities"
)

var ErrNotEnoughClues = errors.New("game: category has too few clues")

type CategorySource interface {
	FetchCategoryPool(ctx context.Context, sampleSize, poolSize int) ([]int, error)
	FetchCategory(ctx context.Context, id int) (entities.Category, error)
}

// Config fixes the board dimensions and the size of the candidate pool the
// categories are sampled from.
type Config struct {
	CategoryCount    int
	PoolSize         int
	CluesPerCategory int
}

// Service builds game boards from a remote category source.
type Service struct {
	source CategorySource
	cfg    Config
	logger *zap.Logger
}

func NewService(source CategorySource, cfg Config, logger *zap.Logger) *Service {
	return &Service{
		source: source,
		cfg:    cfg,
		logger: logger,
	}
}

// NewBoard samples category ids from the pool and fetches every sampled
// category concurrently. All fetches must succeed: the first failure
// cancels the rest and no board is returned. Categories keep the order
// they were sampled in.
func (s *Service) NewBoard(ctx context.Context) (entities.Board, error) {
	ids, err := s.source.FetchCategoryPool(ctx, s.cfg.CategoryCount, s.cfg.PoolSize)
	if err != nil {
		return nil, fmt.Errorf("fetch category pool: %w", err)
	}

	board := make(entities.Board, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			category, err := s.source.FetchCategory(gctx, id)
			if err != nil {
				return fmt.Errorf("fetch category %d: %w", id, err)
			}

			if len(category.Clues) < s.cfg.CluesPerCategory {
				return fmt.Errorf("%w: %q has %d, need %d",
					ErrNotEnoughClues, category.Title, len(category.Clues), s.cfg.CluesPerCategory)
			}
			category.Clues = category.Clues[:s.cfg.CluesPerCategory]

			board[i] = category
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Info("board built",
		zap.Int("categories", len(board)),
		zap.Int("clues_per_category", s.cfg.CluesPerCategory),
	)

	return board, nil
}
