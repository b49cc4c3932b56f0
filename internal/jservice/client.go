package jservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/jeopardy-bot/internal/domain/entities"
)

var (
	// ErrNetwork covers transport failures and non-OK HTTP statuses.
	// Callers surface it to the user; there is no automatic retry.
	ErrNetwork = errors.New("jservice: request failed")
	// ErrDataShape means the service answered but the payload is missing
	// fields the game needs.
	ErrDataShape = errors.New("jservice: unexpected response shape")
	// ErrPoolTooSmall means the service returned fewer candidate
	// categories than the requested sample size.
	ErrPoolTooSmall = errors.New("jservice: category pool smaller than sample size")
)

// Client talks to a jservice-compatible trivia API.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// categoryRecord is the pool endpoint's per-category payload. Fields
// beyond the identifier are ignored.
type categoryRecord struct {
	ID int `json:"id"`
}

// clueRecord is one clue as the category endpoint returns it.
type clueRecord struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// categoryResponse is the category endpoint payload.
type categoryResponse struct {
	Title string       `json:"title"`
	Clues []clueRecord `json:"clues"`
}

// FetchCategoryPool requests poolSize candidate categories and samples
// sampleSize of their identifiers uniformly without replacement.
func (c *Client) FetchCategoryPool(ctx context.Context, sampleSize, poolSize int) ([]int, error) {
	endpoint := fmt.Sprintf("%s/api/categories?count=%d", c.baseURL, poolSize)

	var records []categoryRecord
	if err := c.getJSON(ctx, endpoint, &records); err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: empty category pool", ErrDataShape)
	}
	if len(records) < sampleSize {
		return nil, fmt.Errorf("%w: have %d, want %d", ErrPoolTooSmall, len(records), sampleSize)
	}

	ids := make([]int, len(records))
	for i, r := range records {
		ids[i] = r.ID
	}

	sampled := make([]int, 0, sampleSize)
	for _, idx := range rand.Perm(len(ids))[:sampleSize] {
		sampled = append(sampled, ids[idx])
	}

	c.logger.Debug("sampled category pool",
		zap.Int("pool", len(ids)),
		zap.Int("sample", len(sampled)),
	)

	return sampled, nil
}

// FetchCategory requests the full category for one identifier and maps it
// into the game's shape with every clue hidden.
func (c *Client) FetchCategory(ctx context.Context, id int) (entities.Category, error) {
	endpoint := fmt.Sprintf("%s/api/category?id=%d", c.baseURL, id)

	var resp categoryResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return entities.Category{}, err
	}

	if resp.Title == "" {
		return entities.Category{}, fmt.Errorf("%w: category %d has no title", ErrDataShape, id)
	}
	if len(resp.Clues) == 0 {
		return entities.Category{}, fmt.Errorf("%w: category %d has no clues", ErrDataShape, id)
	}

	clues := make([]entities.Clue, 0, len(resp.Clues))
	for i, record := range resp.Clues {
		if record.Question == "" || record.Answer == "" {
			return entities.Category{}, fmt.Errorf("%w: category %d clue %d missing question or answer",
				ErrDataShape, id, i)
		}
		clues = append(clues, entities.Clue{
			Question: record.Question,
			Answer:   record.Answer,
			Showing:  entities.RevealHidden,
		})
	}

	return entities.Category{Title: resp.Title, Clues: clues}, nil
}

// getJSON performs one GET and decodes the body into out.
func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status %d", ErrNetwork, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrDataShape, err)
	}

	return nil
}
