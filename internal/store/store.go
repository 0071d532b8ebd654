// Package store persists generated puzzles in a PocketBase collection.
package store

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/duke-git/lancet/v2/random"
	"github.com/habibrosyad/pocketbase-go-sdk"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"sudoku_engine_go/internal/types"
)

const collection = "sudokus"

// Store wraps a PocketBase client for the puzzle collection.
type Store struct {
	client *pocketbase.Client
	log    *zap.Logger
}

// New builds a Store from the environment. POCKETBASE_URL,
// POCKETBASE_EMAIL and POCKETBASE_PASSWORD may come from a .env file.
func New(log *zap.Logger) (*Store, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found")
	}

	url := os.Getenv("POCKETBASE_URL")
	if url == "" {
		return nil, fmt.Errorf("POCKETBASE_URL is not set")
	}

	client := pocketbase.NewClient(url,
		pocketbase.WithSuperuserEmailPassword(
			os.Getenv("POCKETBASE_EMAIL"),
			os.Getenv("POCKETBASE_PASSWORD"),
		))

	return &Store{client: client, log: log}, nil
}

// Authenticate authorizes the client and keeps the session fresh with a
// periodic re-authorization.
func (s *Store) Authenticate() error {
	if err := s.client.Authorize(); err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	go func() {
		ticker := time.NewTicker(30 * time.Minute)
		for range ticker.C {
			if err := s.client.Authorize(); err != nil {
				s.log.Warn("re-authentication failed", zap.Error(err))
			} else {
				s.log.Debug("re-authenticated with PocketBase")
			}
		}
	}()
	return nil
}

// Upload stores a puzzle and returns the record ID. A missing ID gets a
// random 6-character one; the collection caps IDs at 6 characters.
func (s *Store) Upload(p *types.Puzzle) (string, error) {
	id := p.ID
	if id == "" {
		id = random.RandString(6)
	}
	if len(id) > 6 {
		return "", fmt.Errorf("invalid ID %q: must be at most 6 characters", id)
	}

	exists, err := s.Exists(id)
	if err != nil {
		return "", fmt.Errorf("failed to check if puzzle exists: %w", err)
	}
	if exists {
		return "", fmt.Errorf("puzzle with ID %s already exists", id)
	}

	record, err := s.client.Create(collection, encodeRecord(id, p))
	if err != nil {
		return "", fmt.Errorf("failed to upload puzzle: %w", err)
	}
	s.log.Info("uploaded puzzle",
		zap.String("id", record.ID),
		zap.String("difficulty", string(p.Difficulty)),
		zap.Int("clues", p.Clues),
	)
	return record.ID, nil
}

// Get loads a puzzle by record ID.
func (s *Store) Get(id string) (*types.Puzzle, error) {
	record, err := s.client.One(collection, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load puzzle %s: %w", id, err)
	}
	return decodeRecord(record)
}

// List pages through stored puzzles, optionally filtered by difficulty.
func (s *Store) List(page, perPage int, difficulty string) (*pocketbase.ResponseList[map[string]any], error) {
	var filters []string
	if difficulty != "" {
		filters = append(filters, fmt.Sprintf("difficulty = %q", difficulty))
	}

	params := pocketbase.ParamsList{
		Page:    page,
		Size:    perPage,
		Sort:    "-created",
		Filters: strings.Join(filters, " && "),
	}

	result, err := s.client.List(collection, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list puzzles: %w", err)
	}
	return &result, nil
}

// Exists reports whether a record with the given ID is present.
func (s *Store) Exists(id string) (bool, error) {
	_, err := s.client.One(collection, id)
	if err != nil {
		if strings.Contains(err.Error(), "404") {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// encodeRecord flattens a puzzle into the collection's field layout.
// Grids travel in the 81-digit row-major format.
func encodeRecord(id string, p *types.Puzzle) map[string]any {
	return map[string]any{
		"id":         id,
		"grid":       p.Grid.String(),
		"solution":   p.Solution.String(),
		"difficulty": string(p.Difficulty),
		"clues":      p.Clues,
		"seed":       fmt.Sprintf("%d", p.Seed),
	}
}

// decodeRecord rebuilds a puzzle from a collection record.
func decodeRecord(record map[string]any) (*types.Puzzle, error) {
	gridStr, _ := record["grid"].(string)
	grid, err := types.ParseGrid(gridStr)
	if err != nil {
		return nil, fmt.Errorf("failed to decode grid: %w", err)
	}

	solutionStr, _ := record["solution"].(string)
	solution, err := types.ParseGrid(solutionStr)
	if err != nil {
		return nil, fmt.Errorf("failed to decode solution: %w", err)
	}

	p := &types.Puzzle{
		Grid:     grid,
		Solution: solution,
		Clues:    grid.FilledCells(),
	}
	if id, ok := record["id"].(string); ok {
		p.ID = id
	}
	if diff, ok := record["difficulty"].(string); ok {
		p.Difficulty = types.Difficulty(diff)
	}
	if seed, ok := record["seed"].(string); ok {
		if v, err := strconv.ParseInt(seed, 10, 64); err == nil {
			p.Seed = v
		}
	}
	return p, nil
}
