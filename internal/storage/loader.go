package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/denisok6893-rgb/flip-deal-scoring/internal/domain"
)

// SeedDeal is one entry of the optional seed file: a stable id plus the
// deal input. Scores are recomputed at load time so seeds never carry
// stale results.
type SeedDeal struct {
	ID    string           `json:"id"`
	Input domain.DealInput `json:"input"`
}

// LoadSeedDealsFromFile reads seed deals from a JSON file.
func LoadSeedDealsFromFile(path string) ([]SeedDeal, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed deals file: %w", err)
	}

	var seeds []SeedDeal
	if err := json.Unmarshal(b, &seeds); err != nil {
		return nil, fmt.Errorf("unmarshal seed deals: %w", err)
	}
	return seeds, nil
}
