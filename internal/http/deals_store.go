package httpapi

import (
	"time"

	"github.com/denisok6893-rgb/flip-deal-scoring/internal/domain"
	"github.com/denisok6893-rgb/flip-deal-scoring/internal/storage"
)

// DealsStore is what the handlers need from persistence: saved-deal CRUD
// plus the plain-text pref counters (share tally, tutorial flag).
type DealsStore interface {
	CreateDeal(d domain.SavedDeal) (domain.SavedDeal, error)
	GetDeal(id string) (domain.SavedDeal, bool, error)
	ListDeals(limit, offset int) ([]domain.SavedDeal, int, error)
	DeleteDeal(id string) (bool, error)

	IncrementShareCount() (int, error)
	ShareCount() (int, error)
	SeenTutorial() (bool, error)
	SetSeenTutorial() error
}

var _ DealsStore = (*storage.SQLiteStore)(nil)

// DealSummary is the list-view shape of a saved deal.
type DealSummary struct {
	ID              string    `json:"id"`
	CreatedAt       time.Time `json:"created_at"`
	ARV             float64   `json:"arv"`
	PurchasePrice   float64   `json:"purchase_price"`
	RepairCosts     float64   `json:"repair_costs"`
	Score           int       `json:"score"`
	ProfitMarginPct int       `json:"profit_margin_pct"`
	ExpectedProfit  float64   `json:"expected_profit"`
}

func summarize(d domain.SavedDeal) DealSummary {
	return DealSummary{
		ID:              d.ID,
		CreatedAt:       d.CreatedAt,
		ARV:             d.Input.AfterRepairValue,
		PurchasePrice:   d.Input.PurchasePrice,
		RepairCosts:     d.Input.RepairCosts,
		Score:           d.Result.Breakdown.TotalScore,
		ProfitMarginPct: d.Result.Metrics.ProfitMarginPct,
		ExpectedProfit:  d.Result.Metrics.ExpectedProfit,
	}
}
