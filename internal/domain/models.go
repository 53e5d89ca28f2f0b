package domain

import "time"

// DealForm is a deal exactly as the user typed it. The three monetary fields
// stay as raw text until the parse step; the remaining fields arrive from
// constrained widgets (sliders and selects) and are already numeric.
type DealForm struct {
	AfterRepairValue string `json:"after_repair_value"`
	PurchasePrice    string `json:"purchase_price"`
	RepairCosts      string `json:"repair_costs"`
	LocationScore    int    `json:"location_score"`
	MarketTrend      int    `json:"market_trend"`
	RentalDemand     int    `json:"rental_demand"`
	DaysOnMarket     int    `json:"days_on_market"`
	ComparableSales  int    `json:"comparable_sales"`
}

// DealInput is a fully parsed deal, ready for scoring.
// LocationScore, MarketTrend and RentalDemand are 1-10 ratings.
// ComparableSales is the canonical bucket value: 0, 1, 3 or 5.
type DealInput struct {
	AfterRepairValue float64 `json:"after_repair_value"`
	PurchasePrice    float64 `json:"purchase_price"`
	RepairCosts      float64 `json:"repair_costs"`
	LocationScore    int     `json:"location_score"`
	MarketTrend      int     `json:"market_trend"`
	RentalDemand     int     `json:"rental_demand"`
	DaysOnMarket     int     `json:"days_on_market"`
	ComparableSales  int     `json:"comparable_sales"`
}

// SubScore is one weighted component of the total score.
type SubScore struct {
	Name   string  `json:"name"`
	Points float64 `json:"points"`
	Max    float64 `json:"max"`
}

// ScoreBreakdown holds the five sub-scores in display order plus the
// rounded total. The sub-score maxima sum to 100 by construction.
type ScoreBreakdown struct {
	SubScores  []SubScore `json:"sub_scores"`
	TotalScore int        `json:"total_score"`
}

// ScoreMetrics are the derived financial figures for a scored deal.
// ProfitMarginRaw keeps the unrounded margin for threshold comparisons;
// the Pct fields are rounded to whole percentage points for display.
type ScoreMetrics struct {
	TotalCost       float64 `json:"total_cost"`
	ExpectedProfit  float64 `json:"expected_profit"`
	ProfitMarginPct int     `json:"profit_margin_pct"`
	ProfitMarginRaw float64 `json:"profit_margin_raw"`
	RepairRatioPct  int     `json:"repair_ratio_pct"`
}

// ScoreResult is the whole outcome of scoring one deal. It is produced in
// full or not at all; there is no partial result.
type ScoreResult struct {
	Breakdown ScoreBreakdown `json:"breakdown"`
	Metrics   ScoreMetrics   `json:"metrics"`
	// MaxOffer is the 70%-rule recommended maximum purchase price,
	// in whole dollars.
	MaxOffer float64 `json:"max_offer"`
}

// SavedDeal is a persisted deal together with the result it scored at the
// time it was saved.
type SavedDeal struct {
	ID        string      `json:"id"`
	CreatedAt time.Time   `json:"created_at"`
	Input     DealInput   `json:"input"`
	Result    ScoreResult `json:"result"`
}
