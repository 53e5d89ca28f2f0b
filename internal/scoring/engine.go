package scoring

import (
	"math"

	"github.com/denisok6893-rgb/flip-deal-scoring/internal/domain"
)

// Score computes the weighted 0..100 breakdown and financial metrics for a
// parsed deal. It returns nil when the ARV is zero, negative or not finite;
// everything else is scored as-is. The function is pure: it never mutates
// its input and holds no state between calls. Gatekeeping bad input is the
// validator's job, not this one's.
func Score(d domain.DealInput) *domain.ScoreResult {
	arv := d.AfterRepairValue
	if arv <= 0 || math.IsNaN(arv) || math.IsInf(arv, 0) {
		return nil
	}

	totalCost := d.PurchasePrice + d.RepairCosts
	expectedProfit := arv - totalCost
	profitMargin := expectedProfit / arv * 100
	repairRatio := d.RepairCosts / arv * 100

	profitPts := lookupAtLeast(profitTiers, profitMargin, 0)
	repairPts := lookupAtMost(repairTiers, repairRatio, repairFloorPoints)

	// The only continuous component: the 1-10 ratings are already on a
	// user-supplied scale, so they map linearly onto two equal halves.
	locationPts := float64(d.LocationScore) / 10 * 10
	trendPts := float64(d.MarketTrend+d.RentalDemand) / 20 * 10
	marketPts := locationPts + trendPts

	velocityPts := lookupAtLeast(velocityTiers, float64(d.DaysOnMarket), velocityFloorPoints)
	compsPts := lookupAtLeast(compsTiers, float64(d.ComparableSales), 0)

	sum := profitPts + repairPts + marketPts + velocityPts + compsPts
	// The maxima already total 100, so the clamp is a defensive ceiling
	// only. Rounding is half away from zero.
	total := int(math.Round(math.Min(100, sum)))

	return &domain.ScoreResult{
		Breakdown: domain.ScoreBreakdown{
			SubScores: []domain.SubScore{
				{Name: NameProfitPotential, Points: profitPts, Max: MaxProfitPotential},
				{Name: NameRepairEfficiency, Points: repairPts, Max: MaxRepairEfficiency},
				{Name: NameMarketLocation, Points: marketPts, Max: MaxMarketLocation},
				{Name: NameDealVelocity, Points: velocityPts, Max: MaxDealVelocity},
				{Name: NameComparables, Points: compsPts, Max: MaxComparables},
			},
			TotalScore: total,
		},
		Metrics: domain.ScoreMetrics{
			TotalCost:       totalCost,
			ExpectedProfit:  expectedProfit,
			ProfitMarginPct: int(math.Round(profitMargin)),
			ProfitMarginRaw: profitMargin,
			RepairRatioPct:  int(math.Round(repairRatio)),
		},
		MaxOffer: MaxOffer(arv, d.RepairCosts),
	}
}

// MaxOffer applies the 70% rule: the recommended maximum purchase price is
// 70% of ARV minus repair costs, floored at zero. Non-finite inputs
// collapse to 0.
func MaxOffer(arv, repairCosts float64) float64 {
	v := math.Round(arv*0.7 - repairCosts)
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
