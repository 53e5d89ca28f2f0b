package scoring

// Sub-score names, in display order.
const (
	NameProfitPotential  = "Profit Potential"
	NameRepairEfficiency = "Repair Efficiency"
	NameMarketLocation   = "Market & Location"
	NameDealVelocity     = "Deal Velocity"
	NameComparables      = "Comparables Confidence"
)

// Fixed point budgets per component. They sum to 100.
const (
	MaxProfitPotential  = 40.0
	MaxRepairEfficiency = 20.0
	MaxMarketLocation   = 20.0
	MaxDealVelocity     = 10.0
	MaxComparables      = 10.0
)

// tier awards Points when the measured value crosses Threshold.
// Tables are evaluated top-down, first match wins.
type tier struct {
	Threshold float64
	Points    float64
}

// Profit margin (%) thresholds, inclusive lower bounds. A deal below 0%
// margin earns nothing here.
var profitTiers = []tier{
	{30, 40},
	{20, 30},
	{10, 20},
	{0, 10},
}

// Repair ratio (%) ceilings. High rehab keeps a floor of 5 points; some
// rehab is normal and not disqualifying.
var repairTiers = []tier{
	{10, 20},
	{20, 15},
	{30, 10},
}

const repairFloorPoints = 5

// Days-on-market thresholds. Longer time on market means more negotiating
// leverage for the buyer, so it scores higher. Never zero.
var velocityTiers = []tier{
	{90, 10},
	{60, 7},
	{30, 5},
	{7, 3},
}

const velocityFloorPoints = 1

// Comparable-sales-count thresholds. Zero comps means no confidence in the
// ARV estimate, and this is the only component that can score zero.
var compsTiers = []tier{
	{5, 10},
	{3, 7},
	{1, 4},
}

// lookupAtLeast returns the points of the first tier whose threshold the
// value meets or exceeds, or fallback when none matches.
func lookupAtLeast(tiers []tier, v, fallback float64) float64 {
	for _, t := range tiers {
		if v >= t.Threshold {
			return t.Points
		}
	}
	return fallback
}

// lookupAtMost returns the points of the first tier whose threshold the
// value stays at or under, or fallback when none matches.
func lookupAtMost(tiers []tier, v, fallback float64) float64 {
	for _, t := range tiers {
		if v <= t.Threshold {
			return t.Points
		}
	}
	return fallback
}
