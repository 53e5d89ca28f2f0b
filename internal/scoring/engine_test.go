package scoring

import (
	"math"
	"reflect"
	"testing"

	"github.com/denisok6893-rgb/flip-deal-scoring/internal/domain"
)

// baseDeal is the worked example used across tests: 33.33% margin, 16.67%
// repair ratio, mid-range ratings.
func baseDeal() domain.DealInput {
	return domain.DealInput{
		AfterRepairValue: 300000,
		PurchasePrice:    150000,
		RepairCosts:      50000,
		LocationScore:    8,
		MarketTrend:      7,
		RentalDemand:     6,
		DaysOnMarket:     45,
		ComparableSales:  5,
	}
}

func subPoints(t *testing.T, res *domain.ScoreResult, name string) float64 {
	t.Helper()
	for _, s := range res.Breakdown.SubScores {
		if s.Name == name {
			return s.Points
		}
	}
	t.Fatalf("sub-score %q not found", name)
	return 0
}

func TestScoreWorkedExample(t *testing.T) {
	res := Score(baseDeal())
	if res == nil {
		t.Fatal("Score returned nil for a scoreable deal")
	}

	wantSubs := map[string]float64{
		NameProfitPotential:  40,
		NameRepairEfficiency: 15,
		NameMarketLocation:   14.5,
		NameDealVelocity:     5,
		NameComparables:      10,
	}
	for name, want := range wantSubs {
		if got := subPoints(t, res, name); math.Abs(got-want) > 1e-9 {
			t.Errorf("%s = %v, want %v", name, got, want)
		}
	}

	// 84.5 rounds half away from zero.
	if res.Breakdown.TotalScore != 85 {
		t.Errorf("TotalScore = %d, want 85", res.Breakdown.TotalScore)
	}

	m := res.Metrics
	if m.TotalCost != 200000 {
		t.Errorf("TotalCost = %v, want 200000", m.TotalCost)
	}
	if m.ExpectedProfit != 100000 {
		t.Errorf("ExpectedProfit = %v, want 100000", m.ExpectedProfit)
	}
	if m.ProfitMarginPct != 33 {
		t.Errorf("ProfitMarginPct = %d, want 33", m.ProfitMarginPct)
	}
	if math.Abs(m.ProfitMarginRaw-100.0/3) > 1e-9 {
		t.Errorf("ProfitMarginRaw = %v, want %v", m.ProfitMarginRaw, 100.0/3)
	}
	if m.RepairRatioPct != 17 {
		t.Errorf("RepairRatioPct = %d, want 17", m.RepairRatioPct)
	}
	if res.MaxOffer != 160000 {
		t.Errorf("MaxOffer = %v, want 160000", res.MaxOffer)
	}
}

func TestScoreUnscoreableARV(t *testing.T) {
	tests := []struct {
		name string
		arv  float64
	}{
		{"zero", 0},
		{"negative", -1},
		{"nan", math.NaN()},
		{"posinf", math.Inf(1)},
		{"neginf", math.Inf(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := baseDeal()
			d.AfterRepairValue = tt.arv
			if res := Score(d); res != nil {
				t.Errorf("Score with ARV=%v = %+v, want nil", tt.arv, res)
			}
		})
	}
}

func TestScoreNegativeProfit(t *testing.T) {
	d := domain.DealInput{
		AfterRepairValue: 100000,
		PurchasePrice:    90000,
		RepairCosts:      20000,
		LocationScore:    5,
		MarketTrend:      5,
		RentalDemand:     5,
		DaysOnMarket:     10,
		ComparableSales:  1,
	}
	res := Score(d)
	if res == nil {
		t.Fatal("Score returned nil")
	}
	if got := subPoints(t, res, NameProfitPotential); got != 0 {
		t.Errorf("ProfitPotential = %v, want 0", got)
	}
	if res.Metrics.ExpectedProfit != -10000 {
		t.Errorf("ExpectedProfit = %v, want -10000", res.Metrics.ExpectedProfit)
	}
	if res.Metrics.ProfitMarginRaw != -10 {
		t.Errorf("ProfitMarginRaw = %v, want -10", res.Metrics.ProfitMarginRaw)
	}
}

// dealWithMargin builds a deal whose profit margin is exactly the given
// percentage of a 100k ARV, with zero repair costs.
func dealWithMargin(marginPct float64) domain.DealInput {
	d := baseDeal()
	d.AfterRepairValue = 100000
	d.RepairCosts = 0
	d.PurchasePrice = 100000 - marginPct*1000
	return d
}

func TestProfitPotentialTiers(t *testing.T) {
	tests := []struct {
		margin float64
		want   float64
	}{
		{35, 40},
		{30, 40}, // inclusive lower bound
		{29.999, 30},
		{20, 30},
		{19.999, 20},
		{10, 20},
		{9.999, 10},
		{0, 10},
		{-0.001, 0},
		{-50, 0},
	}
	for _, tt := range tests {
		res := Score(dealWithMargin(tt.margin))
		if res == nil {
			t.Fatalf("Score returned nil for margin %v", tt.margin)
		}
		if got := subPoints(t, res, NameProfitPotential); got != tt.want {
			t.Errorf("margin %v%%: ProfitPotential = %v, want %v", tt.margin, got, tt.want)
		}
	}
}

func TestRepairEfficiencyTiers(t *testing.T) {
	tests := []struct {
		repairs float64
		want    float64
	}{
		{0, 20},
		{10000, 20}, // exactly 10%
		{10001, 15},
		{20000, 15},
		{20001, 10},
		{30000, 10},
		{30001, 5}, // floor, never zero
		{90000, 5},
	}
	for _, tt := range tests {
		d := baseDeal()
		d.AfterRepairValue = 100000
		d.RepairCosts = tt.repairs
		res := Score(d)
		if res == nil {
			t.Fatal("Score returned nil")
		}
		if got := subPoints(t, res, NameRepairEfficiency); got != tt.want {
			t.Errorf("repairs %v: RepairEfficiency = %v, want %v", tt.repairs, got, tt.want)
		}
	}
}

func TestMarketLocationLinear(t *testing.T) {
	tests := []struct {
		loc, trend, demand int
		want               float64
	}{
		{10, 10, 10, 20},
		{1, 1, 1, 2},
		{8, 7, 6, 14.5},
		{5, 5, 5, 10},
	}
	for _, tt := range tests {
		d := baseDeal()
		d.LocationScore = tt.loc
		d.MarketTrend = tt.trend
		d.RentalDemand = tt.demand
		res := Score(d)
		if got := subPoints(t, res, NameMarketLocation); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ratings %d/%d/%d: MarketLocation = %v, want %v",
				tt.loc, tt.trend, tt.demand, got, tt.want)
		}
	}
}

func TestDealVelocityTiers(t *testing.T) {
	tests := []struct {
		days int
		want float64
	}{
		{0, 1}, {6, 1}, {7, 3}, {29, 3}, {30, 5},
		{59, 5}, {60, 7}, {89, 7}, {90, 10}, {365, 10},
	}
	for _, tt := range tests {
		d := baseDeal()
		d.DaysOnMarket = tt.days
		res := Score(d)
		if got := subPoints(t, res, NameDealVelocity); got != tt.want {
			t.Errorf("days %d: DealVelocity = %v, want %v", tt.days, got, tt.want)
		}
	}
}

func TestDealVelocityMonotonic(t *testing.T) {
	prev := -1.0
	for days := 0; days <= 120; days++ {
		d := baseDeal()
		d.DaysOnMarket = days
		got := subPoints(t, Score(d), NameDealVelocity)
		if got < prev {
			t.Fatalf("DealVelocity decreased at %d days: %v -> %v", days, prev, got)
		}
		prev = got
	}
}

func TestComparablesTiers(t *testing.T) {
	tests := []struct {
		comps int
		want  float64
	}{
		{0, 0}, {1, 4}, {2, 4}, {3, 7}, {4, 7}, {5, 10}, {8, 10},
	}
	prev := -1.0
	for _, tt := range tests {
		d := baseDeal()
		d.ComparableSales = tt.comps
		got := subPoints(t, Score(d), NameComparables)
		if got != tt.want {
			t.Errorf("comps %d: Comparables = %v, want %v", tt.comps, got, tt.want)
		}
		if got < prev {
			t.Errorf("Comparables decreased at %d comps", tt.comps)
		}
		prev = got
	}
}

func TestSubScoreMaximaSumTo100(t *testing.T) {
	res := Score(baseDeal())
	var sum float64
	for _, s := range res.Breakdown.SubScores {
		sum += s.Max
	}
	if sum != 100 {
		t.Fatalf("sub-score maxima sum to %v, want 100", sum)
	}
}

// A perfect deal lands on exactly 100; the clamp must be a no-op across the
// tier tables.
func TestPerfectDealClampNoOp(t *testing.T) {
	d := domain.DealInput{
		AfterRepairValue: 100000,
		PurchasePrice:    50000,
		RepairCosts:      0,
		LocationScore:    10,
		MarketTrend:      10,
		RentalDemand:     10,
		DaysOnMarket:     120,
		ComparableSales:  5,
	}
	res := Score(d)
	if res.Breakdown.TotalScore != 100 {
		t.Fatalf("TotalScore = %d, want 100", res.Breakdown.TotalScore)
	}
	var sum float64
	for _, s := range res.Breakdown.SubScores {
		if s.Points > s.Max {
			t.Errorf("%s: points %v exceed max %v", s.Name, s.Points, s.Max)
		}
		sum += s.Points
	}
	if sum > 100 {
		t.Errorf("sub-scores sum to %v, clamp would trigger", sum)
	}
}

func TestTotalScoreRange(t *testing.T) {
	deals := []domain.DealInput{
		{AfterRepairValue: 1, PurchasePrice: 1e9, RepairCosts: 1e9, LocationScore: 1, MarketTrend: 1, RentalDemand: 1},
		{AfterRepairValue: 1e9, LocationScore: 10, MarketTrend: 10, RentalDemand: 10, DaysOnMarket: 1000, ComparableSales: 5},
		baseDeal(),
	}
	for _, d := range deals {
		res := Score(d)
		if res == nil {
			t.Fatal("Score returned nil")
		}
		if res.Breakdown.TotalScore < 0 || res.Breakdown.TotalScore > 100 {
			t.Errorf("TotalScore = %d out of [0,100] for %+v", res.Breakdown.TotalScore, d)
		}
	}
}

func TestScoreIdempotent(t *testing.T) {
	d := baseDeal()
	a := Score(d)
	b := Score(d)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("repeated Score calls differ:\n%+v\n%+v", a, b)
	}
}

func TestScoreDoesNotMutateInput(t *testing.T) {
	d := baseDeal()
	before := d
	_ = Score(d)
	if d != before {
		t.Fatalf("input mutated: %+v -> %+v", before, d)
	}
}

func TestMaxOffer(t *testing.T) {
	tests := []struct {
		name         string
		arv, repairs float64
		want         float64
	}{
		{"worked example", 300000, 50000, 160000},
		{"repairs exceed 70% of arv", 100000, 80000, 0},
		{"zero arv", 0, 5000, 0},
		{"nan arv", math.NaN(), 0, 0},
		{"inf arv", math.Inf(1), 0, 0},
		{"nan repairs", 300000, math.NaN(), 0},
		{"rounding", 100001, 0, 70001},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaxOffer(tt.arv, tt.repairs); got != tt.want {
				t.Errorf("MaxOffer(%v, %v) = %v, want %v", tt.arv, tt.repairs, got, tt.want)
			}
		})
	}
}
