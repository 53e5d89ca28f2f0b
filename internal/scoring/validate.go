package scoring

import (
	"math"
	"strconv"
	"strings"

	"github.com/denisok6893-rgb/flip-deal-scoring/internal/domain"
)

// Validation messages, surfaced verbatim next to the offending fields.
const (
	MsgARV           = "ARV must be greater than 0"
	MsgPurchasePrice = "Purchase price cannot be negative"
	MsgRepairCosts   = "Repair costs cannot be negative"
	MsgDaysOnMarket  = "Days on market must be positive"
)

// Validate checks a raw form for admissibility and returns the error
// messages in field order: ARV, purchase price, repair costs, days on
// market. Every rule is evaluated independently; a clean form yields an
// empty list. The 1-10 ratings and the comparables bucket are not checked
// here: the input widgets constrain them structurally.
func Validate(f domain.DealForm) []string {
	var msgs []string
	if v, err := parseMoney(f.AfterRepairValue); err != nil || v <= 0 {
		msgs = append(msgs, MsgARV)
	}
	if v, err := parseMoney(f.PurchasePrice); err != nil || v < 0 {
		msgs = append(msgs, MsgPurchasePrice)
	}
	if v, err := parseMoney(f.RepairCosts); err != nil || v < 0 {
		msgs = append(msgs, MsgRepairCosts)
	}
	if f.DaysOnMarket < 0 {
		msgs = append(msgs, MsgDaysOnMarket)
	}
	return msgs
}

// ParseForm turns a raw form into a numeric DealInput. On any validation
// failure it returns the zero input plus the full message list; the scorer
// itself never sees raw text.
func ParseForm(f domain.DealForm) (domain.DealInput, []string) {
	if msgs := Validate(f); len(msgs) > 0 {
		return domain.DealInput{}, msgs
	}

	arv, _ := parseMoney(f.AfterRepairValue)
	price, _ := parseMoney(f.PurchasePrice)
	repairs, _ := parseMoney(f.RepairCosts)

	return domain.DealInput{
		AfterRepairValue: arv,
		PurchasePrice:    price,
		RepairCosts:      repairs,
		LocationScore:    f.LocationScore,
		MarketTrend:      f.MarketTrend,
		RentalDemand:     f.RentalDemand,
		DaysOnMarket:     f.DaysOnMarket,
		ComparableSales:  f.ComparableSales,
	}, nil
}

// parseMoney accepts free-text money entry: optional "$" and thousands
// separators around a plain decimal number. Non-finite values count as
// unparseable.
func parseMoney(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrSyntax
	}
	return v, nil
}
