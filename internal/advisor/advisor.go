package advisor

import (
	"fmt"

	"github.com/denisok6893-rgb/flip-deal-scoring/internal/domain"
)

// Advice is a read-only commentary on a scored deal. It feeds the chat
// surface and the demo page; nothing here flows back into scoring.
type Advice struct {
	Verdict string   `json:"verdict"`
	Tips    []string `json:"tips"`
}

// For turns a deal and its result into a verdict plus a handful of
// plain-language tips.
func For(d domain.DealInput, res domain.ScoreResult) Advice {
	a := Advice{Verdict: verdict(res.Breakdown.TotalScore)}

	if res.MaxOffer > 0 {
		if d.PurchasePrice > res.MaxOffer {
			over := d.PurchasePrice - res.MaxOffer
			a.Tips = append(a.Tips, fmt.Sprintf(
				"Purchase price is %s over the 70%%-rule maximum offer of %s.",
				domain.FormatUSD(over), domain.FormatUSD(res.MaxOffer)))
		} else {
			a.Tips = append(a.Tips, fmt.Sprintf(
				"Purchase price sits within the 70%%-rule maximum offer of %s.",
				domain.FormatUSD(res.MaxOffer)))
		}
	}

	switch m := res.Metrics.ProfitMarginRaw; {
	case m < 0:
		a.Tips = append(a.Tips, fmt.Sprintf(
			"Expected profit is negative (%s): the deal loses money as entered.",
			domain.FormatUSD(res.Metrics.ExpectedProfit)))
	case m < 10:
		a.Tips = append(a.Tips, "Profit margin under 10% leaves little room for surprises.")
	case m >= 30:
		a.Tips = append(a.Tips, "Margin over 30% puts this in the top profit tier.")
	}

	if res.Metrics.RepairRatioPct > 30 {
		a.Tips = append(a.Tips, "Repair budget exceeds 30% of ARV; heavy rehabs overrun most often.")
	}
	if d.ComparableSales == 0 {
		a.Tips = append(a.Tips, "No comparable sales: treat the ARV estimate with caution.")
	}
	if d.DaysOnMarket >= 90 {
		a.Tips = append(a.Tips, "Comparables sit unsold for 90+ days; sellers likely have room to negotiate.")
	}
	return a
}

func verdict(score int) string {
	switch {
	case score >= 80:
		return "strong deal"
	case score >= 60:
		return "worth a closer look"
	case score >= 40:
		return "marginal"
	default:
		return "walk away"
	}
}
