package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/denisok6893-rgb/flip-deal-scoring/internal/domain"
)

// Column order of an exported deal row.
var header = []string{"ARV", "PurchasePrice", "RepairCosts", "Score", "ProfitMargin%"}

// WriteDeal serializes one deal plus its result as a CSV header and a
// single row. Money values are whole dollars, the margin a whole percent.
func WriteDeal(w io.Writer, in domain.DealInput, res domain.ScoreResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	row := []string{
		fmt.Sprintf("%.0f", in.AfterRepairValue),
		fmt.Sprintf("%.0f", in.PurchasePrice),
		fmt.Sprintf("%.0f", in.RepairCosts),
		fmt.Sprintf("%d", res.Breakdown.TotalScore),
		fmt.Sprintf("%d", res.Metrics.ProfitMarginPct),
	}
	if err := cw.Write(row); err != nil {
		return fmt.Errorf("write csv row: %w", err)
	}
	cw.Flush()
	return cw.Error()
}
