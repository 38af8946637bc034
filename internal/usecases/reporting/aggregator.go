package reporting

import (
	"fmt"

	"github.com/sirge-io/performance-api/internal/domain"
	"github.com/sirge-io/performance-api/pkg/utils"
)

// reportTotals acumula os campos somáveis das linhas do relatório
type reportTotals struct {
	amountSpent          float64
	clicks               int
	purchases            int
	totalConversionValue float64

	sirgeClicks               int
	sirgePurchases            int
	sirgeTotalConversionValue float64
}

// accumulate soma as contribuições não nulas de uma linha.
// Apenas linhas com dados da plataforma entram nos totais; uma busca vazia
// não é erro, mas também não conta no agregado.
func (t *reportTotals) accumulate(record *domain.PerformanceRecord) {
	if !record.HasPlatformData() {
		return
	}

	if record.AmountSpent != nil {
		t.amountSpent += *record.AmountSpent
	}

	if record.Clicks != nil {
		t.clicks += *record.Clicks
	}

	if record.Purchases != nil {
		t.purchases += *record.Purchases
	}

	if record.TotalConversionValue != nil {
		t.totalConversionValue += *record.TotalConversionValue
	}

	if record.SirgeClicks != nil {
		t.sirgeClicks += *record.SirgeClicks
	}

	if record.SirgePurchases != nil {
		t.sirgePurchases += *record.SirgePurchases
	}

	if record.SirgeTotalConversionValue != nil {
		t.sirgeTotalConversionValue += *record.SirgeTotalConversionValue
	}
}

// FactorySummary reduz as linhas emitidas em uma linha de resumo. Os campos
// derivados seguem as mesmas fórmulas da linha individual, operando sobre os
// totais. O resumo entra por último no relatório, com RowID = N+1.
func FactorySummary(records []*domain.PerformanceRecord, level domain.ReportLevel) *domain.PerformanceRecord {
	totals := &reportTotals{}
	for _, record := range records {
		totals.accumulate(record)
	}

	count := len(records)

	summary := &domain.PerformanceRecord{
		RowID:       count + 1,
		DisplayName: fmt.Sprintf("Results from %d %s", count, level.Noun(count)),

		AmountSpent:          floatPtr(totals.amountSpent),
		Clicks:               intPtr(totals.clicks),
		Purchases:            intPtr(totals.purchases),
		TotalConversionValue: floatPtr(totals.totalConversionValue),

		SirgeClicks:               intPtr(totals.sirgeClicks),
		SirgePurchases:            intPtr(totals.sirgePurchases),
		SirgeTotalConversionValue: floatPtr(totals.sirgeTotalConversionValue),
	}

	if totals.amountSpent > 0 && totals.purchases > 0 {
		summary.CostPerPurchase = floatPtr(utils.RoundToWholeNumber(totals.amountSpent / float64(totals.purchases)))
	}

	if totals.amountSpent > 0 && totals.totalConversionValue > 0 {
		summary.Roas = formatRoas(totals.totalConversionValue / totals.amountSpent)
	}

	if totals.amountSpent > 0 && totals.sirgePurchases > 0 {
		summary.SirgeCostPerPurchase = floatPtr(utils.RoundToWholeNumber(totals.amountSpent / float64(totals.sirgePurchases)))
	}

	if totals.amountSpent > 0 {
		summary.SirgeRoas = formatRoas(totals.sirgeTotalConversionValue / totals.amountSpent)
	}

	return summary
}
