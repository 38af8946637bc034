package reporting

import (
	"fmt"

	"github.com/sirge-io/performance-api/internal/domain"
	"github.com/sirge-io/performance-api/pkg/utils"
)

// FactoryPerformanceRecord combina as contagens internas do grupo com o metric
// set já convertido para a moeda do visualizador. Um metric set nulo (objeto
// não encontrado ou sem dados) gera uma linha apenas com as métricas internas,
// que fica de fora dos totais do resumo.
func FactoryPerformanceRecord(rowID int, group *domain.AttributionGroup, metricSet *domain.PlatformMetricSet) *domain.PerformanceRecord {
	record := &domain.PerformanceRecord{
		RowID:            rowID,
		PlatformObjectID: group.PlatformObjectID,
		DisplayName:      group.DisplayName,

		SirgeClicks:               intPtr(group.Clicks),
		SirgePurchases:            intPtr(group.Purchases),
		SirgeTotalConversionValue: floatPtr(group.ConversionValue),
	}

	if metricSet == nil {
		return record
	}

	record.MarkPlatformData()
	record.DeliveryStatus = metricSet.DeliveryStatus

	// Zero é gasto válido e exibível; nulo só quando a plataforma não respondeu
	record.AmountSpent = floatPtr(metricSet.Spend)
	record.Clicks = intPtr(metricSet.Clicks)
	record.Purchases = intPtr(metricSet.Purchases)
	record.TotalConversionValue = floatPtr(metricSet.ConversionValue)

	if metricSet.CostPerPurchase > 0 {
		record.CostPerPurchase = floatPtr(metricSet.CostPerPurchase)
	}

	if metricSet.Roas != nil {
		record.Roas = formatRoas(*metricSet.Roas)
	}

	if metricSet.Spend > 0 && group.Purchases > 0 {
		record.SirgeCostPerPurchase = floatPtr(utils.RoundToWholeNumber(metricSet.Spend / float64(group.Purchases)))
	}

	// Divisão por gasto zero nunca pode acontecer aqui, o guard é explícito
	if metricSet.Spend > 0 {
		record.SirgeRoas = formatRoas(group.ConversionValue / metricSet.Spend)
	}

	return record
}

// formatRoas formata o ROAS como multiplicador inteiro com sufixo "x"
func formatRoas(value float64) *string {
	formatted := fmt.Sprintf("%.0fx", utils.RoundToWholeNumber(value))
	return &formatted
}

func intPtr(v int) *int {
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}
