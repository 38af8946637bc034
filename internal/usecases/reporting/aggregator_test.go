package reporting

import (
	"testing"

	"github.com/sirge-io/performance-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFactorySummary(t *testing.T) {
	t.Run("Soma apenas linhas com dados da plataforma", func(t *testing.T) {
		withData := FactoryPerformanceRecord(1, &domain.AttributionGroup{
			PlatformObjectID: "111",
			Clicks:           10,
			Purchases:        2,
			ConversionValue:  300,
		}, &domain.PlatformMetricSet{
			Spend:           200,
			Clicks:          100,
			Purchases:       2,
			ConversionValue: 400,
		})

		alsoWithData := FactoryPerformanceRecord(2, &domain.AttributionGroup{
			PlatformObjectID: "222",
			Clicks:           5,
			Purchases:        1,
			ConversionValue:  150,
		}, &domain.PlatformMetricSet{
			Spend:           100,
			Clicks:          50,
			Purchases:       1,
			ConversionValue: 200,
		})

		// Busca vazia: a linha existe no relatório mas fica fora dos totais
		internalOnly := FactoryPerformanceRecord(3, &domain.AttributionGroup{
			PlatformObjectID: "333",
			Clicks:           999,
			Purchases:        99,
			ConversionValue:  9999,
		}, nil)

		summary := FactorySummary([]*domain.PerformanceRecord{withData, alsoWithData, internalOnly}, domain.LevelAd)

		assert.Equal(t, 4, summary.RowID)
		assert.Equal(t, "Results from 3 ads", summary.DisplayName)

		assert.Equal(t, 300.0, *summary.AmountSpent)
		assert.Equal(t, 150, *summary.Clicks)
		assert.Equal(t, 3, *summary.Purchases)
		assert.Equal(t, 600.0, *summary.TotalConversionValue)

		assert.Equal(t, 15, *summary.SirgeClicks)
		assert.Equal(t, 3, *summary.SirgePurchases)
		assert.Equal(t, 450.0, *summary.SirgeTotalConversionValue)

		// round(300 / 3) = 100
		assert.Equal(t, 100.0, *summary.CostPerPurchase)
		assert.Equal(t, 100.0, *summary.SirgeCostPerPurchase)

		// round(600 / 300) = 2, round(450 / 300) = 2
		assert.Equal(t, "2x", *summary.Roas)
		assert.Equal(t, "2x", *summary.SirgeRoas)
	})

	t.Run("Singular quando o relatório tem uma única linha", func(t *testing.T) {
		record := FactoryPerformanceRecord(1, &domain.AttributionGroup{PlatformObjectID: "111"}, nil)

		summary := FactorySummary([]*domain.PerformanceRecord{record}, domain.LevelCampaign)

		assert.Equal(t, "Results from 1 campaign", summary.DisplayName)
		assert.Equal(t, 2, summary.RowID)
	})

	t.Run("Relatório vazio gera resumo zerado", func(t *testing.T) {
		summary := FactorySummary(nil, domain.LevelAdSet)

		assert.Equal(t, "Results from 0 ad sets", summary.DisplayName)
		assert.Equal(t, 1, summary.RowID)
		assert.Equal(t, 0.0, *summary.AmountSpent)
		assert.Nil(t, summary.Roas)
		assert.Nil(t, summary.SirgeRoas)
		assert.Nil(t, summary.CostPerPurchase)
	})

	t.Run("Totais zerados não geram campos derivados", func(t *testing.T) {
		record := FactoryPerformanceRecord(1, &domain.AttributionGroup{
			PlatformObjectID: "111",
			ConversionValue:  50,
		}, &domain.PlatformMetricSet{Spend: 0})

		summary := FactorySummary([]*domain.PerformanceRecord{record}, domain.LevelAd)

		assert.Equal(t, 0.0, *summary.AmountSpent)
		assert.Nil(t, summary.SirgeRoas)
		assert.Nil(t, summary.Roas)
	})
}
