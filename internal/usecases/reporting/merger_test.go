package reporting

import (
	"testing"

	"github.com/sirge-io/performance-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFactoryPerformanceRecord(t *testing.T) {
	activeStatus := "Active"

	group := &domain.AttributionGroup{
		PlatformObjectID: "23851234567890",
		DisplayName:      "Campanha Black Friday",
		Clicks:           120,
		Purchases:        4,
		ConversionValue:  600,
	}

	t.Run("Metric set vazio gera linha apenas com métricas internas", func(t *testing.T) {
		record := FactoryPerformanceRecord(1, group, nil)

		assert.Equal(t, 1, record.RowID)
		assert.Equal(t, "23851234567890", record.PlatformObjectID)
		assert.Equal(t, "Campanha Black Friday", record.DisplayName)
		assert.False(t, record.HasPlatformData())

		assert.Nil(t, record.DeliveryStatus)
		assert.Nil(t, record.AmountSpent)
		assert.Nil(t, record.Clicks)
		assert.Nil(t, record.Purchases)
		assert.Nil(t, record.CostPerPurchase)
		assert.Nil(t, record.TotalConversionValue)
		assert.Nil(t, record.Roas)
		assert.Nil(t, record.SirgeCostPerPurchase)
		assert.Nil(t, record.SirgeRoas)

		assert.Equal(t, 120, *record.SirgeClicks)
		assert.Equal(t, 4, *record.SirgePurchases)
		assert.Equal(t, 600.0, *record.SirgeTotalConversionValue)
	})

	t.Run("Gasto zero é exibido e bloqueia as divisões", func(t *testing.T) {
		metricSet := &domain.PlatformMetricSet{
			DeliveryStatus: &activeStatus,
			Spend:          0,
			Clicks:         10,
		}

		record := FactoryPerformanceRecord(1, group, metricSet)

		assert.True(t, record.HasPlatformData())
		assert.Equal(t, 0.0, *record.AmountSpent)
		assert.Equal(t, 10, *record.Clicks)

		// Divisão por gasto zero nunca acontece
		assert.Nil(t, record.SirgeCostPerPurchase)
		assert.Nil(t, record.SirgeRoas)
		assert.Nil(t, record.CostPerPurchase)
	})

	t.Run("Linha completa com campos derivados", func(t *testing.T) {
		platformRoas := 2.5
		metricSet := &domain.PlatformMetricSet{
			DeliveryStatus:  &activeStatus,
			Spend:           200,
			Clicks:          350,
			Purchases:       5,
			ConversionValue: 500,
			CostPerPurchase: 40,
			Roas:            &platformRoas,
		}

		record := FactoryPerformanceRecord(2, group, metricSet)

		assert.True(t, record.HasPlatformData())
		assert.Equal(t, "Active", *record.DeliveryStatus)
		assert.Equal(t, 200.0, *record.AmountSpent)
		assert.Equal(t, 350, *record.Clicks)
		assert.Equal(t, 5, *record.Purchases)
		assert.Equal(t, 500.0, *record.TotalConversionValue)

		// A plataforma informou o custo por compra, usa o dela
		assert.Equal(t, 40.0, *record.CostPerPurchase)

		// round(2.5) = 3
		assert.Equal(t, "3x", *record.Roas)

		// round(200 / 4) = 50
		assert.Equal(t, 50.0, *record.SirgeCostPerPurchase)

		// round(600 / 200) = 3
		assert.Equal(t, "3x", *record.SirgeRoas)
	})

	t.Run("Custo por compra ausente da plataforma fica nulo", func(t *testing.T) {
		metricSet := &domain.PlatformMetricSet{
			Spend:     100,
			Purchases: 2,
		}

		record := FactoryPerformanceRecord(1, group, metricSet)

		assert.Nil(t, record.CostPerPurchase)
		assert.Nil(t, record.Roas)
		assert.Equal(t, 25.0, *record.SirgeCostPerPurchase)
	})
}
