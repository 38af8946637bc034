package tiktok

import (
	"testing"

	tiktokdomain "github.com/sirge-io/performance-api/infrastructure/integrator/tiktok/domain"
	"github.com/stretchr/testify/assert"
)

func TestFactoryMetricSet(t *testing.T) {
	t.Run("Converte as métricas string do relatório", func(t *testing.T) {
		metrics := &tiktokdomain.ObjectMetrics{
			Spend:                    "880.45",
			Clicks:                   "2100",
			Conversion:               "18",
			CostPerConversion:        "48.91",
			TotalCompletePaymentRate: "2650.00",
			CompletePaymentRoas:      "3.01",
		}

		metricSet := FactoryMetricSet(metrics)

		assert.Equal(t, 880.45, metricSet.Spend)
		assert.Equal(t, 2100, metricSet.Clicks)
		assert.Equal(t, 18, metricSet.Purchases)
		assert.Equal(t, 2650.00, metricSet.ConversionValue)
		assert.Equal(t, 48.91, metricSet.CostPerPurchase)

		assert.NotNil(t, metricSet.Roas)
		assert.Equal(t, 3.01, *metricSet.Roas)
	})

	t.Run("Campos vazios viram zero e ROAS vazio fica nulo", func(t *testing.T) {
		metrics := &tiktokdomain.ObjectMetrics{
			Spend: "15.00",
		}

		metricSet := FactoryMetricSet(metrics)

		assert.Equal(t, 15.0, metricSet.Spend)
		assert.Equal(t, 0, metricSet.Clicks)
		assert.Equal(t, 0, metricSet.Purchases)
		assert.Equal(t, 0.0, metricSet.ConversionValue)
		assert.Nil(t, metricSet.Roas)
	})

	t.Run("Valores não numéricos degradam para zero", func(t *testing.T) {
		metrics := &tiktokdomain.ObjectMetrics{
			Spend:               "abc",
			Clicks:              "xyz",
			CompletePaymentRoas: "oops",
		}

		metricSet := FactoryMetricSet(metrics)

		assert.Equal(t, 0.0, metricSet.Spend)
		assert.Equal(t, 0, metricSet.Clicks)
		assert.Nil(t, metricSet.Roas)
	})
}
