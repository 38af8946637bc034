package facebook

import (
	"testing"

	facebookdomain "github.com/sirge-io/performance-api/infrastructure/integrator/facebook/domain"
	"github.com/stretchr/testify/assert"
)

func TestFactoryMetricSet(t *testing.T) {
	t.Run("Extrai as métricas dos arrays de ações", func(t *testing.T) {
		insight := &facebookdomain.AdObjectInsight{
			Spend: "1530.77",
			Actions: []facebookdomain.ActionEntry{
				{ActionType: "landing_page_view", Value: "900"},
				{ActionType: facebookdomain.ActionTypeLinkClick, Value: "1250"},
				{ActionType: facebookdomain.ActionTypePurchase, Value: "32"},
			},
			ActionValues: []facebookdomain.ActionEntry{
				{ActionType: facebookdomain.ActionTypePurchase, Value: "4812.50"},
			},
			CostPerActionType: []facebookdomain.ActionEntry{
				{ActionType: facebookdomain.ActionTypePurchase, Value: "47.84"},
			},
			PurchaseRoas: []facebookdomain.ActionEntry{
				{ActionType: facebookdomain.ActionTypePurchase, Value: "3.14"},
			},
		}

		metricSet := FactoryMetricSet(insight)

		// Spend é truncado para o valor inteiro
		assert.Equal(t, 1530.0, metricSet.Spend)
		assert.Equal(t, 1250, metricSet.Clicks)
		assert.Equal(t, 32, metricSet.Purchases)
		assert.Equal(t, 4812.50, metricSet.ConversionValue)
		assert.Equal(t, 47.84, metricSet.CostPerPurchase)

		assert.NotNil(t, metricSet.Roas)
		assert.Equal(t, 3.14, *metricSet.Roas)
	})

	t.Run("Ações ausentes viram zero e ROAS ausente fica nulo", func(t *testing.T) {
		insight := &facebookdomain.AdObjectInsight{
			Spend: "12.30",
			Actions: []facebookdomain.ActionEntry{
				{ActionType: facebookdomain.ActionTypeLinkClick, Value: "40"},
			},
		}

		metricSet := FactoryMetricSet(insight)

		assert.Equal(t, 12.0, metricSet.Spend)
		assert.Equal(t, 40, metricSet.Clicks)
		assert.Equal(t, 0, metricSet.Purchases)
		assert.Equal(t, 0.0, metricSet.ConversionValue)
		assert.Equal(t, 0.0, metricSet.CostPerPurchase)
		assert.Nil(t, metricSet.Roas)
	})

	t.Run("Valores não numéricos degradam para zero", func(t *testing.T) {
		insight := &facebookdomain.AdObjectInsight{
			Spend: "not-a-number",
			ActionValues: []facebookdomain.ActionEntry{
				{ActionType: facebookdomain.ActionTypePurchase, Value: "oops"},
			},
			PurchaseRoas: []facebookdomain.ActionEntry{
				{ActionType: facebookdomain.ActionTypePurchase, Value: "oops"},
			},
		}

		metricSet := FactoryMetricSet(insight)

		assert.Equal(t, 0.0, metricSet.Spend)
		assert.Equal(t, 0.0, metricSet.ConversionValue)
		assert.Nil(t, metricSet.Roas)
	})
}
