package converting

import (
	"testing"

	"github.com/sirge-io/performance-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestConvertValue(t *testing.T) {
	tests := []struct {
		name       string
		value      float64
		conversion *domain.CurrencyConversionContext
		expected   float64
	}{
		{
			name:       "Sem contexto o valor passa inalterado",
			value:      123.45,
			conversion: nil,
			expected:   123.45,
		},
		{
			name:       "Sem conversão necessária o valor passa inalterado",
			value:      123.45,
			conversion: &domain.CurrencyConversionContext{NeedsConversion: false},
			expected:   123.45,
		},
		{
			name:       "Um salto arredonda para inteiro",
			value:      10,
			conversion: &domain.CurrencyConversionContext{NeedsConversion: true, AccountRate: 5.43},
			expected:   54,
		},
		{
			name:  "Dois saltos arredondam cada salto antes da próxima multiplicação",
			value: 7,
			conversion: &domain.CurrencyConversionContext{
				NeedsConversion: true,
				TwoHop:          true,
				BaseRate:        1.33,
				AccountRate:     1.27,
			},
			// round(7 * 1.33) = 9, round(9 * 1.27) = 11. A multiplicação direta
			// daria round(7 * 1.33 * 1.27) = 12, que seria o valor errado aqui.
			expected: 11,
		},
		{
			name:  "Zero permanece zero em dois saltos",
			value: 0,
			conversion: &domain.CurrencyConversionContext{
				NeedsConversion: true,
				TwoHop:          true,
				BaseRate:        1.33,
				AccountRate:     1.27,
			},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ConvertValue(tt.value, tt.conversion))
		})
	}
}

func TestApplyConversion(t *testing.T) {
	conversion := &domain.CurrencyConversionContext{
		NeedsConversion: true,
		TwoHop:          true,
		BaseRate:        1.33,
		AccountRate:     1.27,
	}

	t.Run("Metric set nulo permanece nulo", func(t *testing.T) {
		assert.Nil(t, ApplyConversion(nil, conversion))
	})

	t.Run("Converte apenas campos monetários e preserva o original", func(t *testing.T) {
		roas := 2.5
		status := "Active"
		metricSet := &domain.PlatformMetricSet{
			DeliveryStatus:  &status,
			Spend:           7,
			Clicks:          42,
			Purchases:       3,
			ConversionValue: 7,
			CostPerPurchase: 7,
			Roas:            &roas,
		}

		converted := ApplyConversion(metricSet, conversion)

		assert.Equal(t, 11.0, converted.Spend)
		assert.Equal(t, 11.0, converted.ConversionValue)
		assert.Equal(t, 11.0, converted.CostPerPurchase)

		// Campos independentes de moeda passam inalterados
		assert.Equal(t, 42, converted.Clicks)
		assert.Equal(t, 3, converted.Purchases)
		assert.Equal(t, &roas, converted.Roas)
		assert.Equal(t, &status, converted.DeliveryStatus)

		// O metric set original não é modificado
		assert.Equal(t, 7.0, metricSet.Spend)
	})
}
