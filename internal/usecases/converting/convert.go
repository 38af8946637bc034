package converting

import (
	"github.com/sirge-io/performance-api/internal/domain"
	"github.com/sirge-io/performance-api/pkg/utils"
)

// ConvertValue aplica o contexto de conversão a um valor monetário.
// Na conversão em dois saltos cada salto é arredondado antes da próxima
// multiplicação. Os relatórios históricos foram gerados assim e os novos
// precisam bater valor a valor, então os saltos não podem ser colapsados
// em uma única multiplicação.
func ConvertValue(value float64, conversion *domain.CurrencyConversionContext) float64 {
	if conversion == nil || !conversion.NeedsConversion {
		return value
	}

	if conversion.TwoHop {
		intermediate := utils.RoundToWholeNumber(value * conversion.BaseRate)
		return utils.RoundToWholeNumber(intermediate * conversion.AccountRate)
	}

	return utils.RoundToWholeNumber(value * conversion.AccountRate)
}

// ApplyConversion converte os campos monetários do metric set para a moeda do
// visualizador. Cliques, compras, ROAS e status independem de moeda e passam
// inalterados. Não modifica o metric set original.
func ApplyConversion(metricSet *domain.PlatformMetricSet, conversion *domain.CurrencyConversionContext) *domain.PlatformMetricSet {
	if metricSet == nil {
		return nil
	}

	if conversion == nil || !conversion.NeedsConversion {
		return metricSet
	}

	converted := *metricSet
	converted.Spend = ConvertValue(metricSet.Spend, conversion)
	converted.ConversionValue = ConvertValue(metricSet.ConversionValue, conversion)
	converted.CostPerPurchase = ConvertValue(metricSet.CostPerPurchase, conversion)

	return &converted
}
