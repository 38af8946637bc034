package converting

import (
	"time"

	"github.com/sirge-io/performance-api/internal/domain"
)

// Resolver define a interface para resolver a conversão de moeda de um relatório
type Resolver interface {
	// Resolve monta o contexto de conversão entre a moeda da conta de anúncios
	// e a moeda do visualizador, buscando as taxas necessárias
	Resolve(accountCurrency, viewerCurrency string, asOf *time.Time) (*domain.CurrencyConversionContext, error)
}
