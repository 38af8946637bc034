package converting

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirge-io/performance-api/infrastructure/repository"
	"github.com/sirge-io/performance-api/internal/domain"
)

// Moeda pivô das conversões em dois saltos
const pivotCurrency = "USD"

type Service struct {
	exchangeRateRepository repository.ExchangeRateRepository
}

// NewService cria uma nova instância do serviço de conversão de moeda
func NewService(exchangeRateRepo repository.ExchangeRateRepository) Resolver {
	return &Service{
		exchangeRateRepository: exchangeRateRepo,
	}
}

// Resolve monta o contexto de conversão entre a moeda da conta e a do
// visualizador. Moedas iguais dispensam conversão; conta em USD usa um salto;
// qualquer outra conta converte em dois saltos passando pelo USD.
func (s *Service) Resolve(accountCurrency, viewerCurrency string, asOf *time.Time) (*domain.CurrencyConversionContext, error) {
	if accountCurrency == viewerCurrency {
		return &domain.CurrencyConversionContext{NeedsConversion: false}, nil
	}

	if accountCurrency == pivotCurrency {
		accountRate, err := s.getRate(pivotCurrency, viewerCurrency, asOf)
		if err != nil {
			return nil, err
		}

		return &domain.CurrencyConversionContext{
			NeedsConversion: true,
			TwoHop:          false,
			AccountRate:     accountRate,
		}, nil
	}

	baseRate, err := s.getRate(accountCurrency, pivotCurrency, asOf)
	if err != nil {
		return nil, err
	}

	accountRate, err := s.getRate(pivotCurrency, viewerCurrency, asOf)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"account_currency": accountCurrency,
		"viewer_currency":  viewerCurrency,
	}).Debug("currency: resolved two hop conversion")

	return &domain.CurrencyConversionContext{
		NeedsConversion: true,
		TwoHop:          true,
		BaseRate:        baseRate,
		AccountRate:     accountRate,
	}, nil
}

func (s *Service) getRate(fromCurrency, toCurrency string, asOf *time.Time) (float64, error) {
	rate, err := s.exchangeRateRepository.GetRate(fromCurrency, toCurrency, asOf)
	if err != nil {
		return 0, fmt.Errorf("erro ao buscar taxa de câmbio %s->%s: %w", fromCurrency, toCurrency, err)
	}

	if rate == nil {
		return 0, fmt.Errorf("%s->%s: %w", fromCurrency, toCurrency, domain.ErrRateNotFound)
	}

	return rate.Rate, nil
}
