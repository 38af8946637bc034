package converting

import (
	"errors"
	"testing"
	"time"

	"github.com/sirge-io/performance-api/infrastructure/repository/mocks"
	"github.com/sirge-io/performance-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestService_Resolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	asOf := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		account  string
		viewer   string
		setup    func(repo *mocks.MockExchangeRateRepository)
		validate func(t *testing.T, conversion *domain.CurrencyConversionContext, err error)
	}{
		{
			name:    "Moedas iguais dispensam conversão e não consultam o repositório",
			account: "USD",
			viewer:  "USD",
			setup:   func(repo *mocks.MockExchangeRateRepository) {},
			validate: func(t *testing.T, conversion *domain.CurrencyConversionContext, err error) {
				assert.NoError(t, err)
				assert.False(t, conversion.NeedsConversion)
			},
		},
		{
			name:    "Conta em USD usa um único salto",
			account: "USD",
			viewer:  "BRL",
			setup: func(repo *mocks.MockExchangeRateRepository) {
				repo.EXPECT().
					GetRate("USD", "BRL", &asOf).
					Return(&domain.ExchangeRate{FromCurrency: "USD", ToCurrency: "BRL", Rate: 5.43}, nil)
			},
			validate: func(t *testing.T, conversion *domain.CurrencyConversionContext, err error) {
				assert.NoError(t, err)
				assert.True(t, conversion.NeedsConversion)
				assert.False(t, conversion.TwoHop)
				assert.Equal(t, 5.43, conversion.AccountRate)
			},
		},
		{
			name:    "Conta fora do USD converte em dois saltos passando pelo USD",
			account: "EUR",
			viewer:  "BRL",
			setup: func(repo *mocks.MockExchangeRateRepository) {
				repo.EXPECT().
					GetRate("EUR", "USD", &asOf).
					Return(&domain.ExchangeRate{FromCurrency: "EUR", ToCurrency: "USD", Rate: 1.08}, nil)
				repo.EXPECT().
					GetRate("USD", "BRL", &asOf).
					Return(&domain.ExchangeRate{FromCurrency: "USD", ToCurrency: "BRL", Rate: 5.43}, nil)
			},
			validate: func(t *testing.T, conversion *domain.CurrencyConversionContext, err error) {
				assert.NoError(t, err)
				assert.True(t, conversion.NeedsConversion)
				assert.True(t, conversion.TwoHop)
				assert.Equal(t, 1.08, conversion.BaseRate)
				assert.Equal(t, 5.43, conversion.AccountRate)
			},
		},
		{
			name:    "Taxa ausente é fatal com ErrRateNotFound",
			account: "EUR",
			viewer:  "BRL",
			setup: func(repo *mocks.MockExchangeRateRepository) {
				repo.EXPECT().
					GetRate("EUR", "USD", &asOf).
					Return(nil, nil)
			},
			validate: func(t *testing.T, conversion *domain.CurrencyConversionContext, err error) {
				assert.Nil(t, conversion)
				assert.ErrorIs(t, err, domain.ErrRateNotFound)
			},
		},
		{
			name:    "Falha do repositório é propagada",
			account: "USD",
			viewer:  "BRL",
			setup: func(repo *mocks.MockExchangeRateRepository) {
				repo.EXPECT().
					GetRate("USD", "BRL", &asOf).
					Return(nil, errors.New("connection refused"))
			},
			validate: func(t *testing.T, conversion *domain.CurrencyConversionContext, err error) {
				assert.Nil(t, conversion)
				assert.Error(t, err)
				assert.NotErrorIs(t, err, domain.ErrRateNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := mocks.NewMockExchangeRateRepository(ctrl)
			tt.setup(mockRepo)

			service := NewService(mockRepo)
			conversion, err := service.Resolve(tt.account, tt.viewer, &asOf)
			tt.validate(t, conversion, err)
		})
	}
}
