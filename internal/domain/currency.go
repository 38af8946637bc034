package domain

import "time"

// CurrencyConversionContext é o resultado da resolução de conversão de moeda,
// calculado uma única vez por execução e compartilhado (somente leitura) por
// todas as buscas concorrentes.
type CurrencyConversionContext struct {
	NeedsConversion bool
	// TwoHop indica conversão roteada por USD: moeda da conta -> USD -> moeda do usuário
	TwoHop bool
	// BaseRate é a taxa moeda-da-conta -> USD (usada apenas quando TwoHop)
	BaseRate float64
	// AccountRate é a taxa USD -> moeda-do-usuário (ou direta quando não TwoHop)
	AccountRate float64
}

// ExchangeRate representa uma linha da tabela de taxas de câmbio
type ExchangeRate struct {
	ID           int64     `json:"id"`
	FromCurrency string    `json:"from_currency"`
	ToCurrency   string    `json:"to_currency"`
	Rate         float64   `json:"rate"`
	AsOf         time.Time `json:"as_of"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
