package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/sirge-io/performance-api/infrastructure/database/postgres"
	"github.com/sirge-io/performance-api/internal/domain"
)

const (
	exchangeRatesTable = "exchange_rates er"
)

type ExchangeRateRepository interface {
	// GetRate busca a taxa de um par de moedas. Com asOf informado, retorna a
	// taxa mais recente com data igual ou anterior; sem asOf, a mais recente.
	// Retorna (nil, nil) quando não existe linha para o par.
	GetRate(fromCurrency, toCurrency string, asOf *time.Time) (*domain.ExchangeRate, error)
	SaveOrUpdate(rate *domain.ExchangeRate) error
}

type exchangeRateRepository struct {
	conn *postgres.Connection
}

func NewExchangeRateRepository(conn *postgres.Connection) ExchangeRateRepository {
	return &exchangeRateRepository{
		conn: conn,
	}
}

func (r *exchangeRateRepository) GetRate(fromCurrency, toCurrency string, asOf *time.Time) (*domain.ExchangeRate, error) {
	builder := squirrel.
		Select("er.id, er.from_currency, er.to_currency, er.rate, er.as_of, er.created_at, er.updated_at").
		From(exchangeRatesTable).
		Where(squirrel.Eq{"er.from_currency": fromCurrency, "er.to_currency": toCurrency})

	if asOf != nil {
		builder = builder.Where(squirrel.LtOrEq{"er.as_of": asOf.Format("2006-01-02")})
	}

	query, args, err := builder.
		OrderBy("er.as_of DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rate := &domain.ExchangeRate{}
	row := r.conn.QueryRow(query, args...)
	err = row.Scan(
		&rate.ID,
		&rate.FromCurrency,
		&rate.ToCurrency,
		&rate.Rate,
		&rate.AsOf,
		&rate.CreatedAt,
		&rate.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear taxa de câmbio: %w", err)
	}

	return rate, nil
}

func (r *exchangeRateRepository) SaveOrUpdate(rate *domain.ExchangeRate) error {
	query := squirrel.StatementBuilder.
		Insert("exchange_rates").
		Columns("from_currency", "to_currency", "rate", "as_of").
		Values(
			rate.FromCurrency,
			rate.ToCurrency,
			rate.Rate,
			rate.AsOf.Format("2006-01-02"),
		).
		Suffix(`
			ON CONFLICT (from_currency, to_currency, as_of) DO UPDATE SET
				rate = EXCLUDED.rate,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao salvar taxa de câmbio: %w", err)
	}

	return nil
}
