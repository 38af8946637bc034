package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/sirge-io/performance-api/infrastructure/database/postgres"
	"github.com/sirge-io/performance-api/internal/domain"
)

const (
	businessesTable = "businesses b"

	businessColumns = `b.id, b.name, b.user_id, b.viewer_currency, b.active,
		b.facebook_ad_account_id, b.facebook_access_token, b.facebook_account_currency,
		b.tiktok_advertiser_id, b.tiktok_access_token, b.tiktok_account_currency,
		b.created_at, b.updated_at, b.deleted_at`
)

type BusinessRepository interface {
	GetBusinessByID(businessID string) (*domain.Business, error)
	ListBusinesses(onlyActive bool) ([]*domain.Business, error)
	UpdateBusiness(business *domain.Business) error
}

type businessRepository struct {
	conn *postgres.Connection
}

func NewBusinessRepository(conn *postgres.Connection) BusinessRepository {
	return &businessRepository{
		conn: conn,
	}
}

func (r *businessRepository) GetBusinessByID(businessID string) (*domain.Business, error) {
	query, args, err := squirrel.
		Select(businessColumns).
		From(businessesTable).
		Where(squirrel.Eq{"b.id": businessID, "b.deleted_at": nil}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	business, err := scanBusiness(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear negócio: %w", err)
	}

	return business, nil
}

func (r *businessRepository) ListBusinesses(onlyActive bool) ([]*domain.Business, error) {
	builder := squirrel.
		Select(businessColumns).
		From(businessesTable).
		Where(squirrel.Eq{"b.deleted_at": nil})

	if onlyActive {
		builder = builder.Where(squirrel.Eq{"b.active": true})
	}

	query, args, err := builder.
		OrderBy("b.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	businesses := make([]*domain.Business, 0)
	for rows.Next() {
		business, err := scanBusiness(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear negócios: %w", err)
		}
		businesses = append(businesses, business)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return businesses, nil
}

func (r *businessRepository) UpdateBusiness(business *domain.Business) error {
	query, args, err := squirrel.
		Update("businesses").
		Set("name", business.Name).
		Set("viewer_currency", business.ViewerCurrency).
		Set("active", business.Active).
		Set("facebook_ad_account_id", business.FacebookAdAccountID).
		Set("facebook_access_token", business.FacebookAccessToken).
		Set("facebook_account_currency", business.FacebookAccountCurrency).
		Set("tiktok_advertiser_id", business.TikTokAdvertiserID).
		Set("tiktok_access_token", business.TikTokAccessToken).
		Set("tiktok_account_currency", business.TikTokAccountCurrency).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": business.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar negócio: %w", err)
	}

	return nil
}

// scanner abstrai sql.Row e sql.Rows para reaproveitar o scan
type scanner interface {
	Scan(dest ...any) error
}

func scanBusiness(s scanner) (*domain.Business, error) {
	business := &domain.Business{}
	err := s.Scan(
		&business.ID,
		&business.Name,
		&business.UserID,
		&business.ViewerCurrency,
		&business.Active,
		&business.FacebookAdAccountID,
		&business.FacebookAccessToken,
		&business.FacebookAccountCurrency,
		&business.TikTokAdvertiserID,
		&business.TikTokAccessToken,
		&business.TikTokAccountCurrency,
		&business.CreatedAt,
		&business.UpdatedAt,
		&business.DeletedAt,
	)
	if err != nil {
		return nil, err
	}

	return business, nil
}
